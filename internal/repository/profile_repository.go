package repository

import (
	"errors"

	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

type ProfileRepository struct {
	DB *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{DB: db}
}

func (r *ProfileRepository) GetByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	err := r.DB.Where("user_id = ?", userID).First(&profile).Error
	return &profile, err
}

func (r *ProfileRepository) Exists(userID uint) (bool, error) {
	var count int64
	err := r.DB.Model(&model.Profile{}).Where("user_id = ?", userID).Count(&count).Error
	return count > 0, err
}

func (r *ProfileRepository) Create(profile *model.Profile) error {
	return r.DB.Create(profile).Error
}

func (r *ProfileRepository) Update(profile *model.Profile) error {
	res := r.DB.Model(&model.Profile{}).
		Where("user_id = ?", profile.UserID).
		Updates(map[string]interface{}{
			"first_name":        profile.FirstName,
			"last_name":         profile.LastName,
			"phone":             profile.Phone,
			"bio":               profile.Bio,
			"profile_image_url": profile.ProfileImageURL,
			"neighborhood":      profile.Neighborhood,
			"is_walker":         profile.IsWalker,
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return errors.New("profile not updated")
	}
	return nil
}
