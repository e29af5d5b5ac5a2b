package repository

import (
	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

type RatingRepository struct {
	DB *gorm.DB
}

func NewRatingRepository(db *gorm.DB) *RatingRepository {
	return &RatingRepository{DB: db}
}

func (r *RatingRepository) Create(rating *model.Rating) error {
	return r.DB.Create(rating).Error
}

func (r *RatingRepository) GetByID(id string) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.First(&rating, "id = ?", id).Error
	return &rating, err
}

func (r *RatingRepository) ListByRatedDog(dogID string) ([]model.Rating, error) {
	var ratings []model.Rating
	err := r.DB.Preload("Rater").
		Where("rated_dog_id = ?", dogID).
		Order("created_at DESC").
		Find(&ratings).Error
	return ratings, err
}

// Find 按 (playdate, rater, rated_dog) 三元组查找已有评价
func (r *RatingRepository) Find(playdateID string, raterID uint, ratedDogID string) (*model.Rating, error) {
	var rating model.Rating
	err := r.DB.Where("playdate_id = ? AND rater_id = ? AND rated_dog_id = ?",
		playdateID, raterID, ratedDogID).First(&rating).Error
	return &rating, err
}

func (r *RatingRepository) Update(rating *model.Rating, fields map[string]interface{}) error {
	return r.DB.Model(rating).Updates(fields).Error
}

func (r *RatingRepository) Delete(rating *model.Rating) error {
	return r.DB.Delete(rating).Error
}
