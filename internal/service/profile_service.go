package service

import (
	"errors"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/repository"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type ProfileService struct {
	ProfileRepo *repository.ProfileRepository
}

func NewProfileService(profileRepo *repository.ProfileRepository) *ProfileService {
	return &ProfileService{ProfileRepo: profileRepo}
}

func (s *ProfileService) Get(userID uint) (*model.Profile, error) {
	profile, err := s.ProfileRepo.GetByUserID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

// Upsert 创建或覆盖当前用户的资料, 返回是否为新建
func (s *ProfileService) Upsert(profile *model.Profile) (bool, error) {
	exists, err := s.ProfileRepo.Exists(profile.UserID)
	if err != nil {
		return false, err
	}
	if exists {
		if err := s.ProfileRepo.Update(profile); err != nil {
			return false, err
		}
		return false, nil
	}
	if err := s.ProfileRepo.Create(profile); err != nil {
		return false, err
	}
	return true, nil
}
