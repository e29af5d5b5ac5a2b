package service

import (
	"errors"
	"time"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/repository"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type DogService struct {
	DogRepo     *repository.DogRepository
	ProfileRepo *repository.ProfileRepository
}

func NewDogService(dogRepo *repository.DogRepository, profileRepo *repository.ProfileRepository) *DogService {
	return &DogService{
		DogRepo:     dogRepo,
		ProfileRepo: profileRepo,
	}
}

// Create 登记一只狗, 要求主人已建立公开资料
func (s *DogService) Create(dog *model.Dog) error {
	exists, err := s.ProfileRepo.Exists(dog.OwnerID)
	if err != nil {
		return err
	}
	if !exists {
		return util.ErrProfileNotFound
	}
	return s.DogRepo.Create(dog)
}

func (s *DogService) Get(id string) (*model.Dog, error) {
	dog, err := s.DogRepo.GetByIDWithOwner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDogNotFound
		}
		return nil, err
	}
	return dog, nil
}

func (s *DogService) ListByOwner(ownerID uint) ([]model.Dog, error) {
	return s.DogRepo.ListByOwner(ownerID)
}

// Update 仅主人可修改
func (s *DogService) Update(requesterID uint, dogID string, fields map[string]interface{}) (*model.Dog, error) {
	dog, err := s.authorize(requesterID, dogID)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	if err := s.DogRepo.Update(dog, fields); err != nil {
		return nil, err
	}
	return s.DogRepo.GetByID(dogID)
}

// Delete 仅主人可删除
func (s *DogService) Delete(requesterID uint, dogID string) error {
	dog, err := s.authorize(requesterID, dogID)
	if err != nil {
		return err
	}
	return s.DogRepo.Delete(dog)
}

func (s *DogService) authorize(requesterID uint, dogID string) (*model.Dog, error) {
	dog, err := s.DogRepo.GetByID(dogID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrDogNotFound
		}
		return nil, err
	}
	if dog.OwnerID != requesterID {
		return nil, util.ErrPermissionDenied
	}
	return dog, nil
}
