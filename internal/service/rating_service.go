package service

import (
	"errors"
	"time"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type RatingStore interface {
	Create(r *model.Rating) error
	GetByID(id string) (*model.Rating, error)
	ListByRatedDog(dogID string) ([]model.Rating, error)
	Find(playdateID string, raterID uint, ratedDogID string) (*model.Rating, error)
	Update(r *model.Rating, fields map[string]interface{}) error
	Delete(r *model.Rating) error
}

type RatingService struct {
	Ratings   RatingStore
	Playdates PlaydateStore
	Ownership OwnershipResolver
}

func NewRatingService(ratings RatingStore, playdates PlaydateStore, ownership OwnershipResolver) *RatingService {
	return &RatingService{
		Ratings:   ratings,
		Playdates: playdates,
		Ownership: ownership,
	}
}

type RatingInput struct {
	PlaydateID string
	RatedDogID string
	Rating     int
	Review     string
}

// Create 对一次已完成约玩中对方的狗打分
// 约束: 约玩必须 completed, 被评的狗属于该匹配, 评价人拥有匹配中的另一只狗, 三元组唯一
func (s *RatingService) Create(raterID uint, in RatingInput) (*model.Rating, error) {
	p, err := s.Playdates.GetByID(in.PlaydateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPlaydateNotFound
		}
		return nil, err
	}
	if p.Status != model.PlaydateCompleted {
		return nil, util.ErrPlaydateNotCompleted
	}
	if !p.Match.Involves(in.RatedDogID) {
		return nil, util.ErrDogNotInPlaydate
	}

	// 评价人必须是匹配中另一只狗的主人
	otherDogID := p.Match.OtherDogID(in.RatedDogID)
	owns, err := s.Ownership.OwnsAny(raterID, otherDogID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, util.ErrPermissionDenied
	}

	r := &model.Rating{
		PlaydateID: in.PlaydateID,
		RaterID:    raterID,
		RatedDogID: in.RatedDogID,
		Rating:     in.Rating,
		Review:     in.Review,
	}
	if err := s.Ratings.Create(r); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, util.ErrAlreadyRated
		}
		return nil, err
	}
	return r, nil
}

func (s *RatingService) ListForDog(dogID string) ([]model.Rating, error) {
	return s.Ratings.ListByRatedDog(dogID)
}

// Update 仅评价人本人可修改分数和评语
func (s *RatingService) Update(raterID uint, ratingID string, fields map[string]interface{}) (*model.Rating, error) {
	r, err := s.authorize(raterID, ratingID)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	if err := s.Ratings.Update(r, fields); err != nil {
		return nil, err
	}
	return s.Ratings.GetByID(r.ID)
}

func (s *RatingService) Delete(raterID uint, ratingID string) error {
	r, err := s.authorize(raterID, ratingID)
	if err != nil {
		return err
	}
	return s.Ratings.Delete(r)
}

func (s *RatingService) authorize(raterID uint, ratingID string) (*model.Rating, error) {
	r, err := s.Ratings.GetByID(ratingID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrRatingNotFound
		}
		return nil, err
	}
	if r.RaterID != raterID {
		return nil, util.ErrPermissionDenied
	}
	return r, nil
}
