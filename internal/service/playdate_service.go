package service

import (
	"errors"
	"time"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type PlaydateStore interface {
	Create(p *model.Playdate) error
	GetByID(id string) (*model.Playdate, error)
	ListForDogs(dogIDs []string) ([]model.Playdate, error)
	Update(p *model.Playdate, fields map[string]interface{}) error
}

type PlaydateService struct {
	Playdates PlaydateStore
	Matches   MatchStore
	Ownership OwnershipResolver
}

func NewPlaydateService(playdates PlaydateStore, matches MatchStore, ownership OwnershipResolver) *PlaydateService {
	return &PlaydateService{
		Playdates: playdates,
		Matches:   matches,
		Ownership: ownership,
	}
}

type PlaydateInput struct {
	MatchID       string
	ScheduledTime time.Time
	Latitude      float64
	Longitude     float64
	LocationName  string
	Notes         string
}

// Create 在某条匹配下创建约玩，匹配双方都可以发起
func (s *PlaydateService) Create(requesterID uint, in PlaydateInput) (*model.Playdate, error) {
	m, err := s.Matches.GetByID(in.MatchID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrMatchNotFound
		}
		return nil, err
	}

	owns, err := s.Ownership.OwnsAny(requesterID, m.Dog1ID, m.Dog2ID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, util.ErrPermissionDenied
	}

	p := &model.Playdate{
		MatchID:       in.MatchID,
		ScheduledTime: in.ScheduledTime,
		Latitude:      in.Latitude,
		Longitude:     in.Longitude,
		LocationName:  in.LocationName,
		Notes:         in.Notes,
		Status:        model.PlaydateScheduled,
		CreatedBy:     requesterID,
	}
	if err := s.Playdates.Create(p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *PlaydateService) List(requesterID uint) ([]model.Playdate, error) {
	dogIDs, err := s.Ownership.DogIDsOwnedBy(requesterID)
	if err != nil {
		return nil, err
	}
	return s.Playdates.ListForDogs(dogIDs)
}

func (s *PlaydateService) Get(requesterID uint, playdateID string) (*model.Playdate, error) {
	return s.authorize(requesterID, playdateID)
}

// Update 部分字段更新，匹配双方均可修改
func (s *PlaydateService) Update(requesterID uint, playdateID string, fields map[string]interface{}) (*model.Playdate, error) {
	p, err := s.authorize(requesterID, playdateID)
	if err != nil {
		return nil, err
	}

	fields["updated_at"] = time.Now()
	if err := s.Playdates.Update(p, fields); err != nil {
		return nil, err
	}
	return s.Playdates.GetByID(p.ID)
}

func (s *PlaydateService) authorize(requesterID uint, playdateID string) (*model.Playdate, error) {
	p, err := s.Playdates.GetByID(playdateID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, util.ErrPlaydateNotFound
		}
		return nil, err
	}

	owns, err := s.Ownership.OwnsAny(requesterID, p.Match.Dog1ID, p.Match.Dog2ID)
	if err != nil {
		return nil, err
	}
	if !owns {
		return nil, util.ErrPermissionDenied
	}
	return p, nil
}
