package repository

import (
	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

type PlaydateRepository struct {
	DB *gorm.DB
}

func NewPlaydateRepository(db *gorm.DB) *PlaydateRepository {
	return &PlaydateRepository{DB: db}
}

func (r *PlaydateRepository) Create(p *model.Playdate) error {
	return r.DB.Create(p).Error
}

func (r *PlaydateRepository) GetByID(id string) (*model.Playdate, error) {
	var p model.Playdate
	err := r.DB.Preload("Match").First(&p, "id = ?", id).Error
	return &p, err
}

// ListForDogs 列出匹配一方属于给定狗集合的所有约玩
func (r *PlaydateRepository) ListForDogs(dogIDs []string) ([]model.Playdate, error) {
	if len(dogIDs) == 0 {
		return []model.Playdate{}, nil
	}
	var playdates []model.Playdate
	err := r.DB.Preload("Match.Dog1.Owner").Preload("Match.Dog2.Owner").
		Joins("JOIN matches ON matches.id = playdates.match_id").
		Where("matches.dog1_id IN ? OR matches.dog2_id IN ?", dogIDs, dogIDs).
		Order("playdates.scheduled_time DESC").
		Find(&playdates).Error
	return playdates, err
}

func (r *PlaydateRepository) Update(p *model.Playdate, fields map[string]interface{}) error {
	return r.DB.Model(p).Updates(fields).Error
}
