package repository

import (
	"time"

	"paw_match_backend/internal/model"

	"gorm.io/gorm"
)

type MatchRepository struct {
	DB *gorm.DB
}

func NewMatchRepository(db *gorm.DB) *MatchRepository {
	return &MatchRepository{DB: db}
}

func (r *MatchRepository) Create(m *model.Match) error {
	return r.DB.Create(m).Error
}

func (r *MatchRepository) GetByID(id string) (*model.Match, error) {
	var m model.Match
	err := r.DB.First(&m, "id = ?", id).Error
	return &m, err
}

// FindByPair 按规范化的狗对查找匹配，两个方向都命中同一条记录
func (r *MatchRepository) FindByPair(dog1ID, dog2ID string) (*model.Match, error) {
	var m model.Match
	err := r.DB.Where("pair_key = ?", model.PairKey(dog1ID, dog2ID)).First(&m).Error
	return &m, err
}

// FindReversePending 查找对方先发起的 pending 记录：dog1 是对方的狗，dog2 是本次请求的狗
func (r *MatchRepository) FindReversePending(dog1ID, dog2ID string) (*model.Match, error) {
	var m model.Match
	err := r.DB.Where("dog1_id = ? AND dog2_id = ? AND status = ?",
		dog2ID, dog1ID, model.MatchPending).First(&m).Error
	return &m, err
}

func (r *MatchRepository) UpdateStatus(id string, status model.MatchStatus) error {
	return r.DB.Model(&model.Match{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"status":     status,
			"updated_at": time.Now(),
		}).Error
}

// ListForDogs 列出任意一方属于给定狗集合的匹配，带上双方狗及主人资料
func (r *MatchRepository) ListForDogs(dogIDs []string) ([]model.Match, error) {
	if len(dogIDs) == 0 {
		return []model.Match{}, nil
	}
	var matches []model.Match
	err := r.DB.Preload("Dog1.Owner").Preload("Dog2.Owner").
		Where("dog1_id IN ? OR dog2_id IN ?", dogIDs, dogIDs).
		Order("updated_at DESC").
		Find(&matches).Error
	return matches, err
}
