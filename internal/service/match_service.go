package service

import (
	"errors"

	"paw_match_backend/internal/model"
	"paw_match_backend/internal/util"

	"gorm.io/gorm"
)

type MatchStore interface {
	Create(m *model.Match) error
	GetByID(id string) (*model.Match, error)
	FindByPair(dog1ID, dog2ID string) (*model.Match, error)
	FindReversePending(dog1ID, dog2ID string) (*model.Match, error)
	UpdateStatus(id string, status model.MatchStatus) error
	ListForDogs(dogIDs []string) ([]model.Match, error)
}

type DogStore interface {
	GetByID(id string) (*model.Dog, error)
}

// matchTransitions 显式状态迁移表。原有实现允许任意迁移
// （比如 matched 退回 pending），这里收紧为单向推进。
var matchTransitions = map[model.MatchStatus]map[model.MatchStatus]bool{
	model.MatchPending: {
		model.MatchRejected: true,
		model.MatchBlocked:  true,
	},
	model.MatchMatched: {
		model.MatchAccepted: true,
		model.MatchRejected: true,
		model.MatchBlocked:  true,
	},
	model.MatchAccepted: {
		model.MatchRejected: true,
		model.MatchBlocked:  true,
	},
	model.MatchRejected: {
		model.MatchBlocked: true,
	},
	model.MatchBlocked: {},
}

type MatchService struct {
	Matches   MatchStore
	DogLookup DogStore
	Ownership OwnershipResolver
}

func NewMatchService(matches MatchStore, dogs DogStore, ownership OwnershipResolver) *MatchService {
	return &MatchService{
		Matches:   matches,
		DogLookup: dogs,
		Ownership: ownership,
	}
}

// RequestMatch 表达一次匹配意向。返回的 merged 为 true 表示
// 命中了对方先发起的 pending 申请并升级为 matched（HTTP 200），
// 为 false 表示新建了 pending 记录（HTTP 201）。
// 重复请求返回 ErrMatchExists，并带回已有记录。
func (s *MatchService) RequestMatch(requesterID uint, dog1ID, dog2ID string) (match *model.Match, merged bool, err error) {
	if dog1ID == dog2ID {
		return nil, false, util.ErrSelfMatch
	}

	for _, id := range []string{dog1ID, dog2ID} {
		if _, err := s.DogLookup.GetByID(id); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return nil, false, util.ErrDogNotFound
			}
			return nil, false, err
		}
	}

	owns, err := s.Ownership.OwnsAny(requesterID, dog1ID, dog2ID)
	if err != nil {
		return nil, false, err
	}
	if !owns {
		return nil, false, util.ErrPermissionDenied
	}

	// 对方先喜欢了这只狗：把那条 pending 升级为 matched，双向意向达成。
	// 必须先于重复检查：pair_key 不分方向，反向 pending 也会命中它。
	if reverse, err := s.Matches.FindReversePending(dog1ID, dog2ID); err == nil {
		if err := s.Matches.UpdateStatus(reverse.ID, model.MatchMatched); err != nil {
			return nil, false, err
		}
		updated, err := s.Matches.GetByID(reverse.ID)
		if err != nil {
			return nil, false, err
		}
		return updated, true, nil
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	// 其余任何方向、任何状态的已有记录都算重复，不允许建出第二条
	if existing, err := s.Matches.FindByPair(dog1ID, dog2ID); err == nil {
		return existing, false, util.ErrMatchExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, false, err
	}

	m := &model.Match{
		Dog1ID:  dog1ID,
		Dog2ID:  dog2ID,
		PairKey: model.PairKey(dog1ID, dog2ID),
		Status:  model.MatchPending,
	}
	if err := s.Matches.Create(m); err != nil {
		// pair_key 唯一索引兜底：并发时输掉竞争的一方按重复处理
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			if existing, ferr := s.Matches.FindByPair(dog1ID, dog2ID); ferr == nil {
				return existing, false, util.ErrMatchExists
			}
			return nil, false, util.ErrMatchExists
		}
		return nil, false, err
	}
	return m, false, nil
}

// UpdateStatus 按显式迁移表更新匹配状态
func (s *MatchService) UpdateStatus(requesterID uint, matchID string, newStatus model.MatchStatus) (*model.Match, error) {
	m, err := s.Matches.GetByID(matchID)
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

	if !matchTransitions[m.Status][newStatus] {
		return nil, util.ErrInvalidTransition
	}

	if err := s.Matches.UpdateStatus(m.ID, newStatus); err != nil {
		return nil, err
	}
	return s.Matches.GetByID(m.ID)
}

// ListMatches 列出请求者名下狗参与的所有匹配
func (s *MatchService) ListMatches(requesterID uint) ([]model.Match, error) {
	dogIDs, err := s.Ownership.DogIDsOwnedBy(requesterID)
	if err != nil {
		return nil, err
	}
	return s.Matches.ListForDogs(dogIDs)
}
