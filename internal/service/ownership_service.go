package service

// DogOwnershipStore 是所有权解析依赖的最小存储接口
type DogOwnershipStore interface {
	GetOwnedDogIDsCached(ownerID uint) ([]string, error)
}

// OwnershipResolver 把“这个用户对资源有没有权限”统一归约成
// “用户名下的狗和资源涉及的狗有没有交集”。所有模块共用这一个契约，
// 避免每条路由各写一套存在性+归属检查。
type OwnershipResolver interface {
	DogIDsOwnedBy(userID uint) ([]string, error)
	OwnsAny(userID uint, dogIDs ...string) (bool, error)
}

type OwnershipService struct {
	Dogs DogOwnershipStore
}

func NewOwnershipService(dogs DogOwnershipStore) *OwnershipService {
	return &OwnershipService{Dogs: dogs}
}

func (s *OwnershipService) DogIDsOwnedBy(userID uint) ([]string, error) {
	return s.Dogs.GetOwnedDogIDsCached(userID)
}

// OwnsAny 用户名下是否拥有给定狗中的任意一只
func (s *OwnershipService) OwnsAny(userID uint, dogIDs ...string) (bool, error) {
	owned, err := s.DogIDsOwnedBy(userID)
	if err != nil {
		return false, err
	}
	ownedSet := make(map[string]bool, len(owned))
	for _, id := range owned {
		ownedSet[id] = true
	}
	for _, id := range dogIDs {
		if ownedSet[id] {
			return true, nil
		}
	}
	return false, nil
}
