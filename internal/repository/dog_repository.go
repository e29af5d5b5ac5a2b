package repository

import (
	"context"
	"fmt"
	"time"

	"paw_match_backend/internal/model"

	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

const ownedDogsCacheTTL = 24 * time.Hour

type DogRepository struct {
	DB    *gorm.DB
	Redis *redis.Client
	ctx   context.Context
}

func NewDogRepository(db *gorm.DB, rdb *redis.Client) *DogRepository {
	return &DogRepository{
		DB:    db,
		Redis: rdb,
		ctx:   context.Background(),
	}
}

func ownedDogsCacheKey(ownerID uint) string {
	return fmt.Sprintf("match:ownership:dogs:%d", ownerID)
}

func (r *DogRepository) Create(dog *model.Dog) error {
	err := r.DB.Create(dog).Error
	if err == nil {
		r.invalidateOwnerCache(dog.OwnerID)
	}
	return err
}

func (r *DogRepository) GetByID(id string) (*model.Dog, error) {
	var dog model.Dog
	err := r.DB.First(&dog, "id = ?", id).Error
	return &dog, err
}

func (r *DogRepository) GetByIDWithOwner(id string) (*model.Dog, error) {
	var dog model.Dog
	err := r.DB.Preload("Owner").First(&dog, "id = ?", id).Error
	return &dog, err
}

func (r *DogRepository) ListByOwner(ownerID uint) ([]model.Dog, error) {
	var dogs []model.Dog
	err := r.DB.Where("owner_id = ?", ownerID).Find(&dogs).Error
	return dogs, err
}

func (r *DogRepository) Update(dog *model.Dog, fields map[string]interface{}) error {
	return r.DB.Model(dog).Updates(fields).Error
}

func (r *DogRepository) Delete(dog *model.Dog) error {
	err := r.DB.Delete(dog).Error
	if err == nil {
		r.invalidateOwnerCache(dog.OwnerID)
	}
	return err
}

// GetOwnedDogIDs 直接查库获取某用户名下所有狗的 ID
func (r *DogRepository) GetOwnedDogIDs(ownerID uint) ([]string, error) {
	var ids []string
	err := r.DB.Model(&model.Dog{}).
		Where("owner_id = ?", ownerID).
		Pluck("id", &ids).Error
	return ids, err
}

// GetOwnedDogIDsCached 获取用户名下狗的 ID 列表（redis 集合缓存，回源后重建）。
// 授权判定在每个请求里都要做，这层缓存避免反复打库。
func (r *DogRepository) GetOwnedDogIDsCached(ownerID uint) ([]string, error) {
	if r.Redis == nil {
		return r.GetOwnedDogIDs(ownerID)
	}

	key := ownedDogsCacheKey(ownerID)
	cached, err := r.Redis.SMembers(r.ctx, key).Result()
	if err == nil && len(cached) > 0 {
		ids := make([]string, 0, len(cached))
		for _, s := range cached {
			if s == "" {
				continue // 防穿透占位成员
			}
			ids = append(ids, s)
		}
		return ids, nil
	}

	ids, err := r.GetOwnedDogIDs(ownerID)
	if err != nil {
		return nil, err
	}

	if len(ids) > 0 {
		pipe := r.Redis.Pipeline()
		for _, id := range ids {
			pipe.SAdd(r.ctx, key, id)
		}
		pipe.Expire(r.ctx, key, ownedDogsCacheTTL)
		pipe.Exec(r.ctx)
	} else {
		// 防止缓存穿透：存一个空占位并设置短过期
		r.Redis.SAdd(r.ctx, key, "")
		r.Redis.Expire(r.ctx, key, 5*time.Minute)
	}
	return ids, nil
}

func (r *DogRepository) invalidateOwnerCache(ownerID uint) {
	if r.Redis != nil {
		r.Redis.Del(r.ctx, ownedDogsCacheKey(ownerID))
	}
}
