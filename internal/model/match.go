package model

import "gorm.io/gorm"

type MatchStatus string

const (
	MatchPending  MatchStatus = "pending"  // 单方表达意向，等待对方回应
	MatchMatched  MatchStatus = "matched"  // 双方互相喜欢，可以开始聊天
	MatchAccepted MatchStatus = "accepted"
	MatchRejected MatchStatus = "rejected"
	MatchBlocked  MatchStatus = "blocked"
)

// Match 两只狗之间的匹配记录。一对狗（无序）至多一条记录，
// 由 pair_key 唯一索引在数据库层兜底并发重复创建。
// swagger:model Match
type Match struct {
	UUIDBase
	Dog1ID  string      `gorm:"type:varchar(36);index;not null" json:"dog1_id"`
	Dog1    Dog         `gorm:"foreignKey:Dog1ID;constraint:false" json:"dog1,omitempty"`
	Dog2ID  string      `gorm:"type:varchar(36);index;not null" json:"dog2_id"`
	Dog2    Dog         `gorm:"foreignKey:Dog2ID;constraint:false" json:"dog2,omitempty"`
	PairKey string      `gorm:"type:varchar(80);uniqueIndex;not null" json:"-"`
	Status  MatchStatus `gorm:"type:enum('pending','matched','accepted','rejected','blocked');default:'pending'" json:"status"`
}

func (Match) TableName() string {
	return "matches"
}

func (m *Match) BeforeCreate(tx *gorm.DB) (err error) {
	if m.PairKey == "" {
		m.PairKey = PairKey(m.Dog1ID, m.Dog2ID)
	}
	return m.UUIDBase.BeforeCreate(tx)
}

// PairKey 规范化无序狗对：小 ID 在前，保证 (A,B) 与 (B,A) 落在同一个键上
func PairKey(dog1ID, dog2ID string) string {
	if dog2ID < dog1ID {
		dog1ID, dog2ID = dog2ID, dog1ID
	}
	return dog1ID + ":" + dog2ID
}

// Involves 判断某只狗是否为该匹配的一方
func (m *Match) Involves(dogID string) bool {
	return m.Dog1ID == dogID || m.Dog2ID == dogID
}

// OtherDogID 给定一方，返回另一方的狗 ID
func (m *Match) OtherDogID(dogID string) string {
	if m.Dog1ID == dogID {
		return m.Dog2ID
	}
	return m.Dog1ID
}
