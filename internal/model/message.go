package model

import "time"

// Message 匹配内的聊天消息，read_at 为空表示未读
// swagger:model Message
type Message struct {
	UUIDBase
	MatchID   string     `gorm:"index;index:idx_match_created;type:varchar(36);not null" json:"match_id"`
	CreatedAt time.Time  `gorm:"index:idx_match_created" json:"created_at"` // (match_id, created_at) 优化历史消息查询
	Match     Match      `gorm:"foreignKey:MatchID;constraint:false" json:"-"`
	SenderID  uint       `gorm:"index;not null" json:"sender_id"`
	Content   string     `gorm:"type:text;not null" json:"content"`
	ReadAt    *time.Time `json:"read_at"`
}

func (Message) TableName() string {
	return "messages"
}
