package model

import "time"

type PlaydateStatus string

const (
	PlaydateScheduled PlaydateStatus = "scheduled"
	PlaydateCompleted PlaydateStatus = "completed"
	PlaydateCancelled PlaydateStatus = "cancelled"
)

// Playdate 约玩记录，挂在一条匹配下，匹配双方均可创建和修改
// swagger:model Playdate
type Playdate struct {
	UUIDBase
	MatchID       string         `gorm:"type:varchar(36);index;not null" json:"match_id"`
	Match         Match          `gorm:"foreignKey:MatchID;constraint:false" json:"match,omitempty"`
	ScheduledTime time.Time      `gorm:"not null" json:"scheduled_time"`
	Latitude      float64        `gorm:"not null" json:"latitude"`
	Longitude     float64        `gorm:"not null" json:"longitude"`
	LocationName  string         `gorm:"size:255" json:"location_name"`
	Notes         string         `gorm:"type:text" json:"notes"`
	Status        PlaydateStatus `gorm:"type:enum('scheduled','completed','cancelled');default:'scheduled'" json:"status"`
	CreatedBy     uint           `gorm:"index;not null" json:"created_by"`
}

func (Playdate) TableName() string {
	return "playdates"
}
