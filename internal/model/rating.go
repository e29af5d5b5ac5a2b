package model

// Rating 约玩结束后对对方狗的评价。
// (playdate_id, rater_id, rated_dog_id) 唯一，防止重复评价。
// swagger:model Rating
type Rating struct {
	UUIDBase
	PlaydateID string   `gorm:"type:varchar(36);uniqueIndex:idx_playdate_rater_dog;not null" json:"playdate_id"`
	Playdate   Playdate `gorm:"foreignKey:PlaydateID;constraint:false" json:"-"`
	RaterID    uint     `gorm:"uniqueIndex:idx_playdate_rater_dog;not null" json:"rater_id"`
	Rater      Profile  `gorm:"foreignKey:RaterID;references:UserID;constraint:false" json:"rater,omitempty"`
	RatedDogID string   `gorm:"type:varchar(36);uniqueIndex:idx_playdate_rater_dog;index;not null" json:"rated_dog_id"`
	Rating     int      `gorm:"not null" json:"rating"` // 1-5
	Review     string   `gorm:"type:text" json:"review"`
}

func (Rating) TableName() string {
	return "ratings"
}
