package model

import "time"

// swagger:model User
type User struct {
	BaseModel
	Email     string    `gorm:"size:100;unique;not null" json:"email"`
	Password  string    `gorm:"size:100;not null" json:"-"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Disabled  bool      `gorm:"default:false" json:"disabled"`
	LastLogin time.Time `gorm:"default:CURRENT_TIMESTAMP(3)" json:"last_login"`
}

func (User) TableName() string {
	return "users"
}

// Profile 用户公开资料，与登录账号分表存储
// swagger:model Profile
type Profile struct {
	UserID          uint      `gorm:"primaryKey" json:"id"`
	FirstName       string    `gorm:"size:50;not null" json:"first_name"`
	LastName        string    `gorm:"size:50;not null" json:"last_name"`
	Phone           string    `gorm:"size:20;not null" json:"phone"`
	Bio             string    `gorm:"type:text" json:"bio"`
	ProfileImageURL string    `gorm:"size:255" json:"profile_image_url"`
	Neighborhood    string    `gorm:"size:100" json:"neighborhood"`
	IsWalker        bool      `gorm:"default:false" json:"is_walker"`
	CreatedAt       time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Profile) TableName() string {
	return "profiles"
}
