package model

type DogSize string

const (
	SizeSmall  DogSize = "small"
	SizeMedium DogSize = "medium"
	SizeLarge  DogSize = "large"
	SizeGiant  DogSize = "giant"
)

type VaccinationStatus string

const (
	VaccinationUpToDate      VaccinationStatus = "up_to_date"
	VaccinationNotUpToDate   VaccinationStatus = "not_up_to_date"
	VaccinationNotApplicable VaccinationStatus = "not_applicable"
)

// swagger:model Dog
type Dog struct {
	UUIDBase
	OwnerID     uint              `gorm:"index;not null" json:"owner_id"`
	Owner       Profile           `gorm:"foreignKey:OwnerID;references:UserID;constraint:false" json:"owner,omitempty"`
	Name        string            `gorm:"size:100;not null" json:"name"`
	Breed       string            `gorm:"size:100;not null" json:"breed"`
	Age         int               `gorm:"not null" json:"age"`
	Size        DogSize           `gorm:"type:enum('small','medium','large','giant');not null" json:"size"`
	Temperament []string          `gorm:"serializer:json;type:json" json:"temperament"`
	EnergyLevel int               `gorm:"not null" json:"energy_level"` // 1-5
	Bio         string            `gorm:"type:text" json:"bio"`
	ImageURLs   []string          `gorm:"serializer:json;type:json" json:"image_urls"`
	IsFixed     bool              `gorm:"not null" json:"is_fixed"`
	Vaccination VaccinationStatus `gorm:"column:vaccination_status;type:enum('up_to_date','not_up_to_date','not_applicable');default:'not_applicable'" json:"vaccination_status"`
}

func (Dog) TableName() string {
	return "dogs"
}
