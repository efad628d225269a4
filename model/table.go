package model

type Table struct {
	DTO
	Number   int    `gorm:"uniqueIndex;not null" json:"number"`
	Capacity int    `gorm:"not null" json:"capacity"`
	Location string `gorm:"size:50" json:"location"` // INDOOR, OUTDOOR, TERRACE
	Active   bool   `gorm:"default:true" json:"active"`
}

type CreateTableInput struct {
	Number   int    `json:"number" validate:"required,gt=0"`
	Capacity int    `json:"capacity" validate:"required,gt=0"`
	Location string `json:"location" validate:"omitempty,oneof=INDOOR OUTDOOR TERRACE"`
}

type EditTableInput struct {
	Number   *int    `json:"number" validate:"omitempty,gt=0"`
	Capacity *int    `json:"capacity" validate:"omitempty,gt=0"`
	Location *string `json:"location" validate:"omitempty,oneof=INDOOR OUTDOOR TERRACE"`
	Active   *bool   `json:"active"`
}
