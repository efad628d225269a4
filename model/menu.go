package model

type Category struct {
	DTO
	Name   string `gorm:"not null" json:"name"`
	Slug   string `gorm:"size:100;uniqueIndex" json:"slug"`
	Active bool   `gorm:"default:true" json:"active"`

	Items []MenuItem `gorm:"foreignKey:CategoryID" json:"items,omitempty"`
}

type MenuItem struct {
	DTO
	Name        string  `gorm:"not null" json:"name"`
	Slug        string  `gorm:"size:120;uniqueIndex" json:"slug"`
	Description string  `gorm:"type:text" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	ImageUrl    *string `json:"imageUrl"`
	Available   bool    `gorm:"default:true" json:"available"`

	CategoryID uint     `json:"categoryId"`
	Category   Category `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:CategoryID" json:"-"`
}

type CreateCategoryInput struct {
	Name string `json:"name" validate:"required"`
}

type EditCategoryInput struct {
	Name   *string `json:"name"`
	Active *bool   `json:"active"`
}

type CreateMenuItemInput struct {
	Name        string  `json:"name" validate:"required"`
	Description string  `json:"description"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	ImageUrl    *string `json:"imageUrl"`
	CategoryID  uint    `json:"categoryId" validate:"required,gt=0"`
}

type EditMenuItemInput struct {
	Name        *string  `json:"name"`
	Description *string  `json:"description"`
	Price       *float64 `json:"price" validate:"omitempty,gt=0"`
	ImageUrl    *string  `json:"imageUrl"`
	Available   *bool    `json:"available"`
	CategoryID  *uint    `json:"categoryId" validate:"omitempty,gt=0"`
}

type FilterMenuInput struct {
	Pagination
	CategoryID uint   `json:"categoryId" query:"categoryId" validate:"omitempty,gt=0"`
	SearchKey  string `json:"searchKey" query:"searchKey"`
	Available  *bool  `json:"available" query:"available"`
}
