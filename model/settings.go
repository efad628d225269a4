package model

// Setting is a singleton row (id=1), seeded at migrate time.
type Setting struct {
	DTO
	RestaurantName string `json:"restaurantName"`
	ContactEmail   string `json:"contactEmail"`
	ContactPhone   string `json:"contactPhone"`
	Address        string `json:"address"`
	OpeningHours   string `json:"openingHours"`
	BookingEnabled bool   `gorm:"default:true" json:"bookingEnabled"`
}

type UpdateSettingInput struct {
	RestaurantName *string `json:"restaurantName"`
	ContactEmail   *string `json:"contactEmail" validate:"omitempty,email"`
	ContactPhone   *string `json:"contactPhone"`
	Address        *string `json:"address"`
	OpeningHours   *string `json:"openingHours"`
	BookingEnabled *bool   `json:"bookingEnabled"`
}
