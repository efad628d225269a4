package model

import (
	"time"

	"restaurant_manager/utils"
)

// TimeSlot is the closed set of private-event windows. Table bookings use a
// free "HH:MM" time instead and are joined to a slot by helper.SlotForTime.
type TimeSlot string

const (
	SlotMorning TimeSlot = "10:00-14:00"
	SlotEvening TimeSlot = "18:00-22:00"
)

func (s TimeSlot) Valid() bool {
	return s == SlotMorning || s == SlotEvening
}

type Event struct {
	DTO
	PublicCode string `gorm:"size:20;uniqueIndex" json:"publicCode"`

	ContactName string `gorm:"not null" json:"contactName"`
	Phone       string `gorm:"not null" json:"phone"`
	Email       string `gorm:"not null" json:"email"`

	Date           utils.CustomDate `gorm:"type:date;index" json:"date"`
	TimeSlot       TimeSlot         `gorm:"size:11;not null" json:"timeSlot"`
	Guests         int              `gorm:"not null" json:"guests"`
	SpecialRequest string           `gorm:"type:text" json:"specialRequest"`

	Status string `gorm:"size:20;not null;default:'PENDING'" json:"status"`

	OtpCode      *string    `gorm:"size:6" json:"-"`
	OtpExpiresAt *time.Time `json:"-"`

	PreOrderID *uint     `json:"preOrderId,omitempty"`
	PreOrder   *PreOrder `gorm:"foreignKey:PreOrderID" json:"preOrder,omitempty"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type CreateEventInput struct {
	ContactName    string `json:"contactName" validate:"required"`
	Phone          string `json:"phone" validate:"required"`
	Email          string `json:"email" validate:"required,email"`
	Date           string `json:"date" validate:"required"` // YYYY-MM-DD
	TimeSlot       string `json:"timeSlot" validate:"required,oneof=10:00-14:00 18:00-22:00"`
	Guests         int    `json:"guests" validate:"required,gt=0"`
	SpecialRequest string `json:"specialRequest"`
}

type UpdateEventStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED CANCELLED"`
}

type FilterEventInput struct {
	Pagination
	Status string `json:"status" query:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Date   string `json:"date" query:"date"`
}
