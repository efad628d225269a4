package model

import (
	"time"

	"restaurant_manager/utils"
)

type Booking struct {
	DTO
	PublicCode string    `gorm:"size:20;uniqueIndex" json:"publicCode"`
	CustomerID *uint     `json:"customerId,omitempty"`
	Customer   *Customer `json:"customer,omitempty"`
	TableID    uint      `json:"tableId"`
	Table      Table     `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;foreignKey:TableID" json:"table"`

	Date   utils.CustomDate `gorm:"type:date;index" json:"date"`
	Time   string           `gorm:"size:5;not null" json:"time"` // "HH:MM"
	Guests int              `gorm:"not null" json:"guests"`

	Status      string  `gorm:"size:20;not null;default:'PENDING'" json:"status"`
	TotalAmount float64 `json:"totalAmount"`

	// Self-service cancellation code, cleared once used
	OtpCode      *string    `gorm:"size:6" json:"-"`
	OtpExpiresAt *time.Time `json:"-"`

	PreOrderID     *uint     `json:"preOrderId,omitempty"`
	PreOrder       *PreOrder `gorm:"foreignKey:PreOrderID" json:"preOrder,omitempty"`
	PreOrderStatus string    `gorm:"size:20;default:'SKIPPED'" json:"preOrderStatus"`

	CustomerName string `json:"customerName"`
	Phone        string `json:"phone"`
	Email        string `json:"email"`

	CancelledAt *time.Time `json:"cancelledAt,omitempty"`
}

type CreateBookingInput struct {
	TableID      uint   `json:"tableId" validate:"required,gt=0"`
	Date         string `json:"date" validate:"required"` // YYYY-MM-DD
	Time         string `json:"time" validate:"required"` // HH:MM
	Guests       int    `json:"guests" validate:"required,gt=0"`
	CustomerName string `json:"customerName" validate:"required"`
	Phone        string `json:"phone" validate:"required"`
	Email        string `json:"email" validate:"required,email"`
	WithPreOrder bool   `json:"withPreOrder"`
}

type UpdateBookingStatusInput struct {
	Status string `json:"status" validate:"required,oneof=PENDING APPROVED REJECTED CANCELLED"`
}

type FilterBookingInput struct {
	Pagination
	Status  string `json:"status" query:"status" validate:"omitempty,oneof=PENDING APPROVED REJECTED CANCELLED"`
	Date    string `json:"date" query:"date"`
	TableID uint   `json:"tableId" query:"tableId" validate:"omitempty,gt=0"`
}
