package constants

import "time"

// Roles
const (
	ROLE_ADMIN   = "ADMIN"
	ROLE_MANAGER = "MANAGER"
	ROLE_STAFF   = "STAFF"
)

// Booking / event statuses
const (
	StatusPending   = "PENDING"
	StatusApproved  = "APPROVED"
	StatusRejected  = "REJECTED"
	StatusCancelled = "CANCELLED"
)

// Pre-order sub-status on a booking
const (
	PreOrderPending   = "PENDING"
	PreOrderCompleted = "COMPLETED"
	PreOrderSkipped   = "SKIPPED"
)

// Pre-order parent kinds
const (
	ParentTable = "TABLE"
	ParentEvent = "EVENT"
)

// Ledger
const (
	TaxRate = 0.05
)

// OTP
const (
	OtpTTL            = 10 * time.Minute
	OtpResendCooldown = 60 * time.Second
)

// Error / message constants
const (
	NOT_ADMIN                = "NOT_ADMIN"
	ERROR_INPUT              = "ERROR_INPUT"
	ERROR_INTERNAL_ERROR     = "ERROR_INTERNAL_ERROR"
	DATA_INPUT_IS_NOT_NUMBER = "DATA_INPUT_IS_NOT_NUMBER"

	MsgSlotReservedForEvent = "slot reserved for private event"
	MsgTableAlreadyBooked   = "table already booked for selected date and time"
	MsgEventSlotTaken       = "an event already occupies this date and slot"
	MsgTablesBookedInSlot   = "tables already booked for this time"
	MsgDayFullyBooked       = "restaurant is fully booked for this date"
	MsgItemNotFound         = "item not found"
	MsgInvalidOtp           = "invalid code"
	MsgExpiredOtp           = "code expired, please request a new one"
)
