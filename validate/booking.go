package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateBooking() fiber.Handler {
	return body[model.CreateBookingInput]()
}

func UpdateBookingStatus() fiber.Handler {
	return body[model.UpdateBookingStatusInput]()
}
