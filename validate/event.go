package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateEvent() fiber.Handler {
	return body[model.CreateEventInput]()
}

func UpdateEventStatus() fiber.Handler {
	return body[model.UpdateEventStatusInput]()
}
