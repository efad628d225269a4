package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateFeedback() fiber.Handler {
	return body[model.CreateFeedbackInput]()
}

func ReplyFeedback() fiber.Handler {
	return body[model.ReplyFeedbackInput]()
}
