package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateTable() fiber.Handler {
	return body[model.CreateTableInput]()
}

func EditTable() fiber.Handler {
	return body[model.EditTableInput]()
}
