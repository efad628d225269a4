package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateMenuItem() fiber.Handler {
	return body[model.CreateMenuItemInput]()
}

func EditMenuItem() fiber.Handler {
	return body[model.EditMenuItemInput]()
}

func CreateCategory() fiber.Handler {
	return body[model.CreateCategoryInput]()
}

func EditCategory() fiber.Handler {
	return body[model.EditCategoryInput]()
}
