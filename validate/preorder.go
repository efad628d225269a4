package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreatePreOrder() fiber.Handler {
	return body[model.CreatePreOrderInput]()
}

func UpdatePreOrderStatus() fiber.Handler {
	return body[model.UpdatePreOrderStatusInput]()
}
