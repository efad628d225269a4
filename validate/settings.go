package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func UpdateSettings() fiber.Handler {
	return body[model.UpdateSettingInput]()
}
