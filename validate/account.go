package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func CreateAccount() fiber.Handler {
	return body[model.CreateAccountInput]()
}

func EditAccount() fiber.Handler {
	return body[model.EditAccountInput]()
}

func AdminChangePassword() fiber.Handler {
	return body[model.AdminChangePassword]()
}
