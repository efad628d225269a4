package validate

import (
	"restaurant_manager/model"

	"github.com/gofiber/fiber/v2"
)

func OtpRequest() fiber.Handler {
	return body[model.OtpRequestInput]()
}

func OtpVerify() fiber.Handler {
	return body[model.OtpVerifyInput]()
}
