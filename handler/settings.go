package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/copier"
)

func GetSettings(c *fiber.Ctx) error {
	var setting model.Setting
	if err := database.DB.First(&setting, 1).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "settings not found", err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}

func UpdateSettings(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	input := c.Locals("input").(model.UpdateSettingInput)
	db := database.DB

	var setting model.Setting
	if err := db.First(&setting, 1).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "settings not found", err)
	}

	if err := copier.CopyWithOption(&setting, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.BookingEnabled != nil {
		setting.BookingEnabled = *input.BookingEnabled
	}

	if err := db.Save(&setting).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, setting)
}
