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

func GetTables(c *fiber.Ctx) error {
	var tables []model.Table
	if err := database.DB.Order("number asc").Find(&tables).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, tables)
}

func CreateTable(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("input").(model.CreateTableInput)
	db := database.DB

	var existing int64
	db.Model(&model.Table{}).Where("number = ?", input.Number).Count(&existing)
	if existing > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "table number already exists", nil)
	}

	location := input.Location
	if location == "" {
		location = "INDOOR"
	}
	table := model.Table{
		Number:   input.Number,
		Capacity: input.Capacity,
		Location: location,
		Active:   true,
	}
	if err := db.Create(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, table)
}

func EditTable(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	tableId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditTableInput)
	db := database.DB

	var table model.Table
	if err := db.First(&table, tableId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "table not found", err)
	}

	if input.Number != nil && *input.Number != table.Number {
		var existing int64
		db.Model(&model.Table{}).Where("number = ? AND id <> ?", *input.Number, table.ID).Count(&existing)
		if existing > 0 {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "table number already exists", nil)
		}
	}

	if err := copier.CopyWithOption(&table, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Active != nil {
		table.Active = *input.Active
	}

	if err := db.Save(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, table)
}

func DeleteTables(c *fiber.Ctx) error {
	_, isAdmin, _, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	db := database.DB

	var liveBookings int64
	db.Model(&model.Booking{}).
		Where("table_id IN ? AND status IN ?", input.IDs,
			[]string{constants.StatusPending, constants.StatusApproved}).
		Count(&liveBookings)
	if liveBookings > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "table has live bookings", nil)
	}

	if err := db.Delete(&model.Table{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
