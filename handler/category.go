package handler

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

func GetCategories(c *fiber.Ctx) error {
	var categories []model.Category
	if err := database.DB.Preload("Items").Order("name asc").Find(&categories).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, categories)
}

func CreateCategory(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("input").(model.CreateCategoryInput)
	db := database.DB

	category := model.Category{
		Name:   input.Name,
		Slug:   helper.GenerateUniqueCategorySlug(db, input.Name),
		Active: true,
	}
	if err := db.Create(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, category)
}

func EditCategory(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	categoryId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditCategoryInput)
	db := database.DB

	var category model.Category
	if err := db.First(&category, categoryId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", err)
	}

	if input.Name != nil {
		category.Name = *input.Name
		category.Slug = helper.GenerateUniqueCategorySlug(db, *input.Name)
	}
	if input.Active != nil {
		category.Active = *input.Active
	}

	if err := db.Save(&category).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, category)
}

func DeleteCategories(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	db := database.DB

	var itemCount int64
	db.Model(&model.MenuItem{}).Where("category_id IN ?", input.IDs).Count(&itemCount)
	if itemCount > 0 {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "category still has menu items", nil)
	}

	if err := db.Delete(&model.Category{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
