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

func GetMenu(c *fiber.Ctx) error {
	filterInput := new(model.FilterMenuInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.MenuItem{}).Preload("Category")

	if filterInput.CategoryID > 0 {
		condition = condition.Where("category_id = ?", filterInput.CategoryID)
	}
	if filterInput.SearchKey != "" {
		condition = condition.Where("name ILIKE ?", "%"+filterInput.SearchKey+"%")
	}
	if filterInput.Available != nil {
		condition = condition.Where("available = ?", *filterInput.Available)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var items []model.MenuItem
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("name asc").Find(&items).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       items,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetMenuItemById(c *fiber.Ctx) error {
	itemId := c.Locals("inputId").(int)

	var item model.MenuItem
	if err := database.DB.Preload("Category").First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MsgItemNotFound, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func CreateMenuItem(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("input").(model.CreateMenuItemInput)
	db := database.DB

	var category model.Category
	if err := db.First(&category, input.CategoryID).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", err)
	}

	item := model.MenuItem{
		Name:        input.Name,
		Slug:        helper.GenerateUniqueMenuSlug(db, input.Name),
		Description: input.Description,
		Price:       input.Price,
		ImageUrl:    input.ImageUrl,
		Available:   true,
		CategoryID:  category.ID,
	}

	if err := db.Create(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusCreated, item)
}

func EditMenuItem(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	itemId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.EditMenuItemInput)
	db := database.DB

	var item model.MenuItem
	if err := db.First(&item, itemId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, constants.MsgItemNotFound, err)
	}

	if input.CategoryID != nil {
		var category model.Category
		if err := db.First(&category, *input.CategoryID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "category not found", err)
		}
	}

	if err := copier.CopyWithOption(&item, input, copier.Option{IgnoreEmpty: true}); err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	if input.Name != nil {
		item.Slug = helper.GenerateUniqueMenuSlug(db, *input.Name)
	}

	if err := db.Save(&item).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, item)
}

func DeleteMenuItems(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("deleteIds").(model.ArrayId)
	if err := database.DB.Delete(&model.MenuItem{}, input.IDs).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"deleted": len(input.IDs)})
}
