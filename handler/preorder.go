package handler

import (
	"errors"
	"fmt"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// CreatePreOrder builds the ledger entry for a booking or event. Every line
// item must resolve to a menu entry or the whole operation fails; prices are
// snapshotted at creation time.
func CreatePreOrder(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreatePreOrderInput)
	db := database.DB

	var parent model.PreOrderParent
	var booking model.Booking
	var event model.Event
	switch input.ParentType {
	case constants.ParentTable:
		if err := db.First(&booking, input.ParentID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
		}
		if booking.PreOrderID != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "booking already has a pre-order", nil)
		}
		parent = model.BookingParent(booking.ID)
	case constants.ParentEvent:
		if err := db.First(&event, input.ParentID).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
		}
		if event.PreOrderID != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "event already has a pre-order", nil)
		}
		parent = model.EventParent(event.ID)
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	items := make([]model.PreOrderItem, 0, len(input.Items))
	for _, line := range input.Items {
		var menuItem model.MenuItem
		if err := db.Where("id = ? AND available = ?", line.MenuItemID, true).First(&menuItem).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgItemNotFound, err)
		}
		items = append(items, model.PreOrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Price:      menuItem.Price,
			Quantity:   line.Quantity,
		})
	}

	subtotal, tax, grandTotal, items := helper.ComputeTotals(items)

	preOrder := model.PreOrder{
		PublicCode: helper.NewPublicCode(helper.PreOrderCodePrefix),
		Parent:     parent,
		Items:      items,
		Subtotal:   subtotal,
		Tax:        tax,
		GrandTotal: grandTotal,
		Status:     constants.StatusPending,
	}

	if err := db.Create(&preOrder).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	// Write the ledger id back onto the parent. No compensation if this
	// second step fails; the pre-order stays queryable by parent reference.
	if parent.IsBooking() {
		booking.PreOrderID = &preOrder.ID
		booking.PreOrderStatus = constants.PreOrderCompleted
		booking.TotalAmount = grandTotal
		if err := db.Save(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	} else {
		event.PreOrderID = &preOrder.ID
		if err := db.Save(&event).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	PublishOperation("preorder.created", preOrder)
	return utils.SuccessResponse(c, fiber.StatusCreated, preOrder)
}

func GetPreOrderById(c *fiber.Ctx) error {
	preOrderId := c.Locals("inputId").(int)

	var preOrder model.PreOrder
	if err := database.DB.Preload("Items").First(&preOrder, preOrderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "pre-order not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, preOrder)
}

func GetPreOrders(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	pagination := new(model.Pagination)
	if err := c.QueryParser(pagination); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.PreOrder{}).Preload("Items")
	if status := c.Query("status"); status != "" {
		condition = condition.Where("status = ?", status)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var preOrders []model.PreOrder
	condition = utils.ApplyPagination(condition, pagination.Limit, pagination.Page)
	if err := condition.Order("created_at desc").Find(&preOrders).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       preOrders,
		Limit:      pagination.Limit,
		Page:       pagination.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// UpdatePreOrderStatus advances the ledger entry independently of its parent:
// a pre-order can be approved while the booking is still pending.
func UpdatePreOrderStatus(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	preOrderId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdatePreOrderStatusInput)
	db := database.DB

	var preOrder model.PreOrder
	if err := db.Preload("Items").First(&preOrder, preOrderId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "pre-order not found", err)
	}

	if preOrder.Status == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, preOrder)
	}

	preOrder.Status = input.Status
	if err := db.Save(&preOrder).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishOperation("preorder.status", preOrder)
	return utils.SuccessResponse(c, fiber.StatusOK, preOrder)
}

// deletePreOrder removes a ledger entry and its lines. Used by every
// cancellation/rejection cascade.
func deletePreOrder(db *gorm.DB, preOrderID uint) error {
	if err := db.Where("pre_order_id = ?", preOrderID).Delete(&model.PreOrderItem{}).Error; err != nil {
		return fmt.Errorf("delete pre-order items: %w", err)
	}
	if err := db.Delete(&model.PreOrder{}, preOrderID).Error; err != nil {
		return fmt.Errorf("delete pre-order: %w", err)
	}
	return nil
}
