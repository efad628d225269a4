package handler

import (
	"errors"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

func CreateEvent(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateEventInput)
	db := database.DB

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if utils.NormalizeDate(date.Time).Before(utils.Today().Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cannot book a past date", nil)
	}
	slot := model.TimeSlot(input.TimeSlot)
	if !slot.Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	if err := helper.CheckEventConflict(db, date, slot, false); err != nil {
		if helper.IsConflict(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	event := model.Event{
		PublicCode:     helper.NewPublicCode(helper.EventCodePrefix),
		ContactName:    input.ContactName,
		Phone:          input.Phone,
		Email:          input.Email,
		Date:           date,
		TimeSlot:       slot,
		Guests:         input.Guests,
		SpecialRequest: input.SpecialRequest,
		Status:         constants.StatusPending,
	}

	if err := db.Create(&event).Error; err != nil {
		if isUniqueViolation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgEventSlotTaken, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	PublishOperation("event.created", event)
	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

// AdminCreateEvent is the administrative override path: only an approved
// collision blocks it, and the event is born approved with confirmations
// going out immediately.
func AdminCreateEvent(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	input := c.Locals("input").(model.CreateEventInput)
	db := database.DB

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	slot := model.TimeSlot(input.TimeSlot)

	if err := helper.CheckEventConflict(db, date, slot, true); err != nil {
		if helper.IsConflict(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	event := model.Event{
		PublicCode:     helper.NewPublicCode(helper.EventCodePrefix),
		ContactName:    input.ContactName,
		Phone:          input.Phone,
		Email:          input.Email,
		Date:           date,
		TimeSlot:       slot,
		Guests:         input.Guests,
		SpecialRequest: input.SpecialRequest,
		Status:         constants.StatusApproved,
	}

	if err := db.Create(&event).Error; err != nil {
		if isUniqueViolation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgEventSlotTaken, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notifyEventStatus(event)
	PublishOperation("event.created", event)
	return utils.SuccessResponse(c, fiber.StatusCreated, event)
}

// CheckAvailability answers "can this (date, slot) still take an event?"
// without mutating anything: event collision plus booked tables in the slot.
func CheckAvailability(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	slotStr := c.Query("slot")

	date, err := utils.ParseDate(dateStr)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	slot := model.TimeSlot(slotStr)
	if !slot.Valid() {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "unknown time slot", nil)
	}

	if err := helper.CheckSlotAvailability(database.DB, date, slot); err != nil {
		if helper.IsConflict(err) {
			return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
				"available": false,
				"reason":    err.Error(),
			})
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{"available": true})
}

func GetEvents(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filterInput := new(model.FilterEventInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Event{}).Preload("PreOrder").Preload("PreOrder.Items")

	if filterInput.Status != "" {
		condition = condition.Where("status = ?", filterInput.Status)
	}
	if filterInput.Date != "" {
		date, err := utils.ParseDate(filterInput.Date)
		if err != nil {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
		}
		condition = condition.Where("date = ?", date)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var events []model.Event
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&events).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       events,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetEventById(c *fiber.Ctx) error {
	eventId := c.Locals("inputId").(int)

	var event model.Event
	if err := database.DB.Preload("PreOrder").Preload("PreOrder.Items").
		First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func GetEventByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var event model.Event
	if err := database.DB.Where("public_code = ?", code).First(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicCode":  event.PublicCode,
		"date":        event.Date.String(),
		"timeSlot":    event.TimeSlot,
		"guests":      event.Guests,
		"status":      event.Status,
		"maskedEmail": utils.MaskEmail(event.Email),
	})
}

func eventTransitionAllowed(from, to string) bool {
	switch from {
	case constants.StatusPending:
		return to == constants.StatusApproved || to == constants.StatusRejected || to == constants.StatusCancelled
	case constants.StatusApproved:
		return to == constants.StatusCancelled
	default:
		return false
	}
}

func UpdateEventStatus(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	eventId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateEventStatusInput)
	db := database.DB

	var event model.Event
	if err := db.First(&event, eventId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
	}

	if event.Status == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, event)
	}
	if !eventTransitionAllowed(event.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("cannot change status from %s to %s", event.Status, input.Status), nil)
	}

	// Rejection cascades the pre-order exactly like cancellation does.
	if input.Status == constants.StatusCancelled || input.Status == constants.StatusRejected {
		if input.Status == constants.StatusCancelled {
			now := time.Now()
			event.CancelledAt = &now
		}
		if err := detachEventPreOrder(db, &event); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	event.Status = input.Status
	if err := db.Save(&event).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Status == constants.StatusApproved || input.Status == constants.StatusCancelled {
		notifyEventStatus(event)
	}
	PublishOperation("event.status", event)

	return utils.SuccessResponse(c, fiber.StatusOK, event)
}

func detachEventPreOrder(db *gorm.DB, event *model.Event) error {
	if event.PreOrderID == nil {
		return nil
	}
	if err := deletePreOrder(db, *event.PreOrderID); err != nil {
		return err
	}
	event.PreOrderID = nil
	event.PreOrder = nil
	return nil
}

func notifyEventStatus(event model.Event) {
	utils.Dispatch(utils.EmailJob{
		To:       event.Email,
		Subject:  fmt.Sprintf("Your private event %s is %s", event.PublicCode, event.Status),
		Template: "event_status.html",
		Data: utils.EventStatusData{
			ContactName: event.ContactName,
			EventCode:   event.PublicCode,
			Date:        event.Date.String(),
			TimeSlot:    string(event.TimeSlot),
			Guests:      event.Guests,
			Status:      event.Status,
		},
	})
	notifyOperator(fmt.Sprintf("Event %s is now %s", event.PublicCode, event.Status), []string{
		fmt.Sprintf("%s slot on %s, %d guests", event.TimeSlot, event.Date, event.Guests),
		"Contact: " + event.ContactName,
	})
}
