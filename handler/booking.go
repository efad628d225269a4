package handler

import (
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// isUniqueViolation matches the postgres duplicate-key error raised when a
// concurrent insert loses the race against one of the partial unique indexes.
func isUniqueViolation(err error) bool {
	return err != nil && strings.Contains(err.Error(), "duplicate key value violates unique constraint")
}

func CreateBooking(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateBookingInput)
	db := database.DB

	// Staff may keep taking walk-in reservations while public booking is off.
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	isOperator := isAdmin || isManager || isStaff

	var setting model.Setting
	if err := db.First(&setting, 1).Error; err == nil && !setting.BookingEnabled && !isOperator {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "bookings are currently disabled", nil)
	}

	date, err := utils.ParseDate(input.Date)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if _, _, err := helper.ParseClock(input.Time); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}
	if utils.NormalizeDate(date.Time).Before(utils.Today().Time) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, "cannot book a past date", nil)
	}

	var table model.Table
	if err := db.Where("id = ? AND active = ?", input.TableID, true).First(&table).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "table not found", err)
	}
	if input.Guests > table.Capacity {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("table %d seats at most %d guests", table.Number, table.Capacity), nil)
	}

	if err := helper.CheckBookingConflict(db, table.ID, date, input.Time); err != nil {
		if helper.IsConflict(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, err.Error(), nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	customer, err := helper.FirstOrCreateCustomer(db, input.CustomerName, input.Email, input.Phone)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	preOrderStatus := constants.PreOrderSkipped
	if input.WithPreOrder {
		preOrderStatus = constants.PreOrderPending
	}

	booking := model.Booking{
		PublicCode:     helper.NewPublicCode(helper.BookingCodePrefix),
		CustomerID:     &customer.ID,
		TableID:        table.ID,
		Date:           date,
		Time:           input.Time,
		Guests:         input.Guests,
		Status:         constants.StatusPending,
		PreOrderStatus: preOrderStatus,
		CustomerName:   input.CustomerName,
		Phone:          input.Phone,
		Email:          input.Email,
	}

	if err := db.Create(&booking).Error; err != nil {
		// The partial unique index turns the check-then-insert race into a
		// rejected write; report it the same way as the read-side check.
		if isUniqueViolation(err) {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgTableAlreadyBooked, nil)
		}
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	booking.Table = table
	PublishOperation("booking.created", booking)

	return utils.SuccessResponse(c, fiber.StatusCreated, booking)
}

func GetBookings(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filterInput := new(model.FilterBookingInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Booking{}).Preload("Table").Preload("PreOrder").Preload("PreOrder.Items")

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
	if filterInput.TableID > 0 {
		condition = condition.Where("table_id = ?", filterInput.TableID)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var bookings []model.Booking
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&bookings).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       bookings,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

func GetBookingById(c *fiber.Ctx) error {
	bookingId := c.Locals("inputId").(int)

	var booking model.Booking
	if err := database.DB.Preload("Table").Preload("Customer").
		Preload("PreOrder").Preload("PreOrder.Items").
		First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// GetBookingByCode is the unauthenticated lookup used by the cancellation
// page. The contact email is masked so the code alone never reveals it.
func GetBookingByCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var booking model.Booking
	if err := database.DB.Preload("Table").
		Where("public_code = ?", code).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"publicCode":  booking.PublicCode,
		"tableNumber": booking.Table.Number,
		"date":        booking.Date.String(),
		"time":        booking.Time,
		"guests":      booking.Guests,
		"status":      booking.Status,
		"maskedEmail": utils.MaskEmail(booking.Email),
	})
}

// allowed booking transitions; REJECTED and CANCELLED are terminal
func bookingTransitionAllowed(from, to string) bool {
	switch from {
	case constants.StatusPending:
		return to == constants.StatusApproved || to == constants.StatusRejected || to == constants.StatusCancelled
	case constants.StatusApproved:
		return to == constants.StatusCancelled
	default:
		return false
	}
}

func UpdateBookingStatus(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	bookingId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.UpdateBookingStatusInput)
	db := database.DB

	// Fetch the prior record first: notifications only fire when the status
	// actually changes.
	var booking model.Booking
	if err := db.Preload("Table").First(&booking, bookingId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
	}

	if booking.Status == input.Status {
		return utils.SuccessResponse(c, fiber.StatusOK, booking)
	}
	if !bookingTransitionAllowed(booking.Status, input.Status) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest,
			fmt.Sprintf("cannot change status from %s to %s", booking.Status, input.Status), nil)
	}

	// Rejection cascades the pre-order exactly like cancellation does.
	if input.Status == constants.StatusCancelled || input.Status == constants.StatusRejected {
		if input.Status == constants.StatusCancelled {
			now := time.Now()
			booking.CancelledAt = &now
		}
		if err := detachBookingPreOrder(db, &booking); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
	}

	booking.Status = input.Status
	if err := db.Save(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if input.Status == constants.StatusApproved || input.Status == constants.StatusCancelled {
		notifyBookingStatus(booking)
	}
	PublishOperation("booking.status", booking)

	return utils.SuccessResponse(c, fiber.StatusOK, booking)
}

// detachBookingPreOrder deletes an attached pre-order and clears the back
// reference. Cascading is explicit, never left to the storage layer.
func detachBookingPreOrder(db *gorm.DB, booking *model.Booking) error {
	if booking.PreOrderID == nil {
		return nil
	}
	if err := deletePreOrder(db, *booking.PreOrderID); err != nil {
		return err
	}
	booking.PreOrderID = nil
	booking.PreOrder = nil
	booking.PreOrderStatus = constants.PreOrderSkipped
	return nil
}

func notifyBookingStatus(booking model.Booking) {
	data := utils.BookingStatusData{
		CustomerName: booking.CustomerName,
		BookingCode:  booking.PublicCode,
		TableNumber:  booking.Table.Number,
		Date:         booking.Date.String(),
		Time:         booking.Time,
		Guests:       booking.Guests,
		Status:       booking.Status,
		CancelLink:   fmt.Sprintf("%s/cancel/%s", frontendBase(), booking.PublicCode),
	}

	var attachments []utils.Attachment
	if booking.Status == constants.StatusApproved {
		qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 256)
		if err != nil {
			log.Printf("qr for booking %s: %v", booking.PublicCode, err)
		} else {
			attachments = append(attachments, utils.Attachment{
				Filename: fmt.Sprintf("booking_%s.png", booking.PublicCode),
				Content:  qrBytes,
			})
		}
	}

	utils.Dispatch(utils.EmailJob{
		To:          booking.Email,
		Subject:     fmt.Sprintf("Your reservation %s is %s", booking.PublicCode, booking.Status),
		Template:    "booking_status.html",
		Data:        data,
		Attachments: attachments,
	})
	notifyOperator(fmt.Sprintf("Booking %s is now %s", booking.PublicCode, booking.Status), []string{
		fmt.Sprintf("Table %d on %s at %s, %d guests", booking.Table.Number, booking.Date, booking.Time, booking.Guests),
		"Customer: " + booking.CustomerName,
	})
}

func GetBookingQRCode(c *fiber.Ctx) error {
	code := c.Params("code")

	var booking model.Booking
	if err := database.DB.Where("public_code = ?", code).First(&booking).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
	}

	qrBytes, err := utils.GenerateQRCode(booking.PublicCode, 256)
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	c.Set("Content-Type", "image/png")
	return c.Send(qrBytes)
}
