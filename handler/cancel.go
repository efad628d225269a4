package handler

import (
	"context"
	"errors"
	"fmt"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

// RequestCancellationOtp issues a 10-minute code to the contact email of a
// live booking or event. The response only ever carries the masked address.
func RequestCancellationOtp(c *fiber.Ctx) error {
	input := c.Locals("input").(model.OtpRequestInput)
	return issueOtp(c, input.Code, input.Type, false)
}

// ResendCancellationOtp re-issues a fresh code, throttled per entity so the
// mailbox is not flooded.
func ResendCancellationOtp(c *fiber.Ctx) error {
	input := c.Locals("input").(model.OtpRequestInput)
	return issueOtp(c, input.Code, input.Type, true)
}

func issueOtp(c *fiber.Ctx, publicCode, parentType string, isResend bool) error {
	db := database.DB

	cooldownKey := "otp:cooldown:" + publicCode
	if database.Redis != nil && isResend {
		if n, err := database.Redis.Exists(context.Background(), cooldownKey).Result(); err == nil && n > 0 {
			return utils.ErrorResponse(c, fiber.StatusTooManyRequests, "please wait before requesting another code", nil)
		}
	}

	code, err := utils.GenerateOtp()
	if err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}
	expiresAt := time.Now().Add(constants.OtpTTL)

	var email, name string
	switch parentType {
	case constants.ParentTable:
		var booking model.Booking
		if err := db.Where("public_code = ?", publicCode).First(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
		}
		if booking.Status != constants.StatusPending && booking.Status != constants.StatusApproved {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "booking can no longer be cancelled", nil)
		}
		booking.OtpCode = &code
		booking.OtpExpiresAt = &expiresAt
		if err := db.Save(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		email, name = booking.Email, booking.CustomerName
	case constants.ParentEvent:
		var event model.Event
		if err := db.Where("public_code = ?", publicCode).First(&event).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
		}
		if event.Status != constants.StatusPending && event.Status != constants.StatusApproved {
			return utils.ErrorResponse(c, fiber.StatusBadRequest, "event can no longer be cancelled", nil)
		}
		event.OtpCode = &code
		event.OtpExpiresAt = &expiresAt
		if err := db.Save(&event).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		email, name = event.Email, event.ContactName
	default:
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
	}

	// Start the cooldown only once a code was actually stored; a lookup for
	// an unknown code must not burn the window for the real one.
	if database.Redis != nil {
		database.Redis.Set(context.Background(), cooldownKey, 1, constants.OtpResendCooldown)
	}

	utils.Dispatch(utils.EmailJob{
		To:       email,
		Subject:  "Your cancellation code",
		Template: "otp_code.html",
		Data: utils.OtpData{
			Name:    name,
			Code:    code,
			Minutes: int(constants.OtpTTL.Minutes()),
		},
	})

	return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
		"message":     "a cancellation code was sent to your email",
		"maskedEmail": utils.MaskEmail(email),
		"validFor":    fmt.Sprintf("%d minutes", int(constants.OtpTTL.Minutes())),
	})
}

// VerifyCancellationOtp checks the submitted code and, on success, cancels
// the entity, clears the code, cascades the pre-order and confirms by mail.
func VerifyCancellationOtp(c *fiber.Ctx) error {
	input := c.Locals("input").(model.OtpVerifyInput)
	db := database.DB
	now := time.Now()

	switch input.Type {
	case constants.ParentTable:
		var booking model.Booking
		if err := db.Preload("Table").Where("public_code = ?", input.Code).First(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "booking not found", err)
		}
		if err := utils.VerifyOtp(booking.OtpCode, booking.OtpExpiresAt, input.Otp, now); err != nil {
			return otpErrorResponse(c, err)
		}

		booking.OtpCode = nil
		booking.OtpExpiresAt = nil
		booking.Status = constants.StatusCancelled
		booking.CancelledAt = &now
		if err := detachBookingPreOrder(db, &booking); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if err := db.Save(&booking).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		notifyCancellation(booking.Email, booking.CustomerName, booking.PublicCode, "reservation")
		PublishOperation("booking.status", booking)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message":    "booking cancelled",
			"publicCode": booking.PublicCode,
		})

	case constants.ParentEvent:
		var event model.Event
		if err := db.Where("public_code = ?", input.Code).First(&event).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusNotFound, "event not found", err)
		}
		if err := utils.VerifyOtp(event.OtpCode, event.OtpExpiresAt, input.Otp, now); err != nil {
			return otpErrorResponse(c, err)
		}

		event.OtpCode = nil
		event.OtpExpiresAt = nil
		event.Status = constants.StatusCancelled
		event.CancelledAt = &now
		if err := detachEventPreOrder(db, &event); err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}
		if err := db.Save(&event).Error; err != nil {
			return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
		}

		notifyCancellation(event.Email, event.ContactName, event.PublicCode, "private event")
		PublishOperation("event.status", event)
		return utils.SuccessResponse(c, fiber.StatusOK, fiber.Map{
			"message":    "event cancelled",
			"publicCode": event.PublicCode,
		})
	}

	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, nil)
}

func otpErrorResponse(c *fiber.Ctx, err error) error {
	if errors.Is(err, utils.ErrExpiredOtp) {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgExpiredOtp, nil)
	}
	return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.MsgInvalidOtp, nil)
}

func notifyCancellation(email, name, code, kind string) {
	utils.Dispatch(utils.EmailJob{
		To:       email,
		Subject:  fmt.Sprintf("Your %s %s has been cancelled", kind, code),
		Template: "cancellation_confirmed.html",
		Data:     utils.CancellationData{Name: name, Code: code, Kind: kind},
	})
	notifyOperator(fmt.Sprintf("%s %s cancelled by customer", kind, code), nil)
}
