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

func CreateFeedback(c *fiber.Ctx) error {
	input := c.Locals("input").(model.CreateFeedbackInput)

	feedback := model.Feedback{
		Name:    input.Name,
		Email:   input.Email,
		Rating:  input.Rating,
		Message: input.Message,
	}
	if err := database.DB.Create(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	notifyOperator("New feedback received", []string{
		feedback.Name,
		feedback.Message,
	})
	return utils.SuccessResponse(c, fiber.StatusCreated, feedback)
}

func GetFeedback(c *fiber.Ctx) error {
	_, isAdmin, isManager, isStaff := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager && !isStaff {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	filterInput := new(model.FilterFeedbackInput)
	if err := c.QueryParser(filterInput); err != nil {
		return utils.ErrorResponse(c, fiber.StatusBadRequest, constants.ERROR_INPUT, err)
	}

	db := database.DB
	condition := db.Model(&model.Feedback{})
	if filterInput.Rating > 0 {
		condition = condition.Where("rating = ?", filterInput.Rating)
	}

	var totalCount int64
	condition.Count(&totalCount)

	var feedbacks []model.Feedback
	condition = utils.ApplyPagination(condition, filterInput.Limit, filterInput.Page)
	if err := condition.Order("created_at desc").Find(&feedbacks).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	response := &model.ResponseCustom{
		Rows:       feedbacks,
		Limit:      filterInput.Limit,
		Page:       filterInput.Page,
		TotalCount: totalCount,
	}
	return utils.SuccessResponse(c, fiber.StatusOK, response)
}

// ReplyFeedback stores the reply and mails it to the customer when an email
// was left.
func ReplyFeedback(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not permission"))
	}

	feedbackId := c.Locals("inputId").(int)
	input := c.Locals("input").(model.ReplyFeedbackInput)
	db := database.DB

	var feedback model.Feedback
	if err := db.First(&feedback, feedbackId).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusNotFound, "feedback not found", err)
	}

	feedback.Reply = &input.Reply
	if err := db.Save(&feedback).Error; err != nil {
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, constants.ERROR_INTERNAL_ERROR, err)
	}

	if feedback.Email != "" {
		utils.Dispatch(utils.EmailJob{
			To:       feedback.Email,
			Subject:  "We read your feedback",
			Template: "operator_notice.html",
			Data: utils.OperatorNoticeData{
				Subject: "Thank you for your feedback, " + feedback.Name,
				Lines:   []string{input.Reply},
			},
		})
	}
	return utils.SuccessResponse(c, fiber.StatusOK, feedback)
}
