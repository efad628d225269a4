package helper

import (
	"fmt"
	"log"
	"net/smtp"
	"os"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/jordan-wright/email"
)

type DailySummary struct {
	Date            string
	NewBookings     int64
	ApprovedEvents  int64
	CancelledCount  int64
	PreOrderRevenue float64
	FeedbackCount   int64
}

// BuildDailySummary aggregates yesterday's activity.
func BuildDailySummary(day time.Time) DailySummary {
	db := database.DB
	dayStart := utils.NormalizeDate(day)
	dayEnd := dayStart.AddDate(0, 0, 1)

	summary := DailySummary{Date: dayStart.Format("2006-01-02")}

	db.Model(&model.Booking{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&summary.NewBookings)
	db.Model(&model.Event{}).
		Where("status = ? AND updated_at >= ? AND updated_at < ?", constants.StatusApproved, dayStart, dayEnd).
		Count(&summary.ApprovedEvents)
	db.Model(&model.Booking{}).
		Where("status = ? AND updated_at >= ? AND updated_at < ?", constants.StatusCancelled, dayStart, dayEnd).
		Count(&summary.CancelledCount)
	db.Model(&model.PreOrder{}).
		Where("status = ? AND created_at >= ? AND created_at < ?", constants.StatusApproved, dayStart, dayEnd).
		Select("COALESCE(SUM(grand_total), 0)").
		Scan(&summary.PreOrderRevenue)
	db.Model(&model.Feedback{}).
		Where("created_at >= ? AND created_at < ?", dayStart, dayEnd).
		Count(&summary.FeedbackCount)

	return summary
}

// SendDailySummary mails yesterday's numbers to the operator address.
func SendDailySummary() {
	to := os.Getenv("OPERATOR_EMAIL")
	if to == "" {
		return
	}

	summary := BuildDailySummary(time.Now().AddDate(0, 0, -1))

	e := email.NewEmail()
	e.From = os.Getenv("SMTP_FROM")
	e.To = []string{to}
	e.Subject = "Daily summary " + summary.Date
	e.Text = []byte(fmt.Sprintf(
		"Bookings created: %d\nEvents approved: %d\nCancellations: %d\nPre-order revenue: %.2f\nFeedback received: %d\n",
		summary.NewBookings, summary.ApprovedEvents, summary.CancelledCount,
		summary.PreOrderRevenue, summary.FeedbackCount,
	))

	addr := fmt.Sprintf("%s:%s", os.Getenv("SMTP_HOST"), os.Getenv("SMTP_PORT"))
	auth := smtp.PlainAuth("", os.Getenv("SMTP_USERNAME"), os.Getenv("SMTP_PASSWORD"), os.Getenv("SMTP_HOST"))
	if err := e.Send(addr, auth); err != nil {
		log.Printf("daily summary mail failed: %v", err)
	}
}
