package helper

import (
	"log"
	"time"

	"restaurant_manager/database"
	"restaurant_manager/model"

	"github.com/go-co-op/gocron/v2"
	"github.com/robfig/cron/v3"
)

var (
	otpSweeper      *cron.Cron
	reportScheduler gocron.Scheduler
)

// StartOtpSweep clears expired cancellation codes every 10 minutes so a stale
// code cannot linger on an entity indefinitely.
func StartOtpSweep() {
	otpSweeper = cron.New(cron.WithChain(
		cron.SkipIfStillRunning(cron.DefaultLogger),
	))

	_, err := otpSweeper.AddFunc("*/10 * * * *", sweepExpiredOtps)
	if err != nil {
		log.Printf("failed to start otp sweep: %v", err)
		return
	}

	otpSweeper.Start()
	log.Println("OTP sweep started (every 10 minutes)")
}

func sweepExpiredOtps() {
	now := time.Now()

	result := database.DB.Model(&model.Booking{}).
		Where("otp_expires_at IS NOT NULL AND otp_expires_at < ?", now).
		Updates(map[string]interface{}{"otp_code": nil, "otp_expires_at": nil})
	if result.Error != nil {
		log.Printf("otp sweep (bookings): %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("cleared %d expired booking codes", result.RowsAffected)
	}

	result = database.DB.Model(&model.Event{}).
		Where("otp_expires_at IS NOT NULL AND otp_expires_at < ?", now).
		Updates(map[string]interface{}{"otp_code": nil, "otp_expires_at": nil})
	if result.Error != nil {
		log.Printf("otp sweep (events): %v", result.Error)
	} else if result.RowsAffected > 0 {
		log.Printf("cleared %d expired event codes", result.RowsAffected)
	}
}

func StopOtpSweep() {
	if otpSweeper != nil {
		otpSweeper.Stop()
	}
}

// StartDailyReportScheduler emails the operator a summary of the previous day
// shortly after midnight.
func StartDailyReportScheduler() {
	s, err := gocron.NewScheduler()
	if err != nil {
		log.Fatal(err)
	}

	reportScheduler = s

	_, err = s.NewJob(
		gocron.DailyJob(
			1,
			gocron.NewAtTimes(
				gocron.NewAtTime(0, 5, 0),
			),
		),
		gocron.NewTask(SendDailySummary),
	)
	if err != nil {
		log.Fatal(err)
	}

	s.Start()
	log.Println("Daily report scheduler started (00:05)")
}

func StopDailyReportScheduler() {
	if reportScheduler != nil {
		_ = reportScheduler.Shutdown()
	}
}
