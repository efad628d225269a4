package handler

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"restaurant_manager/constants"
	"restaurant_manager/database"
	"restaurant_manager/helper"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"github.com/gofiber/fiber/v2"
)

const dashboardCacheKey = "dashboard:stats"

type DashboardStats struct {
	TablesTotal     int64 `json:"tablesTotal"`
	MenuItemsTotal  int64 `json:"menuItemsTotal"`
	CustomersTotal  int64 `json:"customersTotal"`
	PendingBookings int64 `json:"pendingBookings"`
	PendingEvents   int64 `json:"pendingEvents"`

	TodayBookings int64   `json:"todayBookings"`
	TodayEvents   int64   `json:"todayEvents"`
	TodayRevenue  float64 `json:"todayRevenue"`

	BookingsGrowth float64 `json:"bookingsGrowth"` // %
	RevenueGrowth  float64 `json:"revenueGrowth"`  // %
}

func GetDashboardStats(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	// Snapshot is cached briefly; the dashboard polls.
	if database.Redis != nil {
		if cached, err := database.Redis.Get(context.Background(), dashboardCacheKey).Result(); err == nil {
			var stats DashboardStats
			if json.Unmarshal([]byte(cached), &stats) == nil {
				return utils.SuccessResponse(c, fiber.StatusOK, stats)
			}
		}
	}

	db := database.DB
	var stats DashboardStats

	today := time.Now()
	todayStart := utils.NormalizeDate(today)
	todayEnd := todayStart.AddDate(0, 0, 1)
	yesterdayStart := todayStart.AddDate(0, 0, -1)

	db.Model(&model.Table{}).Where("active = ?", true).Count(&stats.TablesTotal)
	db.Model(&model.MenuItem{}).Count(&stats.MenuItemsTotal)
	db.Model(&model.Customer{}).Count(&stats.CustomersTotal)
	db.Model(&model.Booking{}).Where("status = ?", constants.StatusPending).Count(&stats.PendingBookings)
	db.Model(&model.Event{}).Where("status = ?", constants.StatusPending).Count(&stats.PendingEvents)

	db.Model(&model.Booking{}).
		Where("date = ? AND status <> ?", utils.CustomDate{Time: todayStart}, constants.StatusCancelled).
		Count(&stats.TodayBookings)
	db.Model(&model.Event{}).
		Where("date = ? AND status IN ?", utils.CustomDate{Time: todayStart},
			[]string{constants.StatusPending, constants.StatusApproved}).
		Count(&stats.TodayEvents)

	db.Raw(`
        SELECT COALESCE(SUM(grand_total), 0)
        FROM pre_orders
        WHERE status = 'APPROVED'
          AND created_at >= ? AND created_at < ?
    `, todayStart, todayEnd).Scan(&stats.TodayRevenue)

	var yesterdayBookings int64
	var yesterdayRevenue float64
	db.Model(&model.Booking{}).
		Where("date = ? AND status <> ?", utils.CustomDate{Time: yesterdayStart}, constants.StatusCancelled).
		Count(&yesterdayBookings)
	db.Raw(`
        SELECT COALESCE(SUM(grand_total), 0)
        FROM pre_orders
        WHERE status = 'APPROVED'
          AND created_at >= ? AND created_at < ?
    `, yesterdayStart, todayStart).Scan(&yesterdayRevenue)

	stats.BookingsGrowth = utils.CalculateGrowth(float64(stats.TodayBookings), float64(yesterdayBookings))
	stats.RevenueGrowth = utils.CalculateGrowth(stats.TodayRevenue, yesterdayRevenue)

	if database.Redis != nil {
		if payload, err := json.Marshal(stats); err == nil {
			database.Redis.Set(context.Background(), dashboardCacheKey, payload, 60*time.Second)
		}
	}

	return utils.SuccessResponse(c, fiber.StatusOK, stats)
}

// GetWeeklyReport returns a 7-day series of booking counts and approved
// pre-order revenue, newest day last.
func GetWeeklyReport(c *fiber.Ctx) error {
	_, isAdmin, isManager, _ := helper.GetInfoAccountFromToken(c)
	if !isAdmin && !isManager {
		return utils.ErrorResponse(c, fiber.StatusForbidden, constants.NOT_ADMIN, errors.New("not admin"))
	}

	type DayPoint struct {
		Date     string  `json:"date"`
		Bookings int64   `json:"bookings"`
		Events   int64   `json:"events"`
		Revenue  float64 `json:"revenue"`
	}

	db := database.DB
	days := make([]DayPoint, 0, 7)
	todayStart := utils.NormalizeDate(time.Now())

	for offset := 6; offset >= 0; offset-- {
		dayStart := todayStart.AddDate(0, 0, -offset)
		dayEnd := dayStart.AddDate(0, 0, 1)
		point := DayPoint{Date: dayStart.Format("2006-01-02")}

		db.Model(&model.Booking{}).
			Where("date = ? AND status <> ?", utils.CustomDate{Time: dayStart}, constants.StatusCancelled).
			Count(&point.Bookings)
		db.Model(&model.Event{}).
			Where("date = ? AND status = ?", utils.CustomDate{Time: dayStart}, constants.StatusApproved).
			Count(&point.Events)
		db.Raw(`
            SELECT COALESCE(SUM(grand_total), 0)
            FROM pre_orders
            WHERE status = 'APPROVED'
              AND created_at >= ? AND created_at < ?
        `, dayStart, dayEnd).Scan(&point.Revenue)

		days = append(days, point)
	}

	return utils.SuccessResponse(c, fiber.StatusOK, days)
}
