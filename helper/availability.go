package helper

import (
	"errors"

	"restaurant_manager/constants"
	"restaurant_manager/model"
	"restaurant_manager/utils"

	"gorm.io/gorm"
)

var (
	ErrSlotReserved   = errors.New(constants.MsgSlotReservedForEvent)
	ErrTableBooked    = errors.New(constants.MsgTableAlreadyBooked)
	ErrEventSlotTaken = errors.New(constants.MsgEventSlotTaken)
	ErrDaySaturated   = errors.New(constants.MsgDayFullyBooked)
	ErrSlotHasTables  = errors.New(constants.MsgTablesBookedInSlot)
)

// IsConflict reports whether err is one of the collision sentinels above, as
// opposed to a failed query. Handlers map conflicts to 400 and everything
// else to 500.
func IsConflict(err error) bool {
	return errors.Is(err, ErrSlotReserved) ||
		errors.Is(err, ErrTableBooked) ||
		errors.Is(err, ErrEventSlotTaken) ||
		errors.Is(err, ErrDaySaturated) ||
		errors.Is(err, ErrSlotHasTables)
}

// CheckBookingConflict decides whether a table booking may be created.
// The checks are read-only; the partial unique index created at migrate time
// backstops the race between this read and the insert.
func CheckBookingConflict(db *gorm.DB, tableID uint, date utils.CustomDate, timeStr string) error {
	if slot, ok := SlotForTime(timeStr); ok {
		var events int64
		if err := db.Model(&model.Event{}).
			Where("date = ? AND time_slot = ? AND status = ?", date, slot, constants.StatusApproved).
			Count(&events).Error; err != nil {
			return err
		}
		if events > 0 {
			return ErrSlotReserved
		}
	}

	var bookings int64
	if err := db.Model(&model.Booking{}).
		Where("table_id = ? AND date = ? AND time = ? AND status <> ?", tableID, date, timeStr, constants.StatusCancelled).
		Count(&bookings).Error; err != nil {
		return err
	}
	if bookings > 0 {
		return ErrTableBooked
	}
	return nil
}

// DaySaturated applies the whole-day heuristic: once the number of distinct
// tables with live bookings reaches twice the table count, the day is treated
// as fully booked for events. Heuristic carried over from the original
// operation (it assumes two seatings per table), not exact capacity math.
func DaySaturated(distinctTablesBooked, totalTables int64) bool {
	if totalTables == 0 {
		return false
	}
	return distinctTablesBooked >= 2*totalTables
}

// CheckEventConflict decides whether a private event may be created for
// (date, slot). adminOverride grants admins precedence over pending requests:
// only an approved event blocks them, and the table heuristics are skipped
// by the caller.
func CheckEventConflict(db *gorm.DB, date utils.CustomDate, slot model.TimeSlot, adminOverride bool) error {
	statuses := []string{constants.StatusPending, constants.StatusApproved}
	if adminOverride {
		statuses = []string{constants.StatusApproved}
	}

	var events int64
	if err := db.Model(&model.Event{}).
		Where("date = ? AND time_slot = ? AND status IN ?", date, slot, statuses).
		Count(&events).Error; err != nil {
		return err
	}
	if events > 0 {
		return ErrEventSlotTaken
	}

	if adminOverride {
		return nil
	}

	var distinctTables int64
	if err := db.Model(&model.Booking{}).
		Where("date = ? AND status <> ?", date, constants.StatusCancelled).
		Distinct("table_id").
		Count(&distinctTables).Error; err != nil {
		return err
	}

	var totalTables int64
	if err := db.Model(&model.Table{}).Where("active = ?", true).Count(&totalTables).Error; err != nil {
		return err
	}

	if DaySaturated(distinctTables, totalTables) {
		return ErrDaySaturated
	}

	if n, err := countBookingsInSlot(db, date, slot); err != nil {
		return err
	} else if n > 0 {
		return ErrSlotHasTables
	}
	return nil
}

// CheckSlotAvailability is the read-only variant behind the availability
// endpoint: event collision plus booked tables in the slot, without the
// whole-day heuristic.
func CheckSlotAvailability(db *gorm.DB, date utils.CustomDate, slot model.TimeSlot) error {
	var events int64
	if err := db.Model(&model.Event{}).
		Where("date = ? AND time_slot = ? AND status IN ?", date, slot,
			[]string{constants.StatusPending, constants.StatusApproved}).
		Count(&events).Error; err != nil {
		return err
	}
	if events > 0 {
		return ErrEventSlotTaken
	}

	if n, err := countBookingsInSlot(db, date, slot); err != nil {
		return err
	} else if n > 0 {
		return ErrSlotHasTables
	}
	return nil
}

// countBookingsInSlot filters the day's live bookings to those whose time
// falls inside the window. Times are minutes-granular strings, so the
// falls-within test runs in Go rather than SQL.
func countBookingsInSlot(db *gorm.DB, date utils.CustomDate, slot model.TimeSlot) (int, error) {
	var bookings []model.Booking
	if err := db.Select("time").
		Where("date = ? AND status <> ?", date, constants.StatusCancelled).
		Find(&bookings).Error; err != nil {
		return 0, err
	}

	count := 0
	for _, b := range bookings {
		if TimeInSlot(b.Time, slot) {
			count++
		}
	}
	return count, nil
}
