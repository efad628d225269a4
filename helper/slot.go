package helper

import (
	"fmt"
	"strconv"
	"strings"

	"restaurant_manager/model"
)

// The two fixed service windows. Hours are half-open: a 14:00 booking is
// outside the morning window, a 10:00 booking is inside it.
const (
	MorningStartHour = 10
	MorningEndHour   = 14
	EveningStartHour = 18
	EveningEndHour   = 22
)

// ParseClock splits "HH:MM" into its components.
func ParseClock(timeStr string) (hour, minute int, err error) {
	parts := strings.Split(timeStr, ":")
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid time %q, want HH:MM", timeStr)
	}
	hour, err = strconv.Atoi(parts[0])
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("invalid hour in %q", timeStr)
	}
	minute, err = strconv.Atoi(parts[1])
	if err != nil || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("invalid minute in %q", timeStr)
	}
	return hour, minute, nil
}

// SlotForTime maps a point-in-time booking onto the event window it falls in.
// Times outside both windows return false.
func SlotForTime(timeStr string) (model.TimeSlot, bool) {
	hour, _, err := ParseClock(timeStr)
	if err != nil {
		return "", false
	}
	switch {
	case hour >= MorningStartHour && hour < MorningEndHour:
		return model.SlotMorning, true
	case hour >= EveningStartHour && hour < EveningEndHour:
		return model.SlotEvening, true
	default:
		return "", false
	}
}

// TimeInSlot reports whether a booking time lies inside the given window.
func TimeInSlot(timeStr string, slot model.TimeSlot) bool {
	mapped, ok := SlotForTime(timeStr)
	return ok && mapped == slot
}
