// Package schedule decides which habits are due on a given calendar day
// based on their configured frequency.
package schedule

import (
	"time"

	"github.com/kavocado/bloom/internal/models"
)

// DueOn reports whether a habit is due on the given day.
//
// Daily habits are always due. Weekly habits are due on the weekday they
// were created. Custom habits are due on the weekdays in their CustomDays
// set (0=Sunday .. 6=Saturday); a custom habit with an empty set is never
// due.
func DueOn(h models.Habit, day time.Time) bool {
	switch h.Frequency {
	case models.FrequencyDaily:
		return true
	case models.FrequencyWeekly:
		created := time.UnixMilli(h.CreatedAt)
		return created.Weekday() == day.Weekday()
	case models.FrequencyCustom:
		for _, wd := range h.CustomDays {
			if time.Weekday(wd) == day.Weekday() {
				return true
			}
		}
		return false
	default:
		// Unknown frequency values load defensively as daily.
		return true
	}
}

// DueToday filters habits to those due on the given day, preserving order.
func DueToday(habits []models.Habit, day time.Time) []models.Habit {
	due := make([]models.Habit, 0, len(habits))
	for _, h := range habits {
		if DueOn(h, day) {
			due = append(due, h)
		}
	}
	return due
}
