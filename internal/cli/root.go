package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kavocado/bloom/internal/advisor"
	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/storage"
	"github.com/kavocado/bloom/internal/tracker"
)

type Context struct {
	Store   storage.Provider
	Advisor *advisor.Client
}

// openTracker loads the collections through the store and hands back the
// mutation surface.
func (ctx *Context) openTracker() (*tracker.Tracker, error) {
	return tracker.Open(ctx.Store)
}

// resolveHabit finds a habit by ID or, failing that, by case-insensitive
// name.
func resolveHabit(t *tracker.Tracker, ref string) (models.Habit, error) {
	if h, ok := t.Habit(ref); ok {
		return h, nil
	}
	for _, h := range t.Habits() {
		if strings.EqualFold(h.Name, ref) {
			return h, nil
		}
	}
	return models.Habit{}, fmt.Errorf("no habit matching %q", ref)
}

func parseWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "sunday": 0,
		"mon": 1, "monday": 1,
		"tue": 2, "tuesday": 2,
		"wed": 3, "wednesday": 3,
		"thu": 4, "thursday": 4,
		"fri": 5, "friday": 5,
		"sat": 6, "saturday": 6,
	}

	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		// Try parsing as number (0=Sunday, 6=Saturday)
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

func formatFrequency(h models.Habit) string {
	switch h.Frequency {
	case models.FrequencyDaily:
		return "daily"
	case models.FrequencyWeekly:
		return "weekly"
	case models.FrequencyCustom:
		names := []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
		var days []string
		for _, d := range h.CustomDays {
			if d >= 0 && d <= 6 {
				days = append(days, names[d])
			}
		}
		return "on " + strings.Join(days, ",")
	default:
		return string(h.Frequency)
	}
}
