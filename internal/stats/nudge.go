package stats

import (
	"github.com/kavocado/bloom/internal/constants"
	"github.com/kavocado/bloom/internal/models"
)

// ShouldNudge reports whether a habit's recent history warrants a drop-off
// nudge: at least three incomplete records among the last five. The window
// is taken in recorded order, not re-sorted by date, so a backfilled log
// counts as recent activity.
func ShouldNudge(logs []models.HabitLog) bool {
	recent := logs
	if len(recent) > constants.NudgeWindow {
		recent = recent[len(recent)-constants.NudgeWindow:]
	}

	missed := 0
	for _, log := range recent {
		if !log.Completed {
			missed++
		}
	}
	return missed >= constants.NudgeMissThreshold
}
