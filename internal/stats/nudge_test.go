package stats

import (
	"testing"

	"github.com/kavocado/bloom/internal/models"
)

func nudgeLogs(completed ...bool) []models.HabitLog {
	logs := make([]models.HabitLog, len(completed))
	for i, c := range completed {
		logs[i] = models.HabitLog{ID: models.NewID(), HabitID: "h", Completed: c}
	}
	return logs
}

func TestShouldNudge_ThreeMissesOfFive(t *testing.T) {
	if !ShouldNudge(nudgeLogs(false, true, false, true, false)) {
		t.Error("expected nudge with 3 misses in the last 5")
	}
}

func TestShouldNudge_TwoMissesOfFive(t *testing.T) {
	if ShouldNudge(nudgeLogs(false, true, false, true, true)) {
		t.Error("expected no nudge with only 2 misses")
	}
}

func TestShouldNudge_ShortHistory(t *testing.T) {
	if ShouldNudge(nudgeLogs(false, false)) {
		t.Error("expected no nudge with fewer than 3 misses recorded")
	}
	if !ShouldNudge(nudgeLogs(false, false, false)) {
		t.Error("expected nudge with 3 misses even in a short history")
	}
}

func TestShouldNudge_OnlyLastFiveExamined(t *testing.T) {
	// Old misses beyond the window are forgiven.
	logs := nudgeLogs(false, false, false, true, true, true, true, true)
	if ShouldNudge(logs) {
		t.Error("expected no nudge when the last 5 records are mostly complete")
	}

	// Recent misses are caught even after a good start.
	logs = nudgeLogs(true, true, true, false, false, true, false, false)
	if !ShouldNudge(logs) {
		t.Error("expected nudge when 3 of the last 5 records are misses")
	}
}

func TestShouldNudge_RecordedOrderNotDateOrder(t *testing.T) {
	// The window is the last 5 by insertion, so a backfilled old date
	// still counts as recent activity.
	logs := []models.HabitLog{
		{ID: "1", HabitID: "h", Date: "2025-08-28", Completed: false},
		{ID: "2", HabitID: "h", Date: "2025-08-29", Completed: false},
		{ID: "3", HabitID: "h", Date: "2025-08-30", Completed: false},
		{ID: "4", HabitID: "h", Date: "2025-08-31", Completed: true},
		{ID: "5", HabitID: "h", Date: "2025-08-27", Completed: true}, // backfilled
		{ID: "6", HabitID: "h", Date: "2025-09-01", Completed: true},
	}

	// Last 5 in recorded order: false, false, true, true, true → 2 misses.
	if ShouldNudge(logs) {
		t.Error("expected no nudge; the oldest miss fell out of the recorded-order window")
	}
}
