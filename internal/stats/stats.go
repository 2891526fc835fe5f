package stats

import (
	"sort"
	"time"

	"github.com/kavocado/bloom/internal/constants"
	"github.com/kavocado/bloom/internal/models"
)

// Streak returns the number of consecutive completed records scanning
// backward from the most recent log. Only records that exist are examined:
// a day with no log at all does not break the streak, only an explicit
// incomplete record does.
func Streak(logs []models.HabitLog) int {
	sorted := make([]models.HabitLog, len(logs))
	copy(sorted, logs)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Date > sorted[j].Date
	})

	streak := 0
	for _, log := range sorted {
		if !log.Completed {
			break
		}
		streak++
	}
	return streak
}

// SevenDayProgress returns the habit's completion percentage over the
// trailing seven calendar days ending at now. The denominator is fixed at
// seven days, so a habit logged three times in the window reads as ~43%
// no matter how many other records exist.
func SevenDayProgress(logs []models.HabitLog, now time.Time) float64 {
	today, err := time.ParseInLocation(models.DateFormat, models.Day(now), now.Location())
	if err != nil {
		return 0
	}

	completed := 0
	for _, log := range logs {
		day, err := time.ParseInLocation(models.DateFormat, log.Date, now.Location())
		if err != nil {
			continue
		}
		age := int(today.Sub(day).Hours() / 24)
		if age < 0 || age > constants.ProgressWindowDays {
			continue
		}
		if log.Completed {
			completed++
		}
	}

	progress := float64(completed) / constants.ProgressWindowDays * 100
	if progress > 100 {
		progress = 100
	}
	return progress
}

// TotalCompleted counts completed entries across a log collection. Pass
// every habit's logs to get the cross-habit gamification counter.
func TotalCompleted(logs []models.HabitLog) int {
	n := 0
	for _, log := range logs {
		if log.Completed {
			n++
		}
	}
	return n
}

// GrowthLevel derives the garden's level from the total completion count.
// Levels start at 1 and increase every five completions.
func GrowthLevel(totalCompleted int) int {
	return totalCompleted/constants.GrowthLevelDivisor + 1
}
