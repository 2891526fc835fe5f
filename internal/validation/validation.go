package validation

import (
	"fmt"
	"strings"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/storage"
)

// IssueType represents the type of validation issue
type IssueType string

const (
	IssueEmptyName         IssueType = "empty_name"
	IssueNonPositiveTarget IssueType = "non_positive_target"
	IssueInvalidWeekday    IssueType = "invalid_weekday"
	IssueEmptyCustomDays   IssueType = "empty_custom_days"
	IssueDuplicateID       IssueType = "duplicate_id"
	IssueOrphanedLog       IssueType = "orphaned_log"
	IssueDuplicateLogDay   IssueType = "duplicate_log_day"
)

// Issue represents a detected problem in a habit or in the collections.
type Issue struct {
	Type        IssueType
	Description string
	IDs         []string // entity IDs involved
}

// Result contains all detected issues.
type Result struct {
	Issues []Issue
}

// HasIssues returns true if any issue was detected.
func (r *Result) HasIssues() bool {
	return len(r.Issues) > 0
}

// FormatReport returns a human-readable report of all issues.
func (r *Result) FormatReport() string {
	if !r.HasIssues() {
		return "No issues detected."
	}
	var b strings.Builder
	b.WriteString("Issues detected:\n")
	for _, issue := range r.Issues {
		fmt.Fprintf(&b, "- %s\n", issue.Description)
	}
	return b.String()
}

// CheckHabit validates a single habit's fields before it enters the
// collection.
func CheckHabit(h models.Habit) Result {
	var result Result

	if strings.TrimSpace(h.Name) == "" {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueEmptyName,
			Description: "habit name must not be empty",
			IDs:         []string{h.ID},
		})
	}

	if h.GoalTarget <= 0 {
		result.Issues = append(result.Issues, Issue{
			Type:        IssueNonPositiveTarget,
			Description: fmt.Sprintf("goal target must be positive, got %g", h.GoalTarget),
			IDs:         []string{h.ID},
		})
	}

	if h.Frequency == models.FrequencyCustom {
		if len(h.CustomDays) == 0 {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueEmptyCustomDays,
				Description: "custom frequency requires at least one weekday",
				IDs:         []string{h.ID},
			})
		}
		for _, d := range h.CustomDays {
			if d < 0 || d > 6 {
				result.Issues = append(result.Issues, Issue{
					Type:        IssueInvalidWeekday,
					Description: fmt.Sprintf("weekday index out of range: %d", d),
					IDs:         []string{h.ID},
				})
			}
		}
	}

	return result
}

// CheckCollections validates the referential integrity of a loaded
// snapshot: unique habit IDs, no logs referencing a missing habit, and at
// most one log per (habit, day) pair.
func CheckCollections(c storage.Collections) Result {
	var result Result

	habitIDs := make(map[string]bool, len(c.Habits))
	for _, h := range c.Habits {
		if habitIDs[h.ID] {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicateID,
				Description: fmt.Sprintf("duplicate habit ID: %s", h.ID),
				IDs:         []string{h.ID},
			})
		}
		habitIDs[h.ID] = true
	}

	seenDays := make(map[string]bool, len(c.Logs))
	for _, l := range c.Logs {
		if !habitIDs[l.HabitID] {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueOrphanedLog,
				Description: fmt.Sprintf("log %s references unknown habit %s", l.ID, l.HabitID),
				IDs:         []string{l.ID, l.HabitID},
			})
		}
		key := l.HabitID + "|" + l.Date
		if seenDays[key] {
			result.Issues = append(result.Issues, Issue{
				Type:        IssueDuplicateLogDay,
				Description: fmt.Sprintf("multiple logs for habit %s on %s", l.HabitID, l.Date),
				IDs:         []string{l.HabitID},
			})
		}
		seenDays[key] = true
	}

	return result
}
