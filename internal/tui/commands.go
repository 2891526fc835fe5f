package tui

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavocado/bloom/internal/models"
)

// Advisor results arrive asynchronously, keyed by habit ID. The handlers
// in update.go re-validate that the habit still exists before keeping the
// text, so a message for a deleted habit is simply dropped.
type nudgeMsg struct {
	habitID string
	text    string
}

type motivationMsg struct {
	habitID string
	text    string
}

type summaryMsg struct {
	text string
}

// checkNudges fires one drop-off check per habit. Each runs independently;
// completion order is not significant.
func (m Model) checkNudges() tea.Cmd {
	var cmds []tea.Cmd
	for _, h := range m.tracker.Habits() {
		habit := h
		logs := m.tracker.LogsFor(h.ID)
		cmds = append(cmds, func() tea.Msg {
			text, ok := m.advisor.DropOffNudge(context.Background(), habit, logs)
			if !ok {
				return nil
			}
			return nudgeMsg{habitID: habit.ID, text: text}
		})
	}
	return tea.Batch(cmds...)
}

func (m Model) fetchMotivation(habit models.Habit, streak int, logs []models.HabitLog) tea.Cmd {
	return func() tea.Msg {
		return motivationMsg{
			habitID: habit.ID,
			text:    m.advisor.Motivation(context.Background(), habit, streak, logs),
		}
	}
}

func (m Model) fetchSummary() tea.Cmd {
	habits := m.tracker.Habits()
	logs := m.tracker.Logs()
	return func() tea.Msg {
		return summaryMsg{text: m.advisor.WeeklySummary(context.Background(), habits, logs)}
	}
}
