package tui

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/kavocado/bloom/internal/stats"
)

func (m Model) View() string {
	if m.quitting {
		return ""
	}

	var content string

	switch m.state {
	case StateGarden:
		content = m.viewGarden()
	case StateTodos:
		content = docStyle.Render(m.todoList.View())
	case StateSettings:
		content = m.viewSettings()
	case StateAddHabit, StateAddTodo:
		content = m.form.View()
	case StateConfirmDelete:
		content = m.viewConfirmDelete()
	case StateConfirmReset:
		content = m.viewConfirmReset()
	}

	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.viewTabs(),
		content,
		m.help.View(m),
	)
}

func (m Model) viewTabs() string {
	level := levelStyle.Render(fmt.Sprintf("LV %d", stats.GrowthLevel(m.tracker.TotalCompleted())))

	var tabs []string
	for i, title := range []string{"Garden", "To-Do List", "Settings"} {
		if m.state == SessionState(i) {
			tabs = append(tabs, activeTabStyle.Render(title))
		} else {
			tabs = append(tabs, inactiveTabStyle.Render(title))
		}
	}
	tabs = append(tabs, "  ", level)
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

func (m Model) viewGarden() string {
	insight := ""
	if m.loadingSummary {
		insight = summaryStyle.Render("Consulting the Spirits...")
	} else if m.summary != "" {
		insight = summaryStyle.Render(m.summary)
	}

	if insight == "" {
		return docStyle.Render(m.gardenModel.View())
	}
	return lipgloss.JoinVertical(lipgloss.Left, insight, docStyle.Render(m.gardenModel.View()))
}

func (m Model) viewSettings() string {
	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left,
		"Settings",
		"",
		fmt.Sprintf("Storage: %s", m.tracker.Path()),
		fmt.Sprintf("Habits: %d   Logs: %d   Todos: %d",
			len(m.tracker.Habits()), len(m.tracker.Logs()), len(m.tracker.Todos())),
		"",
		dangerStyle.Render("Press R to reset your garden and task list entirely."),
	))
}

func (m Model) viewConfirmDelete() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Delete this habit and all of its logs?"),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}

func (m Model) viewConfirmReset() string {
	return lipgloss.Place(m.width, m.height-4,
		lipgloss.Center, lipgloss.Center,
		lipgloss.JoinVertical(lipgloss.Center,
			dangerStyle.Render("Clear all your growth progress? This cannot be undone."),
			"",
			"[y] Yes",
			"[n] No",
		),
	)
}
