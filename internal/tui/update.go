package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/stats"
	"github.com/kavocado/bloom/internal/tui/components/garden"
	"github.com/kavocado/bloom/internal/tui/components/todolist"
	"github.com/kavocado/bloom/internal/validation"
)

const tabCount = 3

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.gardenModel.SetSize(msg.Width-4, msg.Height-6)
		m.todoList.SetSize(msg.Width-4, msg.Height-6)
		return m, nil

	case nudgeMsg:
		// The habit may have been deleted while the request was in
		// flight; drop the result instead of resurrecting it.
		if _, ok := m.tracker.Habit(msg.habitID); ok {
			m.nudges[msg.habitID] = msg.text
			m.refresh()
		}
		return m, nil

	case motivationMsg:
		if _, ok := m.tracker.Habit(msg.habitID); ok {
			m.motivations[msg.habitID] = msg.text
			m.refresh()
		}
		return m, nil

	case summaryMsg:
		m.summary = msg.text
		m.loadingSummary = false
		return m, nil
	}

	switch m.state {
	case StateAddHabit:
		return m.updateAddHabit(msg)
	case StateAddTodo:
		return m.updateAddTodo(msg)
	case StateConfirmDelete:
		return m.updateConfirmDelete(msg)
	case StateConfirmReset:
		return m.updateConfirmReset(msg)
	}

	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.quitting = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Tab):
			m.state = (m.state + 1) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.ShiftTab):
			m.state = (m.state - 1 + tabCount) % tabCount
			return m, nil
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case m.state == StateSettings && key.Matches(msg, m.keys.Reset):
			m.state = StateConfirmReset
			return m, nil
		}
	}

	switch msg := msg.(type) {
	case garden.AddHabitMsg:
		m.habitForm = &HabitFormModel{
			Emoji:       "🌱",
			Personality: models.PersonalitySoft,
			Frequency:   models.FrequencyDaily,
			Target:      "1",
			Unit:        "times",
		}
		m.form = newHabitForm(m.habitForm)
		m.state = StateAddHabit
		return m, m.form.Init()

	case garden.ToggleHabitMsg:
		return m.toggleHabit(msg.ID)

	case garden.DeleteHabitMsg:
		m.habitToDeleteID = msg.ID
		m.state = StateConfirmDelete
		return m, nil

	case garden.SummaryMsg:
		if len(m.tracker.Habits()) == 0 {
			return m, nil
		}
		m.loadingSummary = true
		return m, m.fetchSummary()

	case todolist.AddTodoMsg:
		m.todoForm = &TodoFormModel{}
		m.form = newTodoForm(m.todoForm)
		m.state = StateAddTodo
		return m, m.form.Init()

	case todolist.ToggleTodoMsg:
		if err := m.tracker.ToggleTodo(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil

	case todolist.DeleteTodoMsg:
		if err := m.tracker.DeleteTodo(msg.ID); err == nil {
			m.refresh()
		}
		return m, nil
	}

	var cmd tea.Cmd
	switch m.state {
	case StateGarden:
		m.gardenModel, cmd = m.gardenModel.Update(msg)
	case StateTodos:
		m.todoList, cmd = m.todoList.Update(msg)
	}
	return m, cmd
}

func (m Model) toggleHabit(id string) (tea.Model, tea.Cmd) {
	h, ok := m.tracker.Habit(id)
	if !ok {
		return m, nil
	}

	today := models.Day(time.Now())
	if err := m.tracker.ToggleHabitCompletion(h.ID, h.GoalTarget, today); err != nil {
		return m, nil
	}
	m.refresh()

	// Fetch encouragement when the toggle lands on completed, like the
	// card celebrating a finished day.
	if log, ok := m.tracker.LogFor(h.ID, today); ok && log.Completed {
		logs := m.tracker.LogsFor(h.ID)
		return m, m.fetchMotivation(h, stats.Streak(logs), logs)
	}
	delete(m.motivations, h.ID)
	m.refresh()
	return m, nil
}

func (m Model) updateAddHabit(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateGarden
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		habit := m.buildHabit()
		if result := validation.CheckHabit(habit); !result.HasIssues() {
			if added, err := m.tracker.AddHabit(habit); err == nil && added {
				m.refresh()
				m.state = StateGarden
				return m, cmd
			}
		}
		// Stay in form state on invalid input to allow retry
		m.form.State = huh.StateNormal
	case huh.StateAborted:
		m.state = StateGarden
	}
	return m, cmd
}

func (m Model) buildHabit() models.Habit {
	target, err := strconv.ParseFloat(m.habitForm.Target, 64)
	if err != nil {
		target = 0
	}

	habit := models.Habit{
		ID:          models.NewID(),
		Name:        m.habitForm.Name,
		Emoji:       m.habitForm.Emoji,
		Color:       "#ec4899",
		Personality: m.habitForm.Personality,
		Frequency:   m.habitForm.Frequency,
		GoalType:    models.GoalCount,
		GoalTarget:  target,
		Unit:        m.habitForm.Unit,
		CreatedAt:   models.NowMillis(time.Now()),
	}
	if habit.Frequency == models.FrequencyCustom {
		if days, err := parseFormWeekdays(m.habitForm.Days); err == nil {
			habit.CustomDays = days
		}
	}
	return habit
}

func parseFormWeekdays(s string) ([]int, error) {
	dayMap := map[string]int{
		"sun": 0, "mon": 1, "tue": 2, "wed": 3, "thu": 4, "fri": 5, "sat": 6,
	}
	var days []int
	for _, part := range strings.Split(s, ",") {
		part = strings.TrimSpace(strings.ToLower(part))
		if len(part) > 3 {
			part = part[:3]
		}
		if d, ok := dayMap[part]; ok {
			days = append(days, d)
			continue
		}
		num, err := strconv.Atoi(part)
		if err != nil || num < 0 || num > 6 {
			return nil, fmt.Errorf("invalid weekday: %s", part)
		}
		days = append(days, num)
	}
	return days, nil
}

func (m Model) updateAddTodo(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok && msg.Type == tea.KeyEsc {
		m.state = StateTodos
		return m, nil
	}

	form, cmd := m.form.Update(msg)
	if f, ok := form.(*huh.Form); ok {
		m.form = f
	}

	switch m.form.State {
	case huh.StateCompleted:
		// Empty text is declined by the tracker; either way the form closes.
		if _, err := m.tracker.AddTodo(m.todoForm.Text, time.Now()); err == nil {
			m.refresh()
		}
		m.state = StateTodos
	case huh.StateAborted:
		m.state = StateTodos
	}
	return m, cmd
}

func (m Model) updateConfirmDelete(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.tracker.DeleteHabit(m.habitToDeleteID); err == nil {
				delete(m.nudges, m.habitToDeleteID)
				delete(m.motivations, m.habitToDeleteID)
				m.refresh()
			}
			m.habitToDeleteID = ""
			m.state = StateGarden
		case "n", "N", "esc":
			m.habitToDeleteID = ""
			m.state = StateGarden
		}
	}
	return m, nil
}

func (m Model) updateConfirmReset(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch msg.String() {
		case "y", "Y":
			if err := m.tracker.ClearAll(); err == nil {
				m.nudges = map[string]string{}
				m.motivations = map[string]string{}
				m.summary = ""
				m.refresh()
			}
			m.state = StateSettings
		case "n", "N", "esc":
			m.state = StateSettings
		}
	}
	return m, nil
}
