package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"

	"github.com/kavocado/bloom/internal/advisor"
	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/schedule"
	"github.com/kavocado/bloom/internal/stats"
	"github.com/kavocado/bloom/internal/tracker"
	"github.com/kavocado/bloom/internal/tui/components/garden"
	"github.com/kavocado/bloom/internal/tui/components/todolist"
)

type SessionState int

const (
	StateGarden SessionState = iota
	StateTodos
	StateSettings
	StateAddHabit
	StateAddTodo
	StateConfirmDelete
	StateConfirmReset
)

type HabitFormModel struct {
	Name        string
	Emoji       string
	Personality models.Personality
	Frequency   models.Frequency
	Days        string
	Target      string
	Unit        string
}

type TodoFormModel struct {
	Text string
}

type Model struct {
	tracker *tracker.Tracker
	advisor *advisor.Client

	state SessionState
	keys  KeyMap
	help  help.Model

	gardenModel garden.Model
	todoList    todolist.Model
	form        *huh.Form
	habitForm   *HabitFormModel
	todoForm    *TodoFormModel

	quitting bool
	width    int
	height   int

	habitToDeleteID string

	// Advisor output, keyed by habit ID so concurrent completions never
	// clobber each other.
	nudges         map[string]string
	motivations    map[string]string
	summary        string
	loadingSummary bool
}

func NewModel(t *tracker.Tracker, adv *advisor.Client) Model {
	m := Model{
		tracker:     t,
		advisor:     adv,
		state:       StateGarden,
		keys:        DefaultKeyMap(),
		help:        help.New(),
		todoList:    todolist.New(t.Todos(), 0, 0),
		nudges:      map[string]string{},
		motivations: map[string]string{},
	}
	m.gardenModel = garden.New(m.gardenEntries(), 0, 0)
	return m
}

// gardenEntries derives the display data for every habit from the current
// collections.
func (m Model) gardenEntries() []garden.Entry {
	now := time.Now()
	today := models.Day(now)

	habits := m.tracker.Habits()
	entries := make([]garden.Entry, len(habits))
	for i, h := range habits {
		logs := m.tracker.LogsFor(h.ID)
		progress := stats.SevenDayProgress(logs, now)

		doneToday := false
		if log, ok := m.tracker.LogFor(h.ID, today); ok {
			doneToday = log.Completed
		}

		entries[i] = garden.Entry{
			Habit:      h,
			Streak:     stats.Streak(logs),
			Progress:   progress,
			Stage:      stats.GrowthStage(progress),
			DoneToday:  doneToday,
			Due:        schedule.DueOn(h, now),
			Nudge:      m.nudges[h.ID],
			Motivation: m.motivations[h.ID],
		}
	}
	return entries
}

func (m *Model) refresh() {
	m.gardenModel.SetEntries(m.gardenEntries())
	m.todoList.SetTodos(m.tracker.Todos())
}

func (m Model) ShortHelp() []key.Binding {
	keys := []key.Binding{m.keys.Tab, m.keys.Quit, m.keys.Help}
	if m.state == StateSettings {
		keys = append(keys, m.keys.Reset)
	}
	return keys
}

func (m Model) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{m.keys.Tab, m.keys.ShiftTab, m.keys.Quit, m.keys.Help},
		{m.keys.Up, m.keys.Down, m.keys.Enter, m.keys.Reset},
	}
}

func (m Model) Init() tea.Cmd {
	return m.checkNudges()
}

func newHabitForm(f *HabitFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Name").
				Value(&f.Name),
			huh.NewInput().
				Title("Emoji").
				Value(&f.Emoji),
			huh.NewSelect[models.Personality]().
				Title("Personality").
				Options(
					huh.NewOption("Soft", models.PersonalitySoft),
					huh.NewOption("Strict", models.PersonalityStrict),
					huh.NewOption("Funny", models.PersonalityFunny),
				).
				Value(&f.Personality),
			huh.NewSelect[models.Frequency]().
				Title("Frequency").
				Options(
					huh.NewOption("Daily", models.FrequencyDaily),
					huh.NewOption("Weekly", models.FrequencyWeekly),
					huh.NewOption("Custom", models.FrequencyCustom),
				).
				Value(&f.Frequency),
			huh.NewInput().
				Title("Custom days (e.g. mon,wed,fri)").
				Value(&f.Days),
			huh.NewInput().
				Title("Goal target").
				Value(&f.Target),
			huh.NewInput().
				Title("Unit").
				Value(&f.Unit),
		),
	)
}

func newTodoForm(f *TodoFormModel) *huh.Form {
	return huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("What needs to be done? 🌸").
				Value(&f.Text),
		),
	)
}
