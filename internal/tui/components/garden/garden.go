package garden

import (
	"fmt"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/stats"
)

type AddHabitMsg struct{}

type ToggleHabitMsg struct {
	ID string
}

type DeleteHabitMsg struct {
	ID string
}

type SummaryMsg struct{}

// Entry is one habit plus the derived data the card displays.
type Entry struct {
	Habit      models.Habit
	Streak     int
	Progress   float64
	Stage      stats.Stage
	DoneToday  bool
	Due        bool
	Nudge      string
	Motivation string
}

type Item struct {
	Entry Entry
}

func (i Item) Title() string {
	mark := "○"
	if i.Entry.DoneToday {
		mark = "✓"
	}
	return fmt.Sprintf("%s %s %s %s", mark, i.Entry.Stage.Glyph(), i.Entry.Habit.Emoji, i.Entry.Habit.Name)
}

func (i Item) Description() string {
	desc := fmt.Sprintf("%d day streak · %.0f%% this week", i.Entry.Streak, i.Entry.Progress)
	if !i.Entry.Due {
		desc += " · not due today"
	}
	if i.Entry.Nudge != "" {
		desc += " · 💡 " + i.Entry.Nudge
	} else if i.Entry.Motivation != "" {
		desc += " · ✨ " + i.Entry.Motivation
	}
	return desc
}

func (i Item) FilterValue() string { return i.Entry.Habit.Name }

type KeyMap struct {
	Add     key.Binding
	Toggle  key.Binding
	Delete  key.Binding
	Summary key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle today"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
		Summary: key.NewBinding(
			key.WithKeys("s"),
			key.WithHelp("s", "weekly summary"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(entries []Entry, width, height int) Model {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = "Garden"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Summary}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete, keys.Summary}
	}

	return Model{list: l, keys: keys}
}

func (m *Model) SetEntries(entries []Entry) {
	items := make([]list.Item, len(entries))
	for i, e := range entries {
		items[i] = Item{Entry: e}
	}
	m.list.SetItems(items)
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.list.FilterState() == list.Filtering {
			break
		}
		switch {
		case key.Matches(msg, m.keys.Add):
			return m, func() tea.Msg { return AddHabitMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleHabitMsg{ID: i.Entry.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteHabitMsg{ID: i.Entry.Habit.ID} }
			}
		case key.Matches(msg, m.keys.Summary):
			return m, func() tea.Msg { return SummaryMsg{} }
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  Your garden is empty. Let's plant some seeds!\n  Press 'a' to add a habit."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
