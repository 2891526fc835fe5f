package todolist

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kavocado/bloom/internal/models"
)

type AddTodoMsg struct{}

type ToggleTodoMsg struct {
	ID string
}

type DeleteTodoMsg struct {
	ID string
}

type Item struct {
	Todo models.Todo
}

func (i Item) Title() string {
	if i.Todo.Completed {
		return "✓ " + i.Todo.Text
	}
	return "○ " + i.Todo.Text
}

func (i Item) Description() string {
	if i.Todo.Completed {
		return "done"
	}
	return "pending"
}

func (i Item) FilterValue() string { return i.Todo.Text }

type KeyMap struct {
	Add    key.Binding
	Toggle key.Binding
	Delete key.Binding
}

func DefaultKeyMap() KeyMap {
	return KeyMap{
		Add: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "add"),
		),
		Toggle: key.NewBinding(
			key.WithKeys("enter", " "),
			key.WithHelp("enter", "toggle"),
		),
		Delete: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "delete"),
		),
	}
}

type Model struct {
	list list.Model
	keys KeyMap
}

func New(todos []models.Todo, width, height int) Model {
	l := list.New(toItems(todos), list.NewDefaultDelegate(), width, height)
	l.Title = "To-Do List"
	l.SetShowTitle(false)
	l.SetShowHelp(false)

	keys := DefaultKeyMap()
	l.AdditionalShortHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}
	l.AdditionalFullHelpKeys = func() []key.Binding {
		return []key.Binding{keys.Add, keys.Toggle, keys.Delete}
	}

	return Model{list: l, keys: keys}
}

func toItems(todos []models.Todo) []list.Item {
	items := make([]list.Item, len(todos))
	for i, t := range todos {
		items[i] = Item{Todo: t}
	}
	return items
}

func (m *Model) SetTodos(todos []models.Todo) {
	m.list.SetItems(toItems(todos))
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
			return m, func() tea.Msg { return AddTodoMsg{} }
		case key.Matches(msg, m.keys.Toggle):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return ToggleTodoMsg{ID: i.Todo.ID} }
			}
		case key.Matches(msg, m.keys.Delete):
			if i, ok := m.list.SelectedItem().(Item); ok {
				return m, func() tea.Msg { return DeleteTodoMsg{ID: i.Todo.ID} }
			}
		}
	}

	m.list, cmd = m.list.Update(msg)
	return m, cmd
}

func (m Model) View() string {
	if len(m.list.Items()) == 0 && m.list.FilterState() != list.Filtering {
		return "\n  No tasks yet. Enjoy the quiet! ✨\n  Press 'a' to add one."
	}
	return m.list.View()
}

func (m *Model) SetSize(width, height int) {
	m.list.SetSize(width, height)
}
