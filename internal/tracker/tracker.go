// Package tracker owns the in-memory habit, log, and todo collections and
// the state transitions over them. Every successful mutation is mirrored
// to the storage provider before it returns, so the durable copy never
// trails in-memory state by more than one operation.
package tracker

import (
	"strings"
	"time"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/storage"
)

// Tracker is not safe for concurrent use; callers serialize access the
// same way the storage provider requires.
type Tracker struct {
	store storage.Provider

	habits []models.Habit
	logs   []models.HabitLog
	todos  []models.Todo
}

// Open constructs a Tracker over the provider and loads the persisted
// collections.
func Open(store storage.Provider) (*Tracker, error) {
	c, err := store.Load()
	if err != nil {
		return nil, err
	}
	return &Tracker{
		store:  store,
		habits: c.Habits,
		logs:   c.Logs,
		todos:  c.Todos,
	}, nil
}

func (t *Tracker) save() error {
	return t.store.Save(storage.Collections{
		Habits: t.habits,
		Logs:   t.logs,
		Todos:  t.todos,
	})
}

// AddHabit appends a habit to the collection. Habits with an empty name or
// a non-positive goal target are declined without error; the return value
// reports whether the habit was added.
func (t *Tracker) AddHabit(h models.Habit) (bool, error) {
	if strings.TrimSpace(h.Name) == "" || h.GoalTarget <= 0 {
		return false, nil
	}
	t.habits = append(t.habits, h)
	if err := t.save(); err != nil {
		return false, err
	}
	return true, nil
}

// UpdateHabit replaces the stored habit with a matching ID. An unknown ID
// is a no-op.
func (t *Tracker) UpdateHabit(h models.Habit) error {
	for i := range t.habits {
		if t.habits[i].ID == h.ID {
			t.habits[i] = h
			return t.save()
		}
	}
	return nil
}

// DeleteHabit removes the habit and every log that references it.
func (t *Tracker) DeleteHabit(id string) error {
	found := false
	habits := t.habits[:0]
	for _, h := range t.habits {
		if h.ID == id {
			found = true
			continue
		}
		habits = append(habits, h)
	}
	if !found {
		return nil
	}
	t.habits = habits

	logs := t.logs[:0]
	for _, l := range t.logs {
		if l.HabitID != id {
			logs = append(logs, l)
		}
	}
	t.logs = logs

	return t.save()
}

// ToggleHabitCompletion flips the completion flag of the habit's log for
// the given day, creating a completed log with the given value when none
// exists. The day is caller-supplied so tests control the clock.
func (t *Tracker) ToggleHabitCompletion(habitID string, value float64, today string) error {
	for i := range t.logs {
		if t.logs[i].HabitID == habitID && t.logs[i].Date == today {
			t.logs[i].Completed = !t.logs[i].Completed
			return t.save()
		}
	}

	t.logs = append(t.logs, models.HabitLog{
		ID:        models.NewID(),
		HabitID:   habitID,
		Date:      today,
		Value:     value,
		Completed: true,
	})
	return t.save()
}

// AddTodo prepends a new todo so the list reads most-recent-first. Text
// that trims to empty is declined without error.
func (t *Tracker) AddTodo(text string, now time.Time) (bool, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return false, nil
	}
	todo := models.Todo{
		ID:        models.NewID(),
		Text:      text,
		Completed: false,
		CreatedAt: models.NowMillis(now),
	}
	t.todos = append([]models.Todo{todo}, t.todos...)
	if err := t.save(); err != nil {
		return false, err
	}
	return true, nil
}

// ToggleTodo flips a todo's completion flag. Unknown IDs are a no-op.
func (t *Tracker) ToggleTodo(id string) error {
	for i := range t.todos {
		if t.todos[i].ID == id {
			t.todos[i].Completed = !t.todos[i].Completed
			return t.save()
		}
	}
	return nil
}

// DeleteTodo removes a todo. Unknown IDs are a no-op.
func (t *Tracker) DeleteTodo(id string) error {
	for i := range t.todos {
		if t.todos[i].ID == id {
			t.todos = append(t.todos[:i], t.todos[i+1:]...)
			return t.save()
		}
	}
	return nil
}

// ClearAll empties all three collections and erases the durable copy.
// Irreversible; callers gate it behind explicit confirmation.
func (t *Tracker) ClearAll() error {
	t.habits = []models.Habit{}
	t.logs = []models.HabitLog{}
	t.todos = []models.Todo{}
	return t.store.Clear()
}

// Habits returns the habit collection in insertion order.
func (t *Tracker) Habits() []models.Habit {
	return t.habits
}

// Habit looks up a habit by ID.
func (t *Tracker) Habit(id string) (models.Habit, bool) {
	for _, h := range t.habits {
		if h.ID == id {
			return h, true
		}
	}
	return models.Habit{}, false
}

// Logs returns every habit's logs in recorded order.
func (t *Tracker) Logs() []models.HabitLog {
	return t.logs
}

// LogsFor returns the logs belonging to one habit, in recorded order.
func (t *Tracker) LogsFor(habitID string) []models.HabitLog {
	logs := make([]models.HabitLog, 0)
	for _, l := range t.logs {
		if l.HabitID == habitID {
			logs = append(logs, l)
		}
	}
	return logs
}

// LogFor returns the habit's log for one day, if present.
func (t *Tracker) LogFor(habitID, date string) (models.HabitLog, bool) {
	for _, l := range t.logs {
		if l.HabitID == habitID && l.Date == date {
			return l, true
		}
	}
	return models.HabitLog{}, false
}

// Todos returns the todo collection, most recent first.
func (t *Tracker) Todos() []models.Todo {
	return t.todos
}

// Path returns the underlying store's path.
func (t *Tracker) Path() string {
	return t.store.Path()
}

// TotalCompleted counts completed log entries across all habits.
func (t *Tracker) TotalCompleted() int {
	n := 0
	for _, l := range t.logs {
		if l.Completed {
			n++
		}
	}
	return n
}
