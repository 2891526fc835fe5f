package storage

import "github.com/kavocado/bloom/internal/models"

// Storage keys, one per collection. Part of the persisted format; renaming
// one orphans existing data.
const (
	KeyHabits = "bloom_habits"
	KeyLogs   = "bloom_logs"
	KeyTodos  = "bloom_todos"
)

// Collections is a snapshot of all persisted state.
type Collections struct {
	Habits []models.Habit
	Logs   []models.HabitLog
	Todos  []models.Todo
}

// Provider persists the three collections under three independent keys,
// each holding a JSON array.
//
// Load never fails on malformed content: a key that does not parse
// degrades to an empty collection for that key only. Write errors are
// returned to the caller and not retried.
type Provider interface {
	// Lifecycle
	Init() error
	Close() error

	// Collections
	Load() (Collections, error)
	Save(Collections) error
	Clear() error

	// Utils
	Path() string
}
