package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/kavocado/bloom/internal/models"
)

// JSONStore keeps each collection in its own JSON file inside a single
// directory, e.g. ~/.config/bloom/bloom.json/bloom_habits.json.
type JSONStore struct {
	path string
}

func NewJSONStore(path string) *JSONStore {
	return &JSONStore{path: path}
}

func (s *JSONStore) Init() error {
	if err := os.MkdirAll(s.path, 0700); err != nil {
		return fmt.Errorf("failed to create storage directory: %w", err)
	}
	return nil
}

func (s *JSONStore) Close() error {
	return nil
}

func (s *JSONStore) keyPath(key string) string {
	return filepath.Join(s.path, key+".json")
}

// readKey loads one collection file into dest. A missing or unparsable
// file leaves dest untouched; the caller's zero value stands in for the
// empty collection.
func (s *JSONStore) readKey(key string, dest any) {
	data, err := os.ReadFile(s.keyPath(key))
	if err != nil {
		return
	}
	// Malformed content degrades to an empty collection for this key only.
	_ = json.Unmarshal(data, dest)
}

func (s *JSONStore) writeKey(key string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	if err := os.WriteFile(s.keyPath(key), data, 0600); err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *JSONStore) Load() (Collections, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return Collections{}, fmt.Errorf("storage not initialized, run 'bloom init' first")
		}
		return Collections{}, fmt.Errorf("failed to read storage: %w", err)
	}

	c := Collections{
		Habits: []models.Habit{},
		Logs:   []models.HabitLog{},
		Todos:  []models.Todo{},
	}
	s.readKey(KeyHabits, &c.Habits)
	s.readKey(KeyLogs, &c.Logs)
	s.readKey(KeyTodos, &c.Todos)
	return c, nil
}

func (s *JSONStore) Save(c Collections) error {
	if err := s.writeKey(KeyHabits, c.Habits); err != nil {
		return err
	}
	if err := s.writeKey(KeyLogs, c.Logs); err != nil {
		return err
	}
	return s.writeKey(KeyTodos, c.Todos)
}

func (s *JSONStore) Clear() error {
	for _, key := range []string{KeyHabits, KeyLogs, KeyTodos} {
		if err := os.Remove(s.keyPath(key)); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("failed to clear %s: %w", key, err)
		}
	}
	return nil
}

// Path returns the storage directory path.
//
// Concurrency note:
//   - JSONStore is not safe for concurrent use by multiple goroutines without
//     external synchronization.
//   - Running multiple bloom processes that share the same storage path at the
//     same time is not supported and may lead to data loss.
func (s *JSONStore) Path() string {
	return s.path
}
