package storage

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"

	"github.com/kavocado/bloom/internal/models"
)

// SQLiteStore persists the three collection keys as rows of a single
// key-value table inside a SQLite database.
type SQLiteStore struct {
	path string
	db   *sql.DB
}

func NewSQLiteStore(path string) *SQLiteStore {
	return &SQLiteStore{path: path}
}

func (s *SQLiteStore) Init() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	if err := s.open(); err != nil {
		return err
	}

	_, err := s.db.Exec(`CREATE TABLE IF NOT EXISTS kv (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`)
	if err != nil {
		return fmt.Errorf("failed to create schema: %w", err)
	}
	return nil
}

func (s *SQLiteStore) open() error {
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.path)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}
	s.db = db
	return nil
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	if _, err := os.Stat(s.path); os.IsNotExist(err) {
		return fmt.Errorf("storage not initialized, run 'bloom init' first")
	}
	return s.open()
}

func (s *SQLiteStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	s.db = nil
	return err
}

// readKey loads one collection row into dest. A missing row or unparsable
// value leaves dest untouched.
func (s *SQLiteStore) readKey(key string, dest any) {
	var value string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err != nil {
		return
	}
	_ = json.Unmarshal([]byte(value), dest)
}

func (s *SQLiteStore) writeKey(key string, v any) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize %s: %w", key, err)
	}
	_, err = s.db.Exec(
		`INSERT INTO kv (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, string(data),
	)
	if err != nil {
		return fmt.Errorf("failed to write %s: %w", key, err)
	}
	return nil
}

func (s *SQLiteStore) Load() (Collections, error) {
	if err := s.ensureOpen(); err != nil {
		return Collections{}, err
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

func (s *SQLiteStore) Save(c Collections) error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	if err := s.writeKey(KeyHabits, c.Habits); err != nil {
		return err
	}
	if err := s.writeKey(KeyLogs, c.Logs); err != nil {
		return err
	}
	return s.writeKey(KeyTodos, c.Todos)
}

func (s *SQLiteStore) Clear() error {
	if err := s.ensureOpen(); err != nil {
		return err
	}
	_, err := s.db.Exec(`DELETE FROM kv WHERE key IN (?, ?, ?)`, KeyHabits, KeyLogs, KeyTodos)
	if err != nil {
		return fmt.Errorf("failed to clear storage: %w", err)
	}
	return nil
}

func (s *SQLiteStore) Path() string {
	return s.path
}

// DB exposes the underlying connection for diagnostics.
func (s *SQLiteStore) DB() *sql.DB {
	return s.db
}
