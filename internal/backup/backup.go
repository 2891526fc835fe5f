// Package backup snapshots the three persisted collections to timestamped
// JSON files so a destructive operation can be undone out-of-band.
package backup

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/kavocado/bloom/internal/models"
	"github.com/kavocado/bloom/internal/storage"
)

const (
	// MaxBackups is the maximum number of backups to keep
	MaxBackups = 14
	// BackupDirName is the name of the backup directory
	BackupDirName = "backups"
	// BackupFilePrefix is the prefix for backup files
	BackupFilePrefix = "bloom-"
	// BackupFileSuffix is the suffix for backup files
	BackupFileSuffix = ".json"
)

// Info contains information about a backup file
type Info struct {
	Path      string
	Timestamp time.Time
	Size      int64
}

// snapshot is the backup file format: all three collections in one
// document, independent of which store produced them.
type snapshot struct {
	Habits []models.Habit    `json:"bloom_habits"`
	Logs   []models.HabitLog `json:"bloom_logs"`
	Todos  []models.Todo     `json:"bloom_todos"`
}

// Manager handles backup operations for a storage provider.
type Manager struct {
	store     storage.Provider
	backupDir string
}

// NewManager creates a backup manager writing next to the store path.
func NewManager(store storage.Provider) *Manager {
	configDir := filepath.Dir(store.Path())
	return &Manager{
		store:     store,
		backupDir: filepath.Join(configDir, BackupDirName),
	}
}

// BackupDir returns the backup directory path.
func (m *Manager) BackupDir() string {
	return m.backupDir
}

// Create writes a new timestamped backup and rotates old ones.
func (m *Manager) Create() (string, error) {
	return m.create(false)
}

func (m *Manager) create(skipRotation bool) (string, error) {
	if err := os.MkdirAll(m.backupDir, 0700); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	c, err := m.store.Load()
	if err != nil {
		return "", fmt.Errorf("failed to load collections: %w", err)
	}

	// Minute-precision name first, then seconds, then a counter.
	timestamp := time.Now().Format("20060102-1504")
	backupPath := filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
	if _, err := os.Stat(backupPath); err == nil {
		timestamp = time.Now().Format("20060102-150405")
		backupPath = filepath.Join(m.backupDir, BackupFilePrefix+timestamp+BackupFileSuffix)
		counter := 1
		for {
			if _, err := os.Stat(backupPath); os.IsNotExist(err) {
				break
			}
			backupPath = filepath.Join(m.backupDir,
				fmt.Sprintf("%s%s-%d%s", BackupFilePrefix, timestamp, counter, BackupFileSuffix))
			counter++
			if counter > 100 {
				return "", fmt.Errorf("failed to generate unique backup filename")
			}
		}
	}

	data, err := json.MarshalIndent(snapshot{Habits: c.Habits, Logs: c.Logs, Todos: c.Todos}, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to serialize backup: %w", err)
	}
	if err := os.WriteFile(backupPath, data, 0600); err != nil {
		return "", fmt.Errorf("failed to write backup: %w", err)
	}

	if !skipRotation {
		if err := m.rotate(); err != nil {
			fmt.Fprintf(os.Stderr, "Warning: failed to rotate old backups: %v\n", err)
		}
	}

	return backupPath, nil
}

// List returns all available backups, newest first.
func (m *Manager) List() ([]Info, error) {
	if _, err := os.Stat(m.backupDir); os.IsNotExist(err) {
		return []Info{}, nil
	}

	entries, err := os.ReadDir(m.backupDir)
	if err != nil {
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	var backups []Info
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !strings.HasPrefix(name, BackupFilePrefix) || !strings.HasSuffix(name, BackupFileSuffix) {
			continue
		}

		timestampStr := strings.TrimPrefix(name, BackupFilePrefix)
		timestampStr = strings.TrimSuffix(timestampStr, BackupFileSuffix)
		// Strip a trailing collision counter if present.
		if parts := strings.Split(timestampStr, "-"); len(parts) > 2 {
			timestampStr = strings.Join(parts[:2], "-")
		}

		timestamp, err := time.Parse("20060102-1504", timestampStr)
		if err != nil {
			timestamp, err = time.Parse("20060102-150405", timestampStr)
			if err != nil {
				continue
			}
		}

		path := filepath.Join(m.backupDir, name)
		info, err := os.Stat(path)
		if err != nil {
			continue
		}
		backups = append(backups, Info{Path: path, Timestamp: timestamp, Size: info.Size()})
	}

	sort.Slice(backups, func(i, j int) bool {
		return backups[i].Timestamp.After(backups[j].Timestamp)
	})
	return backups, nil
}

func (m *Manager) rotate() error {
	backups, err := m.List()
	if err != nil {
		return err
	}
	for i := MaxBackups; i < len(backups); i++ {
		if err := os.Remove(backups[i].Path); err != nil {
			return fmt.Errorf("failed to remove old backup %s: %w", backups[i].Path, err)
		}
	}
	return nil
}

// Restore replaces the store's contents with a backup. The current state
// is backed up first so a bad restore can itself be undone.
func (m *Manager) Restore(backupPath string) error {
	data, err := os.ReadFile(backupPath)
	if err != nil {
		return fmt.Errorf("failed to read backup: %w", err)
	}

	var snap snapshot
	if err := json.Unmarshal(data, &snap); err != nil {
		return fmt.Errorf("backup file is corrupted or invalid: %w", err)
	}

	if _, err := m.create(true); err != nil {
		return fmt.Errorf("failed to back up current state before restore: %w", err)
	}

	return m.store.Save(storage.Collections{
		Habits: snap.Habits,
		Logs:   snap.Logs,
		Todos:  snap.Todos,
	})
}
