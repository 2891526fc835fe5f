package models

// Personality selects the tone the advisor uses when writing messages
// for a habit.
type Personality string

const (
	PersonalitySoft   Personality = "soft"
	PersonalityStrict Personality = "strict"
	PersonalityFunny  Personality = "funny"
)

// Frequency describes how often a habit is meant to be practiced.
type Frequency string

const (
	FrequencyDaily  Frequency = "daily"
	FrequencyWeekly Frequency = "weekly"
	FrequencyCustom Frequency = "custom"
)

// GoalType describes what the habit's numeric target measures.
type GoalType string

const (
	GoalTime   GoalType = "time"
	GoalCount  GoalType = "count"
	GoalStreak GoalType = "streak"
)

// Habit represents a recurring practice to track. JSON field names match
// the persisted wire format, so data written by earlier versions of the
// app loads unchanged.
type Habit struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Emoji       string      `json:"emoji"`
	Color       string      `json:"color"`
	Personality Personality `json:"personality"`
	Frequency   Frequency   `json:"frequency"`
	CustomDays  []int       `json:"customDays,omitempty"` // 0-6 for Sun-Sat, only when Frequency is custom
	GoalType    GoalType    `json:"goalType"`
	GoalTarget  float64     `json:"goalTarget"`
	Unit        string      `json:"unit"`
	CreatedAt   int64       `json:"createdAt"` // epoch milliseconds
}

// HabitLog represents a single day's record of a habit. At most one log
// exists per (HabitID, Date) pair; toggling an existing day flips the
// record in place rather than appending a duplicate.
type HabitLog struct {
	ID        string  `json:"id"`
	HabitID   string  `json:"habitId"`
	Date      string  `json:"date"` // YYYY-MM-DD, local time
	Value     float64 `json:"value"`
	Completed bool    `json:"completed"`
}
