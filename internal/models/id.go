package models

import (
	"time"

	"github.com/google/uuid"
)

// DateFormat is the wire format for calendar dates.
const DateFormat = "2006-01-02"

// NewID generates a new random identifier. Uniqueness is only required
// within a single store; cryptographic strength is not.
func NewID() string {
	return uuid.New().String()
}

// Day formats t as a local calendar date.
func Day(t time.Time) string {
	return t.Format(DateFormat)
}

// NowMillis returns t as epoch milliseconds, the persisted timestamp unit.
func NowMillis(t time.Time) int64 {
	return t.UnixMilli()
}
