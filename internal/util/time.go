package util

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

func ParseTimeFlexible(timeStr string) (time.Time, error) {
	// Try parsing as RFC3339 (ISO 8601)
	t, err := time.Parse(time.RFC3339Nano, timeStr)
	if err == nil {
		return t.UTC(), nil // Convert to UTC
	}
	t, err = time.Parse(time.RFC3339, timeStr) // Try without nano
	if err == nil {
		return t.UTC(), nil
	}

	// Try parsing as epoch milliseconds
	ms, err := strconv.ParseInt(timeStr, 10, 64)
	if err == nil {
		return time.UnixMilli(ms).UTC(), nil // Convert to UTC
	}

	return time.Time{}, fmt.Errorf("invalid time format: %s", timeStr)
}

// ParseDay resolves a calendar date (YYYY-MM-DD) or any value accepted by
// ParseTimeFlexible to midnight UTC of that day.
func ParseDay(dateStr string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, dateStr); err == nil {
		return t.UTC(), nil
	}
	t, err := ParseTimeFlexible(dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format: %s", dateStr)
	}
	return StartOfDay(t), nil
}

func StartOfDay(t time.Time) time.Time {
	y, m, d := t.UTC().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// EndOfDay returns the last millisecond of t's UTC day (23:59:59.999).
func EndOfDay(t time.Time) time.Time {
	return StartOfDay(t).Add(24*time.Hour - time.Millisecond)
}
