package model

import "time"

// Level is one of the five recognised severities.
type Level string

const (
	LevelInfo  Level = "INFO"
	LevelWarn  Level = "WARN"
	LevelError Level = "ERROR"
	LevelDebug Level = "DEBUG"
	LevelTrace Level = "TRACE"
)

// Levels lists every severity in display order.
var Levels = []Level{LevelInfo, LevelWarn, LevelError, LevelDebug, LevelTrace}

type LogEntry struct {
	ID        string    `json:"id"`
	Timestamp time.Time `json:"timestamp"`
	Level     Level     `json:"level"`
	Thread    string    `json:"thread"`
	ClassName string    `json:"className"`
	Message   string    `json:"message"`
	Raw       string    `json:"raw"`
}

// LogFilter holds the criteria of a filter query. Empty fields mean no constraint.
// DateFrom and DateTo are calendar dates (YYYY-MM-DD) or RFC 3339 instants.
type LogFilter struct {
	Search   string `json:"search"`
	Level    string `json:"level"`
	DateFrom string `json:"dateFrom"`
	DateTo   string `json:"dateTo"`
}

type LogStats struct {
	Total int `json:"total"`
	Info  int `json:"info"`
	Warn  int `json:"warn"`
	Error int `json:"error"`
	Debug int `json:"debug"`
	Trace int `json:"trace"`
}
