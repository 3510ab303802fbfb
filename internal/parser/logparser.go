package parser

import (
	"fmt"
	"io"
	"log-explorer-backend/internal/model"
	"regexp"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

const (
	defaultThread    = "main"
	defaultClassName = "Unknown"
)

// Groups: 1:Timestamp (YYYY-MM-DD[T ]HH:MM:SS[.,mmm][Z])
var headerPattern = regexp.MustCompile(`^(\d{4}-\d{2}-\d{2}[T\s]\d{2}:\d{2}:\d{2}(?:[.,]\d{3})?Z?)`)

// LogParser turns the text of a whole log file into ordered log entries.
type LogParser interface {
	Parse(content string) ([]model.LogEntry, error)
	ParseReader(r io.Reader) ([]model.LogEntry, error)
}

type multilineParser struct {
	levelRegex   *regexp.Regexp
	bracketRegex *regexp.Regexp
	now          func() time.Time
	newID        func() string
}

func NewMultilineParser() LogParser {
	return &multilineParser{
		levelRegex:   regexp.MustCompile(`^(\w+)`),
		bracketRegex: regexp.MustCompile(`\[([^\]]+)\]`),
		now:          time.Now,
		newID:        uuid.NewString,
	}
}

var defaultParser = NewMultilineParser()

// Parse parses content with the default multiline parser.
func Parse(content string) ([]model.LogEntry, error) {
	return defaultParser.Parse(content)
}

// IsHeader reports whether line starts a new log entry.
func IsHeader(line string) bool {
	return headerPattern.MatchString(line)
}

func (p *multilineParser) ParseReader(r io.Reader) ([]model.LogEntry, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("failed to read log content: %w", err)
	}
	return p.Parse(string(data))
}

func (p *multilineParser) Parse(content string) ([]model.LogEntry, error) {
	if strings.TrimSpace(content) == "" {
		return nil, ErrEmptyInput
	}

	startTime := time.Now()
	lines := strings.Split(content, "\n")

	var entries []model.LogEntry
	var currentEntry *model.LogEntry
	var messageBuffer strings.Builder
	var rawBuffer strings.Builder
	continuationCount := 0
	orphanCount := 0

	finalizeEntry := func() {
		if currentEntry != nil {
			currentEntry.Message = strings.TrimSpace(messageBuffer.String())
			currentEntry.Raw = strings.TrimSpace(rawBuffer.String())
			entries = append(entries, *currentEntry)
		}
		currentEntry = nil
		messageBuffer.Reset()
		rawBuffer.Reset()
	}

	for _, line := range lines {
		if IsHeader(line) {
			finalizeEntry()

			entry, err := p.parseHeader(line)
			if err != nil {
				return nil, err
			}
			currentEntry = &entry
			messageBuffer.WriteString(entry.Message)
			rawBuffer.WriteString(entry.Raw)
			continue
		}

		if currentEntry == nil {
			orphanCount++
			continue
		}
		messageBuffer.WriteString("\n")
		messageBuffer.WriteString(line)
		rawBuffer.WriteString("\n")
		rawBuffer.WriteString(line)
		continuationCount++
	}
	finalizeEntry()

	if len(entries) == 0 {
		log.Warn().Int("lines", len(lines)).Msg("No log entry header found in content")
		return nil, ErrNoEntriesFound
	}

	log.Debug().
		Int("lines", len(lines)).
		Int("entries", len(entries)).
		Int("continuation_lines", continuationCount).
		Int("orphan_lines", orphanCount).
		Dur("duration", time.Since(startTime)).
		Msg("Parsed log content")
	return entries, nil
}

// parseHeader decomposes a header line. Message and Raw are left untrimmed so
// continuation lines can be appended before the final trim.
func (p *multilineParser) parseHeader(line string) (model.LogEntry, error) {
	matches := headerPattern.FindStringSubmatch(line)
	if len(matches) != 2 {
		return p.fallbackEntry(line)
	}

	timestampStr := matches[1]
	remaining := strings.TrimSpace(line[len(timestampStr):])

	level := string(model.LevelInfo)
	if levelMatch := p.levelRegex.FindString(remaining); levelMatch != "" {
		level = levelMatch
		remaining = strings.TrimSpace(remaining[len(levelMatch):])
	}

	className := defaultClassName
	thread := defaultThread
	brackets := p.bracketRegex.FindAllStringSubmatch(remaining, 2)
	switch len(brackets) {
	case 2:
		className = brackets[0][1]
		thread = brackets[1][1]
	case 1:
		className = brackets[0][1]
	}

	message := remaining
	if colon := strings.Index(remaining, ":"); colon != -1 {
		message = strings.TrimSpace(remaining[colon+1:])
	}

	return model.LogEntry{
		ID:        p.newID(),
		Timestamp: p.parseTimestamp(timestampStr),
		Level:     NormalizeLevel(level),
		Thread:    thread,
		ClassName: className,
		Message:   message,
		Raw:       line,
	}, nil
}

func (p *multilineParser) fallbackEntry(line string) (model.LogEntry, error) {
	trimmed := strings.TrimSpace(line)
	if trimmed == "" {
		return model.LogEntry{}, fmt.Errorf("%w: blank line", ErrFallbackParse)
	}
	log.Warn().Str("line", trimmed).Msg("Header line could not be decomposed, using fallback entry")
	return model.LogEntry{
		ID:        p.newID(),
		Timestamp: p.now(),
		Level:     model.LevelInfo,
		Thread:    defaultThread,
		ClassName: defaultClassName,
		Message:   trimmed,
		Raw:       trimmed,
	}, nil
}

// parseTimestamp resolves a header timestamp to an instant. Invalid values
// resolve to the current time.
func (p *multilineParser) parseTimestamp(timestampStr string) time.Time {
	normalized := strings.Replace(timestampStr, " ", "T", 1)
	normalized = strings.Replace(normalized, ",", ".", 1)
	if !strings.HasSuffix(normalized, "Z") {
		normalized += "Z"
	}

	ts, err := time.Parse(time.RFC3339Nano, normalized)
	if err != nil {
		log.Warn().Err(err).Str("timestamp", timestampStr).Msg("Invalid log timestamp, using current time")
		return p.now()
	}
	return ts.UTC()
}

// NormalizeLevel maps level names and their common abbreviations onto the five
// recognised severities. Unknown names map to INFO.
func NormalizeLevel(level string) model.Level {
	switch strings.ToUpper(level) {
	case "ERROR", "ERR":
		return model.LevelError
	case "WARN", "WARNING":
		return model.LevelWarn
	case "INFO", "INFORMATION":
		return model.LevelInfo
	case "DEBUG", "DBG":
		return model.LevelDebug
	case "TRACE", "TRC":
		return model.LevelTrace
	default:
		return model.LevelInfo
	}
}
