package logindex

import (
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/util"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// LevelAll is accepted as an explicit "any level" filter value.
const LevelAll = "ALL"

// criteria is a LogFilter with its bounds resolved once per query.
type criteria struct {
	search   string
	level    string
	from     *time.Time
	to       *time.Time
	hasLevel bool
}

func compile(f model.LogFilter) criteria {
	c := criteria{
		search: strings.ToLower(f.Search),
		level:  f.Level,
	}
	c.hasLevel = c.level != "" && c.level != LevelAll

	if f.DateFrom != "" {
		if day, err := util.ParseDay(f.DateFrom); err == nil {
			c.from = &day
		} else {
			log.Warn().Err(err).Str("date_from", f.DateFrom).Msg("Ignoring invalid dateFrom bound")
		}
	}
	if f.DateTo != "" {
		if day, err := util.ParseDay(f.DateTo); err == nil {
			end := util.EndOfDay(day)
			c.to = &end
		} else {
			log.Warn().Err(err).Str("date_to", f.DateTo).Msg("Ignoring invalid dateTo bound")
		}
	}
	return c
}

// unconstrained reports whether every entry matches.
func (c criteria) unconstrained() bool {
	return c.search == "" && !c.hasLevel && c.from == nil && c.to == nil
}

// levelOnly reports whether the query can be answered by a level group alone.
func (c criteria) levelOnly(f model.LogFilter) bool {
	return c.hasLevel && f.Search == "" && f.DateFrom == "" && f.DateTo == ""
}

func (c criteria) matches(entry *model.LogEntry) bool {
	if c.search != "" {
		fields := strings.Join([]string{entry.Message, entry.ClassName, entry.Thread, string(entry.Level)}, " ")
		if !strings.Contains(strings.ToLower(fields), c.search) {
			return false
		}
	}
	if c.hasLevel && string(entry.Level) != c.level {
		return false
	}
	if c.from != nil && entry.Timestamp.Before(*c.from) {
		return false
	}
	if c.to != nil && entry.Timestamp.After(*c.to) {
		return false
	}
	return true
}

// Filter scans entries in order and keeps those matching every criterion of f.
// Unparseable date bounds impose no constraint.
func Filter(entries []model.LogEntry, f model.LogFilter) []model.LogEntry {
	return scan(entries, compile(f))
}

func scan(entries []model.LogEntry, c criteria) []model.LogEntry {
	result := make([]model.LogEntry, 0, len(entries))
	for i := range entries {
		if c.matches(&entries[i]) {
			result = append(result, entries[i])
		}
	}
	return result
}

// Stats tallies entries per level in a single pass.
func Stats(entries []model.LogEntry) model.LogStats {
	stats := model.LogStats{Total: len(entries)}
	for i := range entries {
		switch entries[i].Level {
		case model.LevelInfo:
			stats.Info++
		case model.LevelWarn:
			stats.Warn++
		case model.LevelError:
			stats.Error++
		case model.LevelDebug:
			stats.Debug++
		case model.LevelTrace:
			stats.Trace++
		}
	}
	return stats
}
