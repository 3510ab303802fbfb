// Package logindex groups parsed log entries for fast repeated filtering and
// answers filter and stats queries over them.
package logindex

import (
	"log-explorer-backend/internal/model"
	"sort"
	"sync/atomic"
	"time"

	"github.com/rs/zerolog/log"
)

var versionSeq atomic.Uint64

// EntryList is an ordered entry slice tagged with the version of the load it
// came from. A zero Version marks a derived list (e.g. a filter result) that no
// index was built from.
type EntryList struct {
	Version uint64
	Entries []model.LogEntry
}

// NewEntryList tags entries with a fresh version token.
func NewEntryList(entries []model.LogEntry) EntryList {
	return EntryList{
		Version: versionSeq.Add(1),
		Entries: entries,
	}
}

// Unversioned wraps entries that must never match an index.
func Unversioned(entries []model.LogEntry) EntryList {
	return EntryList{Entries: entries}
}

// Index holds the level, thread and class name groupings of one entry list.
// Each group keeps the original parse order.
type Index struct {
	version     uint64
	all         []model.LogEntry
	byLevel     map[model.Level][]model.LogEntry
	byThread    map[string][]model.LogEntry
	byClassName map[string][]model.LogEntry
}

func BuildIndex(list EntryList) *Index {
	startTime := time.Now()
	idx := &Index{
		version:     list.Version,
		all:         list.Entries,
		byLevel:     make(map[model.Level][]model.LogEntry),
		byThread:    make(map[string][]model.LogEntry),
		byClassName: make(map[string][]model.LogEntry),
	}

	for _, entry := range list.Entries {
		idx.byLevel[entry.Level] = append(idx.byLevel[entry.Level], entry)
		idx.byThread[entry.Thread] = append(idx.byThread[entry.Thread], entry)
		idx.byClassName[entry.ClassName] = append(idx.byClassName[entry.ClassName], entry)
	}

	log.Debug().
		Uint64("version", list.Version).
		Int("entries", len(list.Entries)).
		Int("levels", len(idx.byLevel)).
		Int("threads", len(idx.byThread)).
		Int("classes", len(idx.byClassName)).
		Dur("duration", time.Since(startTime)).
		Msg("Built log index")
	return idx
}

// Covers reports whether the index was built from list.
func (i *Index) Covers(list EntryList) bool {
	return i != nil && list.Version != 0 && list.Version == i.version
}

// All returns the indexed list in parse order.
func (i *Index) All() []model.LogEntry { return i.all }

func (i *Index) ByLevel(level model.Level) []model.LogEntry { return i.byLevel[level] }

func (i *Index) ByThread(thread string) []model.LogEntry { return i.byThread[thread] }

func (i *Index) ByClassName(className string) []model.LogEntry { return i.byClassName[className] }

// Threads returns the distinct thread names, sorted.
func (i *Index) Threads() []string { return sortedKeys(i.byThread) }

// ClassNames returns the distinct class names, sorted.
func (i *Index) ClassNames() []string { return sortedKeys(i.byClassName) }

func (i *Index) Stats() model.LogStats {
	return model.LogStats{
		Total: len(i.all),
		Info:  len(i.byLevel[model.LevelInfo]),
		Warn:  len(i.byLevel[model.LevelWarn]),
		Error: len(i.byLevel[model.LevelError]),
		Debug: len(i.byLevel[model.LevelDebug]),
		Trace: len(i.byLevel[model.LevelTrace]),
	}
}

func sortedKeys(groups map[string][]model.LogEntry) []string {
	keys := make([]string, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
