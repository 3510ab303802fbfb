package logindex

import (
	"fmt"
	"log-explorer-backend/internal/model"
	"slices"
	"strings"
)

type SortField string

const (
	SortByTimestamp SortField = "timestamp"
	SortByLevel     SortField = "level"
	SortByThread    SortField = "thread"
	SortByClassName SortField = "className"
	SortByMessage   SortField = "message"
)

type SortOrder string

const (
	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

type comparator func(a, b *model.LogEntry) int

var comparators = map[SortField]comparator{
	SortByTimestamp: func(a, b *model.LogEntry) int { return a.Timestamp.Compare(b.Timestamp) },
	SortByLevel:     func(a, b *model.LogEntry) int { return strings.Compare(string(a.Level), string(b.Level)) },
	SortByThread:    func(a, b *model.LogEntry) int { return strings.Compare(a.Thread, b.Thread) },
	SortByClassName: func(a, b *model.LogEntry) int { return strings.Compare(a.ClassName, b.ClassName) },
	SortByMessage:   func(a, b *model.LogEntry) int { return strings.Compare(a.Message, b.Message) },
}

func ParseSortField(s string) (SortField, error) {
	field := SortField(s)
	if _, ok := comparators[field]; !ok {
		return "", fmt.Errorf("unknown sort field: %q", s)
	}
	return field, nil
}

// ParseSortOrder accepts asc or desc in any case; anything else is desc.
func ParseSortOrder(s string) SortOrder {
	if strings.EqualFold(s, string(SortAsc)) {
		return SortAsc
	}
	return SortDesc
}

// Sort returns a stably sorted copy of entries. Entries comparing equal keep
// their parse order.
func Sort(entries []model.LogEntry, field SortField, order SortOrder) []model.LogEntry {
	cmp, ok := comparators[field]
	if !ok {
		cmp = comparators[SortByTimestamp]
	}
	sorted := slices.Clone(entries)
	slices.SortStableFunc(sorted, func(a, b model.LogEntry) int {
		if order == SortAsc {
			return cmp(&a, &b)
		}
		return cmp(&b, &a)
	})
	return sorted
}
