package logindex

import (
	"log-explorer-backend/internal/model"
	"sync"

	"github.com/rs/zerolog/log"
)

// Workspace owns one loaded entry list together with the index built from it.
// It is safe for concurrent use.
type Workspace struct {
	mu    sync.RWMutex
	list  EntryList
	index *Index
}

func NewWorkspace() *Workspace {
	return &Workspace{}
}

// Load replaces the workspace contents with entries and indexes them. The
// returned list carries the version token the index was built for.
func (w *Workspace) Load(entries []model.LogEntry) EntryList {
	list := NewEntryList(entries)
	idx := BuildIndex(list)

	w.mu.Lock()
	defer w.mu.Unlock()
	w.list = list
	w.index = idx
	return list
}

// Entries returns the currently loaded list.
func (w *Workspace) Entries() EntryList {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.list
}

// BuildIndex rebuilds the index for the loaded list, replacing any previous one.
func (w *Workspace) BuildIndex() *Index {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index = BuildIndex(w.list)
	return w.index
}

// Index returns the active index, or nil after ClearIndex.
func (w *Workspace) Index() *Index {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.index
}

// ClearIndex drops the index. Filter and Stats fall back to full scans until
// the next BuildIndex or Load.
func (w *Workspace) ClearIndex() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.index = nil
	log.Debug().Uint64("version", w.list.Version).Msg("Cleared log index")
}

// Filter answers f over list. On the indexed list an empty query returns the
// whole list and a level-only query is served from the level group; anything
// else is a full ordered scan. The returned
// slice must not be modified.
func (w *Workspace) Filter(list EntryList, f model.LogFilter) []model.LogEntry {
	idx := w.Index()
	c := compile(f)

	if idx.Covers(list) {
		switch {
		case c.unconstrained():
			return idx.All()
		case c.levelOnly(f):
			group := idx.ByLevel(model.Level(c.level))
			if group == nil {
				return []model.LogEntry{}
			}
			return group
		}
	}
	return scan(list.Entries, c)
}

// Stats counts list per level, reading the index when list is the indexed one.
func (w *Workspace) Stats(list EntryList) model.LogStats {
	if idx := w.Index(); idx.Covers(list) {
		return idx.Stats()
	}
	return Stats(list.Entries)
}
