package cli

import (
	"fmt"
	"os"
	"time"

	"github.com/rs/zerolog/log"

	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/logindex"
	"log-explorer-backend/internal/parser"
)

// loadWorkspace decodes and parses path and indexes the result.
func loadWorkspace(path string, maxBytes int64) (*logindex.Workspace, logindex.EntryList, error) {
	startTime := time.Now()

	info, err := os.Stat(path)
	if err != nil {
		return nil, logindex.EntryList{}, err
	}
	if err := decoder.ValidateFile(path, info.Size(), maxBytes); err != nil {
		return nil, logindex.EntryList{}, err
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, logindex.EntryList{}, err
	}
	defer f.Close()

	content, err := decoder.DecodeReader(path, f, maxBytes)
	if err != nil {
		return nil, logindex.EntryList{}, err
	}
	entries, err := parser.Parse(content)
	if err != nil {
		return nil, logindex.EntryList{}, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	ws := logindex.NewWorkspace()
	list := ws.Load(entries)
	log.Info().
		Str("file", path).
		Str("size", decoder.FormatSize(info.Size())).
		Int("entries", len(entries)).
		Dur("duration", time.Since(startTime)).
		Msg("Log file loaded")
	return ws, list, nil
}
