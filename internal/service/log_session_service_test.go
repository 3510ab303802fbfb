package service_test

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-explorer-backend/config"
	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/dto"
	"log-explorer-backend/internal/filestore"
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/parser"
	"log-explorer-backend/internal/service"
	"log-explorer-backend/internal/store"
)

const sampleLog = `2024-01-15T10:30:00.123Z ERROR [com.app.Service] [thread-1] : Something failed
Caused by: NullPointerException
    at com.app.Service.run
2024-01-15T10:30:01.000Z INFO [com.app.Main] [main] : Started
2024-01-15T10:31:00.000Z WARN [com.app.Security] [http-1] : Unauthorized error: Full authentication is required to access this resource
2024-01-16T08:00:00.000Z ERROR [com.app.Security] [http-2] : Handling exception: Bad credentials
2024-01-16T09:00:00.000Z DEBUG [com.app.Main] [main] : heartbeat
`

type fixture struct {
	svc      service.LogSessionService
	sessions store.SessionStore
	dir      string
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	dir := t.TempDir()
	cfg := &config.Config{
		Logs:     config.LogsConfig{Directory: dir, MaxUploadBytes: decoder.DefaultMaxBytes},
		Sessions: config.SessionConfig{TTL: time.Hour},
	}
	sessions := store.NewInMemorySessionStore()
	svc := service.NewLogSessionService(cfg, sessions, filestore.NewManager(dir), parser.NewMultilineParser())
	return fixture{svc: svc, sessions: sessions, dir: dir}
}

func (f fixture) upload(t *testing.T) *dto.SessionSummary {
	t.Helper()
	summary, err := f.svc.LoadUpload(context.Background(), "app.log", int64(len(sampleLog)), strings.NewReader(sampleLog))
	require.NoError(t, err)
	return summary
}

func TestLoadUpload(t *testing.T) {
	f := newFixture(t)
	summary := f.upload(t)

	assert.NotEmpty(t, summary.SessionID)
	assert.Equal(t, "app.log", summary.FileName)
	assert.Equal(t, model.LogStats{Total: 5, Info: 1, Warn: 1, Error: 2, Debug: 1}, summary.Stats)
	assert.Equal(t, 2, summary.AuthErrorCount)
	assert.Equal(t, 1, f.sessions.Count())
}

func TestLoadUpload_Errors(t *testing.T) {
	f := newFixture(t)
	ctx := context.Background()

	_, err := f.svc.LoadUpload(ctx, "app.log", 3, strings.NewReader("   "))
	assert.ErrorIs(t, err, parser.ErrEmptyInput)

	_, err = f.svc.LoadUpload(ctx, "app.log", 10, strings.NewReader("no headers"))
	assert.ErrorIs(t, err, parser.ErrNoEntriesFound)

	_, err = f.svc.LoadUpload(ctx, "app.exe", 10, strings.NewReader(sampleLog))
	assert.ErrorIs(t, err, decoder.ErrUnsupportedFile)

	assert.Equal(t, 0, f.sessions.Count())
}

func TestLoadServerFile_Gzip(t *testing.T) {
	f := newFixture(t)
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	_, err := zw.Write([]byte(sampleLog))
	require.NoError(t, err)
	require.NoError(t, zw.Close())
	require.NoError(t, os.WriteFile(filepath.Join(f.dir, "app.log.gz"), buf.Bytes(), 0644))

	summary, err := f.svc.LoadServerFile(context.Background(), "app.log.gz")
	require.NoError(t, err)
	assert.Equal(t, "app.log.gz", summary.FileName)
	assert.Equal(t, 5, summary.Stats.Total)

	_, err = f.svc.LoadServerFile(context.Background(), "../outside.log")
	assert.ErrorIs(t, err, filestore.ErrAccessDenied)

	_, err = f.svc.LoadServerFile(context.Background(), "missing.log")
	assert.ErrorIs(t, err, filestore.ErrFileNotFound)
}

func TestSearchLogs(t *testing.T) {
	f := newFixture(t)
	summary := f.upload(t)
	ctx := context.Background()

	tests := []struct {
		name       string
		req        dto.LogSearchRequest
		expected   []string
		totalCount int64
		stats      model.LogStats
	}{
		{
			name:       "Default sorts newest first",
			req:        dto.LogSearchRequest{},
			expected:   []string{"heartbeat", "Handling exception: Bad credentials", "Unauthorized error: Full authentication is required to access this resource", "Started"},
			totalCount: 5,
			stats:      model.LogStats{Total: 5, Info: 1, Warn: 1, Error: 2, Debug: 1},
		},
		{
			name:       "Level filter lower case",
			req:        dto.LogSearchRequest{Filter: model.LogFilter{Level: "error"}, SortOrder: "asc"},
			expected:   []string{"Something failed\nCaused by: NullPointerException\n    at com.app.Service.run", "Handling exception: Bad credentials"},
			totalCount: 2,
			stats:      model.LogStats{Total: 2, Error: 2},
		},
		{
			name:       "Hide auth errors",
			req:        dto.LogSearchRequest{HideAuthErrors: true, SortOrder: "asc"},
			expected:   []string{"Something failed\nCaused by: NullPointerException\n    at com.app.Service.run", "Started", "heartbeat"},
			totalCount: 3,
			stats:      model.LogStats{Total: 3, Info: 1, Error: 1, Debug: 1},
		},
		{
			name:       "Search and date",
			req:        dto.LogSearchRequest{Filter: model.LogFilter{Search: "com.app.main", DateFrom: "2024-01-16"}},
			expected:   []string{"heartbeat"},
			totalCount: 1,
			stats:      model.LogStats{Total: 1, Debug: 1},
		},
		{
			name:       "Second page",
			req:        dto.LogSearchRequest{SortBy: "timestamp", SortOrder: "asc", Page: 2, Size: 2},
			expected:   []string{"Unauthorized error: Full authentication is required to access this resource", "Handling exception: Bad credentials"},
			totalCount: 5,
			stats:      model.LogStats{Total: 5, Info: 1, Warn: 1, Error: 2, Debug: 1},
		},
		{
			name:       "Page past the end",
			req:        dto.LogSearchRequest{Page: 9, Size: 2},
			expected:   []string{},
			totalCount: 5,
			stats:      model.LogStats{Total: 5, Info: 1, Warn: 1, Error: 2, Debug: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.req.Size == 0 {
				tt.req.Size = 4
			}
			resp, err := f.svc.SearchLogs(ctx, summary.SessionID, tt.req)
			require.NoError(t, err)

			messages := make([]string, 0, len(resp.Logs))
			for _, e := range resp.Logs {
				messages = append(messages, e.Message)
			}
			assert.Equal(t, tt.expected, messages)
			assert.Equal(t, tt.totalCount, resp.TotalCount)
			assert.Equal(t, tt.stats, resp.Stats)
		})
	}
}

func TestSearchLogs_Defaults(t *testing.T) {
	f := newFixture(t)
	summary := f.upload(t)

	resp, err := f.svc.SearchLogs(context.Background(), summary.SessionID, dto.LogSearchRequest{Page: -1, Size: 5000, SortBy: "bogus"})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 100, resp.Size)
	assert.Len(t, resp.Logs, 5)
}

func TestSessionLookups(t *testing.T) {
	f := newFixture(t)
	summary := f.upload(t)
	ctx := context.Background()

	_, err := f.svc.SearchLogs(ctx, "missing", dto.LogSearchRequest{})
	assert.ErrorIs(t, err, store.ErrSessionNotFound)

	stats, err := f.svc.GetStats(ctx, summary.SessionID)
	require.NoError(t, err)
	assert.Equal(t, 5, stats.Total)

	facets, err := f.svc.GetFacets(ctx, summary.SessionID)
	require.NoError(t, err)
	assert.Equal(t, []dto.FacetCount{{Name: "http-1", Count: 1}, {Name: "http-2", Count: 1}, {Name: "main", Count: 2}, {Name: "thread-1", Count: 1}}, facets.Threads)
	assert.Equal(t, []dto.FacetCount{{Name: "com.app.Main", Count: 2}, {Name: "com.app.Security", Count: 2}, {Name: "com.app.Service", Count: 1}}, facets.ClassNames)

	page, err := f.svc.SearchLogs(ctx, summary.SessionID, dto.LogSearchRequest{Size: 1})
	require.NoError(t, err)
	require.Len(t, page.Logs, 1)
	entry, err := f.svc.GetEntry(ctx, summary.SessionID, page.Logs[0].ID)
	require.NoError(t, err)
	assert.Equal(t, page.Logs[0], *entry)

	_, err = f.svc.GetEntry(ctx, summary.SessionID, "nope")
	assert.ErrorIs(t, err, service.ErrEntryNotFound)

	require.NoError(t, f.svc.CloseSession(ctx, summary.SessionID))
	_, err = f.svc.GetStats(ctx, summary.SessionID)
	assert.ErrorIs(t, err, store.ErrSessionNotFound)
}

func TestEvictIdleSessions_KeepsFreshSessions(t *testing.T) {
	f := newFixture(t)
	f.upload(t)

	assert.Equal(t, 0, f.svc.EvictIdleSessions(context.Background()))
	assert.Equal(t, 1, f.sessions.Count())
}
