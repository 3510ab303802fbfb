package service

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log-explorer-backend/config"
	"log-explorer-backend/internal/decoder"
	"log-explorer-backend/internal/dto"
	"log-explorer-backend/internal/filestore"
	"log-explorer-backend/internal/logindex"
	"log-explorer-backend/internal/model"
	"log-explorer-backend/internal/parser"
	"log-explorer-backend/internal/store"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

const (
	defaultPageSize = 100
	maxPageSize     = 1000
)

var ErrEntryNotFound = errors.New("log entry not found")

// authNoisePatterns match the authentication failures that flood most
// application logs and can be hidden from search results.
var authNoisePatterns = []string{
	"unauthorized error: full authentication is required to access this resource",
	"handling exception: bad credentials",
}

type LogSessionService interface {
	LoadUpload(ctx context.Context, fileName string, size int64, r io.Reader) (*dto.SessionSummary, error)
	LoadServerFile(ctx context.Context, fileName string) (*dto.SessionSummary, error)
	SearchLogs(ctx context.Context, sessionID string, req dto.LogSearchRequest) (*dto.LogSearchResponse, error)
	GetStats(ctx context.Context, sessionID string) (*model.LogStats, error)
	GetFacets(ctx context.Context, sessionID string) (*dto.FacetsResponse, error)
	GetEntry(ctx context.Context, sessionID string, entryID string) (*model.LogEntry, error)
	CloseSession(ctx context.Context, sessionID string) error
	EvictIdleSessions(ctx context.Context) int
}

type logSessionService struct {
	sessions   store.SessionStore
	files      filestore.Manager
	parser     parser.LogParser
	logsCfg    *config.LogsConfig
	sessionTTL time.Duration
}

func NewLogSessionService(
	cfg *config.Config,
	sessions store.SessionStore,
	files filestore.Manager,
	logParser parser.LogParser,
) LogSessionService {
	return &logSessionService{
		sessions:   sessions,
		files:      files,
		parser:     logParser,
		logsCfg:    &cfg.Logs,
		sessionTTL: cfg.Sessions.TTL,
	}
}

func (s *logSessionService) LoadUpload(ctx context.Context, fileName string, size int64, r io.Reader) (*dto.SessionSummary, error) {
	if err := decoder.ValidateFile(fileName, size, s.logsCfg.MaxUploadBytes); err != nil {
		return nil, err
	}
	log.Info().Str("file", fileName).Str("size", decoder.FormatSize(size)).Msg("Loading uploaded log file")

	content, err := decoder.DecodeReader(fileName, r, s.logsCfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, fileName, content)
}

func (s *logSessionService) LoadServerFile(ctx context.Context, fileName string) (*dto.SessionSummary, error) {
	f, info, err := s.files.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if s.logsCfg.MaxUploadBytes > 0 && info.Size > s.logsCfg.MaxUploadBytes {
		return nil, fmt.Errorf("%w: %d > %d bytes", decoder.ErrFileTooLarge, info.Size, s.logsCfg.MaxUploadBytes)
	}
	log.Info().Str("file", info.Path).Str("size", decoder.FormatSize(info.Size)).Msg("Loading server log file")

	content, err := decoder.DecodeReader(info.Name, f, s.logsCfg.MaxUploadBytes)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, info.Name, content)
}

func (s *logSessionService) load(ctx context.Context, fileName string, content string) (*dto.SessionSummary, error) {
	startTime := time.Now()
	entries, err := s.parser.Parse(content)
	if err != nil {
		log.Warn().Err(err).Str("file", fileName).Msg("Failed to parse log file")
		return nil, fmt.Errorf("failed to parse %s: %w", fileName, err)
	}

	session, err := s.sessions.CreateSession(ctx, fileName, entries)
	if err != nil {
		return nil, fmt.Errorf("failed to create session: %w", err)
	}

	list := session.Entries()
	summary := &dto.SessionSummary{
		SessionID:      session.ID,
		FileName:       fileName,
		LoadedAt:       session.LoadedAt,
		Stats:          session.Workspace.Stats(list),
		AuthErrorCount: countAuthNoise(list.Entries),
	}
	log.Info().
		Str("session_id", session.ID).
		Str("file", fileName).
		Int("entries", summary.Stats.Total).
		Int("errors", summary.Stats.Error).
		Dur("duration", time.Since(startTime)).
		Msg("Log file loaded")
	return summary, nil
}

func (s *logSessionService) SearchLogs(ctx context.Context, sessionID string, req dto.LogSearchRequest) (*dto.LogSearchResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if req.Page <= 0 {
		req.Page = 1
	}
	if req.Size <= 0 || req.Size > maxPageSize {
		req.Size = defaultPageSize
	}
	sortField, err := logindex.ParseSortField(req.SortBy)
	if err != nil {
		if req.SortBy != "" {
			log.Warn().Str("sort_field", req.SortBy).Msg("Attempting to sort on unknown field")
		}
		sortField = logindex.SortByTimestamp
	}
	sortOrder := logindex.ParseSortOrder(req.SortOrder)
	req.Filter.Level = strings.ToUpper(strings.TrimSpace(req.Filter.Level))

	log.Debug().
		Str("session_id", sessionID).
		Str("search", req.Filter.Search).
		Str("level", req.Filter.Level).
		Str("date_from", req.Filter.DateFrom).
		Str("date_to", req.Filter.DateTo).
		Bool("hide_auth_errors", req.HideAuthErrors).
		Int("page", req.Page).
		Int("size", req.Size).
		Msg("Searching logs")

	list := session.Entries()
	statsList := list
	filtered := list.Entries
	if req.Filter != (model.LogFilter{}) || req.HideAuthErrors {
		filtered = session.Workspace.Filter(list, req.Filter)
		if req.HideAuthErrors {
			filtered = withoutAuthNoise(filtered)
		}
		statsList = logindex.Unversioned(filtered)
	}

	sorted := logindex.Sort(filtered, sortField, sortOrder)
	from := (req.Page - 1) * req.Size
	if from > len(sorted) {
		from = len(sorted)
	}
	to := from + req.Size
	if to > len(sorted) {
		to = len(sorted)
	}

	return &dto.LogSearchResponse{
		Logs:       sorted[from:to],
		TotalCount: int64(len(sorted)),
		Page:       req.Page,
		Size:       req.Size,
		Stats:      session.Workspace.Stats(statsList),
	}, nil
}

func (s *logSessionService) GetStats(ctx context.Context, sessionID string) (*model.LogStats, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	stats := session.Workspace.Stats(session.Entries())
	return &stats, nil
}

func (s *logSessionService) GetFacets(ctx context.Context, sessionID string) (*dto.FacetsResponse, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	idx := session.Workspace.Index()
	if idx == nil {
		idx = session.Workspace.BuildIndex()
	}
	resp := &dto.FacetsResponse{
		Threads:    make([]dto.FacetCount, 0),
		ClassNames: make([]dto.FacetCount, 0),
	}
	for _, thread := range idx.Threads() {
		resp.Threads = append(resp.Threads, dto.FacetCount{Name: thread, Count: len(idx.ByThread(thread))})
	}
	for _, className := range idx.ClassNames() {
		resp.ClassNames = append(resp.ClassNames, dto.FacetCount{Name: className, Count: len(idx.ByClassName(className))})
	}
	return resp, nil
}

func (s *logSessionService) GetEntry(ctx context.Context, sessionID string, entryID string) (*model.LogEntry, error) {
	session, err := s.sessions.GetSession(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	entries := session.Entries().Entries
	for i := range entries {
		if entries[i].ID == entryID {
			entry := entries[i]
			return &entry, nil
		}
	}
	return nil, ErrEntryNotFound
}

func (s *logSessionService) CloseSession(ctx context.Context, sessionID string) error {
	return s.sessions.DeleteSession(ctx, sessionID)
}

func (s *logSessionService) EvictIdleSessions(ctx context.Context) int {
	return s.sessions.EvictIdle(ctx, s.sessionTTL)
}

func isAuthNoise(entry *model.LogEntry) bool {
	message := strings.ToLower(entry.Message)
	for _, pattern := range authNoisePatterns {
		if strings.Contains(message, pattern) {
			return true
		}
	}
	return false
}

func countAuthNoise(entries []model.LogEntry) int {
	count := 0
	for i := range entries {
		if isAuthNoise(&entries[i]) {
			count++
		}
	}
	return count
}

func withoutAuthNoise(entries []model.LogEntry) []model.LogEntry {
	kept := make([]model.LogEntry, 0, len(entries))
	for i := range entries {
		if !isAuthNoise(&entries[i]) {
			kept = append(kept, entries[i])
		}
	}
	return kept
}
