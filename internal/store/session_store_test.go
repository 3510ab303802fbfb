package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"log-explorer-backend/internal/model"
)

func testEntries() []model.LogEntry {
	return []model.LogEntry{
		{ID: "1", Level: model.LevelError, Thread: "main", ClassName: "A"},
		{ID: "2", Level: model.LevelInfo, Thread: "worker", ClassName: "B"},
	}
}

func TestSessionStore_Lifecycle(t *testing.T) {
	ctx := context.Background()
	s := NewInMemorySessionStore()

	session, err := s.CreateSession(ctx, "app.log", testEntries())
	require.NoError(t, err)
	require.NotEmpty(t, session.ID)
	assert.Equal(t, "app.log", session.FileName)
	assert.Equal(t, 1, s.Count())

	got, err := s.GetSession(ctx, session.ID)
	require.NoError(t, err)
	assert.Same(t, session, got)
	assert.Len(t, got.Entries().Entries, 2)
	assert.True(t, got.Workspace.Index().Covers(got.Entries()))

	require.NoError(t, s.DeleteSession(ctx, session.ID))
	_, err = s.GetSession(ctx, session.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	assert.ErrorIs(t, s.DeleteSession(ctx, session.ID), ErrSessionNotFound)
}

func TestSessionStore_IndependentWorkspaces(t *testing.T) {
	ctx := context.Background()
	s := NewInMemorySessionStore()

	first, err := s.CreateSession(ctx, "a.log", testEntries())
	require.NoError(t, err)
	second, err := s.CreateSession(ctx, "b.log", testEntries()[:1])
	require.NoError(t, err)

	assert.NotEqual(t, first.Entries().Version, second.Entries().Version)
	assert.False(t, first.Workspace.Index().Covers(second.Entries()))
	assert.Equal(t, 2, first.Workspace.Stats(first.Entries()).Total)
	assert.Equal(t, 1, second.Workspace.Stats(second.Entries()).Total)
}

func TestSessionStore_EvictIdle(t *testing.T) {
	ctx := context.Background()
	clock := time.Date(2024, 1, 15, 10, 0, 0, 0, time.UTC)
	s := &inMemorySessionStore{
		store: make(map[string]*Session),
		now:   func() time.Time { return clock },
	}

	stale, err := s.CreateSession(ctx, "stale.log", testEntries())
	require.NoError(t, err)
	clock = clock.Add(30 * time.Minute)
	fresh, err := s.CreateSession(ctx, "fresh.log", testEntries())
	require.NoError(t, err)

	clock = clock.Add(45 * time.Minute)
	evicted := s.EvictIdle(ctx, time.Hour)

	assert.Equal(t, 1, evicted)
	_, err = s.GetSession(ctx, stale.ID)
	assert.ErrorIs(t, err, ErrSessionNotFound)
	_, err = s.GetSession(ctx, fresh.ID)
	assert.NoError(t, err)
}
