package scheduler

import (
	"context"
	"log-explorer-backend/config"
	"log-explorer-backend/internal/service"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog/log"
	"go.uber.org/fx"
)

// NewCron builds a cron runner accepting an optional seconds field.
func NewCron() *cron.Cron {
	parser := cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.DowOptional | cron.Descriptor)
	return cron.New(cron.WithParser(parser))
}

// AddSessionSweep registers the idle session eviction job on c.
func AddSessionSweep(c *cron.Cron, schedule string, sessionSvc service.LogSessionService) (cron.EntryID, error) {
	return c.AddFunc(schedule, func() {
		evicted := sessionSvc.EvictIdleSessions(context.Background())
		if evicted > 0 {
			log.Info().Int("evicted", evicted).Msg("Idle log sessions evicted")
		} else {
			log.Debug().Msg("Session sweep found nothing to evict")
		}
	})
}

func NewScheduler(lc fx.Lifecycle, cfg *config.Config, sessionSvc service.LogSessionService) *cron.Cron {
	c := NewCron()

	schedule := cfg.Sessions.SweepSchedule
	if _, err := AddSessionSweep(c, schedule, sessionSvc); err != nil {
		log.Fatal().Err(err).Str("schedule", schedule).Msg("Failed to add cron job")
		return nil
	}
	log.Info().Str("schedule", schedule).Dur("ttl", cfg.Sessions.TTL).Msg("Scheduled session sweep job")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			log.Info().Msg("Starting cron scheduler")
			c.Start()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			log.Info().Msg("Stopping cron scheduler...")
			stopCtx := c.Stop()
			select {
			case <-stopCtx.Done():
				log.Info().Msg("Cron scheduler stopped gracefully.")
				return nil
			case <-ctx.Done():
				log.Error().Msg("Context cancelled while waiting for cron scheduler to stop.")
				return ctx.Err()
			}
		},
	})

	return c
}
