package worker

// Background goroutine that periodically re-attempts delivery for
// notifications stuck in status='pending' with a next_retry_at in the past.
// Uses the circuit breaker to avoid hammering a downed mail server.

import (
	"context"
	"encoding/json"
	"time"

	"assettrack/internal/infra"
	"assettrack/internal/repository"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const (
	retryTickInterval = 30 * time.Second
	retryBatchSize    = 10
)

// RetryCronConfig holds all dependencies for the retry goroutine.
type RetryCronConfig struct {
	NotificationRepo repository.NotificationRepository
	Mailer           *infra.Mailer
	CB               *infra.CircuitBreaker
	RDB              *redis.Client
}

// StartRetryCron launches a background goroutine that ticks every 30s,
// queries pending notifications, and re-attempts delivery through the CB.
// It respects the context for graceful shutdown.
func StartRetryCron(ctx context.Context, cfg RetryCronConfig) {
	go func() {
		ticker := time.NewTicker(retryTickInterval)
		defer ticker.Stop()

		log.Info().Msg("retry_cron: started")

		for {
			select {
			case <-ctx.Done():
				log.Info().Msg("retry_cron: shutting down")
				return
			case <-ticker.C:
				processRetries(ctx, cfg)
			}
		}
	}()
}

func processRetries(ctx context.Context, cfg RetryCronConfig) {
	// If CB is open, skip entirely — don't hammer a downed mail server
	if cfg.CB.State() == infra.CBOpen {
		log.Debug().Msg("retry_cron: circuit breaker is open, skipping tick")
		return
	}

	now := time.Now()
	pending, err := cfg.NotificationRepo.ListPendingRetries(ctx, now, retryBatchSize)
	if err != nil {
		log.Error().Err(err).Msg("retry_cron: failed to query pending retries")
		return
	}
	if len(pending) == 0 {
		return
	}

	log.Info().Int("count", len(pending)).Msg("retry_cron: processing pending notifications")

	w := NewNotificationWorker(cfg.NotificationRepo, cfg.Mailer, cfg.CB, cfg.RDB)
	for i := range pending {
		n := &pending[i]

		// Check CB state before each send — it may have tripped mid-batch
		if cfg.CB.State() == infra.CBOpen {
			log.Debug().Msg("retry_cron: circuit breaker opened mid-batch, stopping")
			return
		}

		raw, _ := json.Marshal(NotificationJobPayload{NotificationID: n.ID.String()})
		w.deliver(ctx, n, raw)
	}
}
