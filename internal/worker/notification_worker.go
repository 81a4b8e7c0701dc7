package worker

// Processes notification delivery jobs from QueueNotification.
// Sends workflow emails via SMTP through the circuit breaker and records the
// outcome on the durable notification row. Failed sends are rescheduled with
// exponential backoff for the retry cron; after MaxNotificationRetries the row
// is marked error and the job lands in the DLQ.

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"assettrack/internal/infra"
	"assettrack/internal/model"
	"assettrack/internal/repository"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

const MaxNotificationRetries = 3

// NotificationJobPayload is the job envelope sent to QueueNotification.
type NotificationJobPayload struct {
	NotificationID string `json:"notification_id"`
}

type NotificationWorker struct {
	repo   repository.NotificationRepository
	mailer *infra.Mailer
	cb     *infra.CircuitBreaker
	rdb    *redis.Client
}

func NewNotificationWorker(repo repository.NotificationRepository, mailer *infra.Mailer, cb *infra.CircuitBreaker, rdb *redis.Client) *NotificationWorker {
	return &NotificationWorker{repo: repo, mailer: mailer, cb: cb, rdb: rdb}
}

// Process delivers one notification.
func (w *NotificationWorker) Process(ctx context.Context, raw json.RawMessage) {
	var payload NotificationJobPayload
	if err := json.Unmarshal(raw, &payload); err != nil {
		log.Error().Err(err).Msg("notification_worker: invalid payload")
		return
	}
	id, err := uuid.Parse(payload.NotificationID)
	if err != nil {
		log.Error().Str("notification_id", payload.NotificationID).Msg("notification_worker: invalid notification_id")
		return
	}

	n, err := w.repo.FindByID(ctx, id)
	if err != nil {
		log.Error().Err(err).Str("notification_id", payload.NotificationID).Msg("notification_worker: notification not found")
		return
	}
	if n.Status == "sent" {
		return // duplicate delivery of the job — already handled
	}

	w.deliver(ctx, n, raw)
}

func (w *NotificationWorker) deliver(ctx context.Context, n *model.Notification, raw json.RawMessage) {
	sendErr := w.cb.Execute(func() error {
		return w.mailer.Send(n.Recipient, n.Subject, n.Body)
	})

	if sendErr == nil {
		n.Status = "sent"
		n.NextRetryAt = nil
		n.LastError = nil
		if err := w.repo.Update(ctx, n); err != nil {
			log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("notification_worker: failed to mark sent")
		}
		log.Info().Str("to", n.Recipient).Str("request", n.RequestNumber).Msg("notification_worker: email sent")
		return
	}

	n.RetryCount++
	errMsg := sendErr.Error()
	n.LastError = &errMsg

	if n.RetryCount >= MaxNotificationRetries {
		n.Status = "error"
		n.NextRetryAt = nil
		if w.rdb != nil {
			SendToDLQ(ctx, w.rdb, QueueNotification, "notification", raw,
				fmt.Sprintf("max retries (%d) exceeded: %s", MaxNotificationRetries, errMsg),
				n.RetryCount)
		}
		log.Error().
			Str("notification_id", n.ID.String()).
			Int("retries", n.RetryCount).
			Msg("notification_worker: max retries exceeded, moving to error/DLQ")
	} else {
		nextRetry := time.Now().Add(computeRetryBackoff(n.RetryCount))
		n.NextRetryAt = &nextRetry
		log.Warn().
			Str("notification_id", n.ID.String()).
			Int("retry_count", n.RetryCount).
			Time("next_retry_at", nextRetry).
			Msg("notification_worker: send failed, scheduled next attempt")
	}

	if err := w.repo.Update(ctx, n); err != nil {
		log.Error().Err(err).Str("notification_id", n.ID.String()).Msg("notification_worker: failed to record failure")
	}
}

// computeRetryBackoff returns the delay before attempt n: 1m, 5m, 15m.
func computeRetryBackoff(retryCount int) time.Duration {
	switch retryCount {
	case 1:
		return 1 * time.Minute
	case 2:
		return 5 * time.Minute
	default:
		return 15 * time.Minute
	}
}
