package tests

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"assettrack/internal/config"
	"assettrack/internal/infra"
	"assettrack/internal/model"
	"assettrack/internal/worker"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── Circuit breaker ───────────────────────────────────────────────────────────

var errSMTPDown = errors.New("smtp: connection refused")

func TestCircuitBreaker_TripsAfterThreshold(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	for i := 0; i < 3; i++ {
		err := cb.Execute(func() error { return errSMTPDown })
		assert.ErrorIs(t, err, errSMTPDown)
	}
	assert.Equal(t, infra.CBOpen, cb.State())

	// While open, calls fast-fail without invoking fn.
	called := false
	err := cb.Execute(func() error { called = true; return nil })
	assert.ErrorIs(t, err, infra.ErrCircuitOpen)
	assert.False(t, called)
}

func TestCircuitBreaker_SuccessResetsFailureCount(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 3,
		SuccessThreshold: 1,
		OpenTimeout:      time.Minute,
	})

	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	require.Error(t, cb.Execute(func() error { return errSMTPDown }))

	// Never three consecutive failures — still closed.
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreaker_RecoversThroughHalfOpen(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	assert.Equal(t, infra.CBOpen, cb.State())

	time.Sleep(20 * time.Millisecond)
	assert.Equal(t, infra.CBHalfOpen, cb.State())

	// Two probe successes close the breaker.
	require.NoError(t, cb.Execute(func() error { return nil }))
	require.NoError(t, cb.Execute(func() error { return nil }))
	assert.Equal(t, infra.CBClosed, cb.State())
}

func TestCircuitBreaker_FailedProbeReopens(t *testing.T) {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 2,
		OpenTimeout:      10 * time.Millisecond,
	})

	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	time.Sleep(20 * time.Millisecond)
	require.Equal(t, infra.CBHalfOpen, cb.State())

	require.Error(t, cb.Execute(func() error { return errSMTPDown }))
	assert.Equal(t, infra.CBOpen, cb.State())
}

// ── Notification worker ───────────────────────────────────────────────────────

// trippedCB returns a breaker already in the open state, so deliver fails
// without touching the network.
func trippedCB() *infra.CircuitBreaker {
	cb := infra.NewCircuitBreaker(infra.CircuitBreakerConfig{
		FailureThreshold: 1,
		SuccessThreshold: 1,
		OpenTimeout:      time.Hour,
	})
	_ = cb.Execute(func() error { return errSMTPDown })
	return cb
}

func offlineMailer() *infra.Mailer {
	return infra.NewMailer(&config.Config{SMTPHost: "smtp.invalid", SMTPPort: 587, SMTPFrom: "noreply@demo.local"})
}

func seedNotification(repo *stubNotificationRepo) *model.Notification {
	n := &model.Notification{
		ID:            uuid.New(),
		CompanyID:     uuid.New(),
		Recipient:     "jane@demo.local",
		Subject:       "Request TRF-20260831-0001 is now APPROVED",
		Body:          "Hello Jane",
		RequestKind:   model.KindTransfer,
		RequestNumber: "TRF-20260831-0001",
		Status:        "pending",
	}
	repo.rows[n.ID] = n
	return n
}

func jobPayload(id uuid.UUID) json.RawMessage {
	raw, _ := json.Marshal(worker.NotificationJobPayload{NotificationID: id.String()})
	return raw
}

func TestNotificationWorker_InvalidPayloadNoPanic(t *testing.T) {
	w := worker.NewNotificationWorker(newStubNotificationRepo(), offlineMailer(), trippedCB(), nil)

	assert.NotPanics(t, func() {
		w.Process(context.Background(), json.RawMessage(`{not json`))
		w.Process(context.Background(), jobPayload(uuid.New())) // unknown row
	})
}

func TestNotificationWorker_AlreadySentIsSkipped(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(repo)
	n.Status = "sent"

	w := worker.NewNotificationWorker(repo, offlineMailer(), trippedCB(), nil)
	w.Process(context.Background(), jobPayload(n.ID))

	assert.Equal(t, "sent", n.Status)
	assert.Equal(t, 0, n.RetryCount)
}

func TestNotificationWorker_FailureSchedulesBackoff(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(repo)

	w := worker.NewNotificationWorker(repo, offlineMailer(), trippedCB(), nil)
	before := time.Now()
	w.Process(context.Background(), jobPayload(n.ID))

	assert.Equal(t, "pending", n.Status)
	assert.Equal(t, 1, n.RetryCount)
	require.NotNil(t, n.LastError)
	assert.Contains(t, *n.LastError, "circuit breaker")
	// First backoff step is one minute out.
	require.NotNil(t, n.NextRetryAt)
	assert.WithinDuration(t, before.Add(time.Minute), *n.NextRetryAt, 5*time.Second)
}

func TestNotificationWorker_ExhaustedRetriesMarkError(t *testing.T) {
	repo := newStubNotificationRepo()
	n := seedNotification(repo)
	n.RetryCount = worker.MaxNotificationRetries - 1

	w := worker.NewNotificationWorker(repo, offlineMailer(), trippedCB(), nil)
	w.Process(context.Background(), jobPayload(n.ID))

	assert.Equal(t, "error", n.Status)
	assert.Equal(t, worker.MaxNotificationRetries, n.RetryCount)
	assert.Nil(t, n.NextRetryAt)
}

func TestPendingRetryListing(t *testing.T) {
	repo := newStubNotificationRepo()
	due := seedNotification(repo)
	past := time.Now().Add(-time.Minute)
	due.NextRetryAt = &past

	notDue := seedNotification(repo)
	future := time.Now().Add(time.Hour)
	notDue.NextRetryAt = &future

	rows, err := repo.ListPendingRetries(context.Background(), time.Now(), 10)
	require.NoError(t, err)
	require.Len(t, rows, 1)
	assert.Equal(t, due.ID, rows[0].ID)
}
