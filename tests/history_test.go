package tests

import (
	"context"
	"sort"
	"testing"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"
	"assettrack/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// ── Stub ──────────────────────────────────────────────────────────────────────

// stubHistoryRepo collects ledger rows in memory. Like the real table it is
// insert-only: there is nothing here to update or delete. Setting createErr
// makes every append fail, for exercising callers' error paths.
type stubHistoryRepo struct {
	entries   []model.AssetHistory
	createErr error
}

func newStubHistoryRepo() *stubHistoryRepo { return &stubHistoryRepo{} }

func (r *stubHistoryRepo) Create(_ context.Context, h *model.AssetHistory) error {
	if r.createErr != nil {
		return r.createErr
	}
	if h.ID == uuid.Nil {
		h.ID = uuid.New()
	}
	r.entries = append(r.entries, *h)
	return nil
}

func (r *stubHistoryRepo) CreateTx(_ *gorm.DB, h *model.AssetHistory) error {
	return r.Create(context.Background(), h)
}

func (r *stubHistoryRepo) List(_ context.Context, filter dto.HistoryFilter) ([]model.AssetHistory, int64, error) {
	var matched []model.AssetHistory
	for _, e := range r.entries {
		if filter.AssetID != "" && e.AssetID.String() != filter.AssetID {
			continue
		}
		if filter.Action != "" && string(e.Action) != filter.Action {
			continue
		}
		if filter.PerformedBy != "" && (e.PerformedByID == nil || e.PerformedByID.String() != filter.PerformedBy) {
			continue
		}
		matched = append(matched, e)
	}
	sort.Slice(matched, func(i, j int) bool {
		return matched[i].Timestamp.After(matched[j].Timestamp)
	})
	total := int64(len(matched))

	page, limit := filter.Page, filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 50
	}
	start := (page - 1) * limit
	if start > len(matched) {
		start = len(matched)
	}
	end := start + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[start:end], total, nil
}

func (r *stubHistoryRepo) actionsFor(assetID uuid.UUID) []model.HistoryAction {
	var actions []model.HistoryAction
	for _, e := range r.entries {
		if e.AssetID == assetID {
			actions = append(actions, e.Action)
		}
	}
	return actions
}

var _ repository.HistoryRepository = (*stubHistoryRepo)(nil)

// ── Tests ─────────────────────────────────────────────────────────────────────

func TestHistoryAppend_FillsTimestamp(t *testing.T) {
	repo := newStubHistoryRepo()
	svc := service.NewHistoryService(repo)
	assetID := uuid.New()

	before := time.Now().UTC()
	err := svc.Append(context.Background(), service.HistoryEntry{
		AssetID: assetID,
		Action:  model.HistoryCreated,
	})
	require.NoError(t, err)

	require.Len(t, repo.entries, 1)
	got := repo.entries[0]
	assert.Equal(t, assetID, got.AssetID)
	assert.False(t, got.Timestamp.Before(before))
}

func TestHistoryAppend_KeepsExplicitTimestamp(t *testing.T) {
	repo := newStubHistoryRepo()
	svc := service.NewHistoryService(repo)
	ts := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)

	err := svc.Append(context.Background(), service.HistoryEntry{
		AssetID:   uuid.New(),
		Action:    model.HistoryStatusChanged,
		Timestamp: ts,
	})
	require.NoError(t, err)
	assert.Equal(t, ts, repo.entries[0].Timestamp)
}

func TestHistoryQuery_NewestFirstAndFiltered(t *testing.T) {
	repo := newStubHistoryRepo()
	svc := service.NewHistoryService(repo)
	assetID := uuid.New()
	otherID := uuid.New()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i, action := range []model.HistoryAction{
		model.HistoryCreated,
		model.HistoryAssigned,
		model.HistoryLocationChanged,
	} {
		require.NoError(t, svc.Append(context.Background(), service.HistoryEntry{
			AssetID:   assetID,
			Action:    action,
			Timestamp: base.Add(time.Duration(i) * time.Hour),
		}))
	}
	require.NoError(t, svc.Append(context.Background(), service.HistoryEntry{
		AssetID:   otherID,
		Action:    model.HistoryCreated,
		Timestamp: base,
	}))

	resp, err := svc.Query(context.Background(), dto.HistoryFilter{AssetID: assetID.String()})
	require.NoError(t, err)
	require.Len(t, resp.Data, 3)
	assert.Equal(t, int64(3), resp.Total)
	// Descending by timestamp: the latest action comes first.
	assert.Equal(t, "LOCATION_CHANGED", resp.Data[0].Action)
	assert.Equal(t, "CREATED", resp.Data[2].Action)

	// Action filter narrows further.
	resp, err = svc.Query(context.Background(), dto.HistoryFilter{
		AssetID: assetID.String(),
		Action:  "ASSIGNED",
	})
	require.NoError(t, err)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "ASSIGNED", resp.Data[0].Action)
}

func TestHistoryQuery_Pagination(t *testing.T) {
	repo := newStubHistoryRepo()
	svc := service.NewHistoryService(repo)
	assetID := uuid.New()

	base := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		require.NoError(t, svc.Append(context.Background(), service.HistoryEntry{
			AssetID:   assetID,
			Action:    model.HistoryUpdated,
			Timestamp: base.Add(time.Duration(i) * time.Minute),
		}))
	}

	resp, err := svc.Query(context.Background(), dto.HistoryFilter{
		AssetID: assetID.String(),
		Page:    2,
		Limit:   2,
	})
	require.NoError(t, err)
	assert.Equal(t, int64(5), resp.Total)
	assert.Len(t, resp.Data, 2)
	assert.Equal(t, 2, resp.Page)
}
