package service

import (
	"context"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"
	"assettrack/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HistoryEntry describes one ledger append. The recorder fills ID and, when
// Timestamp is zero, the current time.
type HistoryEntry struct {
	AssetID       uuid.UUID
	Action        model.HistoryAction
	Timestamp     time.Time
	PerformedByID *uuid.UUID

	OldValue *string
	NewValue *string

	FromLocationID *uuid.UUID
	ToLocationID   *uuid.UUID
	FromUserID     *uuid.UUID
	ToUserID       *uuid.UUID

	Remarks *string
}

// HistoryService is the single write path into the asset audit ledger.
// Appends are the only mutation it offers.
type HistoryService interface {
	Append(ctx context.Context, entry HistoryEntry) error
	// AppendTx joins the caller's transaction so ledger rows commit or roll
	// back with the state change they document.
	AppendTx(tx *gorm.DB, entry HistoryEntry) error
	Query(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryListResponse, error)
}

type historyService struct {
	repo repository.HistoryRepository
}

func NewHistoryService(repo repository.HistoryRepository) HistoryService {
	return &historyService{repo: repo}
}

func (s *historyService) Append(ctx context.Context, entry HistoryEntry) error {
	return s.repo.Create(ctx, entryToModel(entry))
}

func (s *historyService) AppendTx(tx *gorm.DB, entry HistoryEntry) error {
	return s.repo.CreateTx(tx, entryToModel(entry))
}

func (s *historyService) Query(ctx context.Context, filter dto.HistoryFilter) (*dto.HistoryListResponse, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit < 1 {
		filter.Limit = 50
	}
	entries, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	items := make([]dto.HistoryEntryResponse, 0, len(entries))
	for _, e := range entries {
		items = append(items, *historyToResponse(&e))
	}
	return &dto.HistoryListResponse{
		Data:  items,
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}

func entryToModel(e HistoryEntry) *model.AssetHistory {
	ts := e.Timestamp
	if ts.IsZero() {
		ts = time.Now().UTC()
	}
	return &model.AssetHistory{
		AssetID:        e.AssetID,
		Action:         e.Action,
		Timestamp:      ts,
		PerformedByID:  e.PerformedByID,
		OldValue:       e.OldValue,
		NewValue:       e.NewValue,
		FromLocationID: e.FromLocationID,
		ToLocationID:   e.ToLocationID,
		FromUserID:     e.FromUserID,
		ToUserID:       e.ToUserID,
		Remarks:        e.Remarks,
	}
}

func historyToResponse(h *model.AssetHistory) *dto.HistoryEntryResponse {
	return &dto.HistoryEntryResponse{
		ID:             h.ID.String(),
		AssetID:        h.AssetID.String(),
		Action:         string(h.Action),
		Timestamp:      h.Timestamp.Format(time.RFC3339),
		PerformedByID:  uuidPtrToString(h.PerformedByID),
		OldValue:       h.OldValue,
		NewValue:       h.NewValue,
		FromLocationID: uuidPtrToString(h.FromLocationID),
		ToLocationID:   uuidPtrToString(h.ToLocationID),
		FromUserID:     uuidPtrToString(h.FromUserID),
		ToUserID:       uuidPtrToString(h.ToUserID),
		Remarks:        h.Remarks,
	}
}

func uuidPtrToString(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
