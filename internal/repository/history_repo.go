package repository

import (
	"context"
	"time"

	"assettrack/internal/dto"
	"assettrack/internal/model"

	"gorm.io/gorm"
)

// HistoryRepository is insert-only by design: the audit ledger exposes no
// Update or Delete. Each append is an independent insert; concurrent appends
// to the same asset interleave freely.
type HistoryRepository interface {
	Create(ctx context.Context, h *model.AssetHistory) error
	CreateTx(tx *gorm.DB, h *model.AssetHistory) error
	List(ctx context.Context, filter dto.HistoryFilter) ([]model.AssetHistory, int64, error)
}

type historyRepo struct{ db *gorm.DB }

func NewHistoryRepository(db *gorm.DB) HistoryRepository { return &historyRepo{db: db} }

func (r *historyRepo) Create(ctx context.Context, h *model.AssetHistory) error {
	return r.db.WithContext(ctx).Create(h).Error
}

func (r *historyRepo) CreateTx(tx *gorm.DB, h *model.AssetHistory) error {
	return tx.Create(h).Error
}

func (r *historyRepo) List(ctx context.Context, filter dto.HistoryFilter) ([]model.AssetHistory, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AssetHistory{})

	if filter.AssetID != "" {
		q = q.Where("asset_id = ?", filter.AssetID)
	}
	if filter.Action != "" {
		q = q.Where("action = ?", filter.Action)
	}
	if filter.PerformedBy != "" {
		q = q.Where("performed_by_id = ?", filter.PerformedBy)
	}
	if filter.From != "" {
		if from, err := time.Parse("2006-01-02", filter.From); err == nil {
			q = q.Where("timestamp >= ?", from)
		}
	}
	if filter.To != "" {
		if to, err := time.Parse("2006-01-02", filter.To); err == nil {
			// inclusive end of day
			q = q.Where("timestamp < ?", to.AddDate(0, 0, 1))
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var entries []model.AssetHistory
	err := q.Order("timestamp DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&entries).Error
	return entries, total, err
}
