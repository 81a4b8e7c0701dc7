package repository

import (
	"context"

	"assettrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// WorkflowFilter narrows transfer/disposal listings.
type WorkflowFilter struct {
	AssetID string
	Status  string
	Page    int
	Limit   int
}

type TransferRepository interface {
	CreateTx(tx *gorm.DB, t *model.AssetTransfer) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetTransfer, error)
	List(ctx context.Context, companyID uuid.UUID, filter WorkflowFilter) ([]model.AssetTransfer, int64, error)
	// UpdateStatusTx commits a transition with a compare-and-swap on status.
	// Returns the number of rows updated: 0 means the stored status no longer
	// matches expected (or the row is gone) and the caller must re-read.
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error)
	DB() *gorm.DB
}

type transferRepo struct{ db *gorm.DB }

func NewTransferRepository(db *gorm.DB) TransferRepository { return &transferRepo{db: db} }

func (r *transferRepo) DB() *gorm.DB { return r.db }

func (r *transferRepo) CreateTx(tx *gorm.DB, t *model.AssetTransfer) error {
	return tx.Create(t).Error
}

func (r *transferRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetTransfer, error) {
	var t model.AssetTransfer
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&t, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func (r *transferRepo) List(ctx context.Context, companyID uuid.UUID, filter WorkflowFilter) ([]model.AssetTransfer, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AssetTransfer{}).
		Where("company_id = ?", companyID)
	if filter.AssetID != "" {
		q = q.Where("asset_id = ?", filter.AssetID)
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page, limit := normalizePage(filter.Page, filter.Limit)
	var transfers []model.AssetTransfer
	err := q.Order("requested_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&transfers).Error
	return transfers, total, err
}

func (r *transferRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error) {
	res := tx.Model(&model.AssetTransfer{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(fields)
	return res.RowsAffected, res.Error
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}
	return page, limit
}
