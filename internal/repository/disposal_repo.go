package repository

import (
	"context"

	"assettrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type DisposalRepository interface {
	CreateTx(tx *gorm.DB, d *model.AssetDisposal) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetDisposal, error)
	List(ctx context.Context, companyID uuid.UUID, filter WorkflowFilter) ([]model.AssetDisposal, int64, error)
	// UpdateStatusTx — see TransferRepository; same compare-and-swap contract.
	UpdateStatusTx(tx *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error)
	DB() *gorm.DB
}

type disposalRepo struct{ db *gorm.DB }

func NewDisposalRepository(db *gorm.DB) DisposalRepository { return &disposalRepo{db: db} }

func (r *disposalRepo) DB() *gorm.DB { return r.db }

func (r *disposalRepo) CreateTx(tx *gorm.DB, d *model.AssetDisposal) error {
	return tx.Create(d).Error
}

func (r *disposalRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.AssetDisposal, error) {
	var d model.AssetDisposal
	err := r.db.WithContext(ctx).
		Where("company_id = ?", companyID).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *disposalRepo) List(ctx context.Context, companyID uuid.UUID, filter WorkflowFilter) ([]model.AssetDisposal, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.AssetDisposal{}).
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
	var disposals []model.AssetDisposal
	err := q.Order("requested_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&disposals).Error
	return disposals, total, err
}

func (r *disposalRepo) UpdateStatusTx(tx *gorm.DB, id uuid.UUID, expected model.RequestStatus, fields map[string]interface{}) (int64, error) {
	res := tx.Model(&model.AssetDisposal{}).
		Where("id = ? AND status = ?", id, expected).
		Updates(fields)
	return res.RowsAffected, res.Error
}
