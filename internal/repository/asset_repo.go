package repository

import (
	"context"

	"assettrack/internal/dto"
	"assettrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// AssetRepository's writes all take the caller's transaction so the service
// layer can commit an asset change and its history row as one unit.
type AssetRepository interface {
	CreateTx(tx *gorm.DB, a *model.Asset) error
	FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error)
	FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Asset, error)
	FindByQRCode(ctx context.Context, qr uuid.UUID) (*model.Asset, error)
	List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) ([]model.Asset, int64, error)
	ListWithFinancials(ctx context.Context, companyID uuid.UUID) ([]model.Asset, error)
	UpdateTx(tx *gorm.DB, a *model.Asset) error
	UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error
	SoftDeleteTx(tx *gorm.DB, companyID, id uuid.UUID) error
	DB() *gorm.DB // exposes the DB for transaction creation in service layer
}

type assetRepo struct{ db *gorm.DB }

func NewAssetRepository(db *gorm.DB) AssetRepository { return &assetRepo{db: db} }

func (r *assetRepo) DB() *gorm.DB { return r.db }

func (r *assetRepo) CreateTx(tx *gorm.DB, a *model.Asset) error {
	return tx.Create(a).Error
}

func (r *assetRepo) FindByID(ctx context.Context, companyID, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		First(&a, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) FindByIDTx(tx *gorm.DB, id uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	if err := tx.Where("is_deleted = false").First(&a, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) FindByQRCode(ctx context.Context, qr uuid.UUID) (*model.Asset, error) {
	var a model.Asset
	err := r.db.WithContext(ctx).
		Where("qr_code = ? AND is_deleted = false", qr).
		First(&a).Error
	if err != nil {
		return nil, err
	}
	return &a, nil
}

func (r *assetRepo) List(ctx context.Context, companyID uuid.UUID, filter dto.AssetFilter) ([]model.Asset, int64, error) {
	q := r.db.WithContext(ctx).Model(&model.Asset{}).
		Where("company_id = ? AND is_deleted = false", companyID)

	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.CategoryID != "" {
		q = q.Where("category_id = ?", filter.CategoryID)
	}
	if filter.LocationID != "" {
		q = q.Where("location_id = ?", filter.LocationID)
	}
	if filter.Search != "" {
		like := "%" + filter.Search + "%"
		q = q.Where("asset_tag ILIKE ? OR name ILIKE ? OR serial_number ILIKE ?", like, like, like)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	page := filter.Page
	limit := filter.Limit
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 500 {
		limit = 50
	}

	var assets []model.Asset
	err := q.Order("created_at DESC").
		Offset((page - 1) * limit).Limit(limit).
		Find(&assets).Error
	return assets, total, err
}

// ListWithFinancials returns every non-deleted asset of the company that has
// a purchase price — the working set for the financial summary report.
func (r *assetRepo) ListWithFinancials(ctx context.Context, companyID uuid.UUID) ([]model.Asset, error) {
	var assets []model.Asset
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false AND purchase_price IS NOT NULL", companyID).
		Find(&assets).Error
	return assets, err
}

func (r *assetRepo) UpdateTx(tx *gorm.DB, a *model.Asset) error {
	return tx.Save(a).Error
}

func (r *assetRepo) UpdateFieldsTx(tx *gorm.DB, id uuid.UUID, fields map[string]interface{}) error {
	return tx.Model(&model.Asset{}).Where("id = ?", id).Updates(fields).Error
}

func (r *assetRepo) SoftDeleteTx(tx *gorm.DB, companyID, id uuid.UUID) error {
	res := tx.Model(&model.Asset{}).
		Where("id = ? AND company_id = ? AND is_deleted = false", id, companyID).
		Updates(map[string]interface{}{"is_deleted": true, "deleted_at": gorm.Expr("now()")})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
