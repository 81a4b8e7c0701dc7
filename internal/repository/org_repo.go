package repository

import (
	"context"

	"assettrack/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// OrgRepository covers the small reference entities: locations, departments,
// asset categories, and vendors. All reads are company-scoped.
type OrgRepository interface {
	CreateLocation(ctx context.Context, l *model.Location) error
	FindLocation(ctx context.Context, companyID, id uuid.UUID) (*model.Location, error)
	ListLocations(ctx context.Context, companyID uuid.UUID) ([]model.Location, error)

	CreateDepartment(ctx context.Context, d *model.Department) error
	FindDepartment(ctx context.Context, companyID, id uuid.UUID) (*model.Department, error)
	ListDepartments(ctx context.Context, companyID uuid.UUID) ([]model.Department, error)

	CreateCategory(ctx context.Context, c *model.AssetCategory) error
	FindCategory(ctx context.Context, companyID, id uuid.UUID) (*model.AssetCategory, error)
	ListCategories(ctx context.Context, companyID uuid.UUID) ([]model.AssetCategory, error)

	CreateVendor(ctx context.Context, v *model.Vendor) error
	FindVendor(ctx context.Context, companyID, id uuid.UUID) (*model.Vendor, error)
	ListVendors(ctx context.Context, companyID uuid.UUID) ([]model.Vendor, error)
}

type orgRepo struct{ db *gorm.DB }

func NewOrgRepository(db *gorm.DB) OrgRepository { return &orgRepo{db: db} }

func (r *orgRepo) CreateLocation(ctx context.Context, l *model.Location) error {
	return r.db.WithContext(ctx).Create(l).Error
}

func (r *orgRepo) FindLocation(ctx context.Context, companyID, id uuid.UUID) (*model.Location, error) {
	var l model.Location
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		First(&l, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *orgRepo) ListLocations(ctx context.Context, companyID uuid.UUID) ([]model.Location, error) {
	var locations []model.Location
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		Order("name ASC").
		Find(&locations).Error
	return locations, err
}

func (r *orgRepo) CreateDepartment(ctx context.Context, d *model.Department) error {
	return r.db.WithContext(ctx).Create(d).Error
}

func (r *orgRepo) FindDepartment(ctx context.Context, companyID, id uuid.UUID) (*model.Department, error) {
	var d model.Department
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		First(&d, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *orgRepo) ListDepartments(ctx context.Context, companyID uuid.UUID) ([]model.Department, error) {
	var departments []model.Department
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		Order("name ASC").
		Find(&departments).Error
	return departments, err
}

func (r *orgRepo) CreateCategory(ctx context.Context, c *model.AssetCategory) error {
	return r.db.WithContext(ctx).Create(c).Error
}

func (r *orgRepo) FindCategory(ctx context.Context, companyID, id uuid.UUID) (*model.AssetCategory, error) {
	var c model.AssetCategory
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		First(&c, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *orgRepo) ListCategories(ctx context.Context, companyID uuid.UUID) ([]model.AssetCategory, error) {
	var categories []model.AssetCategory
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		Order("name ASC").
		Find(&categories).Error
	return categories, err
}

func (r *orgRepo) CreateVendor(ctx context.Context, v *model.Vendor) error {
	return r.db.WithContext(ctx).Create(v).Error
}

func (r *orgRepo) FindVendor(ctx context.Context, companyID, id uuid.UUID) (*model.Vendor, error) {
	var v model.Vendor
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		First(&v, "id = ?", id).Error
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (r *orgRepo) ListVendors(ctx context.Context, companyID uuid.UUID) ([]model.Vendor, error) {
	var vendors []model.Vendor
	err := r.db.WithContext(ctx).
		Where("company_id = ? AND is_deleted = false", companyID).
		Order("name ASC").
		Find(&vendors).Error
	return vendors, err
}
