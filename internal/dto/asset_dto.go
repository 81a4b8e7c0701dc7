package dto

import (
	"github.com/shopspring/decimal"
)

type CreateAssetRequest struct {
	AssetTag     string  `json:"asset_tag" validate:"required"`
	CategoryID   string  `json:"category_id" validate:"required,uuid"`
	Name         string  `json:"name" validate:"required"`
	Description  *string `json:"description"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`

	Status    string  `json:"status" validate:"omitempty,oneof=PLANNING ORDERED IN_STOCK DEPLOYED IN_USE UNDER_MAINTENANCE RETIRED LOST STOLEN"`
	Condition *string `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR NOT_WORKING"`

	LocationID   *string `json:"location_id" validate:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	AssignedToID *string `json:"assigned_to_id" validate:"omitempty,uuid"`
	CustodianID  *string `json:"custodian_id" validate:"omitempty,uuid"`
	VendorID     *string `json:"vendor_id" validate:"omitempty,uuid"`

	PurchasePrice    *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	PurchaseDate     *string          `json:"purchase_date"` // YYYY-MM-DD
	DepreciationRate *decimal.Decimal `json:"depreciation_rate" validate:"omitempty,min=0,max=100"`
	SalvageValue     *decimal.Decimal `json:"salvage_value" validate:"omitempty,min=0"`
	UsefulLifeYears  *int             `json:"useful_life_years" validate:"omitempty,gt=0"`

	Notes      *string `json:"notes"`
	IsCritical bool    `json:"is_critical"`
}

// UpdateAssetRequest uses pointers throughout: nil means "leave unchanged".
type UpdateAssetRequest struct {
	Name         *string `json:"name"`
	Description  *string `json:"description"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`

	Status    *string `json:"status" validate:"omitempty,oneof=PLANNING ORDERED IN_STOCK DEPLOYED IN_USE UNDER_MAINTENANCE RETIRED LOST STOLEN"`
	Condition *string `json:"condition" validate:"omitempty,oneof=EXCELLENT GOOD FAIR POOR NOT_WORKING"`

	LocationID   *string `json:"location_id" validate:"omitempty,uuid"`
	DepartmentID *string `json:"department_id" validate:"omitempty,uuid"`
	AssignedToID *string `json:"assigned_to_id" validate:"omitempty,uuid"`
	CustodianID  *string `json:"custodian_id" validate:"omitempty,uuid"`
	VendorID     *string `json:"vendor_id" validate:"omitempty,uuid"`

	PurchasePrice    *decimal.Decimal `json:"purchase_price" validate:"omitempty,min=0"`
	PurchaseDate     *string          `json:"purchase_date"`
	DepreciationRate *decimal.Decimal `json:"depreciation_rate" validate:"omitempty,min=0,max=100"`
	SalvageValue     *decimal.Decimal `json:"salvage_value" validate:"omitempty,min=0"`
	UsefulLifeYears  *int             `json:"useful_life_years" validate:"omitempty,gt=0"`

	Notes      *string `json:"notes"`
	IsCritical *bool   `json:"is_critical"`

	Remarks *string `json:"remarks"` // carried into history entries
}

type MoveAssetRequest struct {
	ToLocationID string  `json:"to_location_id" validate:"required,uuid"`
	Remarks      *string `json:"remarks"`
}

type AssetFilter struct {
	Status     string
	CategoryID string
	LocationID string
	Search     string
	Page       int
	Limit      int
}

type AssetResponse struct {
	ID           string  `json:"id"`
	AssetTag     string  `json:"asset_tag"`
	QRCode       string  `json:"qr_code"`
	CategoryID   string  `json:"category_id"`
	Name         string  `json:"name"`
	Description  *string `json:"description"`
	Make         *string `json:"make"`
	Model        *string `json:"model"`
	SerialNumber *string `json:"serial_number"`

	Status    string  `json:"status"`
	Condition *string `json:"condition"`

	LocationID   *string `json:"location_id"`
	DepartmentID *string `json:"department_id"`
	AssignedToID *string `json:"assigned_to_id"`
	CustodianID  *string `json:"custodian_id"`
	VendorID     *string `json:"vendor_id"`

	PurchasePrice    *decimal.Decimal `json:"purchase_price"`
	PurchaseDate     *string          `json:"purchase_date"`
	DepreciationRate *decimal.Decimal `json:"depreciation_rate"`
	SalvageValue     decimal.Decimal  `json:"salvage_value"`
	UsefulLifeYears  *int             `json:"useful_life_years"`

	Notes      *string `json:"notes"`
	IsCritical bool    `json:"is_critical"`
	CreatedAt  string  `json:"created_at"`
}

type AssetListResponse struct {
	Data  []AssetResponse `json:"data"`
	Total int64           `json:"total"`
	Page  int             `json:"page"`
	Limit int             `json:"limit"`
}

// BookValueResponse reports the valuation of an asset at a point in time.
// Defined=false means the asset has no computable book value (missing
// purchase price or date).
type BookValueResponse struct {
	AssetID   string           `json:"asset_id"`
	AsOf      string           `json:"as_of"`
	Defined   bool             `json:"defined"`
	BookValue *decimal.Decimal `json:"book_value,omitempty"`
	Method    string           `json:"method,omitempty"` // reducing_balance | straight_line | none
}

type ScheduleResponse struct {
	AssetID string              `json:"asset_id"`
	Entries []ScheduleEntryItem `json:"entries"`
}

type ScheduleEntryItem struct {
	Year         int             `json:"year"`
	Depreciation decimal.Decimal `json:"depreciation"`
	BookValue    decimal.Decimal `json:"book_value"`
}
