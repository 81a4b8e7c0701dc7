package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AssetStatus is the operational lifecycle state of an asset.
type AssetStatus string

const (
	AssetPlanning         AssetStatus = "PLANNING"
	AssetOrdered          AssetStatus = "ORDERED"
	AssetInStock          AssetStatus = "IN_STOCK"
	AssetDeployed         AssetStatus = "DEPLOYED"
	AssetInUse            AssetStatus = "IN_USE"
	AssetUnderMaintenance AssetStatus = "UNDER_MAINTENANCE"
	AssetRetired          AssetStatus = "RETIRED"
	AssetDisposed         AssetStatus = "DISPOSED"
	AssetLost             AssetStatus = "LOST"
	AssetStolen           AssetStatus = "STOLEN"
)

// AssetCondition reflects physical state, independent of lifecycle status.
type AssetCondition string

const (
	ConditionExcellent  AssetCondition = "EXCELLENT"
	ConditionGood       AssetCondition = "GOOD"
	ConditionFair       AssetCondition = "FAIR"
	ConditionPoor       AssetCondition = "POOR"
	ConditionNotWorking AssetCondition = "NOT_WORKING"
)

// FinancialProfile holds the valuation inputs of an asset. It is a value
// struct embedded in Asset — not versioned: book value always reflects the
// current field values at read time.
//
// Method selection: DepreciationRate set → reducing balance (rate wins when
// both are set); UsefulLifeYears set → straight line; neither → no
// depreciation.
type FinancialProfile struct {
	PurchasePrice    *decimal.Decimal `gorm:"type:decimal(15,2)" json:"purchase_price"`
	PurchaseDate     *time.Time       `gorm:"type:date" json:"purchase_date"`
	DepreciationRate *decimal.Decimal `gorm:"type:decimal(5,2)" json:"depreciation_rate"` // percent per year
	SalvageValue     decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0" json:"salvage_value"`
	UsefulLifeYears  *int             `json:"useful_life_years"`
}

// Asset is the main tracked entity.
type Asset struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index:idx_assets_company_tag,unique"`
	AssetTag  string    `gorm:"not null;index:idx_assets_company_tag,unique"`
	// QRCode is the stable identifier encoded in the printed label.
	// Image generation is external; the core only stores the UUID.
	QRCode uuid.UUID `gorm:"type:uuid;uniqueIndex;not null"`

	CategoryID uuid.UUID `gorm:"type:uuid;not null;index"`

	Name         string `gorm:"not null"`
	Description  *string
	Make         *string
	ModelName    *string `gorm:"column:model"`
	SerialNumber *string `gorm:"index"`

	Status    AssetStatus     `gorm:"type:varchar(20);not null;default:'PLANNING';index"`
	Condition *AssetCondition `gorm:"type:varchar(20)"`

	LocationID   *uuid.UUID `gorm:"type:uuid;index"`
	DepartmentID *uuid.UUID `gorm:"type:uuid;index"`
	AssignedToID *uuid.UUID `gorm:"type:uuid;index"`
	CustodianID  *uuid.UUID `gorm:"type:uuid"`
	VendorID     *uuid.UUID `gorm:"type:uuid;index"`

	FinancialProfile `gorm:"embedded"`

	Notes      *string
	IsCritical bool `gorm:"not null;default:false"`

	Timestamps
	SoftDelete

	Company    *Company       `gorm:"foreignKey:CompanyID"`
	Category   *AssetCategory `gorm:"foreignKey:CategoryID"`
	Location   *Location      `gorm:"foreignKey:LocationID"`
	Department *Department    `gorm:"foreignKey:DepartmentID"`
	AssignedTo *User          `gorm:"foreignKey:AssignedToID"`
	Custodian  *User          `gorm:"foreignKey:CustodianID"`
	Vendor     *Vendor        `gorm:"foreignKey:VendorID"`
}

func (Asset) TableName() string { return "assets" }

// ScheduleEntry is one year of a depreciation schedule.
// Derived on demand, never persisted.
type ScheduleEntry struct {
	Year         int             `json:"year"`
	Depreciation decimal.Decimal `json:"depreciation"`
	BookValue    decimal.Decimal `json:"book_value"`
}
