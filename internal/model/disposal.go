package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DisposalMethod is how an asset leaves the books.
type DisposalMethod string

const (
	DisposalSell           DisposalMethod = "SELL"
	DisposalScrap          DisposalMethod = "SCRAP"
	DisposalDonate         DisposalMethod = "DONATE"
	DisposalDestroy        DisposalMethod = "DESTROY"
	DisposalReturnToVendor DisposalMethod = "RETURN_TO_VENDOR"
)

// Valid reports whether m is one of the known methods.
func (m DisposalMethod) Valid() bool {
	switch m {
	case DisposalSell, DisposalScrap, DisposalDonate, DisposalDestroy, DisposalReturnToVendor:
		return true
	}
	return false
}

// AssetDisposal is the formal request to dispose of / write off an asset.
//
// BookValueAtRequest is snapshotted at submission and never recomputed at
// completion — the gain/loss recorded when the disposal completes must be
// reproducible from the request row alone, regardless of how much time passed
// between request and completion.
type AssetDisposal struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetID        uuid.UUID `gorm:"type:uuid;not null;index:idx_disposals_asset_req,priority:1"`
	DisposalNumber string    `gorm:"uniqueIndex;not null"`

	RequestedByID uuid.UUID      `gorm:"type:uuid;not null"`
	RequestedAt   time.Time      `gorm:"not null;index:idx_disposals_asset_req,priority:2,sort:desc"`
	Reason        string         `gorm:"not null"`
	Method        DisposalMethod `gorm:"type:varchar(20);not null"`

	BookValueAtRequest *decimal.Decimal `gorm:"type:decimal(15,2)"`
	DisposalValue      decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	DisposalCost       decimal.Decimal  `gorm:"type:decimal(15,2);not null;default:0"`
	GainLoss           *decimal.Decimal `gorm:"type:decimal(15,2)"` // set at completion
	BuyerDetails       *string

	Status          RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApprovedByID    *uuid.UUID    `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	ApprovalRemarks *string

	CompletedByID *uuid.UUID `gorm:"type:uuid"`
	CompletedAt   *time.Time

	Timestamps

	Asset       *Asset `gorm:"foreignKey:AssetID"`
	RequestedBy *User  `gorm:"foreignKey:RequestedByID"`
	ApprovedBy  *User  `gorm:"foreignKey:ApprovedByID"`
	CompletedBy *User  `gorm:"foreignKey:CompletedByID"`
}

func (AssetDisposal) TableName() string { return "asset_disposals" }
