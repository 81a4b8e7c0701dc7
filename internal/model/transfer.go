package model

import (
	"time"

	"github.com/google/uuid"
)

// AssetTransfer is the formal request to move an asset between users,
// locations, or departments. TransferNumber is unique and immutable once
// assigned; the row is immutable once the status is terminal.
type AssetTransfer struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID      uuid.UUID `gorm:"type:uuid;not null;index"`
	AssetID        uuid.UUID `gorm:"type:uuid;not null;index:idx_transfers_asset_req,priority:1"`
	TransferNumber string    `gorm:"uniqueIndex;not null"`

	FromUserID       *uuid.UUID `gorm:"type:uuid"`
	FromLocationID   *uuid.UUID `gorm:"type:uuid"`
	FromDepartmentID *uuid.UUID `gorm:"type:uuid"`

	ToUserID       *uuid.UUID `gorm:"type:uuid"`
	ToLocationID   *uuid.UUID `gorm:"type:uuid"`
	ToDepartmentID *uuid.UUID `gorm:"type:uuid"`

	RequestedByID uuid.UUID `gorm:"type:uuid;not null"`
	RequestedAt   time.Time `gorm:"not null;index:idx_transfers_asset_req,priority:2,sort:desc"`
	Reason        string    `gorm:"not null"`

	Status          RequestStatus `gorm:"type:varchar(20);not null;default:'PENDING';index"`
	ApprovedByID    *uuid.UUID    `gorm:"type:uuid"`
	ApprovedAt      *time.Time
	ApprovalRemarks *string

	CompletedByID *uuid.UUID `gorm:"type:uuid"`
	CompletedAt   *time.Time

	Timestamps

	Asset          *Asset      `gorm:"foreignKey:AssetID"`
	FromUser       *User       `gorm:"foreignKey:FromUserID"`
	FromLocation   *Location   `gorm:"foreignKey:FromLocationID"`
	FromDepartment *Department `gorm:"foreignKey:FromDepartmentID"`
	ToUser         *User       `gorm:"foreignKey:ToUserID"`
	ToLocation     *Location   `gorm:"foreignKey:ToLocationID"`
	ToDepartment   *Department `gorm:"foreignKey:ToDepartmentID"`
	RequestedBy    *User       `gorm:"foreignKey:RequestedByID"`
	ApprovedBy     *User       `gorm:"foreignKey:ApprovedByID"`
	CompletedBy    *User       `gorm:"foreignKey:CompletedByID"`
}

func (AssetTransfer) TableName() string { return "asset_transfers" }
