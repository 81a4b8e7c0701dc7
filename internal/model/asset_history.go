package model

import (
	"time"

	"github.com/google/uuid"
)

// HistoryAction classifies a history ledger entry.
type HistoryAction string

const (
	HistoryCreated         HistoryAction = "CREATED"
	HistoryUpdated         HistoryAction = "UPDATED"
	HistoryAssigned        HistoryAction = "ASSIGNED"
	HistoryTransferred     HistoryAction = "TRANSFERRED"
	HistoryReturned        HistoryAction = "RETURNED"
	HistoryMaintenance     HistoryAction = "MAINTENANCE"
	HistoryRepaired        HistoryAction = "REPAIRED"
	HistoryStatusChanged   HistoryAction = "STATUS_CHANGED"
	HistoryLocationChanged HistoryAction = "LOCATION_CHANGED"
	HistoryDisposed        HistoryAction = "DISPOSED"
)

// AssetHistory is the append-only audit ledger — the system of record for
// every state change of an asset. Rows are created once and never updated or
// deleted; there are no Update/Delete methods anywhere for this table.
type AssetHistory struct {
	ID        uuid.UUID     `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	AssetID   uuid.UUID     `gorm:"type:uuid;not null;index:idx_asset_history_asset_ts,priority:1"`
	Action    HistoryAction `gorm:"type:varchar(20);not null;index"`
	Timestamp time.Time     `gorm:"not null;index:idx_asset_history_asset_ts,priority:2,sort:desc"`

	PerformedByID *uuid.UUID `gorm:"type:uuid;index"`

	OldValue *string
	NewValue *string

	FromLocationID *uuid.UUID `gorm:"type:uuid"`
	ToLocationID   *uuid.UUID `gorm:"type:uuid"`
	FromUserID     *uuid.UUID `gorm:"type:uuid"`
	ToUserID       *uuid.UUID `gorm:"type:uuid"`

	Remarks *string

	Asset        *Asset    `gorm:"foreignKey:AssetID"`
	PerformedBy  *User     `gorm:"foreignKey:PerformedByID"`
	FromLocation *Location `gorm:"foreignKey:FromLocationID"`
	ToLocation   *Location `gorm:"foreignKey:ToLocationID"`
	FromUser     *User     `gorm:"foreignKey:FromUserID"`
	ToUser       *User     `gorm:"foreignKey:ToUserID"`
}

func (AssetHistory) TableName() string { return "asset_history" }
