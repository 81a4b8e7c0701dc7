package model

import (
	"time"

	"github.com/google/uuid"
)

// SequenceCounter backs request-number generation. One row per
// (company, calendar date, prefix) scope; Value is advanced with an atomic
// upsert, never read-then-written. Gaps are tolerated — a failed submission
// may consume a number — but a value is never reissued within its scope.
type SequenceCounter struct {
	CompanyID uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScopeDate time.Time `gorm:"type:date;primaryKey"`
	Prefix    string    `gorm:"type:varchar(10);primaryKey"`
	Value     int       `gorm:"not null;default:0"`
}

func (SequenceCounter) TableName() string { return "sequence_counters" }
