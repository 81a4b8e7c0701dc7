package repository

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SequenceRepository issues per-scope counters for request numbers.
//
// The increment is a single atomic upsert — INSERT … ON CONFLICT DO UPDATE
// RETURNING — so concurrent callers targeting the same (company, date, prefix)
// scope serialize on one counter row and can never observe the same value.
// "Select max existing number and add one" is exactly the race this table
// exists to eliminate.
type SequenceRepository interface {
	NextTx(tx *gorm.DB, companyID uuid.UUID, scopeDate time.Time, prefix string) (int, error)
}

type sequenceRepo struct{ db *gorm.DB }

func NewSequenceRepository(db *gorm.DB) SequenceRepository { return &sequenceRepo{db: db} }

func (r *sequenceRepo) NextTx(tx *gorm.DB, companyID uuid.UUID, scopeDate time.Time, prefix string) (int, error) {
	var value int
	err := tx.Raw(`
		INSERT INTO sequence_counters (company_id, scope_date, prefix, value)
		VALUES (?, ?, ?, 1)
		ON CONFLICT (company_id, scope_date, prefix)
		DO UPDATE SET value = sequence_counters.value + 1
		RETURNING value`,
		companyID, scopeDate.Format("2006-01-02"), prefix,
	).Scan(&value).Error
	return value, err
}
