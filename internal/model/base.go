package model

import "time"

// Timestamps provides created_at / updated_at fields.
// Embedded as a value struct instead of an inheritance hierarchy.
type Timestamps struct {
	CreatedAt time.Time `gorm:"index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// SoftDelete marks a row as deleted without removing it.
// Repositories filter on is_deleted = false; nothing is ever hard-deleted.
type SoftDelete struct {
	IsDeleted bool       `gorm:"not null;default:false;index" json:"is_deleted"`
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
}

// MarkDeleted flips the soft-delete flag and records when it happened.
func (s *SoftDelete) MarkDeleted(at time.Time) {
	s.IsDeleted = true
	s.DeletedAt = &at
}
