package model

import (
	"github.com/google/uuid"
)

// Company is the tenant boundary. Every asset, request, and history entry is
// scoped to exactly one company; identifiers and sequence counters are unique
// within it, never across it.
type Company struct {
	ID   uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	Name string    `gorm:"uniqueIndex;not null"`
	Code string    `gorm:"uniqueIndex;not null"`

	Email  *string
	Phone  *string
	Active bool `gorm:"not null;default:true"`

	Timestamps
	SoftDelete
}

func (Company) TableName() string { return "companies" }
