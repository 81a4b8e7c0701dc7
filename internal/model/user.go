package model

import (
	"github.com/google/uuid"
)

// User stores system users with role-based access.
// Role: "admin" | "manager" | "staff"
type User struct {
	ID           uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID    uuid.UUID `gorm:"type:uuid;not null;index"`
	Username     string    `gorm:"uniqueIndex;not null"`
	FullName     string    `gorm:"not null"`
	Email        *string
	PasswordHash string `gorm:"not null"`
	Role         string `gorm:"type:varchar(20);not null"`
	Active       bool   `gorm:"not null;default:true"`

	Timestamps

	Company *Company `gorm:"foreignKey:CompanyID"`
}

func (User) TableName() string { return "users" }
