package model

import (
	"github.com/google/uuid"
)

// Location is a physical site (office, warehouse, plant) within a company.
type Location struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Code      string    `gorm:"not null"`
	Address   *string
	Active    bool `gorm:"not null;default:true"`

	Timestamps
	SoftDelete

	Company *Company `gorm:"foreignKey:CompanyID"`
}

func (Location) TableName() string { return "locations" }

// Department is an organizational unit within a company.
type Department struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`
	Name      string    `gorm:"not null"`
	Code      string    `gorm:"not null"`
	Active    bool      `gorm:"not null;default:true"`

	Timestamps
	SoftDelete

	Company *Company `gorm:"foreignKey:CompanyID"`
}

func (Department) TableName() string { return "departments" }

// AssetCategory groups assets for classification and reporting.
type AssetCategory struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID   uuid.UUID `gorm:"type:uuid;not null;index"`
	Name        string    `gorm:"not null"`
	Code        string    `gorm:"not null"`
	Description *string
	Active      bool `gorm:"not null;default:true"`

	Timestamps
	SoftDelete

	Company *Company `gorm:"foreignKey:CompanyID"`
}

func (AssetCategory) TableName() string { return "asset_categories" }

// Vendor is a supplier assets are purchased from.
type Vendor struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	Name          string    `gorm:"not null"`
	Code          string    `gorm:"not null"`
	ContactPerson *string
	Email         *string
	Phone         *string
	Active        bool `gorm:"not null;default:true"`

	Timestamps
	SoftDelete

	Company *Company `gorm:"foreignKey:CompanyID"`
}

func (Vendor) TableName() string { return "vendors" }
