package model

import (
	"time"

	"github.com/google/uuid"
)

// Notification is the durable record of an outbound workflow email.
// Created inside the transition's request handling, delivered asynchronously
// by the worker pool. Status: "pending" | "sent" | "error".
type Notification struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
	CompanyID uuid.UUID `gorm:"type:uuid;not null;index"`

	Recipient string `gorm:"not null"`
	Subject   string `gorm:"not null"`
	Body      string `gorm:"not null"`

	// Reference back to the workflow request that triggered the notification.
	RequestKind   RequestKind `gorm:"type:varchar(20);not null"`
	RequestNumber string      `gorm:"not null;index"`

	Status      string `gorm:"type:varchar(20);not null;default:'pending'"`
	RetryCount  int    `gorm:"not null;default:0"`
	NextRetryAt *time.Time
	LastError   *string

	Timestamps
}

func (Notification) TableName() string { return "notifications" }
