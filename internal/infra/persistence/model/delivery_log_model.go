// Package model contains the GORM-specific data models.
package model

import (
	"time"

	"github.com/google/uuid"
)

// DeliveryLogModel is the GORM-specific struct for the 'delivery_logs' table.
// It records the outcome of pushing one notification to one device.
type DeliveryLogModel struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	AccountID      string    `gorm:"type:text;not null;index:idx_delivery_logs_account_sent,priority:1"`
	NotificationID string    `gorm:"type:text;not null;index"`
	ReminderID     string    `gorm:"type:text;index"`
	DeviceID       string    `gorm:"type:text;not null"`
	TokenPrefix    string    `gorm:"type:text"`
	Status         string    `gorm:"type:text;not null;default:'sent'"`
	MessageID      string    `gorm:"type:text"`
	ErrorCode      string    `gorm:"type:text"`
	ErrorMessage   string    `gorm:"type:text"`
	SentAt         time.Time `gorm:"not null;index:idx_delivery_logs_account_sent,priority:2"`
}

// TableName explicitly sets the table name for GORM.
func (DeliveryLogModel) TableName() string {
	return "delivery_logs"
}
