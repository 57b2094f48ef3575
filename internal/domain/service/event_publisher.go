package service

import (
	"context"
)

// NotificationCreatedEvent announces a newly created notification to the push worker
type NotificationCreatedEvent struct {
	RequestID      string `json:"request_id,omitempty"` // For distributed tracing
	AccountID      string `json:"account_id" validate:"required"`
	NotificationID string `json:"notification_id" validate:"required"`
	ReminderID     string `json:"reminder_id,omitempty"`
	Forced         bool   `json:"forced,omitempty"` // Created by a manual trigger
}

// EventPublisher defines the interface for publishing events to a message queue
type EventPublisher interface {
	// PublishNotificationCreated publishes a notification-created event for async delivery
	PublishNotificationCreated(ctx context.Context, event *NotificationCreatedEvent) error

	// Close releases any resources held by the publisher
	Close() error
}
