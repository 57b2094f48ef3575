package usecase

import (
	"context"

	"reminder/internal/domain/entity"
)

// DispatchUsecase keeps reminder schedules in sync with their definitions and fires reminders on demand
type DispatchUsecase interface {
	// HandleReminderWrite recomputes nextSend after a reminder document is created or updated.
	// Deletes and explicitly disabled reminders are ignored.
	HandleReminderWrite(ctx context.Context, change *entity.ReminderChange) error

	// TriggerReminder immediately creates a notification for the reminder at path without
	// touching its schedule
	TriggerReminder(ctx context.Context, path string) (*entity.Notification, error)
}
