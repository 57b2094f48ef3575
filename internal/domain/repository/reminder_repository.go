// Package repository defines the interfaces for the persistence layer.
package repository

import (
	"context"
	"time"

	"reminder/internal/domain/entity"

	"github.com/pkg/errors"
)

// Domain-specific errors for reminder persistence.
var (
	// ErrReminderNotFound is returned when a reminder document does not exist.
	ErrReminderNotFound = errors.New("reminder not found")
	// ErrMalformedDocument is returned when a stored document cannot be decoded.
	ErrMalformedDocument = errors.New("malformed document")
)

// ReminderRepository defines the interface for reminder document operations.
type ReminderRepository interface {
	// FindDueReminders returns up to limit enabled reminders with nextSend <= now, ordered by
	// (nextSend, document id) and starting strictly after the given reminder when non-nil.
	FindDueReminders(ctx context.Context, now time.Time, after *entity.Reminder, limit int) ([]*entity.Reminder, error)

	// FindReminder reads a single reminder.
	FindReminder(ctx context.Context, ref entity.ReminderRef) (*entity.Reminder, error)

	// UpdateNextSend sets only the nextSend field.
	UpdateNextSend(ctx context.Context, ref entity.ReminderRef, nextSend time.Time) error

	// MarkSent records a firing: lastSent = sentAt, nextSend = nextSend.
	MarkSent(ctx context.Context, ref entity.ReminderRef, sentAt, nextSend time.Time) error
}
