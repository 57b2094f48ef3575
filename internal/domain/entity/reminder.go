// Package entity contains the core business objects of the project.
package entity

import (
	"strings"
	"time"

	"reminder/internal/errors"
)

// ReminderType selects how a reminder's next fire time is computed.
type ReminderType string

const (
	// ReminderTypeCron fires on the occurrences of a cron expression.
	ReminderTypeCron ReminderType = "cron"
)

const (
	accountsSegment      = "accounts"
	remindersSegment     = "reminders"
	notificationsSegment = "notifications"

	documentsMarker = "/documents/"
)

// ErrInvalidReminderPath is returned when a path does not address a reminder document.
var ErrInvalidReminderPath = errors.New("invalid reminder path")

// ReminderRef identifies a reminder inside its owning account.
type ReminderRef struct {
	AccountID  string `json:"account_id"`  // The account that owns the reminder.
	ReminderID string `json:"reminder_id"` // The reminder document ID.
}

// Path returns the document path accounts/{accountId}/reminders/{reminderId}.
func (r ReminderRef) Path() string {
	return accountsSegment + "/" + r.AccountID + "/" + remindersSegment + "/" + r.ReminderID
}

func (r ReminderRef) String() string {
	return r.Path()
}

// ParseReminderPath parses a reminder document path. Fully qualified resource names
// (projects/{p}/databases/{d}/documents/accounts/...) are accepted as well.
func ParseReminderPath(path string) (ReminderRef, error) {
	accountID, reminderID, ok := parseAccountDocumentPath(path, remindersSegment)
	if !ok {
		return ReminderRef{}, errors.Wrapf(ErrInvalidReminderPath, "%q", path)
	}

	return ReminderRef{AccountID: accountID, ReminderID: reminderID}, nil
}

// parseAccountDocumentPath splits accounts/{accountId}/{collection}/{documentId}.
func parseAccountDocumentPath(path, collection string) (accountID, documentID string, ok bool) {
	trimmed := strings.Trim(strings.TrimSpace(path), "/")
	if idx := strings.Index(trimmed, documentsMarker); idx >= 0 {
		trimmed = trimmed[idx+len(documentsMarker):]
	}

	segments := strings.Split(trimmed, "/")
	if len(segments) != 4 || segments[0] != accountsSegment || segments[2] != collection {
		return "", "", false
	}
	if segments[1] == "" || segments[3] == "" {
		return "", "", false
	}

	return segments[1], segments[3], true
}

// Reminder is a user-owned rule that periodically produces notifications.
type Reminder struct {
	Ref            ReminderRef  `json:"ref"`             // Where the reminder lives.
	Title          string       `json:"title"`           // Copied into every notification.
	Body           string       `json:"body"`            // Copied into every notification.
	Link           string       `json:"link"`            // Optional link copied into every notification.
	Enabled        *bool        `json:"enabled"`         // Nil when the field is absent from the document.
	Type           ReminderType `json:"type"`            // Schedule kind, only "cron" is known.
	CronExpression string       `json:"cron_expression"` // Schedule of a cron reminder.
	NextSend       *time.Time   `json:"next_send"`       // Next due instant, nil when never scheduled.
	LastSent       *time.Time   `json:"last_sent"`       // Instant of the most recent firing.
}

// IsEnabled reports whether the reminder is explicitly enabled.
func (r *Reminder) IsEnabled() bool {
	return r.Enabled != nil && *r.Enabled
}

// IsDisabled reports whether the reminder is explicitly disabled. An absent flag is not disabled.
func (r *Reminder) IsDisabled() bool {
	return r.Enabled != nil && !*r.Enabled
}

// IsDue reports whether the reminder should fire at now.
func (r *Reminder) IsDue(now time.Time) bool {
	return r.IsEnabled() && r.NextSend != nil && !r.NextSend.After(now)
}

// ReminderChange is a write to a reminder document. A nil side means the document did not exist.
type ReminderChange struct {
	Before *Reminder
	After  *Reminder
}
