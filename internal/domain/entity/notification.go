package entity

import (
	"time"

	"reminder/internal/errors"
)

// ErrInvalidNotificationPath is returned when a path does not address a notification document.
var ErrInvalidNotificationPath = errors.New("invalid notification path")

// NotificationRef identifies a notification inside its owning account.
type NotificationRef struct {
	AccountID      string `json:"account_id"`      // The account that owns the notification.
	NotificationID string `json:"notification_id"` // The notification document ID, assigned by the store.
}

// Path returns the document path accounts/{accountId}/notifications/{notificationId}.
func (n NotificationRef) Path() string {
	return accountsSegment + "/" + n.AccountID + "/" + notificationsSegment + "/" + n.NotificationID
}

// ParseNotificationPath parses a notification document path or fully qualified resource name.
func ParseNotificationPath(path string) (NotificationRef, error) {
	accountID, notificationID, ok := parseAccountDocumentPath(path, notificationsSegment)
	if !ok {
		return NotificationRef{}, errors.Wrapf(ErrInvalidNotificationPath, "%q", path)
	}

	return NotificationRef{AccountID: accountID, NotificationID: notificationID}, nil
}

// Notification is a materialized instance of a reminder firing.
type Notification struct {
	Ref         NotificationRef `json:"ref"`          // Where the notification lives.
	ReminderRef ReminderRef     `json:"reminder_ref"` // The reminder that produced it.
	Title       string          `json:"title"`        // Title at the time of firing.
	Body        string          `json:"body"`         // Body at the time of firing.
	Link        string          `json:"link"`         // Optional link.
	Sent        *time.Time      `json:"sent"`         // Server-assigned creation time, nil until read back.
}

// NewNotificationFromReminder copies the displayable content of a reminder, prefixing the title.
func NewNotificationFromReminder(reminder *Reminder, titlePrefix string) *Notification {
	return &Notification{
		Ref:         NotificationRef{AccountID: reminder.Ref.AccountID},
		ReminderRef: reminder.Ref,
		Title:       titlePrefix + reminder.Title,
		Body:        reminder.Body,
		Link:        reminder.Link,
	}
}

// DeliveryStatus is the outcome of one push attempt.
type DeliveryStatus string

const (
	DeliveryStatusSent   DeliveryStatus = "sent"
	DeliveryStatusFailed DeliveryStatus = "failed"
)

// DeliveryLog records the outcome of pushing a notification to one device.
type DeliveryLog struct {
	AccountID      string         `json:"account_id"`      // Owner of the notification and device.
	NotificationID string         `json:"notification_id"` // The delivered notification.
	ReminderID     string         `json:"reminder_id"`     // The reminder behind the notification.
	DeviceID       string         `json:"device_id"`       // Target device registration key.
	TokenPrefix    string         `json:"token_prefix"`    // Leading characters of the FCM token.
	Status         DeliveryStatus `json:"status"`          // sent or failed.
	MessageID      string         `json:"message_id"`      // FCM message ID on success.
	ErrorCode      string         `json:"error_code"`      // Delivery error classification on failure.
	ErrorMessage   string         `json:"error_message"`   // Raw provider error on failure.
	SentAt         time.Time      `json:"sent_at"`         // When the attempt was made.
}
