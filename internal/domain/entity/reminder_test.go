package entity

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseReminderPath(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		want    ReminderRef
		wantErr bool
	}{
		{name: "document path", path: "accounts/a1/reminders/r1", want: ReminderRef{AccountID: "a1", ReminderID: "r1"}},
		{name: "leading slash", path: "/accounts/a1/reminders/r1", want: ReminderRef{AccountID: "a1", ReminderID: "r1"}},
		{
			name: "resource name",
			path: "projects/p/databases/(default)/documents/accounts/a1/reminders/r1",
			want: ReminderRef{AccountID: "a1", ReminderID: "r1"},
		},
		{name: "empty", path: "", wantErr: true},
		{name: "wrong collection", path: "accounts/a1/notifications/n1", wantErr: true},
		{name: "too short", path: "accounts/a1", wantErr: true},
		{name: "nested too deep", path: "accounts/a1/reminders/r1/extra/x", wantErr: true},
		{name: "empty id", path: "accounts//reminders/r1", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseReminderPath(tt.path)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidReminderPath)

				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, "accounts/a1/reminders/r1", got.Path())
		})
	}
}

func TestReminder_EnabledStates(t *testing.T) {
	enabled, disabled := true, false

	assert.True(t, (&Reminder{Enabled: &enabled}).IsEnabled())
	assert.False(t, (&Reminder{Enabled: &enabled}).IsDisabled())
	assert.True(t, (&Reminder{Enabled: &disabled}).IsDisabled())
	assert.False(t, (&Reminder{}).IsEnabled())
	assert.False(t, (&Reminder{}).IsDisabled())
}

func TestReminder_IsDue(t *testing.T) {
	enabled, disabled := true, false
	now := time.Date(2025, 1, 15, 8, 1, 0, 0, time.UTC)
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, (&Reminder{Enabled: &enabled, NextSend: &past}).IsDue(now))
	assert.True(t, (&Reminder{Enabled: &enabled, NextSend: &now}).IsDue(now))
	assert.False(t, (&Reminder{Enabled: &enabled, NextSend: &future}).IsDue(now))
	assert.False(t, (&Reminder{Enabled: &enabled}).IsDue(now))
	assert.False(t, (&Reminder{Enabled: &disabled, NextSend: &past}).IsDue(now))
	assert.False(t, (&Reminder{NextSend: &past}).IsDue(now))
}

func TestNewNotificationFromReminder(t *testing.T) {
	reminder := &Reminder{
		Ref:   ReminderRef{AccountID: "a1", ReminderID: "r1"},
		Title: "Water plants",
		Body:  "The ficus is thirsty",
		Link:  "https://example.com/plants",
	}

	notification := NewNotificationFromReminder(reminder, "[forced] ")

	assert.Equal(t, "a1", notification.Ref.AccountID)
	assert.Empty(t, notification.Ref.NotificationID)
	assert.Equal(t, reminder.Ref, notification.ReminderRef)
	assert.Equal(t, "[forced] Water plants", notification.Title)
	assert.Equal(t, reminder.Body, notification.Body)
	assert.Equal(t, reminder.Link, notification.Link)
	assert.Nil(t, notification.Sent)
}

func TestParseNotificationPath(t *testing.T) {
	ref, err := ParseNotificationPath("projects/p/databases/(default)/documents/accounts/a1/notifications/n1")
	require.NoError(t, err)
	assert.Equal(t, NotificationRef{AccountID: "a1", NotificationID: "n1"}, ref)
	assert.Equal(t, "accounts/a1/notifications/n1", ref.Path())

	_, err = ParseNotificationPath("accounts/a1/reminders/r1")
	assert.ErrorIs(t, err, ErrInvalidNotificationPath)
}
