package schedule

import (
	"testing"
	"time"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func amsterdam(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	return loc
}

func cronReminder(expression string) *entity.Reminder {
	return &entity.Reminder{
		Ref:            entity.ReminderRef{AccountID: "acc-1", ReminderID: "rem-1"},
		Type:           entity.ReminderTypeCron,
		CronExpression: expression,
	}
}

func TestEvaluator_NextFire_Cron(t *testing.T) {
	loc := amsterdam(t)
	evaluator := NewEvaluator(loc)

	tests := []struct {
		name       string
		expression string
		now        time.Time
		want       time.Time
	}{
		{
			name:       "daily later today",
			expression: "0 9 * * *",
			now:        time.Date(2025, 1, 15, 8, 59, 0, 0, loc),
			want:       time.Date(2025, 1, 15, 9, 0, 0, 0, loc),
		},
		{
			name:       "exact occurrence is not returned",
			expression: "0 9 * * *",
			now:        time.Date(2025, 1, 15, 9, 0, 0, 0, loc),
			want:       time.Date(2025, 1, 16, 9, 0, 0, 0, loc),
		},
		{
			name:       "sub-second before occurrence",
			expression: "1 9 * * *",
			now:        time.Date(2025, 1, 15, 9, 0, 59, 500_000_000, loc),
			want:       time.Date(2025, 1, 15, 9, 1, 0, 0, loc),
		},
		{
			name:       "now given in UTC is evaluated in Amsterdam",
			expression: "0 9 * * *",
			now:        time.Date(2025, 1, 15, 8, 30, 0, 0, time.UTC),
			want:       time.Date(2025, 1, 16, 9, 0, 0, 0, loc),
		},
		{
			name:       "wall clock kept across daylight saving change",
			expression: "0 9 * * *",
			now:        time.Date(2025, 3, 29, 10, 0, 0, 0, loc),
			want:       time.Date(2025, 3, 30, 7, 0, 0, 0, time.UTC),
		},
		{
			name:       "optional seconds field",
			expression: "30 0 9 * * *",
			now:        time.Date(2025, 1, 15, 9, 0, 0, 0, loc),
			want:       time.Date(2025, 1, 15, 9, 0, 30, 0, loc),
		},
		{
			name:       "descriptor",
			expression: "@daily",
			now:        time.Date(2025, 1, 15, 12, 0, 0, 0, loc),
			want:       time.Date(2025, 1, 16, 0, 0, 0, 0, loc),
		},
		{
			name:       "weekdays only",
			expression: "0 8 * * 1-5",
			now:        time.Date(2025, 1, 17, 9, 0, 0, 0, loc), // Friday
			want:       time.Date(2025, 1, 20, 8, 0, 0, 0, loc), // Monday
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := evaluator.NextFire(cronReminder(tt.expression), tt.now)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "want %s, got %s", tt.want, got)
			assert.True(t, got.After(tt.now))
		})
	}
}

func TestEvaluator_NextFire_InvalidSchedule(t *testing.T) {
	evaluator := NewEvaluator(amsterdam(t))
	now := time.Date(2025, 1, 15, 9, 0, 0, 0, time.UTC)

	tests := []struct {
		name       string
		expression string
	}{
		{name: "garbage", expression: "not a cron"},
		{name: "empty", expression: ""},
		{name: "out of range", expression: "61 9 * * *"},
		{name: "never occurs", expression: "0 0 30 2 *"},
		{name: "timezone override", expression: "CRON_TZ=America/New_York 0 9 * * *"},
		{name: "interval descriptor", expression: "@every 1h"},
		{name: "sub-minute interval", expression: "@every 30s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := evaluator.NextFire(cronReminder(tt.expression), now)

			var invalidErr *domainerrors.InvalidScheduleError
			require.ErrorAs(t, err, &invalidErr)
			assert.Equal(t, "accounts/acc-1/reminders/rem-1", invalidErr.ReminderPath)
			assert.Equal(t, tt.expression, invalidErr.Expression)
		})
	}
}

func TestEvaluator_NextFire_UnknownType(t *testing.T) {
	evaluator := NewEvaluator(amsterdam(t))

	for _, reminderType := range []entity.ReminderType{"interval", ""} {
		reminder := cronReminder("0 9 * * *")
		reminder.Type = reminderType

		_, err := evaluator.NextFire(reminder, time.Now())

		var unknownErr *domainerrors.UnknownReminderTypeError
		require.ErrorAs(t, err, &unknownErr)
		assert.Equal(t, string(reminderType), unknownErr.Type)
	}
}

func TestEvaluator_NextFire_IsPure(t *testing.T) {
	evaluator := NewEvaluator(amsterdam(t))
	reminder := cronReminder("*/15 * * * *")
	now := time.Date(2025, 6, 1, 12, 7, 0, 0, time.UTC)

	first, err := evaluator.NextFire(reminder, now)
	require.NoError(t, err)
	second, err := evaluator.NextFire(reminder, now)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, time.Date(2025, 6, 1, 12, 15, 0, 0, time.UTC).Equal(first))
}
