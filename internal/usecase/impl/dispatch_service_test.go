package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/domain/schedule"
	"reminder/internal/domain/service"
	mockRepo "reminder/internal/mocks/repository"
	mockSvc "reminder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// dispatchTestFixtures holds all mocks needed for dispatch service tests
type dispatchTestFixtures struct {
	service          *dispatchService
	reminderRepo     *mockRepo.MockReminderRepository
	notificationRepo *mockRepo.MockNotificationRepository
	publisher        *mockSvc.MockEventPublisher
	location         *time.Location
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func testLocation(t *testing.T) *time.Location {
	t.Helper()
	loc, err := time.LoadLocation("Europe/Amsterdam")
	require.NoError(t, err)

	return loc
}

func createTestDispatchService(t *testing.T, now time.Time) *dispatchTestFixtures {
	fx := &dispatchTestFixtures{
		reminderRepo:     mockRepo.NewMockReminderRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		publisher:        mockSvc.NewMockEventPublisher(t),
		location:         testLocation(t),
	}

	srv := NewDispatchService(
		fx.reminderRepo,
		fx.notificationRepo,
		schedule.NewEvaluator(fx.location),
		fx.publisher,
		testLogger(),
	).(*dispatchService)
	srv.now = func() time.Time { return now }
	fx.service = srv

	return fx
}

func newCronReminder(accountID, reminderID, expression string) *entity.Reminder {
	return &entity.Reminder{
		Ref:            entity.ReminderRef{AccountID: accountID, ReminderID: reminderID},
		Title:          "Drink water",
		Body:           "Stay hydrated",
		Link:           "https://example.com/water",
		Type:           entity.ReminderTypeCron,
		CronExpression: expression,
	}
}

func boolPtr(v bool) *bool {
	return &v
}

func timePtr(v time.Time) *time.Time {
	return &v
}

func TestDispatchService_HandleReminderWrite(t *testing.T) {
	ctx := context.Background()
	// 09:00:30 in Amsterdam (CET)
	now := time.Date(2024, 3, 10, 8, 0, 30, 0, time.UTC)
	expectedNext := time.Date(2024, 3, 10, 8, 1, 0, 0, time.UTC)

	t.Run("create schedules the reminder", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")

		fx.reminderRepo.EXPECT().
			UpdateNextSend(ctx, after.Ref, mock.MatchedBy(func(next time.Time) bool { return next.Equal(expectedNext) })).
			Return(nil)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.NoError(t, err)
	})

	t.Run("enabled reminder with changed expression is rescheduled", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		before := newCronReminder("acc-1", "rem-1", "0 10 * * *")
		before.Enabled = boolPtr(true)
		before.NextSend = timePtr(time.Date(2024, 3, 10, 9, 0, 0, 0, time.UTC))
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after.Enabled = boolPtr(true)
		after.NextSend = before.NextSend

		fx.reminderRepo.EXPECT().
			UpdateNextSend(ctx, after.Ref, mock.MatchedBy(func(next time.Time) bool { return next.Equal(expectedNext) })).
			Return(nil)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{Before: before, After: after})
		require.NoError(t, err)
	})

	t.Run("delete is ignored", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		before := newCronReminder("acc-1", "rem-1", "1 9 * * *")

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{Before: before})
		require.NoError(t, err)
	})

	t.Run("explicitly disabled reminder is ignored", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after.Enabled = boolPtr(false)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.NoError(t, err)
	})

	t.Run("invalid expression is logged and not written", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "not a cron")

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.NoError(t, err)
	})

	t.Run("interval expression is never written across repeated events", func(t *testing.T) {
		before := newCronReminder("acc-1", "rem-1", "@every 1h")
		after := newCronReminder("acc-1", "rem-1", "@every 1h")

		for i := 0; i < 6; i++ {
			fx := createTestDispatchService(t, now.Add(time.Duration(i)*2*time.Second))
			change := &entity.ReminderChange{After: after}
			if i > 0 {
				change.Before = before
			}

			err := fx.service.HandleReminderWrite(ctx, change)
			require.NoError(t, err)
			fx.reminderRepo.AssertNotCalled(t, "UpdateNextSend", mock.Anything, mock.Anything, mock.Anything)
		}
	})

	t.Run("unknown type is logged and not written", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after.Type = "interval"

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.NoError(t, err)
	})

	t.Run("unchanged next fire time is not written", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		before := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		before.NextSend = timePtr(expectedNext.In(fx.location))
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after.Title = "Drink more water"

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{Before: before, After: after})
		require.NoError(t, err)
	})

	t.Run("own nextSend write does not loop", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		before := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		after.NextSend = timePtr(expectedNext)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{Before: before, After: after})
		require.NoError(t, err)
	})

	t.Run("store failure propagates", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		storeErr := domainerrors.NewStoreError(errors.New("unavailable"), "failed to update reminder nextSend")

		fx.reminderRepo.EXPECT().UpdateNextSend(ctx, after.Ref, mock.Anything).Return(storeErr)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.Error(t, err)
		assert.True(t, domainerrors.IsStoreError(err))
	})

	t.Run("reminder deleted before write", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		after := newCronReminder("acc-1", "rem-1", "1 9 * * *")

		fx.reminderRepo.EXPECT().UpdateNextSend(ctx, after.Ref, mock.Anything).Return(repository.ErrReminderNotFound)

		err := fx.service.HandleReminderWrite(ctx, &entity.ReminderChange{After: after})
		require.NoError(t, err)
	})
}

func TestDispatchService_TriggerReminder(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2024, 3, 10, 8, 0, 30, 0, time.UTC)
	nextSend := time.Date(2024, 3, 11, 8, 1, 0, 0, time.UTC)

	t.Run("creates a forced notification without touching the schedule", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		reminder := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		reminder.Enabled = boolPtr(true)
		reminder.NextSend = timePtr(nextSend)

		fx.reminderRepo.EXPECT().FindReminder(ctx, reminder.Ref).Return(reminder, nil)
		fx.notificationRepo.EXPECT().
			CreateNotification(ctx, mock.MatchedBy(func(n *entity.Notification) bool {
				return n.Title == "[forced] Drink water" &&
					n.Body == reminder.Body &&
					n.Link == reminder.Link &&
					n.ReminderRef == reminder.Ref &&
					n.Ref.AccountID == "acc-1"
			})).
			Run(func(_ context.Context, n *entity.Notification) {
				n.Ref.NotificationID = "notif-1"
			}).
			Return(nil)
		fx.publisher.EXPECT().
			PublishNotificationCreated(ctx, mock.MatchedBy(func(event *service.NotificationCreatedEvent) bool {
				return event.AccountID == "acc-1" &&
					event.NotificationID == "notif-1" &&
					event.ReminderID == "rem-1" &&
					event.Forced
			})).
			Return(nil)

		notification, err := fx.service.TriggerReminder(ctx, "accounts/acc-1/reminders/rem-1")
		require.NoError(t, err)
		assert.Equal(t, "notif-1", notification.Ref.NotificationID)
		assert.Equal(t, nextSend, *reminder.NextSend)
	})

	t.Run("accepts a fully qualified document name", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		reminder := newCronReminder("acc-1", "rem-1", "1 9 * * *")

		fx.reminderRepo.EXPECT().FindReminder(ctx, reminder.Ref).Return(reminder, nil)
		fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishNotificationCreated(ctx, mock.Anything).Return(nil)

		_, err := fx.service.TriggerReminder(ctx, "projects/p/databases/(default)/documents/accounts/acc-1/reminders/rem-1")
		require.NoError(t, err)
	})

	t.Run("invalid path", func(t *testing.T) {
		fx := createTestDispatchService(t, now)

		_, err := fx.service.TriggerReminder(ctx, "accounts/acc-1/notifications/n-1")
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidReminderPath))
	})

	t.Run("missing reminder", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		ref := entity.ReminderRef{AccountID: "acc-1", ReminderID: "gone"}

		fx.reminderRepo.EXPECT().FindReminder(ctx, ref).Return(nil, repository.ErrReminderNotFound)

		_, err := fx.service.TriggerReminder(ctx, ref.Path())
		require.Error(t, err)
		assert.True(t, errors.Is(err, domainerrors.ErrReminderNotFound))
	})

	t.Run("create failure propagates", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		reminder := newCronReminder("acc-1", "rem-1", "1 9 * * *")
		storeErr := domainerrors.NewStoreError(errors.New("unavailable"), "failed to create notification")

		fx.reminderRepo.EXPECT().FindReminder(ctx, reminder.Ref).Return(reminder, nil)
		fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(storeErr)

		_, err := fx.service.TriggerReminder(ctx, reminder.Ref.Path())
		require.Error(t, err)
		assert.True(t, domainerrors.IsStoreError(err))
	})

	t.Run("publish failure is not fatal", func(t *testing.T) {
		fx := createTestDispatchService(t, now)
		reminder := newCronReminder("acc-1", "rem-1", "1 9 * * *")

		fx.reminderRepo.EXPECT().FindReminder(ctx, reminder.Ref).Return(reminder, nil)
		fx.notificationRepo.EXPECT().CreateNotification(ctx, mock.Anything).Return(nil)
		fx.publisher.EXPECT().PublishNotificationCreated(ctx, mock.Anything).Return(errors.New("topic unavailable"))

		notification, err := fx.service.TriggerReminder(ctx, reminder.Ref.Path())
		require.NoError(t, err)
		assert.NotNil(t, notification)
	})
}
