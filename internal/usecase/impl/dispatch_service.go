// Package impl contains the application-specific business rules implementations.
package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/constants"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/domain/schedule"
	"reminder/internal/domain/service"
	"reminder/internal/errors"
	"reminder/internal/usecase"
)

// dispatchService implements the DispatchUsecase interface.
type dispatchService struct {
	reminderRepo     repository.ReminderRepository
	notificationRepo repository.NotificationRepository
	evaluator        *schedule.Evaluator
	publisher        service.EventPublisher
	logger           *slog.Logger

	now func() time.Time
}

// NewDispatchService is the constructor for dispatchService.
func NewDispatchService(
	reminderRepo repository.ReminderRepository,
	notificationRepo repository.NotificationRepository,
	evaluator *schedule.Evaluator,
	publisher service.EventPublisher,
	logger *slog.Logger,
) usecase.DispatchUsecase {
	return &dispatchService{
		reminderRepo:     reminderRepo,
		notificationRepo: notificationRepo,
		evaluator:        evaluator,
		publisher:        publisher,
		logger:           logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *dispatchService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// HandleReminderWrite recomputes nextSend for a created or updated reminder.
func (srv *dispatchService) HandleReminderWrite(ctx context.Context, change *entity.ReminderChange) error {
	if change == nil || change.After == nil {
		return nil
	}

	after := change.After
	logger := srv.log(ctx).With(slog.String("reminder", after.Ref.Path()))

	if after.IsDisabled() {
		logger.Debug("Reminder disabled, schedule left untouched")

		return nil
	}

	next, err := srv.evaluator.NextFire(after, srv.now())
	if err != nil {
		logger.Warn("Cannot schedule reminder", slog.Any("error", err))

		return nil
	}

	if change.Before != nil && sameInstant(change.Before.NextSend, next) {
		logger.Debug("nextSend unchanged", slog.Time("next_send", next))

		return nil
	}

	// Our own write re-delivers the event with After.NextSend already set.
	if sameInstant(after.NextSend, next) {
		logger.Debug("nextSend already up to date", slog.Time("next_send", next))

		return nil
	}

	if err := srv.reminderRepo.UpdateNextSend(ctx, after.Ref, next); err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			logger.Info("Reminder deleted before nextSend could be written")

			return nil
		}

		return errors.Wrap(err, "failed to update nextSend")
	}

	logger.Info("Reminder scheduled", slog.Time("next_send", next))

	return nil
}

// TriggerReminder force-fires a reminder without advancing its schedule.
func (srv *dispatchService) TriggerReminder(ctx context.Context, path string) (*entity.Notification, error) {
	ref, err := entity.ParseReminderPath(path)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidReminderPath, err.Error())
	}

	logger := srv.log(ctx).With(slog.String("reminder", ref.Path()))

	reminder, err := srv.reminderRepo.FindReminder(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrReminderNotFound) {
			return nil, errors.Wrap(domainerrors.ErrReminderNotFound, ref.Path())
		}

		return nil, errors.Wrap(err, "failed to find reminder")
	}

	notification := entity.NewNotificationFromReminder(reminder, constants.ForcedTitlePrefix)
	if err := srv.notificationRepo.CreateNotification(ctx, notification); err != nil {
		return nil, errors.Wrap(err, "failed to create notification")
	}

	logger.Info("Reminder triggered manually", slog.String("notification_id", notification.Ref.NotificationID))

	publishNotificationCreated(ctx, logger, srv.publisher, notification, true)

	return notification, nil
}

// publishNotificationCreated announces a committed notification. Failures are logged only.
func publishNotificationCreated(
	ctx context.Context,
	logger *slog.Logger,
	publisher service.EventPublisher,
	notification *entity.Notification,
	forced bool,
) {
	event := &service.NotificationCreatedEvent{
		RequestID:      deliverycontext.GetRequestIDFromContext(ctx),
		AccountID:      notification.Ref.AccountID,
		NotificationID: notification.Ref.NotificationID,
		ReminderID:     notification.ReminderRef.ReminderID,
		Forced:         forced,
	}

	if err := publisher.PublishNotificationCreated(ctx, event); err != nil {
		logger.Error("Failed to publish notification created event",
			slog.String("notification", notification.Ref.Path()),
			slog.Any("error", err),
		)
	}
}

func sameInstant(current *time.Time, next time.Time) bool {
	return current != nil && current.Equal(next)
}
