package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"reminder/config"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/constants"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/domain/schedule"
	"reminder/internal/domain/service"
	"reminder/internal/errors"
	"reminder/internal/usecase"
	"reminder/internal/util"

	"golang.org/x/sync/errgroup"
)

// errReminderNotDue aborts a fan-out transaction whose reminder changed since the query.
var errReminderNotDue = errors.New("reminder no longer due")

type fireOutcome int

const (
	outcomeFired fireOutcome = iota
	outcomeSkipped
	outcomeFailed
)

// fanOutService implements the FanOutUsecase interface.
type fanOutService struct {
	txManager    repository.TransactionManager
	reminderRepo repository.ReminderRepository
	evaluator    *schedule.Evaluator
	publisher    service.EventPublisher
	locker       service.RunLocker
	cfg          *config.SchedulerConfig
	logger       *slog.Logger

	now func() time.Time
}

// NewFanOutService is the constructor for fanOutService.
func NewFanOutService(
	txManager repository.TransactionManager,
	reminderRepo repository.ReminderRepository,
	evaluator *schedule.Evaluator,
	publisher service.EventPublisher,
	locker service.RunLocker,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.FanOutUsecase {
	return &fanOutService{
		txManager:    txManager,
		reminderRepo: reminderRepo,
		evaluator:    evaluator,
		publisher:    publisher,
		locker:       locker,
		cfg:          cfg.Scheduler,
		logger:       logger,
		now:          time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *fanOutService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Run fires every reminder that is due now.
func (srv *fanOutService) Run(ctx context.Context) (*usecase.FanOutReport, error) {
	now := srv.now()
	report := &usecase.FanOutReport{StartedAt: now}
	logger := srv.log(ctx)

	unlock, acquired, err := srv.locker.TryLock(ctx, constants.FanOutLockKey, srv.cfg.LockTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to acquire fan-out lock")
	}
	if !acquired {
		logger.Info("Fan-out already running elsewhere, skipping")
		report.LockSkipped = true

		return report, nil
	}
	defer func() {
		if err := unlock(context.WithoutCancel(ctx)); err != nil {
			logger.Warn("Failed to release fan-out lock", slog.Any("error", err))
		}
	}()

	if srv.cfg.RunTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, srv.cfg.RunTimeout)
		defer cancel()
	}

	var mu sync.Mutex
	record := func(outcome fireOutcome) {
		mu.Lock()
		defer mu.Unlock()

		switch outcome {
		case outcomeFired:
			report.Fired++
		case outcomeSkipped:
			report.Skipped++
		case outcomeFailed:
			report.Failed++
		}
	}

	var after *entity.Reminder
	for {
		page, err := srv.reminderRepo.FindDueReminders(ctx, now, after, srv.cfg.PageSize)
		if err != nil {
			return nil, errors.Wrap(err, "failed to query due reminders")
		}

		report.Matched += len(page)

		group := new(errgroup.Group)
		group.SetLimit(srv.workers())
		for _, reminder := range page {
			group.Go(func() error {
				record(srv.fire(ctx, reminder.Ref, now))

				return nil
			})
		}
		_ = group.Wait()

		if len(page) < srv.cfg.PageSize {
			break
		}
		after = page[len(page)-1]
	}

	report.Duration = srv.now().Sub(now)
	logger.Info("Fan-out finished",
		slog.Int("matched", report.Matched),
		slog.Int("fired", report.Fired),
		slog.Int("skipped", report.Skipped),
		slog.Int("failed", report.Failed),
		slog.String("duration", util.FormatDuration(report.Duration)),
	)

	return report, nil
}

func (srv *fanOutService) workers() int {
	if srv.cfg.Workers <= 0 {
		return 1
	}

	return srv.cfg.Workers
}

// fire materializes one notification for ref if it is still due at now.
func (srv *fanOutService) fire(ctx context.Context, ref entity.ReminderRef, now time.Time) fireOutcome {
	logger := srv.log(ctx).With(slog.String("reminder", ref.Path()))

	var notification *entity.Notification

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		reminderRepo := repoFactory.ReminderRepo()
		notificationRepo := repoFactory.NotificationRepo()

		// 1. Re-read inside the transaction; a concurrent run may have fired it already
		reminder, err := reminderRepo.FindReminder(ctx, ref)
		if err != nil {
			if errors.Is(err, repository.ErrReminderNotFound) {
				return errReminderNotDue
			}

			return errors.Wrap(err, "failed to re-read reminder")
		}
		if !reminder.IsDue(now) {
			return errReminderNotDue
		}

		// 2. Compute the next occurrence from the current definition
		next, err := srv.evaluator.NextFire(reminder, now)
		if err != nil {
			return err
		}

		// 3. Materialize the notification and advance the schedule
		candidate := entity.NewNotificationFromReminder(reminder, "")
		if err := notificationRepo.CreateNotification(ctx, candidate); err != nil {
			return errors.Wrap(err, "failed to create notification")
		}

		if err := reminderRepo.MarkSent(ctx, ref, now, next); err != nil {
			return errors.Wrap(err, "failed to advance reminder")
		}

		notification = candidate

		return nil
	})

	switch {
	case err == nil:
	case errors.Is(err, errReminderNotDue):
		logger.Debug("Reminder no longer due, skipping")

		return outcomeSkipped
	case domainerrors.IsScheduleError(err):
		logger.Warn("Cannot schedule reminder, skipping this cycle", slog.Any("error", err))

		return outcomeSkipped
	default:
		logger.Error("Failed to fire reminder", slog.Any("error", err))

		return outcomeFailed
	}

	logger.Info("Reminder fired", slog.String("notification_id", notification.Ref.NotificationID))

	publishNotificationCreated(ctx, logger, srv.publisher, notification, false)

	return outcomeFired
}
