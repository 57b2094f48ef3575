package firestore

import (
	"context"
	"log/slog"
	"time"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/errors"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
)

// reminderRepository implements the repository.ReminderRepository interface.
type reminderRepository struct {
	store
	logger *slog.Logger
}

// NewReminderRepository is the constructor for reminderRepository.
func NewReminderRepository(client *firestore.Client, logger *slog.Logger) repository.ReminderRepository {
	return &reminderRepository{
		store:  store{client: client},
		logger: logger,
	}
}

// FindDueReminders runs the collection-group due query. Undecodable documents are logged and skipped.
func (repo *reminderRepository) FindDueReminders(ctx context.Context, now time.Time, after *entity.Reminder, limit int) ([]*entity.Reminder, error) {
	query := repo.client.CollectionGroup(remindersCollection).
		Where("enabled", "==", true).
		Where("nextSend", "<=", now).
		OrderBy("nextSend", firestore.Asc).
		OrderBy(firestore.DocumentID, firestore.Asc)

	if after != nil && after.NextSend != nil {
		query = query.StartAfter(*after.NextSend, repo.reminderDoc(after.Ref))
	}
	if limit > 0 {
		query = query.Limit(limit)
	}

	iter := repo.documents(ctx, query)
	defer iter.Stop()

	var reminders []*entity.Reminder
	for {
		snap, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, domainerrors.NewStoreError(err, "failed to query due reminders")
		}

		ref, err := entity.ParseReminderPath(snap.Ref.Path)
		if err != nil {
			repo.logger.Warn("Skipping reminder outside accounts collection", slog.String("path", snap.Ref.Path))

			continue
		}

		reminder, err := decodeReminder(ref, snap.Data())
		if err != nil {
			repo.logger.Warn("Skipping malformed reminder",
				slog.String("reminder", ref.Path()),
				slog.Any("error", err),
			)

			continue
		}

		reminders = append(reminders, reminder)
	}

	return reminders, nil
}

// FindReminder reads a single reminder.
func (repo *reminderRepository) FindReminder(ctx context.Context, ref entity.ReminderRef) (*entity.Reminder, error) {
	snap, err := repo.get(ctx, repo.reminderDoc(ref))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrReminderNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to get reminder")
	}

	if !snap.Exists() {
		return nil, repository.ErrReminderNotFound
	}

	reminder, err := decodeReminder(ref, snap.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", ref.Path())
	}

	return reminder, nil
}

// UpdateNextSend sets only the nextSend field.
func (repo *reminderRepository) UpdateNextSend(ctx context.Context, ref entity.ReminderRef, nextSend time.Time) error {
	err := repo.update(ctx, repo.reminderDoc(ref), []firestore.Update{
		{Path: "nextSend", Value: nextSend},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrReminderNotFound
		}

		return domainerrors.NewStoreError(err, "failed to update reminder nextSend")
	}

	return nil
}

// MarkSent records a firing.
func (repo *reminderRepository) MarkSent(ctx context.Context, ref entity.ReminderRef, sentAt, nextSend time.Time) error {
	err := repo.update(ctx, repo.reminderDoc(ref), []firestore.Update{
		{Path: "lastSent", Value: sentAt},
		{Path: "nextSend", Value: nextSend},
	})
	if err != nil {
		if isNotFound(err) {
			return repository.ErrReminderNotFound
		}

		return domainerrors.NewStoreError(err, "failed to mark reminder sent")
	}

	return nil
}
