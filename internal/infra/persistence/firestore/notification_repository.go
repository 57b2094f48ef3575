package firestore

import (
	"context"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/errors"

	"cloud.google.com/go/firestore"
)

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	store
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(client *firestore.Client) repository.NotificationRepository {
	return &notificationRepository{
		store: store{client: client},
	}
}

// CreateNotification stores a new notification under its account with an auto-generated ID.
func (repo *notificationRepository) CreateNotification(ctx context.Context, notification *entity.Notification) error {
	collection := repo.accountDoc(notification.Ref.AccountID).Collection(notificationsCollection)

	var doc *firestore.DocumentRef
	if notification.Ref.NotificationID != "" {
		doc = collection.Doc(notification.Ref.NotificationID)
	} else {
		doc = collection.NewDoc()
	}

	data := encodeNotification(repo.reminderDoc(notification.ReminderRef), notification)
	if err := repo.create(ctx, doc, data); err != nil {
		return domainerrors.NewStoreError(err, "failed to create notification")
	}

	notification.Ref.NotificationID = doc.ID

	return nil
}

// FindNotification reads a single notification.
func (repo *notificationRepository) FindNotification(ctx context.Context, ref entity.NotificationRef) (*entity.Notification, error) {
	snap, err := repo.get(ctx, repo.notificationDoc(ref))
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrNotificationNotFound
		}

		return nil, domainerrors.NewStoreError(err, "failed to get notification")
	}

	if !snap.Exists() {
		return nil, repository.ErrNotificationNotFound
	}

	notification, err := decodeNotification(ref, snap.Data())
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", ref.Path())
	}

	return notification, nil
}
