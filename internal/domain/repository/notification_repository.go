package repository

import (
	"context"

	"reminder/internal/domain/entity"

	"github.com/pkg/errors"
)

// ErrNotificationNotFound is returned when a notification document does not exist.
var ErrNotificationNotFound = errors.New("notification not found")

// NotificationRepository defines the interface for notification document operations.
type NotificationRepository interface {
	// CreateNotification stores a new notification with a server-assigned sent timestamp and
	// fills in notification.Ref.NotificationID.
	CreateNotification(ctx context.Context, notification *entity.Notification) error

	// FindNotification reads a single notification.
	FindNotification(ctx context.Context, ref entity.NotificationRef) (*entity.Notification, error)
}
