package firestore

import (
	"context"
	"log/slog"

	"reminder/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// firestoreTransactionManager implements the domain's TransactionManager interface using Firestore.
type firestoreTransactionManager struct {
	client *firestore.Client
	logger *slog.Logger
}

// firestoreRepositoryFactory implements the domain's RepositoryFactory interface.
// It holds a specific Firestore transaction and uses it to create
// repository instances that are bound to that single transaction.
type firestoreRepositoryFactory struct {
	store
	logger *slog.Logger
}

// ReminderRepo creates a reminder repository bound to the transaction.
func (f *firestoreRepositoryFactory) ReminderRepo() repository.ReminderRepository {
	return &reminderRepository{store: f.store, logger: f.logger}
}

// NotificationRepo creates a notification repository bound to the transaction.
func (f *firestoreRepositoryFactory) NotificationRepo() repository.NotificationRepository {
	return &notificationRepository{store: f.store}
}

// NewTransactionManager is the constructor for firestoreTransactionManager.
func NewTransactionManager(client *firestore.Client, logger *slog.Logger) repository.TransactionManager {
	return &firestoreTransactionManager{client: client, logger: logger}
}

// Execute runs fn in a Firestore transaction. Firestore retries fn on contention, and an error
// returned by fn rolls the transaction back and is returned unchanged.
func (tm *firestoreTransactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	return tm.client.RunTransaction(ctx, func(_ context.Context, tx *firestore.Transaction) error {
		return fn(&firestoreRepositoryFactory{
			store:  store{client: tm.client, tx: tx},
			logger: tm.logger,
		})
	})
}
