package repository

import "context"

// TransactionManager defines the interface for managing store transactions.
// This allows the use case layer to handle transactions without depending on a specific store client.
type TransactionManager interface {
	// Execute runs a function within a store transaction.
	// If the function returns an error, the transaction is rolled back. Otherwise, it's committed.
	// The function may be invoked more than once when the store retries on contention, so it must
	// not leak side effects outside the repositories it is given.
	Execute(ctx context.Context, fn func(txRepoFactory RepositoryFactory) error) error
}

// RepositoryFactory provides repository instances bound to a specific transaction.
// Reads must happen before writes within one transaction.
type RepositoryFactory interface {
	// ReminderRepo returns a ReminderRepository bound to the current transaction.
	ReminderRepo() ReminderRepository

	// NotificationRepo returns a NotificationRepository bound to the current transaction.
	NotificationRepo() NotificationRepository
}
