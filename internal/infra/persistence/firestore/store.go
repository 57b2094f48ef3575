// Package firestore contains the document store implementation of the reminder repositories.
package firestore

import (
	"context"

	"reminder/internal/domain/entity"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

const (
	accountsCollection      = "accounts"
	remindersCollection     = "reminders"
	notificationsCollection = "notifications"

	fieldDevices = "devices"
)

// store routes reads and writes through a transaction when one is bound.
type store struct {
	client *firestore.Client
	tx     *firestore.Transaction
}

func (s store) accountDoc(accountID string) *firestore.DocumentRef {
	return s.client.Collection(accountsCollection).Doc(accountID)
}

func (s store) reminderDoc(ref entity.ReminderRef) *firestore.DocumentRef {
	return s.accountDoc(ref.AccountID).Collection(remindersCollection).Doc(ref.ReminderID)
}

func (s store) notificationDoc(ref entity.NotificationRef) *firestore.DocumentRef {
	return s.accountDoc(ref.AccountID).Collection(notificationsCollection).Doc(ref.NotificationID)
}

func (s store) get(ctx context.Context, doc *firestore.DocumentRef) (*firestore.DocumentSnapshot, error) {
	if s.tx != nil {
		return s.tx.Get(doc)
	}

	return doc.Get(ctx)
}

func (s store) create(ctx context.Context, doc *firestore.DocumentRef, data any) error {
	if s.tx != nil {
		return s.tx.Create(doc, data)
	}

	_, err := doc.Create(ctx, data)

	return err
}

func (s store) update(ctx context.Context, doc *firestore.DocumentRef, updates []firestore.Update) error {
	if s.tx != nil {
		return s.tx.Update(doc, updates)
	}

	_, err := doc.Update(ctx, updates)

	return err
}

func (s store) documents(ctx context.Context, query firestore.Query) *firestore.DocumentIterator {
	if s.tx != nil {
		return s.tx.Documents(query)
	}

	return query.Documents(ctx)
}

func isNotFound(err error) bool {
	return status.Code(err) == codes.NotFound
}
