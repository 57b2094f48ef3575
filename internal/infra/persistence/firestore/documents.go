package firestore

import (
	"time"

	"reminder/internal/domain/entity"
	"reminder/internal/domain/repository"
	"reminder/internal/errors"

	"cloud.google.com/go/firestore"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// fields is the raw map form of a document as returned by DocumentSnapshot.Data.
type fields map[string]any

func malformed(key string, value any) error {
	return errors.Wrapf(repository.ErrMalformedDocument, "field %q has unexpected type %T", key, value)
}

func (f fields) optionalString(key string) (string, error) {
	switch v := f[key].(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return "", malformed(key, v)
	}
}

func (f fields) optionalBool(key string) (*bool, error) {
	switch v := f[key].(type) {
	case nil:
		return nil, nil
	case bool:
		return &v, nil
	default:
		return nil, malformed(key, v)
	}
}

func (f fields) optionalTime(key string) (*time.Time, error) {
	switch v := f[key].(type) {
	case nil:
		return nil, nil
	case time.Time:
		return &v, nil
	default:
		return nil, malformed(key, v)
	}
}

func (f fields) optionalMap(key string) (map[string]any, error) {
	switch v := f[key].(type) {
	case nil:
		return nil, nil
	case map[string]any:
		return v, nil
	default:
		return nil, malformed(key, v)
	}
}

// decodeReminder parses a reminder document. Unknown types are kept so the evaluator can report them.
func decodeReminder(ref entity.ReminderRef, data fields) (*entity.Reminder, error) {
	reminder := &entity.Reminder{Ref: ref}

	var err error
	if reminder.Title, err = data.optionalString("title"); err != nil {
		return nil, err
	}
	if reminder.Body, err = data.optionalString("body"); err != nil {
		return nil, err
	}
	if reminder.Link, err = data.optionalString("link"); err != nil {
		return nil, err
	}
	if reminder.Enabled, err = data.optionalBool("enabled"); err != nil {
		return nil, err
	}

	reminderType, err := data.optionalString("type")
	if err != nil {
		return nil, err
	}
	reminder.Type = entity.ReminderType(reminderType)

	if reminder.CronExpression, err = data.optionalString("cronExpression"); err != nil {
		return nil, err
	}
	if reminder.NextSend, err = data.optionalTime("nextSend"); err != nil {
		return nil, err
	}
	if reminder.LastSent, err = data.optionalTime("lastSent"); err != nil {
		return nil, err
	}

	return reminder, nil
}

type notificationDocument struct {
	ReminderPath string `validate:"required"`
	Title        string
	Body         string
	Link         string
	Sent         *time.Time
}

// decodeNotification parses a notification document; reminderRef may be a reference or a path string.
func decodeNotification(ref entity.NotificationRef, data fields) (*entity.Notification, error) {
	doc := notificationDocument{}

	switch v := data["reminderRef"].(type) {
	case *firestore.DocumentRef:
		if v != nil {
			doc.ReminderPath = v.Path
		}
	case string:
		doc.ReminderPath = v
	case nil:
	default:
		return nil, malformed("reminderRef", v)
	}

	var err error
	if doc.Title, err = data.optionalString("title"); err != nil {
		return nil, err
	}
	if doc.Body, err = data.optionalString("body"); err != nil {
		return nil, err
	}
	if doc.Link, err = data.optionalString("link"); err != nil {
		return nil, err
	}
	if doc.Sent, err = data.optionalTime("sent"); err != nil {
		return nil, err
	}

	if err := validate.Struct(doc); err != nil {
		return nil, errors.Wrap(repository.ErrMalformedDocument, err.Error())
	}

	reminderRef, err := entity.ParseReminderPath(doc.ReminderPath)
	if err != nil {
		return nil, errors.Wrap(repository.ErrMalformedDocument, err.Error())
	}

	return &entity.Notification{
		Ref:         ref,
		ReminderRef: reminderRef,
		Title:       doc.Title,
		Body:        doc.Body,
		Link:        doc.Link,
		Sent:        doc.Sent,
	}, nil
}

// encodeNotification renders a notification for creation with a server-assigned sent time.
func encodeNotification(reminderDoc *firestore.DocumentRef, notification *entity.Notification) map[string]any {
	data := map[string]any{
		"reminderRef": reminderDoc,
		"title":       notification.Title,
		"body":        notification.Body,
		"sent":        firestore.ServerTimestamp,
	}
	if notification.Link != "" {
		data["link"] = notification.Link
	}

	return data
}

type deviceDocument struct {
	DeviceID string `validate:"required"`
	Token    string `validate:"required"`
	Name     string
}

// decodeDevices parses the devices map of an account. Entries without a usable token are
// returned as skipped since they can never be delivered to.
func decodeDevices(accountID string, data fields) (devices []*entity.Device, skipped []string, err error) {
	raw, err := data.optionalMap(fieldDevices)
	if err != nil {
		return nil, nil, err
	}

	for deviceID, value := range raw {
		entry, ok := value.(map[string]any)
		if !ok {
			skipped = append(skipped, deviceID)

			continue
		}

		doc := deviceDocument{DeviceID: deviceID}
		doc.Token, _ = entry["token"].(string)
		doc.Name, _ = entry["name"].(string)

		if err := validate.Struct(doc); err != nil {
			skipped = append(skipped, deviceID)

			continue
		}

		devices = append(devices, &entity.Device{
			AccountID: accountID,
			DeviceID:  doc.DeviceID,
			Token:     doc.Token,
			Name:      doc.Name,
		})
	}

	return devices, skipped, nil
}

// DecodeReminder parses reminder fields that arrive outside a snapshot, such as in document events.
// Timestamps must already be time.Time values.
func DecodeReminder(ref entity.ReminderRef, data map[string]any) (*entity.Reminder, error) {
	return decodeReminder(ref, fields(data))
}
