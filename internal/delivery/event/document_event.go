// Package event decodes Firestore document events delivered by Eventarc.
package event

import (
	"mime"

	"reminder/internal/domain/entity"
	"reminder/internal/errors"
	"reminder/internal/infra/persistence/firestore"

	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"
)

// ErrInvalidEvent is returned when an event body is not a usable document event.
var ErrInvalidEvent = errors.New("invalid document event")

const (
	ContentTypeProtobuf  = "application/protobuf"
	contentTypeXProtobuf = "application/x-protobuf"
)

var jsonOptions = protojson.UnmarshalOptions{DiscardUnknown: true}

// DocumentEvent is a decoded google.events.cloud.firestore.v1.DocumentEventData.
type DocumentEvent struct {
	*firestoredata.DocumentEventData
}

// Parse decodes a request body into a DocumentEvent. Protobuf bodies are
// recognised by content type, everything else is read as JSON.
func Parse(contentType string, body []byte) (*DocumentEvent, error) {
	data := &firestoredata.DocumentEventData{}

	var err error
	if isProtobuf(contentType) {
		err = proto.Unmarshal(body, data)
	} else {
		err = jsonOptions.Unmarshal(body, data)
	}
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEvent, err.Error())
	}

	if data.GetValue() == nil && data.GetOldValue() == nil {
		return nil, errors.Wrap(ErrInvalidEvent, "neither value nor oldValue present")
	}

	return &DocumentEvent{DocumentEventData: data}, nil
}

func isProtobuf(contentType string) bool {
	mediaType, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}

	return mediaType == ContentTypeProtobuf || mediaType == contentTypeXProtobuf
}

// Name returns the resource name of the document the event is about.
func (d *DocumentEvent) Name() string {
	if name := d.GetValue().GetName(); name != "" {
		return name
	}

	return d.GetOldValue().GetName()
}

// ReminderChange decodes a written reminder document event.
func (d *DocumentEvent) ReminderChange() (*entity.ReminderChange, error) {
	ref, err := entity.ParseReminderPath(d.Name())
	if err != nil {
		return nil, errors.Wrap(ErrInvalidEvent, err.Error())
	}

	change := &entity.ReminderChange{}
	if change.Before, err = decodeReminder(ref, d.GetOldValue()); err != nil {
		return nil, errors.Wrap(err, "oldValue")
	}
	if change.After, err = decodeReminder(ref, d.GetValue()); err != nil {
		return nil, errors.Wrap(err, "value")
	}

	return change, nil
}

// NotificationRef returns the notification a created document event is about.
func (d *DocumentEvent) NotificationRef() (entity.NotificationRef, error) {
	if d.GetValue() == nil {
		return entity.NotificationRef{}, errors.Wrap(ErrInvalidEvent, "not a create event")
	}

	ref, err := entity.ParseNotificationPath(d.GetValue().GetName())
	if err != nil {
		return entity.NotificationRef{}, errors.Wrap(ErrInvalidEvent, err.Error())
	}

	return ref, nil
}

// DocumentData converts the typed fields of doc into plain Go values: timestamps
// become time.Time, integers int64, references stay resource-name strings.
func DocumentData(doc *firestoredata.Document) (map[string]any, error) {
	return decodeFields(doc.GetFields())
}

func decodeReminder(ref entity.ReminderRef, doc *firestoredata.Document) (*entity.Reminder, error) {
	if doc == nil {
		return nil, nil
	}

	data, err := DocumentData(doc)
	if err != nil {
		return nil, err
	}

	return firestore.DecodeReminder(ref, data)
}

func decodeFields(fields map[string]*firestoredata.Value) (map[string]any, error) {
	data := make(map[string]any, len(fields))
	for key, value := range fields {
		decoded, err := decodeValue(value)
		if err != nil {
			return nil, errors.Wrapf(err, "field %q", key)
		}
		data[key] = decoded
	}

	return data, nil
}

func decodeValue(value *firestoredata.Value) (any, error) {
	switch v := value.GetValueType().(type) {
	case *firestoredata.Value_NullValue:
		return nil, nil
	case *firestoredata.Value_BooleanValue:
		return v.BooleanValue, nil
	case *firestoredata.Value_IntegerValue:
		return v.IntegerValue, nil
	case *firestoredata.Value_DoubleValue:
		return v.DoubleValue, nil
	case *firestoredata.Value_TimestampValue:
		if err := v.TimestampValue.CheckValid(); err != nil {
			return nil, errors.Wrap(ErrInvalidEvent, err.Error())
		}

		return v.TimestampValue.AsTime(), nil
	case *firestoredata.Value_StringValue:
		return v.StringValue, nil
	case *firestoredata.Value_ReferenceValue:
		return v.ReferenceValue, nil
	case *firestoredata.Value_BytesValue:
		return v.BytesValue, nil
	case *firestoredata.Value_GeoPointValue:
		return map[string]any{
			"latitude":  v.GeoPointValue.GetLatitude(),
			"longitude": v.GeoPointValue.GetLongitude(),
		}, nil
	case *firestoredata.Value_ArrayValue:
		items := v.ArrayValue.GetValues()
		values := make([]any, len(items))
		for idx, item := range items {
			decoded, err := decodeValue(item)
			if err != nil {
				return nil, err
			}
			values[idx] = decoded
		}

		return values, nil
	case *firestoredata.Value_MapValue:
		return decodeFields(v.MapValue.GetFields())
	default:
		// unknown kinds are dropped while decoding, leaving an empty value
		return nil, errors.Wrap(ErrInvalidEvent, "value has no kind")
	}
}
