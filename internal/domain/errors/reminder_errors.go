package errors

import (
	"fmt"

	"reminder/internal/errors"
)

// InvalidScheduleError is returned when a reminder's schedule cannot produce a next fire time.
type InvalidScheduleError struct {
	ReminderPath string
	Expression   string
	Cause        error
}

func (e *InvalidScheduleError) Error() string {
	if e.Cause == nil {
		return fmt.Sprintf("invalid schedule %q for %s", e.Expression, e.ReminderPath)
	}

	return fmt.Sprintf("invalid schedule %q for %s: %v", e.Expression, e.ReminderPath, e.Cause)
}

func (e *InvalidScheduleError) Unwrap() error {
	return e.Cause
}

// UnknownReminderTypeError is returned for reminder types the evaluator does not support.
type UnknownReminderTypeError struct {
	ReminderPath string
	Type         string
}

func (e *UnknownReminderTypeError) Error() string {
	return fmt.Sprintf("unknown reminder type %q for %s", e.Type, e.ReminderPath)
}

// IsScheduleError reports whether err means the reminder cannot be scheduled this cycle.
func IsScheduleError(err error) bool {
	var invalidErr *InvalidScheduleError
	var unknownErr *UnknownReminderTypeError

	return errors.As(err, &invalidErr) || errors.As(err, &unknownErr)
}

// DeliveryErrorCode classifies a failed push to a single token.
type DeliveryErrorCode string

const (
	DeliveryErrorInvalidToken DeliveryErrorCode = "invalid-token"
	DeliveryErrorUnregistered DeliveryErrorCode = "unregistered"
	DeliveryErrorOther        DeliveryErrorCode = "other"
)

// DeliveryError describes why a push to one device failed.
type DeliveryError struct {
	DeviceID string
	Token    string
	Code     DeliveryErrorCode
	Cause    error
}

func (e *DeliveryError) Error() string {
	return fmt.Sprintf("delivery to device %s failed (%s): %v", e.DeviceID, e.Code, e.Cause)
}

func (e *DeliveryError) Unwrap() error {
	return e.Cause
}

// IsPruneCandidate reports whether the token will never accept messages again.
func (e *DeliveryError) IsPruneCandidate() bool {
	return e.Code == DeliveryErrorInvalidToken || e.Code == DeliveryErrorUnregistered
}
