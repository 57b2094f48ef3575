// Package schedule computes when reminders fire next.
package schedule

import (
	"strings"
	"time"
	_ "time/tzdata" // Containers may ship without a zoneinfo database.

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/errors"

	"github.com/robfig/cron/v3"
)

// ErrScheduleExhausted is the cause reported when an expression has no future occurrence.
var ErrScheduleExhausted = errors.New("no future occurrence")

// Evaluator computes the next fire time of a reminder in one fixed location.
// It performs no I/O and never reads the clock.
type Evaluator struct {
	location *time.Location
	parser   cron.Parser
}

// NewEvaluator creates an evaluator bound to location.
func NewEvaluator(location *time.Location) *Evaluator {
	return &Evaluator{
		location: location,
		parser: cron.NewParser(
			cron.SecondOptional | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow | cron.Descriptor,
		),
	}
}

// Location returns the zone expressions are evaluated in.
func (e *Evaluator) Location() *time.Location {
	return e.location
}

// NextFire returns the first instant strictly after now at which reminder should fire.
func (e *Evaluator) NextFire(reminder *entity.Reminder, now time.Time) (time.Time, error) {
	switch reminder.Type {
	case entity.ReminderTypeCron:
		return e.nextCron(reminder, now)
	default:
		return time.Time{}, &domainerrors.UnknownReminderTypeError{
			ReminderPath: reminder.Ref.Path(),
			Type:         string(reminder.Type),
		}
	}
}

func (e *Evaluator) nextCron(reminder *entity.Reminder, now time.Time) (time.Time, error) {
	expression := strings.TrimSpace(reminder.CronExpression)
	invalid := func(cause error) error {
		return &domainerrors.InvalidScheduleError{
			ReminderPath: reminder.Ref.Path(),
			Expression:   reminder.CronExpression,
			Cause:        cause,
		}
	}

	// The zone is fixed for every reminder.
	if strings.HasPrefix(expression, "TZ=") || strings.HasPrefix(expression, "CRON_TZ=") {
		return time.Time{}, invalid(errors.New("timezone overrides are not supported"))
	}

	parsed, err := e.parser.Parse(expression)
	if err != nil {
		return time.Time{}, invalid(err)
	}

	// @every yields a delay from now, which is neither zone bound nor stable across calls.
	spec, ok := parsed.(*cron.SpecSchedule)
	if !ok {
		return time.Time{}, invalid(errors.New("interval schedules are not supported"))
	}
	spec.Location = e.location

	next := spec.Next(now)
	if next.IsZero() {
		return time.Time{}, invalid(ErrScheduleExhausted)
	}

	return next, nil
}
