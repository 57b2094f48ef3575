package usecase

import (
	"context"
	"time"
)

// FanOutReport summarizes one fan-out run
type FanOutReport struct {
	StartedAt   time.Time     `json:"started_at"`
	Duration    time.Duration `json:"duration"`
	LockSkipped bool          `json:"lock_skipped"` // Another run held the lock
	Matched     int           `json:"matched"`      // Reminders returned by the due query
	Fired       int           `json:"fired"`        // Notifications created
	Skipped     int           `json:"skipped"`      // No longer due, or unschedulable this cycle
	Failed      int           `json:"failed"`       // Store or unexpected errors
}

// FanOutUsecase materializes notifications for every due reminder
type FanOutUsecase interface {
	Run(ctx context.Context) (*FanOutReport, error)
}
