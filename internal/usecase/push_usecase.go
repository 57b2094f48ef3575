package usecase

import (
	"context"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
)

// DeliveryReport summarizes the delivery of one notification
type DeliveryReport struct {
	Notification entity.NotificationRef `json:"notification"`
	DeviceCount  int                    `json:"device_count"`
	SuccessCount int                    `json:"success_count"`
	FailureCount int                    `json:"failure_count"`
	PrunedCount  int                    `json:"pruned_count"`

	// Failures lists every per-device failure, in device order
	Failures []*domainerrors.DeliveryError `json:"-"`
}

// PushUsecase delivers notifications to the owning account's devices
type PushUsecase interface {
	Deliver(ctx context.Context, ref entity.NotificationRef) (*DeliveryReport, error)
}
