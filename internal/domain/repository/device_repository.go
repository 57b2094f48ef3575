package repository

import (
	"context"

	"reminder/internal/domain/entity"
)

// DeviceRepository defines the interface for device registrations stored on accounts.
type DeviceRepository interface {
	// FindDevicesByAccount returns the devices registered on an account, ordered by device ID.
	// A missing account yields no devices.
	FindDevicesByAccount(ctx context.Context, accountID string) ([]*entity.Device, error)

	// PruneDevice removes one device registration from an account.
	PruneDevice(ctx context.Context, accountID, deviceID string) error
}
