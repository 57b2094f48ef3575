package firestore

import (
	"context"
	"log/slog"
	"sort"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"

	"cloud.google.com/go/firestore"
)

// deviceRepository implements the repository.DeviceRepository interface over the devices map of accounts.
type deviceRepository struct {
	store
	logger *slog.Logger
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(client *firestore.Client, logger *slog.Logger) repository.DeviceRepository {
	return &deviceRepository{
		store:  store{client: client},
		logger: logger,
	}
}

// FindDevicesByAccount returns the account's devices ordered by device ID.
func (repo *deviceRepository) FindDevicesByAccount(ctx context.Context, accountID string) ([]*entity.Device, error) {
	snap, err := repo.get(ctx, repo.accountDoc(accountID))
	if err != nil {
		if isNotFound(err) {
			return nil, nil
		}

		return nil, domainerrors.NewStoreError(err, "failed to get account devices")
	}

	if !snap.Exists() {
		return nil, nil
	}

	devices, skipped, err := decodeDevices(accountID, snap.Data())
	if err != nil {
		return nil, err
	}

	if len(skipped) > 0 {
		repo.logger.Warn("Ignoring device registrations without a token",
			slog.String("account_id", accountID),
			slog.Any("device_ids", skipped),
		)
	}

	sort.Slice(devices, func(i, j int) bool {
		return devices[i].DeviceID < devices[j].DeviceID
	})

	return devices, nil
}

// PruneDevice deletes devices.{deviceID} from the account document.
func (repo *deviceRepository) PruneDevice(ctx context.Context, accountID, deviceID string) error {
	err := repo.update(ctx, repo.accountDoc(accountID), []firestore.Update{
		{FieldPath: firestore.FieldPath{fieldDevices, deviceID}, Value: firestore.Delete},
	})
	if err != nil {
		if isNotFound(err) {
			return nil
		}

		return domainerrors.NewStoreError(err, "failed to prune device")
	}

	return nil
}
