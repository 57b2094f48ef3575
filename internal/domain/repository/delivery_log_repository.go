package repository

import (
	"context"

	"reminder/internal/domain/entity"
)

// DeliveryLogRepository persists per-device push outcomes for auditing.
type DeliveryLogRepository interface {
	BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error
}
