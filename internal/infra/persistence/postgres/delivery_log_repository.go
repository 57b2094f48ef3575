// Package postgres contains the concrete implementation of the delivery audit store using GORM and PostgreSQL.
package postgres

import (
	"context"

	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const deliveryLogBatchSize = 100

// deliveryLogRepository implements the repository.DeliveryLogRepository interface.
type deliveryLogRepository struct {
	db *gorm.DB
}

// NewDeliveryLogRepository is the constructor for deliveryLogRepository.
func NewDeliveryLogRepository(db *gorm.DB) repository.DeliveryLogRepository {
	return &deliveryLogRepository{
		db: db,
	}
}

// BatchCreateDeliveryLogs persists delivery outcomes in batches.
func (repo *deliveryLogRepository) BatchCreateDeliveryLogs(ctx context.Context, logs []*entity.DeliveryLog) error {
	if len(logs) == 0 {
		return nil
	}

	logModels := make([]*model.DeliveryLogModel, 0, len(logs))
	for _, log := range logs {
		logModels = append(logModels, fromDeliveryLogDomain(log))
	}

	if err := repo.db.WithContext(ctx).CreateInBatches(logModels, deliveryLogBatchSize).Error; err != nil {
		if isNotNullConstraintViolation(err) {
			return domainerrors.ErrValidationFailed.WrapMessage("missing required delivery log information in batch")
		}

		return domainerrors.NewStoreError(err, "failed to batch create delivery logs")
	}

	return nil
}

// migrateDeliveryLogs creates or updates the delivery_logs table.
func migrateDeliveryLogs(ctx context.Context, db *gorm.DB) error {
	return db.WithContext(ctx).AutoMigrate(&model.DeliveryLogModel{})
}

// discardDeliveryLogRepository is used when no relational store is configured.
type discardDeliveryLogRepository struct{}

// NewDiscardDeliveryLogRepository returns a repository that drops every log.
func NewDiscardDeliveryLogRepository() repository.DeliveryLogRepository {
	return discardDeliveryLogRepository{}
}

func (discardDeliveryLogRepository) BatchCreateDeliveryLogs(context.Context, []*entity.DeliveryLog) error {
	return nil
}

// --- Mapper Functions ---

// fromDeliveryLogDomain converts a domain DeliveryLog entity to a GORM DeliveryLogModel.
func fromDeliveryLogDomain(data *entity.DeliveryLog) *model.DeliveryLogModel {
	if data == nil {
		return nil
	}

	return &model.DeliveryLogModel{
		ID:             uuid.New(),
		AccountID:      data.AccountID,
		NotificationID: data.NotificationID,
		ReminderID:     data.ReminderID,
		DeviceID:       data.DeviceID,
		TokenPrefix:    data.TokenPrefix,
		Status:         string(data.Status),
		MessageID:      data.MessageID,
		ErrorCode:      data.ErrorCode,
		ErrorMessage:   data.ErrorMessage,
		SentAt:         data.SentAt,
	}
}
