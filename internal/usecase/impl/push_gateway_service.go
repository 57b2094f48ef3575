package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"reminder/config"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/domain/service"
	"reminder/internal/errors"
	"reminder/internal/usecase"
	"reminder/internal/util"
)

// target is one device token addressed by a multicast.
type target struct {
	deviceID string
	token    string
}

// pushGatewayService implements the PushUsecase interface.
type pushGatewayService struct {
	notificationRepo repository.NotificationRepository
	deviceRepo       repository.DeviceRepository
	deliveryLogRepo  repository.DeliveryLogRepository
	pushService      service.PushService
	cfg              *config.PushConfig
	logger           *slog.Logger

	now func() time.Time
}

// NewPushGatewayService is the constructor for pushGatewayService.
func NewPushGatewayService(
	notificationRepo repository.NotificationRepository,
	deviceRepo repository.DeviceRepository,
	deliveryLogRepo repository.DeliveryLogRepository,
	pushService service.PushService,
	cfg *config.Config,
	logger *slog.Logger,
) usecase.PushUsecase {
	return &pushGatewayService{
		notificationRepo: notificationRepo,
		deviceRepo:       deviceRepo,
		deliveryLogRepo:  deliveryLogRepo,
		pushService:      pushService,
		cfg:              cfg.Push,
		logger:           logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *pushGatewayService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Deliver pushes a notification to every device of its owning account.
func (srv *pushGatewayService) Deliver(ctx context.Context, ref entity.NotificationRef) (*usecase.DeliveryReport, error) {
	logger := srv.log(ctx).With(slog.String("notification", ref.Path()))
	report := &usecase.DeliveryReport{Notification: ref}

	notification, err := srv.notificationRepo.FindNotification(ctx, ref)
	if err != nil {
		if errors.Is(err, repository.ErrNotificationNotFound) {
			return nil, errors.Wrap(domainerrors.ErrNotificationNotFound, ref.Path())
		}

		return nil, errors.Wrap(err, "failed to find notification")
	}

	devices, err := srv.deviceRepo.FindDevicesByAccount(ctx, ref.AccountID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to find devices")
	}

	targets := collectTargets(devices)
	report.DeviceCount = len(targets)
	if len(targets) == 0 {
		logger.Info("No devices registered, nothing to deliver")

		return report, nil
	}

	message := srv.buildMessage(notification)
	sentAt := srv.now()
	deliveryLogs := make([]*entity.DeliveryLog, 0, len(targets))

	for start := 0; start < len(targets); start += service.MaxMulticastTokens {
		end := min(start+service.MaxMulticastTokens, len(targets))
		chunk := targets[start:end]

		results := srv.sendChunk(ctx, logger, message, chunk)
		for idx, result := range results {
			device := chunk[idx]
			deliveryLogs = append(deliveryLogs, newDeliveryLog(notification, device, result, sentAt))

			if result.Success() {
				report.SuccessCount++

				continue
			}

			report.FailureCount++
			deliveryErr := &domainerrors.DeliveryError{
				DeviceID: device.deviceID,
				Token:    device.token,
				Code:     result.ErrorCode,
				Cause:    result.Err,
			}
			report.Failures = append(report.Failures, deliveryErr)

			logger.Warn("Delivery failed",
				slog.String("device_id", device.deviceID),
				slog.String("token", util.MaskToken(device.token)),
				slog.String("code", string(deliveryErr.Code)),
				slog.Any("error", result.Err),
			)

			if deliveryErr.IsPruneCandidate() && srv.prune(ctx, logger, ref.AccountID, deliveryErr) {
				report.PrunedCount++
			}
		}
	}

	if err := srv.deliveryLogRepo.BatchCreateDeliveryLogs(ctx, deliveryLogs); err != nil {
		logger.Error("Failed to record delivery logs", slog.Any("error", err))
	}

	logger.Info("Notification delivered",
		slog.Int("devices", report.DeviceCount),
		slog.Int("success", report.SuccessCount),
		slog.Int("failure", report.FailureCount),
		slog.Int("pruned", report.PrunedCount),
	)

	return report, nil
}

// sendChunk sends one multicast and returns a result per target. A failed batch fails every target.
func (srv *pushGatewayService) sendChunk(
	ctx context.Context,
	logger *slog.Logger,
	message service.PushMessage,
	chunk []target,
) []service.SendResult {
	message.Tokens = make([]string, len(chunk))
	for idx, device := range chunk {
		message.Tokens[idx] = device.token
	}

	result, err := srv.pushService.SendMulticast(ctx, &message)
	if err == nil {
		if result != nil && len(result.Results) == len(chunk) {
			return result.Results
		}
		err = errors.Errorf("multicast returned incomplete results for %d tokens", len(chunk))
	}
	logger.Error("Multicast failed", slog.Int("tokens", len(chunk)), slog.Any("error", err))

	results := make([]service.SendResult, len(chunk))
	for idx, device := range chunk {
		results[idx] = service.SendResult{
			Token:     device.token,
			ErrorCode: domainerrors.DeliveryErrorOther,
			Err:       err,
		}
	}

	return results
}

// prune removes a dead registration when enabled, reporting whether it was removed.
func (srv *pushGatewayService) prune(
	ctx context.Context,
	logger *slog.Logger,
	accountID string,
	deliveryErr *domainerrors.DeliveryError,
) bool {
	attrs := []any{
		slog.String("device_id", deliveryErr.DeviceID),
		slog.String("code", string(deliveryErr.Code)),
	}

	if !srv.cfg.PruneInvalidTokens {
		logger.Info("Device token is a prune candidate", attrs...)

		return false
	}

	if err := srv.deviceRepo.PruneDevice(ctx, accountID, deliveryErr.DeviceID); err != nil {
		logger.Error("Failed to prune device", append(attrs, slog.Any("error", err))...)

		return false
	}

	logger.Info("Pruned device", attrs...)

	return true
}

func (srv *pushGatewayService) buildMessage(notification *entity.Notification) service.PushMessage {
	link := notification.Link
	if base := strings.TrimRight(srv.cfg.AppBaseURL, "/"); base != "" {
		link = base + "/notifications/" + notification.Ref.NotificationID
	}

	data := map[string]string{
		"notificationId": notification.Ref.NotificationID,
		"reminderId":     notification.ReminderRef.ReminderID,
		"accountId":      notification.Ref.AccountID,
	}
	if notification.Link != "" {
		data["link"] = notification.Link
	}

	return service.PushMessage{
		Title:    notification.Title,
		Body:     notification.Body,
		Tag:      notification.ReminderRef.ReminderID,
		Link:     link,
		Urgency:  srv.cfg.Urgency,
		Data:     data,
		Renotify: true,
	}
}

// collectTargets keeps devices with a non-empty token, dropping repeated tokens.
func collectTargets(devices []*entity.Device) []target {
	seen := make(map[string]struct{}, len(devices))
	targets := make([]target, 0, len(devices))

	for _, device := range devices {
		token := strings.TrimSpace(device.Token)
		if token == "" {
			continue
		}
		if _, ok := seen[token]; ok {
			continue
		}
		seen[token] = struct{}{}
		targets = append(targets, target{deviceID: device.DeviceID, token: token})
	}

	return targets
}

func newDeliveryLog(
	notification *entity.Notification,
	device target,
	result service.SendResult,
	sentAt time.Time,
) *entity.DeliveryLog {
	deliveryLog := &entity.DeliveryLog{
		AccountID:      notification.Ref.AccountID,
		NotificationID: notification.Ref.NotificationID,
		ReminderID:     notification.ReminderRef.ReminderID,
		DeviceID:       device.deviceID,
		TokenPrefix:    util.MaskToken(device.token),
		Status:         entity.DeliveryStatusSent,
		MessageID:      result.MessageID,
		SentAt:         sentAt,
	}

	if !result.Success() {
		deliveryLog.Status = entity.DeliveryStatusFailed
		deliveryLog.ErrorCode = string(result.ErrorCode)
		deliveryLog.ErrorMessage = result.Err.Error()
	}

	return deliveryLog
}
