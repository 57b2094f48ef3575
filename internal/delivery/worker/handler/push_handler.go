package handler

import (
	"context"
	"encoding/base64"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"

	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/delivery/event"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/service"
	"reminder/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// PubSubMessage represents the structure of a Pub/Sub push message
type PubSubMessage struct {
	Message struct {
		Data        string            `json:"data"`
		Attributes  map[string]string `json:"attributes,omitempty"`
		MessageID   string            `json:"messageId"`
		PublishTime string            `json:"publishTime"`
	} `json:"message"`
	Subscription string `json:"subscription"`
}

// PushHandler delivers created notifications handed over by Pub/Sub or Eventarc
type PushHandler struct {
	logger   *slog.Logger
	pushUC   usecase.PushUsecase
	validate *validator.Validate
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Logger *slog.Logger
	PushUC usecase.PushUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	return &PushHandler{
		logger:   params.Logger,
		pushUC:   params.PushUC,
		validate: validator.New(validator.WithRequiredStructEnabled()),
	}
}

// HandlePush handles incoming Pub/Sub push messages
func (h *PushHandler) HandlePush(c echo.Context) error {
	ctx := c.Request().Context()

	// Parse Pub/Sub message
	var pushMsg PubSubMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Decode base64 message data
	data, err := base64.StdEncoding.DecodeString(pushMsg.Message.Data)
	if err != nil {
		h.logger.Error("[Worker] Failed to decode message data", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	// Parse notification event
	var created service.NotificationCreatedEvent
	if err := json.Unmarshal(data, &created); err != nil {
		h.logger.Error("[Worker] Failed to parse notification event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.validate.Struct(&created); err != nil {
		h.logger.Error("[Worker] Invalid notification event",
			slog.String("message_id", pushMsg.Message.MessageID),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	// Extract request_id for distributed tracing
	// Priority: message attributes > event field > existing context
	requestID := h.extractRequestID(ctx, &pushMsg, &created)
	ctx = h.withRequestScope(ctx, requestID)

	ref := entity.NotificationRef{AccountID: created.AccountID, NotificationID: created.NotificationID}

	return h.deliver(ctx, c, ref, slog.Bool("forced", created.Forced))
}

// HandleNotificationEvent handles a created notification document delivered by Eventarc
func (h *PushHandler) HandleNotificationEvent(c echo.Context) error {
	ctx := c.Request().Context()

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		h.logger.Error("[Worker] Failed to read event body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := event.Parse(c.Request().Header.Get(echo.HeaderContentType), body)
	if err != nil {
		h.logger.Warn("[Worker] Failed to parse document event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	ref, err := data.NotificationRef()
	if err != nil {
		h.logger.Warn("[Worker] Event is not a created notification",
			slog.String("document", data.Name()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := deliverycontext.GetRequestIDFromContext(ctx)
	if requestID == "" {
		requestID = uuid.New().String()
	}
	ctx = h.withRequestScope(ctx, requestID)

	return h.deliver(ctx, c, ref)
}

// deliver runs the push gateway and maps the outcome onto a push acknowledgement.
// Return 503 for store errors to trigger a retry, 200 otherwise to prevent infinite retries.
func (h *PushHandler) deliver(ctx context.Context, c echo.Context, ref entity.NotificationRef, attrs ...any) error {
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)
	attrs = append(attrs,
		slog.String("account_id", ref.AccountID),
		slog.String("notification_id", ref.NotificationID),
	)

	logger.Info("[Worker] Processing notification", attrs...)

	report, err := h.pushUC.Deliver(ctx, ref)
	if err != nil {
		retryable := isRetryableError(err)
		logger.Error("[Worker] Failed to deliver notification",
			append(attrs, slog.Any("error", err), slog.Bool("retryable", retryable))...,
		)
		if retryable {
			return c.NoContent(http.StatusServiceUnavailable)
		}

		return c.NoContent(http.StatusOK)
	}

	logger.Info("[Worker] Notification delivered",
		append(attrs,
			slog.Int("device_count", report.DeviceCount),
			slog.Int("success_count", report.SuccessCount),
			slog.Int("failure_count", report.FailureCount),
			slog.Int("pruned_count", report.PrunedCount),
		)...,
	)

	return c.NoContent(http.StatusOK)
}

// withRequestScope stores the request id and a request-scoped logger in ctx
func (h *PushHandler) withRequestScope(ctx context.Context, requestID string) context.Context {
	reqLogger := h.logger.With(slog.String("request_id", requestID))
	ctx = deliverycontext.WithRequestID(ctx, requestID)

	return deliverycontext.WithLogger(ctx, reqLogger)
}

// extractRequestID extracts request_id from message attributes, event, or generates a new one
func (h *PushHandler) extractRequestID(ctx context.Context, pushMsg *PubSubMessage, created *service.NotificationCreatedEvent) string {
	// 1. Try message attributes (from Pub/Sub)
	if requestID, ok := pushMsg.Message.Attributes["request_id"]; ok && requestID != "" {
		return requestID
	}

	// 2. Try event field (from JSON payload)
	if created.RequestID != "" {
		return created.RequestID
	}

	// 3. Try existing context (from RequestIDMiddleware via X-Request-Id header)
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	// 4. Generate new UUID as fallback
	return uuid.New().String()
}

// isRetryableError reports whether a failed delivery should be redelivered.
// A missing notification will not appear on retry, and per-token failures are already settled.
func isRetryableError(err error) bool {
	if errors.Is(err, domainerrors.ErrNotificationNotFound) {
		return false
	}

	return domainerrors.IsStoreError(err)
}
