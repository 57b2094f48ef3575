package handler

import (
	"log/slog"

	"reminder/internal/delivery/api/response"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CallableHandlerParams holds dependencies for CallableHandler, injected by Fx.
type CallableHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// CallableHandler serves Firebase-callable style endpoints
type CallableHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewCallableHandler is the constructor for CallableHandler
func NewCallableHandler(params CallableHandlerParams) *CallableHandler {
	return &CallableHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// TriggerReminderData is the payload of triggerReminder
type TriggerReminderData struct {
	Path string `json:"path" validate:"required"`
}

// TriggerReminder fires the reminder at data.path right away
func (h *CallableHandler) TriggerReminder(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	var req response.CallableRequest[TriggerReminderData]
	if err := c.Bind(&req); err != nil {
		return response.CallableFailure(c, response.CallableInvalidArgument)
	}

	if err := c.Validate(&req.Data); err != nil {
		return response.CallableFailure(c, response.CallableInvalidArgument)
	}

	attrs := []any{slog.String("path", req.Data.Path)}
	if caller, ok := deliverycontext.GetCaller(ctx); ok {
		attrs = append(attrs, slog.String("caller_uid", caller.UID))
	}

	notification, err := h.dispatchUC.TriggerReminder(ctx, req.Data.Path)
	if err != nil {
		logger.Error("Manual trigger failed", append(attrs, slog.Any("error", err))...)

		return response.CallableFailure(c, response.CallableStatus(err))
	}

	logger.Info("Manual trigger created notification",
		append(attrs, slog.String("notification_id", notification.Ref.NotificationID))...)

	return response.CallableSuccess(c, nil)
}
