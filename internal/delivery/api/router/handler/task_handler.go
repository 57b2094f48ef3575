package handler

import (
	"log/slog"
	"net/http"

	"reminder/internal/delivery/api/response"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// TaskHandlerParams holds dependencies for TaskHandler, injected by Fx.
type TaskHandlerParams struct {
	fx.In

	FanOutUC usecase.FanOutUsecase
	Logger   *slog.Logger
}

// TaskHandler serves scheduler-triggered tasks
type TaskHandler struct {
	fanOutUC usecase.FanOutUsecase
	logger   *slog.Logger
}

// NewTaskHandler is the constructor for TaskHandler
func NewTaskHandler(params TaskHandlerParams) *TaskHandler {
	return &TaskHandler{
		fanOutUC: params.FanOutUC,
		logger:   params.Logger,
	}
}

// FanOut runs one fan-out cycle. Cloud Scheduler retries on any non-2xx response.
func (h *TaskHandler) FanOut(c echo.Context) error {
	ctx := c.Request().Context()

	report, err := h.fanOutUC.Run(ctx)
	if err != nil {
		deliverycontext.GetLoggerOrDefault(ctx, h.logger).Error("Fan-out run failed", slog.Any("error", err))

		return err
	}

	return response.Success(c, http.StatusOK, report)
}
