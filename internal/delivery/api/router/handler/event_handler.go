package handler

import (
	"io"
	"log/slog"
	"net/http"

	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/delivery/event"
	"reminder/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// EventHandlerParams holds dependencies for EventHandler, injected by Fx.
type EventHandlerParams struct {
	fx.In

	DispatchUC usecase.DispatchUsecase
	Logger     *slog.Logger
}

// EventHandler receives Firestore document events routed by Eventarc
type EventHandler struct {
	dispatchUC usecase.DispatchUsecase
	logger     *slog.Logger
}

// NewEventHandler is the constructor for EventHandler
func NewEventHandler(params EventHandlerParams) *EventHandler {
	return &EventHandler{
		dispatchUC: params.DispatchUC,
		logger:     params.Logger,
	}
}

// HandleReminderEvent handles a written reminder document.
// Undecodable events get a 400 so Eventarc drops them instead of retrying.
func (h *EventHandler) HandleReminderEvent(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		logger.Error("Failed to read event body", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	data, err := event.Parse(c.Request().Header.Get(echo.HeaderContentType), body)
	if err != nil {
		logger.Warn("Failed to parse document event", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	change, err := data.ReminderChange()
	if err != nil {
		logger.Warn("Failed to decode reminder document",
			slog.String("document", data.Name()),
			slog.Any("error", err),
		)

		return c.NoContent(http.StatusBadRequest)
	}

	if err := h.dispatchUC.HandleReminderWrite(ctx, change); err != nil {
		return err
	}

	return c.NoContent(http.StatusOK)
}
