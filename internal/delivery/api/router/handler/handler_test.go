package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"reminder/internal/delivery/api/validator"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/delivery/event"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	mockUC "reminder/internal/mocks/usecase"
	"reminder/internal/usecase"

	"github.com/googleapis/google-cloudevents-go/cloud/firestoredata"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/proto"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newContext(method, target, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestHealthCheck(t *testing.T) {
	c, rec := newContext(http.MethodGet, "/health", "")

	require.NoError(t, HealthCheck(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
}

func TestTaskHandler_FanOut(t *testing.T) {
	t.Run("returns the run report", func(t *testing.T) {
		fanOutUC := mockUC.NewMockFanOutUsecase(t)
		fanOutUC.EXPECT().Run(mock.Anything).Return(&usecase.FanOutReport{
			StartedAt: time.Date(2024, 3, 10, 8, 1, 0, 0, time.UTC),
			Matched:   3,
			Fired:     2,
			Skipped:   1,
		}, nil)

		h := NewTaskHandler(TaskHandlerParams{FanOutUC: fanOutUC, Logger: testLogger()})
		c, rec := newContext(http.MethodPost, "/tasks/fan-out", "")

		require.NoError(t, h.FanOut(c))
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), `"matched":3`)
		assert.Contains(t, rec.Body.String(), `"fired":2`)
	})

	t.Run("propagates run errors", func(t *testing.T) {
		storeErr := domainerrors.NewStoreError(errors.New("unavailable"), "failed to query due reminders")
		fanOutUC := mockUC.NewMockFanOutUsecase(t)
		fanOutUC.EXPECT().Run(mock.Anything).Return(nil, storeErr)

		h := NewTaskHandler(TaskHandlerParams{FanOutUC: fanOutUC, Logger: testLogger()})
		c, _ := newContext(http.MethodPost, "/tasks/fan-out", "")

		err := h.FanOut(c)
		assert.True(t, domainerrors.IsStoreError(err))
	})
}

const reminderCreatedEvent = `{"value": {
	"name": "projects/demo/databases/(default)/documents/accounts/acc-1/reminders/rem-1",
	"fields": {
		"title": {"stringValue": "Drink water"},
		"type": {"stringValue": "cron"},
		"cronExpression": {"stringValue": "1 9 * * *"}
	}
}}`

func TestEventHandler_HandleReminderEvent(t *testing.T) {
	t.Run("dispatches the decoded change", func(t *testing.T) {
		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().
			HandleReminderWrite(mock.Anything, mock.MatchedBy(func(change *entity.ReminderChange) bool {
				return change.Before == nil &&
					change.After != nil &&
					change.After.Ref == entity.ReminderRef{AccountID: "acc-1", ReminderID: "rem-1"} &&
					change.After.CronExpression == "1 9 * * *"
			})).
			Return(nil)

		h := NewEventHandler(EventHandlerParams{DispatchUC: dispatchUC, Logger: testLogger()})
		c, rec := newContext(http.MethodPost, "/events/reminders", reminderCreatedEvent)

		require.NoError(t, h.HandleReminderEvent(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("accepts protobuf encoded events", func(t *testing.T) {
		body, err := proto.Marshal(&firestoredata.DocumentEventData{
			Value: &firestoredata.Document{
				Name: "projects/demo/databases/(default)/documents/accounts/acc-1/reminders/rem-1",
				Fields: map[string]*firestoredata.Value{
					"type":           {ValueType: &firestoredata.Value_StringValue{StringValue: "cron"}},
					"cronExpression": {ValueType: &firestoredata.Value_StringValue{StringValue: "1 9 * * *"}},
				},
			},
		})
		require.NoError(t, err)

		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().
			HandleReminderWrite(mock.Anything, mock.MatchedBy(func(change *entity.ReminderChange) bool {
				return change.After != nil && change.After.CronExpression == "1 9 * * *"
			})).
			Return(nil)

		h := NewEventHandler(EventHandlerParams{DispatchUC: dispatchUC, Logger: testLogger()})
		c, rec := newContext(http.MethodPost, "/events/reminders", string(body))
		c.Request().Header.Set(echo.HeaderContentType, event.ContentTypeProtobuf)

		require.NoError(t, h.HandleReminderEvent(c))
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("rejects undecodable events", func(t *testing.T) {
		bodies := []string{
			`not json`,
			`{}`,
			`{"value": {"name": "accounts/acc-1/devices/d-1", "fields": {}}}`,
		}

		for _, body := range bodies {
			dispatchUC := mockUC.NewMockDispatchUsecase(t)
			h := NewEventHandler(EventHandlerParams{DispatchUC: dispatchUC, Logger: testLogger()})
			c, rec := newContext(http.MethodPost, "/events/reminders", body)

			require.NoError(t, h.HandleReminderEvent(c))
			assert.Equal(t, http.StatusBadRequest, rec.Code, body)
		}
	})

	t.Run("returns dispatch errors for retry", func(t *testing.T) {
		storeErr := domainerrors.NewStoreError(errors.New("aborted"), "failed to update nextSend")
		dispatchUC := mockUC.NewMockDispatchUsecase(t)
		dispatchUC.EXPECT().HandleReminderWrite(mock.Anything, mock.Anything).Return(storeErr)

		h := NewEventHandler(EventHandlerParams{DispatchUC: dispatchUC, Logger: testLogger()})
		c, _ := newContext(http.MethodPost, "/events/reminders", reminderCreatedEvent)

		assert.ErrorIs(t, h.HandleReminderEvent(c), storeErr)
	})
}

func TestCallableHandler_TriggerReminder(t *testing.T) {
	const path = "accounts/acc-1/reminders/rem-1"

	tests := []struct {
		name       string
		body       string
		setup      func(dispatchUC *mockUC.MockDispatchUsecase)
		wantStatus int
		wantBody   string
	}{
		{
			name: "success",
			body: `{"data": {"path": "` + path + `"}}`,
			setup: func(dispatchUC *mockUC.MockDispatchUsecase) {
				dispatchUC.EXPECT().TriggerReminder(mock.Anything, path).Return(&entity.Notification{
					Ref: entity.NotificationRef{AccountID: "acc-1", NotificationID: "notif-1"},
				}, nil)
			},
			wantStatus: http.StatusOK,
			wantBody:   `{"result":null}`,
		},
		{
			name:       "missing path",
			body:       `{"data": {}}`,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"status":"INVALID_ARGUMENT","message":"INVALID_ARGUMENT"}}`,
		},
		{
			name:       "malformed body",
			body:       `{"data": `,
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"status":"INVALID_ARGUMENT","message":"INVALID_ARGUMENT"}}`,
		},
		{
			name: "invalid path",
			body: `{"data": {"path": "reminders/rem-1"}}`,
			setup: func(dispatchUC *mockUC.MockDispatchUsecase) {
				dispatchUC.EXPECT().TriggerReminder(mock.Anything, "reminders/rem-1").
					Return(nil, errors.Wrap(domainerrors.ErrInvalidReminderPath, "bad path"))
			},
			wantStatus: http.StatusBadRequest,
			wantBody:   `{"error":{"status":"INVALID_ARGUMENT","message":"INVALID_ARGUMENT"}}`,
		},
		{
			name: "reminder not found",
			body: `{"data": {"path": "` + path + `"}}`,
			setup: func(dispatchUC *mockUC.MockDispatchUsecase) {
				dispatchUC.EXPECT().TriggerReminder(mock.Anything, path).
					Return(nil, errors.Wrap(domainerrors.ErrReminderNotFound, path))
			},
			wantStatus: http.StatusNotFound,
			wantBody:   `{"error":{"status":"NOT_FOUND","message":"NOT_FOUND"}}`,
		},
		{
			name: "anything else is internal",
			body: `{"data": {"path": "` + path + `"}}`,
			setup: func(dispatchUC *mockUC.MockDispatchUsecase) {
				dispatchUC.EXPECT().TriggerReminder(mock.Anything, path).
					Return(nil, domainerrors.NewStoreError(errors.New("unavailable"), "failed to create notification"))
			},
			wantStatus: http.StatusInternalServerError,
			wantBody:   `{"error":{"status":"INTERNAL","message":"INTERNAL"}}`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dispatchUC := mockUC.NewMockDispatchUsecase(t)
			if tt.setup != nil {
				tt.setup(dispatchUC)
			}

			h := NewCallableHandler(CallableHandlerParams{DispatchUC: dispatchUC, Logger: testLogger()})
			c, rec := newContext(http.MethodPost, "/callable/triggerReminder", tt.body)
			ctx := deliverycontext.WithCaller(c.Request().Context(), &entity.Caller{UID: "user-1"})
			c.SetRequest(c.Request().WithContext(ctx))

			require.NoError(t, h.TriggerReminder(c))
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.JSONEq(t, tt.wantBody, rec.Body.String())
		})
	}
}
