package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"reminder/config"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/entity"
	mockSvc "reminder/internal/mocks/service"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestCallerAuthMiddleware_Authenticate(t *testing.T) {
	caller := &entity.Caller{UID: "user-1", Email: "user@example.com"}

	tests := []struct {
		name       string
		required   bool
		header     string
		setup      func(verifier *mockSvc.MockIDTokenVerifier)
		wantStatus int
		wantCaller *entity.Caller
	}{
		{
			name:       "optional without token",
			required:   false,
			wantStatus: http.StatusNoContent,
		},
		{
			name:       "required without token",
			required:   true,
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:     "valid token",
			required: true,
			header:   "Bearer id-token",
			setup: func(verifier *mockSvc.MockIDTokenVerifier) {
				verifier.EXPECT().VerifyIDToken(mock.Anything, "id-token").Return(caller, nil)
			},
			wantStatus: http.StatusNoContent,
			wantCaller: caller,
		},
		{
			name:     "invalid token rejected even when optional",
			required: false,
			header:   "Bearer expired",
			setup: func(verifier *mockSvc.MockIDTokenVerifier) {
				verifier.EXPECT().VerifyIDToken(mock.Anything, "expired").Return(nil, errors.New("token expired"))
			},
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := mockSvc.NewMockIDTokenVerifier(t)
			if tt.setup != nil {
				tt.setup(verifier)
			}

			cfg := &config.Config{Auth: &config.AuthConfig{RequireCallerToken: tt.required}}
			m := NewCallerAuthMiddleware(cfg, verifier, slog.New(slog.NewTextHandler(io.Discard, nil)))

			var gotCaller *entity.Caller
			next := func(c echo.Context) error {
				gotCaller, _ = deliverycontext.GetCaller(c.Request().Context())

				return c.NoContent(http.StatusNoContent)
			}

			e := echo.New()
			req := httptest.NewRequest(http.MethodPost, "/callable/triggerReminder", nil)
			if tt.header != "" {
				req.Header.Set(echo.HeaderAuthorization, tt.header)
			}
			rec := httptest.NewRecorder()

			err := m.Authenticate(next)(e.NewContext(req, rec))

			assert.NoError(t, err)
			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantCaller, gotCaller)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.JSONEq(t, `{"error":{"status":"UNAUTHENTICATED","message":"UNAUTHENTICATED"}}`, rec.Body.String())
			}
		})
	}
}
