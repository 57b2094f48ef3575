package middleware

import (
	"log/slog"

	"reminder/config"
	"reminder/internal/delivery/api/response"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/delivery/middleware"
	"reminder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

// CallerAuthMiddleware authenticates callable requests with Firebase ID tokens
type CallerAuthMiddleware struct {
	required bool
	verifier service.IDTokenVerifier
	logger   *slog.Logger
}

// NewCallerAuthMiddleware creates a new caller authentication middleware
func NewCallerAuthMiddleware(cfg *config.Config, verifier service.IDTokenVerifier, logger *slog.Logger) *CallerAuthMiddleware {
	return &CallerAuthMiddleware{
		required: cfg.Auth.RequireCallerToken,
		verifier: verifier,
		logger:   logger,
	}
}

// Authenticate attaches the verified caller to the request context.
// Without RequireCallerToken a missing token is let through, but a bad one is still rejected.
func (m *CallerAuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

		token, ok := middleware.BearerToken(req)
		if !ok {
			if m.required {
				logger.Warn("Missing caller token", slog.String("path", req.URL.Path))

				return response.CallableFailure(c, response.CallableUnauthenticated)
			}

			return next(c)
		}

		caller, err := m.verifier.VerifyIDToken(req.Context(), token)
		if err != nil {
			logger.Warn("Invalid caller token",
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)

			return response.CallableFailure(c, response.CallableUnauthenticated)
		}

		ctx := deliverycontext.WithCaller(req.Context(), caller)
		c.SetRequest(req.WithContext(ctx))

		return next(c)
	}
}
