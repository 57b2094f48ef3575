package middleware

import (
	"log/slog"
	"net/http"
	"strings"

	"reminder/config"
	deliverycontext "reminder/internal/delivery/context"
	"reminder/internal/domain/constants"
	"reminder/internal/domain/service"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

// ServiceAuthMiddleware verifies OIDC tokens attached by Cloud Scheduler, Eventarc and Pub/Sub push
type ServiceAuthMiddleware struct {
	enabled  bool
	audience string
	verifier service.ServiceTokenVerifier
	logger   *slog.Logger
}

// NewServiceAuthMiddleware creates a new service authentication middleware
func NewServiceAuthMiddleware(cfg *config.Config, verifier service.ServiceTokenVerifier, logger *slog.Logger) *ServiceAuthMiddleware {
	if !cfg.Auth.VerifyServiceTokens && cfg.Env.Env == constants.EnvProduction {
		logger.Warn("Service token verification is disabled in production")
	}

	return &ServiceAuthMiddleware{
		enabled:  cfg.Auth.VerifyServiceTokens,
		audience: cfg.Auth.Audience,
		verifier: verifier,
		logger:   logger,
	}
}

// Verify rejects requests without a valid service token. It is a no-op when verification is disabled.
func (m *ServiceAuthMiddleware) Verify(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if !m.enabled {
			return next(c)
		}

		req := c.Request()
		logger := deliverycontext.GetLoggerOrDefault(req.Context(), m.logger)

		token, ok := BearerToken(req)
		if !ok {
			logger.Warn("Missing service token", slog.String("path", req.URL.Path))

			return c.NoContent(http.StatusUnauthorized)
		}

		audience := m.audience
		if audience == "" {
			audience = requestURL(req)
		}

		if err := m.verifier.VerifyServiceToken(req.Context(), token, audience); err != nil {
			logger.Warn("Invalid service token",
				slog.String("path", req.URL.Path),
				slog.Any("error", err),
			)

			return c.NoContent(http.StatusUnauthorized)
		}

		return next(c)
	}
}

// BearerToken extracts the token from an "Authorization: Bearer ..." header.
func BearerToken(req *http.Request) (string, bool) {
	authHeader := req.Header.Get(echo.HeaderAuthorization)
	if !strings.HasPrefix(authHeader, bearerPrefix) {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(authHeader, bearerPrefix))

	return token, token != ""
}

// requestURL rebuilds the URL the caller addressed, which push subscriptions use as the default audience.
func requestURL(req *http.Request) string {
	scheme := "https"
	if proto := req.Header.Get(echo.HeaderXForwardedProto); proto != "" {
		scheme = proto
	} else if req.TLS == nil {
		scheme = "http" // For local development
	}

	return scheme + "://" + req.Host + req.URL.Path
}
