package auth

import (
	"context"
	"slices"

	"reminder/config"
	"reminder/internal/domain/service"
	"reminder/internal/errors"

	"google.golang.org/api/idtoken"
)

var googleIssuers = []string{"accounts.google.com", "https://accounts.google.com"}

type validateFunc func(ctx context.Context, token, audience string) (*idtoken.Payload, error)

type oidcVerifier struct {
	validate      validateFunc
	allowedEmails []string
}

// NewOIDCVerifier verifies Google-signed OIDC tokens from Cloud Scheduler, Eventarc and Pub/Sub push
func NewOIDCVerifier(cfg *config.Config) service.ServiceTokenVerifier {
	return &oidcVerifier{
		validate:      idtoken.Validate,
		allowedEmails: cfg.Auth.ServiceAccountEmails,
	}
}

// VerifyServiceToken validates the token for audience and checks issuer and principal
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func (v *oidcVerifier) VerifyServiceToken(ctx context.Context, token, audience string) error {
	payload, err := v.validate(ctx, token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if !slices.Contains(googleIssuers, payload.Issuer) {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	if len(v.allowedEmails) > 0 {
		email, _ := payload.Claims["email"].(string)
		if !slices.Contains(v.allowedEmails, email) {
			return errors.Errorf("service account %q is not allowed", email)
		}
	}

	return nil
}
