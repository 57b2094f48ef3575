package service

import (
	"context"

	"reminder/internal/domain/entity"
)

// IDTokenVerifier verifies end-user ID tokens presented to callable endpoints
type IDTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*entity.Caller, error)
}

// ServiceTokenVerifier verifies OIDC tokens attached by Cloud Scheduler, Eventarc and Pub/Sub push
type ServiceTokenVerifier interface {
	VerifyServiceToken(ctx context.Context, token, audience string) error
}
