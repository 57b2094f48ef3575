// Package auth verifies the identities of callers and upstream services.
package auth

import (
	"context"

	"reminder/internal/domain/entity"
	"reminder/internal/domain/service"
	"reminder/internal/errors"

	"firebase.google.com/go/v4/auth"
)

type idTokenVerifier interface {
	VerifyIDToken(ctx context.Context, idToken string) (*auth.Token, error)
}

type firebaseIDTokenVerifier struct {
	client idTokenVerifier
}

// NewFirebaseIDTokenVerifier verifies end-user ID tokens with Firebase Auth
func NewFirebaseIDTokenVerifier(client *auth.Client) service.IDTokenVerifier {
	return &firebaseIDTokenVerifier{client: client}
}

// VerifyIDToken checks signature, audience and expiry, then maps the token to a caller
func (v *firebaseIDTokenVerifier) VerifyIDToken(ctx context.Context, idToken string) (*entity.Caller, error) {
	token, err := v.client.VerifyIDToken(ctx, idToken)
	if err != nil {
		return nil, errors.Wrap(err, "failed to verify ID token")
	}

	caller := &entity.Caller{UID: token.UID}
	if email, ok := token.Claims["email"].(string); ok {
		caller.Email = email
	}

	return caller, nil
}
