package auth

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"google.golang.org/api/idtoken"
)

func stubValidate(payload *idtoken.Payload, err error) validateFunc {
	return func(context.Context, string, string) (*idtoken.Payload, error) {
		return payload, err
	}
}

func TestOIDCVerifier_VerifyServiceToken(t *testing.T) {
	validPayload := func(email string, verified bool) *idtoken.Payload {
		return &idtoken.Payload{
			Issuer: "https://accounts.google.com",
			Claims: map[string]any{"email": email, "email_verified": verified},
		}
	}

	tests := []struct {
		name     string
		verifier *oidcVerifier
		wantErr  bool
	}{
		{
			name:     "valid token without allow list",
			verifier: &oidcVerifier{validate: stubValidate(validPayload("scheduler@p.iam.gserviceaccount.com", true), nil)},
		},
		{
			name: "valid token on allow list",
			verifier: &oidcVerifier{
				validate:      stubValidate(validPayload("scheduler@p.iam.gserviceaccount.com", true), nil),
				allowedEmails: []string{"scheduler@p.iam.gserviceaccount.com"},
			},
		},
		{
			name: "principal not on allow list",
			verifier: &oidcVerifier{
				validate:      stubValidate(validPayload("intruder@p.iam.gserviceaccount.com", true), nil),
				allowedEmails: []string{"scheduler@p.iam.gserviceaccount.com"},
			},
			wantErr: true,
		},
		{
			name:     "unverified email",
			verifier: &oidcVerifier{validate: stubValidate(validPayload("scheduler@p.iam.gserviceaccount.com", false), nil)},
			wantErr:  true,
		},
		{
			name:     "foreign issuer",
			verifier: &oidcVerifier{validate: stubValidate(&idtoken.Payload{Issuer: "https://evil.example.com"}, nil)},
			wantErr:  true,
		},
		{
			name:     "signature rejected",
			verifier: &oidcVerifier{validate: stubValidate(nil, errors.New("idtoken: invalid token"))},
			wantErr:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.verifier.VerifyServiceToken(context.Background(), "token", "https://reminder.example.com/tasks/fan-out")
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
