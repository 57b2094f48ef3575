package service

import (
	"context"

	domainerrors "reminder/internal/domain/errors"
)

// MaxMulticastTokens is the largest token batch a single multicast may address.
const MaxMulticastTokens = 500

// PushMessage is one notification rendered for a batch of device tokens.
type PushMessage struct {
	Tokens   []string
	Title    string
	Body     string
	Tag      string            // Collapses repeated notifications of the same reminder
	Link     string            // Opened when the notification is clicked
	Urgency  string            // Webpush Urgency header
	Data     map[string]string // Delivered to the client alongside the notification
	Renotify bool
}

// SendResult is the outcome for a single token.
type SendResult struct {
	Token     string
	MessageID string
	ErrorCode domainerrors.DeliveryErrorCode
	Err       error
}

// Success reports whether the token accepted the message.
func (r SendResult) Success() bool {
	return r.Err == nil
}

// MulticastResult holds per-token outcomes in the order of PushMessage.Tokens.
type MulticastResult struct {
	SuccessCount int
	FailureCount int
	Results      []SendResult
}

// PushService defines the interface for push notification providers
type PushService interface {
	// SendMulticast sends one message to up to MaxMulticastTokens tokens.
	// The returned error covers the whole batch; per-token failures are reported in the result.
	SendMulticast(ctx context.Context, message *PushMessage) (*MulticastResult, error)
}
