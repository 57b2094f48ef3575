package notification

import (
	"context"
	"strings"

	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/service"
	"reminder/internal/errors"

	"firebase.google.com/go/v4/messaging"
)

// ErrTooManyTokens is returned when a batch exceeds the FCM multicast limit.
var ErrTooManyTokens = errors.New("token count exceeds multicast limit")

var errMissingResponse = errors.New("no response for token")

type multicastSender interface {
	SendEachForMulticast(ctx context.Context, message *messaging.MulticastMessage) (*messaging.BatchResponse, error)
}

type firebaseService struct {
	client multicastSender
}

// NewFirebaseService creates a new Firebase push service instance
func NewFirebaseService(client *messaging.Client) service.PushService {
	return &firebaseService{
		client: client,
	}
}

// SendMulticast sends one webpush message to up to 500 tokens
func (s *firebaseService) SendMulticast(ctx context.Context, message *service.PushMessage) (*service.MulticastResult, error) {
	if len(message.Tokens) == 0 {
		return &service.MulticastResult{}, nil
	}

	if len(message.Tokens) > service.MaxMulticastTokens {
		return nil, errors.Wrapf(ErrTooManyTokens, "%d (max %d)", len(message.Tokens), service.MaxMulticastTokens)
	}

	response, err := s.client.SendEachForMulticast(ctx, buildMulticastMessage(message))
	if err != nil {
		return nil, errors.Wrap(err, "failed to send multicast notification")
	}

	result := &service.MulticastResult{
		SuccessCount: response.SuccessCount,
		FailureCount: response.FailureCount,
		Results:      make([]service.SendResult, len(message.Tokens)),
	}

	for idx, token := range message.Tokens {
		result.Results[idx] = service.SendResult{Token: token}
		if idx >= len(response.Responses) || response.Responses[idx] == nil {
			result.Results[idx].Err = errMissingResponse
			result.Results[idx].ErrorCode = domainerrors.DeliveryErrorOther

			continue
		}

		sendResponse := response.Responses[idx]
		if sendResponse.Success {
			result.Results[idx].MessageID = sendResponse.MessageID

			continue
		}

		result.Results[idx].Err = sendResponse.Error
		result.Results[idx].ErrorCode = classifySendError(sendResponse.Error)
	}

	return result, nil
}

func classifySendError(err error) domainerrors.DeliveryErrorCode {
	switch {
	case messaging.IsUnregistered(err):
		return domainerrors.DeliveryErrorUnregistered
	case messaging.IsInvalidArgument(err) && isRegistrationTokenError(err):
		return domainerrors.DeliveryErrorInvalidToken
	default:
		return domainerrors.DeliveryErrorOther
	}
}

// isRegistrationTokenError separates a rejected token from other INVALID_ARGUMENT
// causes, such as a bad header or payload, which must not prune the device.
func isRegistrationTokenError(err error) bool {
	return strings.Contains(strings.ToLower(err.Error()), "registration token")
}

func buildMulticastMessage(message *service.PushMessage) *messaging.MulticastMessage {
	webpush := &messaging.WebpushConfig{
		Data: message.Data,
		Notification: &messaging.WebpushNotification{
			Title:    message.Title,
			Body:     message.Body,
			Tag:      message.Tag,
			Renotify: message.Renotify,
		},
	}

	if message.Urgency != "" {
		webpush.Headers = map[string]string{"Urgency": message.Urgency}
	}

	if message.Link != "" {
		webpush.FCMOptions = &messaging.WebpushFCMOptions{Link: message.Link}
	}

	return &messaging.MulticastMessage{
		Tokens: message.Tokens,
		Notification: &messaging.Notification{
			Title: message.Title,
			Body:  message.Body,
		},
		Data:    message.Data,
		Webpush: webpush,
	}
}
