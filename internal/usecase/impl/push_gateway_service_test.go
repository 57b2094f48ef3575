package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"reminder/config"
	"reminder/internal/domain/entity"
	domainerrors "reminder/internal/domain/errors"
	"reminder/internal/domain/repository"
	"reminder/internal/domain/service"
	mockRepo "reminder/internal/mocks/repository"
	mockSvc "reminder/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// pushTestFixtures holds all mocks needed for push gateway tests
type pushTestFixtures struct {
	service          *pushGatewayService
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	deliveryLogRepo  *mockRepo.MockDeliveryLogRepository
	pushService      *mockSvc.MockPushService
}

var testSentAt = time.Date(2024, 3, 10, 8, 1, 2, 0, time.UTC)

func createTestPushGatewayService(t *testing.T, pushCfg *config.PushConfig) *pushTestFixtures {
	fx := &pushTestFixtures{
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
		deliveryLogRepo:  mockRepo.NewMockDeliveryLogRepository(t),
		pushService:      mockSvc.NewMockPushService(t),
	}

	srv := NewPushGatewayService(
		fx.notificationRepo,
		fx.deviceRepo,
		fx.deliveryLogRepo,
		fx.pushService,
		&config.Config{Push: pushCfg},
		testLogger(),
	).(*pushGatewayService)
	srv.now = func() time.Time { return testSentAt }
	fx.service = srv

	return fx
}

func testNotification() *entity.Notification {
	return &entity.Notification{
		Ref:         entity.NotificationRef{AccountID: "acc-1", NotificationID: "notif-1"},
		ReminderRef: entity.ReminderRef{AccountID: "acc-1", ReminderID: "rem-1"},
		Title:       "Drink water",
		Body:        "Stay hydrated",
		Link:        "https://example.com/water",
	}
}

// respondPerToken answers a multicast with the outcome chosen for each token.
func respondPerToken(outcome func(token string) service.SendResult) func(context.Context, *service.PushMessage) (*service.MulticastResult, error) {
	return func(_ context.Context, message *service.PushMessage) (*service.MulticastResult, error) {
		result := &service.MulticastResult{Results: make([]service.SendResult, len(message.Tokens))}
		for idx, token := range message.Tokens {
			result.Results[idx] = outcome(token)
			if result.Results[idx].Success() {
				result.SuccessCount++
			} else {
				result.FailureCount++
			}
		}

		return result, nil
	}
}

func unregisteredFor(badToken string) func(token string) service.SendResult {
	return func(token string) service.SendResult {
		if token == badToken {
			return service.SendResult{
				Token:     token,
				ErrorCode: domainerrors.DeliveryErrorUnregistered,
				Err:       errors.New("requested entity was not found"),
			}
		}

		return service.SendResult{Token: token, MessageID: "msg-" + token}
	}
}

func TestPushGatewayService_Deliver_PartialFailurePrunesDeadToken(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{PruneInvalidTokens: true, Urgency: "high"})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "laptop", Token: "token-good"},
		{AccountID: "acc-1", DeviceID: "phone", Token: "token-dead"},
	}, nil)
	fx.pushService.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(message *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"token-good", "token-dead"}, message.Tokens)
		})).
		RunAndReturn(respondPerToken(unregisteredFor("token-dead")))
	fx.deviceRepo.EXPECT().PruneDevice(ctx, "acc-1", "phone").Return(nil)
	fx.deliveryLogRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			return len(logs) == 2 &&
				logs[0].DeviceID == "laptop" && logs[0].Status == entity.DeliveryStatusSent &&
				logs[0].MessageID == "msg-token-good" && logs[0].SentAt.Equal(testSentAt) &&
				logs[1].DeviceID == "phone" && logs[1].Status == entity.DeliveryStatusFailed &&
				logs[1].ErrorCode == string(domainerrors.DeliveryErrorUnregistered)
		})).
		Return(nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DeviceCount)
	assert.Equal(t, 1, report.SuccessCount)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, 1, report.PrunedCount)
	require.Len(t, report.Failures, 1)
	assert.Equal(t, "phone", report.Failures[0].DeviceID)
	assert.Equal(t, "token-dead", report.Failures[0].Token)
	assert.True(t, report.Failures[0].IsPruneCandidate())
}

func TestPushGatewayService_Deliver_PruningDisabledOnlyReports(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{PruneInvalidTokens: false})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "phone", Token: "token-dead"},
	}, nil)
	fx.pushService.EXPECT().SendMulticast(ctx, mock.Anything).RunAndReturn(respondPerToken(unregisteredFor("token-dead")))
	fx.deliveryLogRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 1, report.FailureCount)
	assert.Equal(t, 0, report.PrunedCount)
	require.Len(t, report.Failures, 1)
	assert.True(t, report.Failures[0].IsPruneCandidate())
}

func TestPushGatewayService_Deliver_BuildsWebpushMessage(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{AppBaseURL: "https://app.example.com/", Urgency: "high"})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "laptop", Token: "token-good"},
	}, nil)

	var sent *service.PushMessage
	fx.pushService.EXPECT().SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, message *service.PushMessage) { sent = message }).
		RunAndReturn(respondPerToken(unregisteredFor("")))
	fx.deliveryLogRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)

	_, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	require.NotNil(t, sent)
	assert.Equal(t, "Drink water", sent.Title)
	assert.Equal(t, "Stay hydrated", sent.Body)
	assert.Equal(t, "rem-1", sent.Tag)
	assert.True(t, sent.Renotify)
	assert.Equal(t, "high", sent.Urgency)
	assert.Equal(t, "https://app.example.com/notifications/notif-1", sent.Link)
	assert.Equal(t, map[string]string{
		"notificationId": "notif-1",
		"reminderId":     "rem-1",
		"accountId":      "acc-1",
		"link":           "https://example.com/water",
	}, sent.Data)
}

func TestPushGatewayService_Deliver_DeduplicatesTokens(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "a", Token: "token-1"},
		{AccountID: "acc-1", DeviceID: "b", Token: ""},
		{AccountID: "acc-1", DeviceID: "c", Token: "token-1"},
		{AccountID: "acc-1", DeviceID: "d", Token: "token-2"},
	}, nil)
	fx.pushService.EXPECT().
		SendMulticast(ctx, mock.MatchedBy(func(message *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"token-1", "token-2"}, message.Tokens)
		})).
		RunAndReturn(respondPerToken(unregisteredFor("")))
	fx.deliveryLogRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 2, report.DeviceCount)
	assert.Equal(t, 2, report.SuccessCount)
}

func TestPushGatewayService_Deliver_ChunksLargeAccounts(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	notification := testNotification()

	devices := make([]*entity.Device, service.MaxMulticastTokens+1)
	for idx := range devices {
		devices[idx] = &entity.Device{AccountID: "acc-1", DeviceID: fmt.Sprintf("device-%04d", idx), Token: fmt.Sprintf("token-%04d", idx)}
	}

	var batchSizes []int
	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return(devices, nil)
	fx.pushService.EXPECT().SendMulticast(ctx, mock.Anything).
		Run(func(_ context.Context, message *service.PushMessage) {
			batchSizes = append(batchSizes, len(message.Tokens))
		}).
		RunAndReturn(respondPerToken(unregisteredFor(""))).
		Times(2)
	fx.deliveryLogRepo.EXPECT().
		BatchCreateDeliveryLogs(ctx, mock.MatchedBy(func(logs []*entity.DeliveryLog) bool {
			return len(logs) == len(devices)
		})).
		Return(nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, []int{service.MaxMulticastTokens, 1}, batchSizes)
	assert.Equal(t, len(devices), report.SuccessCount)
}

func TestPushGatewayService_Deliver_BatchErrorFailsEveryToken(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{PruneInvalidTokens: true})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "a", Token: "token-1"},
		{AccountID: "acc-1", DeviceID: "b", Token: "token-2"},
	}, nil)
	fx.pushService.EXPECT().SendMulticast(ctx, mock.Anything).Return(nil, errors.New("fcm unavailable"))
	fx.deliveryLogRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 0, report.SuccessCount)
	assert.Equal(t, 2, report.FailureCount)
	assert.Equal(t, 0, report.PrunedCount)
	for _, failure := range report.Failures {
		assert.Equal(t, domainerrors.DeliveryErrorOther, failure.Code)
	}
}

func TestPushGatewayService_Deliver_NoDevices(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return(nil, nil)

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 0, report.DeviceCount)
}

func TestPushGatewayService_Deliver_NotificationNotFound(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	ref := entity.NotificationRef{AccountID: "acc-1", NotificationID: "gone"}

	fx.notificationRepo.EXPECT().FindNotification(ctx, ref).Return(nil, repository.ErrNotificationNotFound)

	_, err := fx.service.Deliver(ctx, ref)
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrNotificationNotFound))
}

func TestPushGatewayService_Deliver_StoreErrorPropagates(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	notification := testNotification()
	storeErr := domainerrors.NewStoreError(errors.New("unavailable"), "failed to get account devices")

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return(nil, storeErr)

	_, err := fx.service.Deliver(ctx, notification.Ref)
	require.Error(t, err)
	assert.True(t, domainerrors.IsStoreError(err))
}

func TestPushGatewayService_Deliver_DeliveryLogFailureIsNotFatal(t *testing.T) {
	ctx := context.Background()
	fx := createTestPushGatewayService(t, &config.PushConfig{})
	notification := testNotification()

	fx.notificationRepo.EXPECT().FindNotification(ctx, notification.Ref).Return(notification, nil)
	fx.deviceRepo.EXPECT().FindDevicesByAccount(ctx, "acc-1").Return([]*entity.Device{
		{AccountID: "acc-1", DeviceID: "a", Token: "token-1"},
	}, nil)
	fx.pushService.EXPECT().SendMulticast(ctx, mock.Anything).RunAndReturn(respondPerToken(unregisteredFor("")))
	fx.deliveryLogRepo.EXPECT().BatchCreateDeliveryLogs(ctx, mock.Anything).Return(errors.New("postgres down"))

	report, err := fx.service.Deliver(ctx, notification.Ref)
	require.NoError(t, err)
	assert.Equal(t, 1, report.SuccessCount)
}
