package impl

import (
	"context"
	"fmt"
	"testing"
	"time"

	"eventhub/config"
	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.opentelemetry.io/otel/trace/noop"
)

type fanoutServiceFixtures struct {
	service          usecase.FanoutUsecase
	eventRepo        *mockRepo.MockEventRepository
	orgRepo          *mockRepo.MockOrganizationRepository
	userRepo         *mockRepo.MockUserRepository
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	connectionRepo   *mockRepo.MockConnectionRepository
	notificationRepo *mockRepo.MockNotificationRepository
	deviceRepo       *mockRepo.MockDeviceRepository
	pushSvc          *mockSvc.MockNotificationService
}

var demoEvent = &entity.Event{
	ID:             "e1",
	Title:          "Demo",
	OrganizerID:    "organizer",
	OrganizationID: "o1",
	StartTime:      time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC),
}

func createTestFanoutService(t *testing.T, withPush bool) fanoutServiceFixtures {
	fx := fanoutServiceFixtures{
		eventRepo:        mockRepo.NewMockEventRepository(t),
		orgRepo:          mockRepo.NewMockOrganizationRepository(t),
		userRepo:         mockRepo.NewMockUserRepository(t),
		subscriptionRepo: mockRepo.NewMockSubscriptionRepository(t),
		connectionRepo:   mockRepo.NewMockConnectionRepository(t),
		notificationRepo: mockRepo.NewMockNotificationRepository(t),
		deviceRepo:       mockRepo.NewMockDeviceRepository(t),
	}

	params := FanoutServiceParams{
		EventRepo:        fx.eventRepo,
		OrgRepo:          fx.orgRepo,
		UserRepo:         fx.userRepo,
		SubscriptionRepo: fx.subscriptionRepo,
		ConnectionRepo:   fx.connectionRepo,
		NotificationRepo: fx.notificationRepo,
		DeviceRepo:       fx.deviceRepo,
		Config: &config.Config{Notification: &config.NotificationConfig{
			Locale:     "en_US",
			DateFormat: "%a %d %b %Y, %H:%M",
		}},
		Tracer: noop.NewTracerProvider().Tracer("test"),
		Logger: newDiscardLogger(),
	}
	if withPush {
		fx.pushSvc = mockSvc.NewMockNotificationService(t)
		params.PushService = fx.pushSvc
	}

	svc, err := NewFanoutService(params)
	require.NoError(t, err)
	fx.service = svc

	return fx
}

// captureInserts records every notification handed to InsertMany and
// reports them all as new.
func captureInserts(fx fanoutServiceFixtures, sink *[]*entity.Notification) {
	fx.notificationRepo.EXPECT().
		InsertMany(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) (int, error) {
			for i, notification := range notifications {
				notification.ID = fmt.Sprintf("n%d", len(*sink)+i+1)
			}
			*sink = append(*sink, notifications...)

			return len(notifications), nil
		})
}

func TestFanoutService_EventAndRegistrationScenario(t *testing.T) {
	fx := createTestFanoutService(t, false)
	ctx := context.Background()

	var created []*entity.Notification
	captureInserts(fx, &created)

	fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(demoEvent, nil)
	fx.orgRepo.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Organization{ID: "o1", Name: "Gophers"}, nil)
	fx.subscriptionRepo.EXPECT().ListSubscriberIDs(mock.Anything, "o1").Return([]string{"u1", "u2"}, nil)
	fx.connectionRepo.EXPECT().ListAcceptedPeerIDs(mock.Anything, "u1").Return([]string{"f1"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(&entity.User{ID: "u1", Name: "Ada"}, nil)

	published, err := fx.service.HandleDomainEvent(ctx, &service.DomainEvent{
		ID:             "ob1",
		Type:           entity.DomainEventEventPublished,
		ActorID:        "organizer",
		EventID:        "e1",
		OrganizationID: "o1",
	})
	require.NoError(t, err)
	assert.Equal(t, 2, published)

	joined, err := fx.service.HandleDomainEvent(ctx, &service.DomainEvent{
		ID:      "ob2",
		Type:    entity.DomainEventRegistrationCreated,
		ActorID: "u1",
		EventID: "e1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, joined)

	var newEvent, joinedEvent []*entity.Notification
	for _, notification := range created {
		switch notification.Type {
		case entity.NotificationTypeNewEvent:
			newEvent = append(newEvent, notification)
		case entity.NotificationTypeJoinedEvent:
			joinedEvent = append(joinedEvent, notification)
		}
	}

	require.Len(t, newEvent, 2)
	assert.ElementsMatch(t, []string{"u1", "u2"}, []string{newEvent[0].RecipientID, newEvent[1].RecipientID})
	assert.Equal(t, "New event: Demo", newEvent[0].Title)
	assert.Equal(t, "Gophers published Demo on Sun 01 Mar 2026, 10:00", newEvent[0].Content)
	assert.Equal(t, entity.NotificationDedupeKey("ob1", newEvent[0].RecipientID), newEvent[0].DedupeKey)

	require.Len(t, joinedEvent, 1)
	assert.Equal(t, "f1", joinedEvent[0].RecipientID)
	assert.Equal(t, "u1", joinedEvent[0].SenderID)
	assert.Equal(t, "e1", joinedEvent[0].EventID)
}

func TestFanoutService_RegistrationNeverNotifiesRegistrant(t *testing.T) {
	fx := createTestFanoutService(t, false)

	fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(demoEvent, nil)
	fx.connectionRepo.EXPECT().ListAcceptedPeerIDs(mock.Anything, "u1").Return([]string{"u1", "U1"}, nil)
	fx.userRepo.EXPECT().FindByID(mock.Anything, "u1").Return(&entity.User{ID: "u1", Name: "Ada"}, nil)

	inserted, err := fx.service.HandleDomainEvent(context.Background(), &service.DomainEvent{
		ID:      "ob2",
		Type:    entity.DomainEventRegistrationCreated,
		ActorID: "u1",
		EventID: "e1",
	})
	require.NoError(t, err)
	assert.Zero(t, inserted)
	fx.notificationRepo.AssertNotCalled(t, "InsertMany", mock.Anything, mock.Anything)
}

func TestFanoutService_ConnectionAcceptedNotifiesRequester(t *testing.T) {
	fx := createTestFanoutService(t, false)

	var created []*entity.Notification
	captureInserts(fx, &created)
	fx.userRepo.EXPECT().FindByID(mock.Anything, "u-bob").Return(&entity.User{ID: "u-bob", Name: "Bob"}, nil)

	inserted, err := fx.service.HandleDomainEvent(context.Background(), &service.DomainEvent{
		ID:           "ob3",
		Type:         entity.DomainEventConnectionAccepted,
		ActorID:      "u-bob",
		ConnectionID: "c1",
		RecipientID:  "u-alice",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)

	require.Len(t, created, 1)
	assert.Equal(t, entity.NotificationTypeFriendRequest, created[0].Type)
	assert.Equal(t, "u-alice", created[0].RecipientID)
	assert.Equal(t, "Bob accepted your connection request", created[0].Content)
}

func TestFanoutService_DeletedEventIsSkipped(t *testing.T) {
	fx := createTestFanoutService(t, false)
	fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(nil, repository.ErrEventNotFound)

	inserted, err := fx.service.HandleDomainEvent(context.Background(), &service.DomainEvent{
		ID:      "ob1",
		Type:    entity.DomainEventEventPublished,
		EventID: "e1",
	})
	require.NoError(t, err)
	assert.Zero(t, inserted)
}

func TestFanoutService_InsertFailureIsReturned(t *testing.T) {
	fx := createTestFanoutService(t, false)
	fx.userRepo.EXPECT().FindByID(mock.Anything, "u-bob").Return(&entity.User{ID: "u-bob", Name: "Bob"}, nil)
	fx.notificationRepo.EXPECT().InsertMany(mock.Anything, mock.Anything).Return(0, errors.New("write failed"))

	_, err := fx.service.HandleDomainEvent(context.Background(), &service.DomainEvent{
		ID:          "ob3",
		Type:        entity.DomainEventConnectionAccepted,
		ActorID:     "u-bob",
		RecipientID: "u-alice",
	})
	assert.Error(t, err)
}

func TestFanoutService_PushesNewNotificationsOnly(t *testing.T) {
	fx := createTestFanoutService(t, true)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(demoEvent, nil)
	fx.orgRepo.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Organization{ID: "o1", Name: "Gophers"}, nil)
	fx.subscriptionRepo.EXPECT().ListSubscriberIDs(mock.Anything, "o1").Return([]string{"u1", "u2"}, nil)

	// u2 already had the notification from an earlier delivery.
	fx.notificationRepo.EXPECT().
		InsertMany(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) (int, error) {
			notifications[0].ID = "n1"

			return 1, nil
		})
	fx.deviceRepo.EXPECT().
		ListActiveByUsers(mock.Anything, []string{"u1"}).
		Return([]*entity.UserDevice{
			{ID: "d1", UserID: "u1", FCMToken: "good"},
			{ID: "d2", UserID: "u1", FCMToken: "stale"},
		}, nil)
	fx.pushSvc.EXPECT().
		Push(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return assert.ObjectsAreEqual([]string{"good", "stale"}, msg.Tokens) && msg.Title == "New event: Demo"
		})).
		Return(&service.PushResult{Sent: 1, Failed: 1, InvalidTokens: []string{"stale"}}, nil)
	fx.deviceRepo.EXPECT().DeactivateByTokens(mock.Anything, []string{"stale"}).Return(int64(1), nil)

	inserted, err := fx.service.HandleDomainEvent(ctx, &service.DomainEvent{
		ID:      "ob1",
		Type:    entity.DomainEventEventPublished,
		EventID: "e1",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}

func TestFanoutService_PushFailureDoesNotFail(t *testing.T) {
	fx := createTestFanoutService(t, true)

	fx.userRepo.EXPECT().FindByID(mock.Anything, "u-bob").Return(nil, repository.ErrUserNotFound)
	fx.notificationRepo.EXPECT().
		InsertMany(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, notifications []*entity.Notification) (int, error) {
			notifications[0].ID = "n1"

			return 1, nil
		})
	fx.deviceRepo.EXPECT().ListActiveByUsers(mock.Anything, []string{"u-alice"}).Return([]*entity.UserDevice{{FCMToken: "t1"}}, nil)
	fx.pushSvc.EXPECT().
		Push(mock.Anything, mock.MatchedBy(func(msg *service.PushMessage) bool {
			return len(msg.Tokens) == 1 && msg.Body == "Someone accepted your connection request"
		})).
		Return(nil, errors.New("fcm down"))

	inserted, err := fx.service.HandleDomainEvent(context.Background(), &service.DomainEvent{
		ID:          "ob3",
		Type:        entity.DomainEventConnectionAccepted,
		ActorID:     "u-bob",
		RecipientID: "u-alice",
	})
	require.NoError(t, err)
	assert.Equal(t, 1, inserted)
}
