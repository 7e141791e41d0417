package impl

import (
	"context"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type registrationServiceFixtures struct {
	service          *registrationService
	txManager        *mockRepo.MockTransactionManager
	eventRepo        *mockRepo.MockEventRepository
	orgRepo          *mockRepo.MockOrganizationRepository
	registrationRepo *mockRepo.MockRegistrationRepository
	qrcodeService    *mockSvc.MockQRCodeService
}

var checkInTime = time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)

func createTestRegistrationService(t *testing.T) registrationServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	eventRepo := mockRepo.NewMockEventRepository(t)
	orgRepo := mockRepo.NewMockOrganizationRepository(t)
	registrationRepo := mockRepo.NewMockRegistrationRepository(t)
	qrcodeService := mockSvc.NewMockQRCodeService(t)

	svc := NewRegistrationService(RegistrationServiceParams{
		TxManager:        txManager,
		EventRepo:        eventRepo,
		OrgRepo:          orgRepo,
		RegistrationRepo: registrationRepo,
		QRCodeService:    qrcodeService,
		Logger:           newDiscardLogger(),
	}).(*registrationService)
	svc.now = func() time.Time { return checkInTime }

	return registrationServiceFixtures{
		service:          svc,
		txManager:        txManager,
		eventRepo:        eventRepo,
		orgRepo:          orgRepo,
		registrationRepo: registrationRepo,
		qrcodeService:    qrcodeService,
	}
}

func TestRegistrationService_Register(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, "demo").Return(&entity.Event{ID: "e1", Capacity: 10}, nil)
	fx.registrationRepo.EXPECT().CountByEvent(ctx, "e1").Return(int64(3), nil)

	repos := newTxRepos(t)
	expectTx(fx.txManager, repos)
	repos.registration.EXPECT().
		Create(ctx, mock.AnythingOfType("*entity.Registration")).
		Run(func(_ context.Context, registration *entity.Registration) {
			registration.ID = "r1"
		}).
		Return(nil)
	repos.outbox.EXPECT().
		Enqueue(ctx, mock.MatchedBy(func(event *entity.OutboxEvent) bool {
			return event.Type == entity.DomainEventRegistrationCreated && event.ActorID == "u1" && event.EventID == "e1"
		})).
		Return(nil).
		Once()

	registration, err := fx.service.Register(ctx, "u1", "demo", map[string]string{"diet": "vegan"})
	require.NoError(t, err)
	assert.Equal(t, "r1", registration.ID)
	assert.Equal(t, "e1", registration.EventID)
	assert.Equal(t, entity.RegistrationStateRegistered, registration.State())
}

func TestRegistrationService_Register_Conflicts(t *testing.T) {
	t.Run("event full", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1", Capacity: 2}, nil)
		fx.registrationRepo.EXPECT().CountByEvent(mock.Anything, "e1").Return(int64(2), nil)

		_, err := fx.service.Register(context.Background(), "u1", "e1", nil)
		assert.ErrorIs(t, err, domainerrors.ErrEventFull)
		assert.Equal(t, 409, domainerrors.ErrEventFull.HTTPCode())
	})

	t.Run("already registered", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1"}, nil)

		repos := newTxRepos(t)
		expectTx(fx.txManager, repos)
		repos.registration.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateRegistration)

		_, err := fx.service.Register(context.Background(), "u1", "e1", nil)
		assert.ErrorIs(t, err, domainerrors.ErrAlreadyRegistered)
	})

	t.Run("unknown event", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "nope").Return(nil, repository.ErrEventNotFound)

		_, err := fx.service.Register(context.Background(), "u1", "nope", nil)
		assert.ErrorIs(t, err, domainerrors.ErrEventNotFound)
	})
}

func TestRegistrationService_GetStatus(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, "e1").Return(&entity.Event{ID: "e1"}, nil).Twice()
	fx.registrationRepo.EXPECT().FindByEventAndUser(ctx, "e1", "u1").Return(nil, repository.ErrRegistrationNotFound).Once()
	fx.registrationRepo.EXPECT().FindByEventAndUser(ctx, "e1", "u2").Return(&entity.Registration{ID: "r2", CheckedIn: true}, nil).Once()

	status, err := fx.service.GetStatus(ctx, "u1", "e1")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationStateNotRegistered, status.State)
	assert.Nil(t, status.Registration)

	status, err = fx.service.GetStatus(ctx, "u2", "e1")
	require.NoError(t, err)
	assert.Equal(t, entity.RegistrationStateCheckedIn, status.State)
}

func TestRegistrationService_CheckIn(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	event := &entity.Event{ID: "e1", OrganizerID: "org-user"}
	fx.eventRepo.EXPECT().FindByID(ctx, "e1").Return(event, nil).Twice()
	fx.registrationRepo.EXPECT().
		MarkCheckedIn(ctx, "e1", "u1", checkInTime).
		Return(&entity.Registration{ID: "r1", CheckedIn: true, CheckedInAt: &checkInTime}, nil).
		Twice()

	for range 2 {
		registration, err := fx.service.CheckIn(ctx, "org-user", "e1", "u1")
		require.NoError(t, err)
		assert.True(t, registration.CheckedIn)
	}
}

func TestRegistrationService_CheckIn_Errors(t *testing.T) {
	t.Run("no registration", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1", OrganizerID: "org-user"}, nil)
		fx.registrationRepo.EXPECT().MarkCheckedIn(mock.Anything, "e1", "u1", checkInTime).Return(nil, repository.ErrRegistrationNotFound)

		_, err := fx.service.CheckIn(context.Background(), "org-user", "e1", "u1")
		assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)
	})

	t.Run("caller is not organizer", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1", OrganizerID: "org-user"}, nil)

		_, err := fx.service.CheckIn(context.Background(), "u9", "e1", "u1")
		assert.ErrorIs(t, err, domainerrors.ErrNotEventOrganizer)
	})

	t.Run("organization admin may check in", func(t *testing.T) {
		fx := createTestRegistrationService(t)
		fx.eventRepo.EXPECT().FindByID(mock.Anything, "e1").Return(&entity.Event{ID: "e1", OrganizerID: "org-user", OrganizationID: "o1"}, nil)
		fx.orgRepo.EXPECT().FindByID(mock.Anything, "o1").Return(&entity.Organization{
			ID:      "o1",
			Members: []entity.OrganizationMember{{UserID: "admin", Role: entity.MemberRoleAdmin}},
		}, nil)
		fx.registrationRepo.EXPECT().MarkCheckedIn(mock.Anything, "e1", "u1", checkInTime).Return(&entity.Registration{CheckedIn: true}, nil)

		_, err := fx.service.CheckIn(context.Background(), "admin", "e1", "u1")
		assert.NoError(t, err)
	})
}

func TestRegistrationService_CheckInByQR(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, "e1").Return(&entity.Event{ID: "e1", OrganizerID: "org-user"}, nil).Times(3)
	fx.qrcodeService.EXPECT().ParseCheckInQR("good").Return(&service.CheckInPayload{EventID: "e1", UserID: "u1", Type: "checkin"}, nil)
	fx.qrcodeService.EXPECT().ParseCheckInQR("other").Return(&service.CheckInPayload{EventID: "e2", UserID: "u1", Type: "checkin"}, nil)
	fx.qrcodeService.EXPECT().ParseCheckInQR("junk").Return(nil, errors.New("not a check-in code"))
	fx.registrationRepo.EXPECT().MarkCheckedIn(ctx, "e1", "u1", checkInTime).Return(&entity.Registration{CheckedIn: true}, nil).Once()

	_, err := fx.service.CheckInByQR(ctx, "org-user", "e1", "good")
	require.NoError(t, err)

	_, err = fx.service.CheckInByQR(ctx, "org-user", "e1", "other")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckInCode)

	_, err = fx.service.CheckInByQR(ctx, "org-user", "e1", "junk")
	assert.ErrorIs(t, err, domainerrors.ErrInvalidCheckInCode)
}

func TestRegistrationService_CheckInQR_RequiresRegistration(t *testing.T) {
	fx := createTestRegistrationService(t)
	ctx := context.Background()

	fx.eventRepo.EXPECT().FindByID(ctx, "e1").Return(&entity.Event{ID: "e1"}, nil).Twice()
	fx.registrationRepo.EXPECT().FindByEventAndUser(ctx, "e1", "u1").Return(nil, repository.ErrRegistrationNotFound).Once()
	fx.registrationRepo.EXPECT().FindByEventAndUser(ctx, "e1", "u2").Return(&entity.Registration{ID: "r2"}, nil).Once()
	fx.qrcodeService.EXPECT().GenerateCheckInQR("e1", "u2").Return([]byte("png"), nil)

	_, err := fx.service.CheckInQR(ctx, "u1", "e1")
	assert.ErrorIs(t, err, domainerrors.ErrRegistrationNotFound)

	png, err := fx.service.CheckInQR(ctx, "u2", "e1")
	require.NoError(t, err)
	assert.Equal(t, []byte("png"), png)
}
