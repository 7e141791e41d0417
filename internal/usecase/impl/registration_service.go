package impl

import (
	"context"
	"log/slog"
	"time"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

type registrationService struct {
	txManager        repository.TransactionManager
	eventRepo        repository.EventRepository
	orgRepo          repository.OrganizationRepository
	registrationRepo repository.RegistrationRepository
	qrcodeService    service.QRCodeService
	logger           *slog.Logger
	now              func() time.Time
}

// RegistrationServiceParams holds dependencies for RegistrationService, injected by Fx.
type RegistrationServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	EventRepo        repository.EventRepository
	OrgRepo          repository.OrganizationRepository
	RegistrationRepo repository.RegistrationRepository
	QRCodeService    service.QRCodeService
	Logger           *slog.Logger
}

// NewRegistrationService creates a new registration service instance
func NewRegistrationService(params RegistrationServiceParams) usecase.RegistrationUsecase {
	return &registrationService{
		txManager:        params.TxManager,
		eventRepo:        params.EventRepo,
		orgRepo:          params.OrgRepo,
		registrationRepo: params.RegistrationRepo,
		qrcodeService:    params.QRCodeService,
		logger:           params.Logger,
		now:              time.Now,
	}
}

func (s *registrationService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

// Register relies on the unique (event, user) index, so concurrent attempts
// resolve to one registration and one conflict.
func (s *registrationService) Register(ctx context.Context, userID, eventID string, responses map[string]string) (*entity.Registration, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if event.Capacity > 0 {
		count, err := s.registrationRepo.CountByEvent(ctx, event.ID)
		if err != nil {
			return nil, translateError(err, "failed to count registrations")
		}
		if count >= int64(event.Capacity) {
			return nil, domainerrors.ErrEventFull
		}
	}

	registration := &entity.Registration{
		EventID:   event.ID,
		UserID:    userID,
		Responses: responses,
	}

	err = s.txManager.Execute(ctx, func(txCtx context.Context, repos repository.RepositoryFactory) error {
		if err := repos.NewRegistrationRepository().Create(txCtx, registration); err != nil {
			return translateError(err, "failed to create registration",
				mapErr(repository.ErrDuplicateRegistration, domainerrors.ErrAlreadyRegistered))
		}

		record := newOutboxEvent(ctx, entity.DomainEventRegistrationCreated, userID)
		record.EventID = event.ID
		if err := repos.NewOutboxRepository().Enqueue(txCtx, record); err != nil {
			return translateError(err, "failed to enqueue registration created")
		}

		return nil
	})
	if err != nil {
		return nil, err
	}

	s.log(ctx).Info("User registered for event",
		slog.String("event_id", event.ID),
		slog.String("user_id", userID),
	)

	return registration, nil
}

func (s *registrationService) GetStatus(ctx context.Context, userID, eventID string) (*usecase.RegistrationStatus, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	registration, err := s.registrationRepo.FindByEventAndUser(ctx, event.ID, userID)
	if err != nil && !errors.Is(err, repository.ErrRegistrationNotFound) {
		return nil, translateError(err, "failed to find registration")
	}

	return &usecase.RegistrationStatus{
		EventID:      event.ID,
		UserID:       userID,
		State:        registration.State(),
		Registration: registration,
	}, nil
}

func (s *registrationService) CheckInQR(ctx context.Context, userID, eventID string) ([]byte, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if _, err := s.registrationRepo.FindByEventAndUser(ctx, event.ID, userID); err != nil {
		return nil, translateError(err, "failed to find registration",
			mapErr(repository.ErrRegistrationNotFound, domainerrors.ErrRegistrationNotFound))
	}

	png, err := s.qrcodeService.GenerateCheckInQR(event.ID, userID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate check-in QR")
	}

	return png, nil
}

func (s *registrationService) ListAttendees(ctx context.Context, callerID, eventID string, filter repository.RegistrationFilter) ([]*entity.Registration, error) {
	event, err := s.managedEvent(ctx, callerID, eventID)
	if err != nil {
		return nil, err
	}

	filter.EventID = event.ID
	registrations, err := s.registrationRepo.List(ctx, filter)
	if err != nil {
		return nil, translateError(err, "failed to list attendees")
	}

	return registrations, nil
}

// CheckIn overwrites the check-in time, so repeating it succeeds.
func (s *registrationService) CheckIn(ctx context.Context, callerID, eventID, userID string) (*entity.Registration, error) {
	event, err := s.managedEvent(ctx, callerID, eventID)
	if err != nil {
		return nil, err
	}

	return s.checkIn(ctx, event.ID, userID)
}

func (s *registrationService) CheckInByQR(ctx context.Context, callerID, eventID, qrData string) (*entity.Registration, error) {
	event, err := s.managedEvent(ctx, callerID, eventID)
	if err != nil {
		return nil, err
	}

	payload, err := s.qrcodeService.ParseCheckInQR(qrData)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrInvalidCheckInCode, err.Error())
	}
	if payload.EventID != event.ID {
		return nil, domainerrors.ErrInvalidCheckInCode.WithDetails("code belongs to another event")
	}

	return s.checkIn(ctx, event.ID, payload.UserID)
}

func (s *registrationService) checkIn(ctx context.Context, eventID, userID string) (*entity.Registration, error) {
	registration, err := s.registrationRepo.MarkCheckedIn(ctx, eventID, userID, s.now().UTC())
	if err != nil {
		return nil, translateError(err, "failed to check in",
			mapErr(repository.ErrRegistrationNotFound, domainerrors.ErrRegistrationNotFound))
	}

	s.log(ctx).Info("Attendee checked in",
		slog.String("event_id", eventID),
		slog.String("user_id", userID),
	)

	return registration, nil
}

func (s *registrationService) findEvent(ctx context.Context, eventID string) (*entity.Event, error) {
	event, err := s.eventRepo.FindByID(ctx, eventID)
	if err != nil {
		return nil, translateError(err, "failed to find event",
			mapErr(repository.ErrEventNotFound, domainerrors.ErrEventNotFound))
	}

	return event, nil
}

// managedEvent loads an event the caller may check attendees in to: the
// organizer or an OWNER/ADMIN of the event's organization.
func (s *registrationService) managedEvent(ctx context.Context, callerID, eventID string) (*entity.Event, error) {
	event, err := s.findEvent(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.OrganizerID == callerID {
		return event, nil
	}
	if event.OrganizationID == "" {
		return nil, domainerrors.ErrNotEventOrganizer
	}

	org, err := s.orgRepo.FindByID(ctx, event.OrganizationID)
	if err != nil {
		if errors.Is(err, repository.ErrOrganizationNotFound) {
			return nil, domainerrors.ErrNotEventOrganizer
		}

		return nil, translateError(err, "failed to find event organization")
	}
	if !org.CanManage(callerID) {
		return nil, domainerrors.ErrNotEventOrganizer
	}

	return event, nil
}
