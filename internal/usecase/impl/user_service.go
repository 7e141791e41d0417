package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "eventhub/internal/delivery/context"
	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/domain/service"
	"eventhub/internal/errors"
	"eventhub/internal/usecase"

	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	userRepo repository.UserRepository
	hasher   service.PasswordHasher
	logger   *slog.Logger
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Logger   *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return &userService{
		userRepo: params.UserRepo,
		hasher:   params.Hasher,
		logger:   params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates a local account. The password is optional for accounts
// that only sign in through the identity provider.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*entity.User, error) {
	user := &entity.User{
		ExternalID:      strings.TrimSpace(input.ExternalID),
		Email:           strings.ToLower(strings.TrimSpace(input.Email)),
		Name:            strings.TrimSpace(input.Name),
		Bio:             input.Bio,
		AvatarURL:       input.AvatarURL,
		OrganizationIDs: []string{},
	}

	if input.Password != "" {
		hash, err := srv.hasher.Hash(input.Password)
		if err != nil {
			return nil, errors.Wrap(domainerrors.ErrPasswordHashFailed, err.Error())
		}
		user.PasswordHash = hash
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		return nil, translateError(err, "failed to create user",
			mapErr(repository.ErrDuplicateEmail, domainerrors.ErrUserAlreadyExists))
	}

	srv.log(ctx).Info("User signed up", slog.String("user_id", user.ID))

	return user, nil
}

func (srv *userService) GetUser(ctx context.Context, id string) (*entity.User, error) {
	user, err := srv.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, translateError(err, "failed to find user",
			mapErr(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
	}

	return user, nil
}

func (srv *userService) UpdateProfile(ctx context.Context, userID string, patch entity.UserPatch) (*entity.User, error) {
	if patch.IsEmpty() {
		return nil, domainerrors.ErrValidationFailed.WithDetails("no profile field to update")
	}
	if patch.Name != nil && strings.TrimSpace(*patch.Name) == "" {
		return nil, domainerrors.ErrValidationFailed.WithDetails("name must not be empty")
	}

	user, err := srv.userRepo.Update(ctx, userID, patch)
	if err != nil {
		return nil, translateError(err, "failed to update user",
			mapErr(repository.ErrUserNotFound, domainerrors.ErrUserNotFound))
	}

	return user, nil
}
