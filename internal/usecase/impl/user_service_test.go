package impl

import (
	"context"
	"testing"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	mockRepo "eventhub/internal/mocks/repository"
	mockSvc "eventhub/internal/mocks/service"
	"eventhub/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type userServiceFixtures struct {
	service  usecase.UserUsecase
	userRepo *mockRepo.MockUserRepository
	hasher   *mockSvc.MockPasswordHasher
}

func createTestUserService(t *testing.T) userServiceFixtures {
	userRepo := mockRepo.NewMockUserRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)

	return userServiceFixtures{
		service:  NewUserService(UserServiceParams{UserRepo: userRepo, Hasher: hasher, Logger: newDiscardLogger()}),
		userRepo: userRepo,
		hasher:   hasher,
	}
}

func TestUserService_SignUp(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().Hash("s3cret!!").Return("hashed", nil)
	fx.userRepo.EXPECT().
		Create(ctx, mock.MatchedBy(func(user *entity.User) bool {
			return user.Email == "ada@example.com" && user.PasswordHash == "hashed"
		})).
		Return(nil)

	user, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: " Ada@Example.com ", Name: "Ada", Password: "s3cret!!"})
	require.NoError(t, err)
	assert.Equal(t, "Ada", user.Name)
	assert.NotNil(t, user.OrganizationIDs)
}

func TestUserService_SignUp_DuplicateEmail(t *testing.T) {
	fx := createTestUserService(t)
	fx.userRepo.EXPECT().Create(mock.Anything, mock.Anything).Return(repository.ErrDuplicateEmail)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "ada@example.com", Name: "Ada"})
	assert.ErrorIs(t, err, domainerrors.ErrUserAlreadyExists)
}

func TestUserService_GetUser(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.userRepo.EXPECT().FindByID(ctx, "ada-ext").Return(&entity.User{ID: "u1", ExternalID: "ada-ext"}, nil)
	fx.userRepo.EXPECT().FindByID(ctx, "ghost").Return(nil, repository.ErrUserNotFound)

	user, err := fx.service.GetUser(ctx, "ada-ext")
	require.NoError(t, err)
	assert.Equal(t, "u1", user.ID)

	_, err = fx.service.GetUser(ctx, "ghost")
	assert.ErrorIs(t, err, domainerrors.ErrUserNotFound)
}

func TestUserService_UpdateProfile(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	_, err := fx.service.UpdateProfile(ctx, "u1", entity.UserPatch{})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	blank := " "
	_, err = fx.service.UpdateProfile(ctx, "u1", entity.UserPatch{Name: &blank})
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)

	bio := "Gopher"
	fx.userRepo.EXPECT().Update(ctx, "u1", entity.UserPatch{Bio: &bio}).Return(&entity.User{ID: "u1", Bio: bio}, nil)
	user, err := fx.service.UpdateProfile(ctx, "u1", entity.UserPatch{Bio: &bio})
	require.NoError(t, err)
	assert.Equal(t, bio, user.Bio)
}
