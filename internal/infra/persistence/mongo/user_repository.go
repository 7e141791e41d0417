package mongo

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// userRepository implements the repository.UserRepository interface.
type userRepository struct {
	coll *mongo.Collection
}

// NewUserRepository is the constructor for userRepository.
func NewUserRepository(db *mongo.Database) repository.UserRepository {
	return &userRepository{coll: db.Collection(model.UsersCollection)}
}

// Create persists a new user.
func (repo *userRepository) Create(ctx context.Context, user *entity.User) error {
	now := time.Now().UTC()
	user.CreatedAt, user.UpdatedAt = now, now

	userM, err := model.NewUserModel(user)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, userM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateEmail
		}

		return storeError(err, "failed to create user")
	}

	user.ID = res.InsertedID.(bson.ObjectID).Hex()
	if user.OrganizationIDs == nil {
		user.OrganizationIDs = []string{}
	}

	return nil
}

// FindByID retrieves a user by store id or external id.
func (repo *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var userM model.UserModel
	if err := findByIDOr(ctx, repo.coll, id, "externalId", &userM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to find user by ID")
	}

	return userM.ToEntity(), nil
}

// FindByEmail retrieves a user by email.
func (repo *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var userM model.UserModel
	if err := repo.coll.FindOne(ctx, bson.M{"email": email}).Decode(&userM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to find user by email")
	}

	return userM.ToEntity(), nil
}

// List returns the users matching filter ordered by creation time.
func (repo *userRepository) List(ctx context.Context, filter repository.UserFilter) ([]*entity.User, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := bson.M{}
	if len(filter.IDs) > 0 {
		in, err := inIDs("_id", filter.IDs)
		if err != nil {
			return nil, err
		}
		query = in
	}

	users, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: 1}}),
		(*model.UserModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list users")
	}

	return users, nil
}

// Update applies the profile patch.
func (repo *userRepository) Update(ctx context.Context, id string, patch entity.UserPatch) (*entity.User, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Bio != nil {
		set["bio"] = *patch.Bio
	}
	if patch.AvatarURL != nil {
		set["avatarUrl"] = *patch.AvatarURL
	}

	var userM model.UserModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&userM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrUserNotFound
		}

		return nil, storeError(err, "failed to update user")
	}

	return userM.ToEntity(), nil
}

// AddOrganization appends organizationID to the user's organizations.
func (repo *userRepository) AddOrganization(ctx context.Context, userID, organizationID string) error {
	oid, err := model.ParseID(userID)
	if err != nil {
		return err
	}
	orgID, err := model.ParseID(organizationID)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{
		"$addToSet": bson.M{"organizationIds": orgID},
		"$set":      bson.M{"updatedAt": time.Now().UTC()},
	})
	if err != nil {
		return storeError(err, "failed to add organization to user")
	}
	if res.MatchedCount == 0 {
		return repository.ErrUserNotFound
	}

	return nil
}
