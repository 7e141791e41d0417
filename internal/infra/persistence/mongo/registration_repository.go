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

// registrationRepository implements the repository.RegistrationRepository interface.
type registrationRepository struct {
	coll *mongo.Collection
}

// NewRegistrationRepository is the constructor for registrationRepository.
func NewRegistrationRepository(db *mongo.Database) repository.RegistrationRepository {
	return &registrationRepository{coll: db.Collection(model.RegistrationsCollection)}
}

// Create inserts a registration; the unique (eventId, userId) index rejects duplicates.
func (repo *registrationRepository) Create(ctx context.Context, registration *entity.Registration) error {
	now := time.Now().UTC()
	registration.CreatedAt, registration.UpdatedAt = now, now

	registrationM, err := model.NewRegistrationModel(registration)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, registrationM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateRegistration
		}

		return storeError(err, "failed to create registration")
	}
	registration.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *registrationRepository) FindByEventAndUser(ctx context.Context, eventID, userID string) (*entity.Registration, error) {
	query, err := eventUserQuery(eventID, userID)
	if err != nil {
		return nil, err
	}

	var registrationM model.RegistrationModel
	if err := repo.coll.FindOne(ctx, query).Decode(&registrationM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, storeError(err, "failed to find registration")
	}

	return registrationM.ToEntity(), nil
}

func (repo *registrationRepository) List(ctx context.Context, filter repository.RegistrationFilter) ([]*entity.Registration, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.EventID != "" {
		oid, err := model.ParseID(filter.EventID)
		if err != nil {
			return nil, err
		}
		query["eventId"] = oid
	}
	if filter.UserID != "" {
		oid, err := model.ParseID(filter.UserID)
		if err != nil {
			return nil, err
		}
		query["userId"] = oid
	}
	if filter.CheckedIn != nil {
		query["checkedIn"] = *filter.CheckedIn
	}

	registrations, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: 1}}),
		(*model.RegistrationModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list registrations")
	}

	return registrations, nil
}

func (repo *registrationRepository) CountByEvent(ctx context.Context, eventID string) (int64, error) {
	oid, err := model.ParseID(eventID)
	if err != nil {
		return 0, err
	}

	count, err := repo.coll.CountDocuments(ctx, bson.M{"eventId": oid})
	if err != nil {
		return 0, storeError(err, "failed to count registrations")
	}

	return count, nil
}

// MarkCheckedIn overwrites the check-in flag and time. It never upserts.
func (repo *registrationRepository) MarkCheckedIn(ctx context.Context, eventID, userID string, at time.Time) (*entity.Registration, error) {
	query, err := eventUserQuery(eventID, userID)
	if err != nil {
		return nil, err
	}

	at = at.UTC()
	update := bson.M{"$set": bson.M{"checkedIn": true, "checkedInAt": at, "updatedAt": at}}

	var registrationM model.RegistrationModel
	err = repo.coll.FindOneAndUpdate(ctx, query, update,
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&registrationM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrRegistrationNotFound
		}

		return nil, storeError(err, "failed to check in registration")
	}

	return registrationM.ToEntity(), nil
}

func eventUserQuery(eventID, userID string) (bson.M, error) {
	eventOID, err := model.ParseID(eventID)
	if err != nil {
		return nil, err
	}
	userOID, err := model.ParseID(userID)
	if err != nil {
		return nil, err
	}

	return bson.M{"eventId": eventOID, "userId": userOID}, nil
}
