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

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	coll *mongo.Collection
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *mongo.Database) repository.SubscriptionRepository {
	return &subscriptionRepository{coll: db.Collection(model.SubscriptionsCollection)}
}

// Upsert subscribes a user to an organization. Subscribing twice returns the
// first subscription unchanged.
func (repo *subscriptionRepository) Upsert(ctx context.Context, userID, organizationID string) (*entity.Subscription, error) {
	query, err := userOrganizationQuery(userID, organizationID)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$setOnInsert": bson.M{"createdAt": time.Now().UTC()}}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var subscriptionM model.SubscriptionModel
	err = repo.coll.FindOneAndUpdate(ctx, query, update, opts).Decode(&subscriptionM)
	if isDuplicateKey(err) {
		// A concurrent upsert inserted the document first.
		err = repo.coll.FindOne(ctx, query).Decode(&subscriptionM)
	}
	if err != nil {
		return nil, storeError(err, "failed to upsert subscription")
	}

	return subscriptionM.ToEntity(), nil
}

func (repo *subscriptionRepository) Delete(ctx context.Context, userID, organizationID string) error {
	query, err := userOrganizationQuery(userID, organizationID)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, query)
	if err != nil {
		return storeError(err, "failed to delete subscription")
	}
	if res.DeletedCount == 0 {
		return repository.ErrSubscriptionNotFound
	}

	return nil
}

func (repo *subscriptionRepository) List(ctx context.Context, filter repository.SubscriptionFilter) ([]*entity.Subscription, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.UserID != "" {
		oid, err := model.ParseID(filter.UserID)
		if err != nil {
			return nil, err
		}
		query["userId"] = oid
	}
	if filter.OrganizationID != "" {
		oid, err := model.ParseID(filter.OrganizationID)
		if err != nil {
			return nil, err
		}
		query["organizationId"] = oid
	}

	subscriptions, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: -1}}),
		(*model.SubscriptionModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list subscriptions")
	}

	return subscriptions, nil
}

func (repo *subscriptionRepository) ListSubscriberIDs(ctx context.Context, organizationID string) ([]string, error) {
	oid, err := model.ParseID(organizationID)
	if err != nil {
		return nil, err
	}

	ids, err := distinctIDs(ctx, repo.coll, "userId", bson.M{"organizationId": oid})
	if err != nil {
		return nil, storeError(err, "failed to list subscribers")
	}

	return ids, nil
}

func userOrganizationQuery(userID, organizationID string) (bson.M, error) {
	userOID, err := model.ParseID(userID)
	if err != nil {
		return nil, err
	}
	orgOID, err := model.ParseID(organizationID)
	if err != nil {
		return nil, err
	}

	return bson.M{"userId": userOID, "organizationId": orgOID}, nil
}
