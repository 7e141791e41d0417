package mongo

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

// badgeRepository implements the repository.BadgeRepository interface.
type badgeRepository struct {
	badges *mongo.Collection
	claims *mongo.Collection
}

// NewBadgeRepository is the constructor for badgeRepository.
func NewBadgeRepository(db *mongo.Database) repository.BadgeRepository {
	return &badgeRepository{
		badges: db.Collection(model.BadgesCollection),
		claims: db.Collection(model.BadgeClaimsCollection),
	}
}

func (repo *badgeRepository) Create(ctx context.Context, badge *entity.Badge) error {
	badge.CreatedAt = time.Now().UTC()

	badgeM, err := model.NewBadgeModel(badge)
	if err != nil {
		return err
	}

	res, err := repo.badges.InsertOne(ctx, badgeM)
	if err != nil {
		return storeError(err, "failed to create badge")
	}
	badge.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *badgeRepository) FindByID(ctx context.Context, id string) (*entity.Badge, error) {
	var badgeM model.BadgeModel
	if err := findByID(ctx, repo.badges, id, &badgeM); err != nil {
		return nil, lookupError(err, repository.ErrBadgeNotFound, "failed to find badge by ID")
	}

	return badgeM.ToEntity(), nil
}

func (repo *badgeRepository) List(ctx context.Context, filter repository.BadgeFilter) ([]*entity.Badge, error) {
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
	if filter.OrganizationID != "" {
		oid, err := model.ParseID(filter.OrganizationID)
		if err != nil {
			return nil, err
		}
		query["organizationId"] = oid
	}
	if filter.Type != "" {
		query["type"] = string(filter.Type)
	}

	badges, err := findAll(ctx, repo.badges, query,
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: -1}}),
		(*model.BadgeModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list badges")
	}

	return badges, nil
}

// CreateClaim inserts a claim; the unique (badgeId, userId) index rejects a second one.
func (repo *badgeRepository) CreateClaim(ctx context.Context, claim *entity.BadgeClaim) error {
	claim.ClaimedAt = time.Now().UTC()

	claimM, err := model.NewBadgeClaimModel(claim)
	if err != nil {
		return err
	}

	res, err := repo.claims.InsertOne(ctx, claimM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateClaim
		}

		return storeError(err, "failed to create badge claim")
	}
	claim.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *badgeRepository) ListClaims(ctx context.Context, filter repository.BadgeClaimFilter) ([]*entity.BadgeClaim, error) {
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
	if filter.BadgeID != "" {
		oid, err := model.ParseID(filter.BadgeID)
		if err != nil {
			return nil, err
		}
		query["badgeId"] = oid
	}

	claims, err := findAll(ctx, repo.claims, query,
		pageOptions(filter.Page, bson.D{{Key: "claimedAt", Value: -1}}),
		(*model.BadgeClaimModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list badge claims")
	}

	return claims, nil
}
