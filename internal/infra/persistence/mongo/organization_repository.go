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

// organizationRepository implements the repository.OrganizationRepository interface.
type organizationRepository struct {
	coll *mongo.Collection
}

// NewOrganizationRepository is the constructor for organizationRepository.
func NewOrganizationRepository(db *mongo.Database) repository.OrganizationRepository {
	return &organizationRepository{coll: db.Collection(model.OrganizationsCollection)}
}

func (repo *organizationRepository) Create(ctx context.Context, org *entity.Organization) error {
	now := time.Now().UTC()
	org.CreatedAt, org.UpdatedAt = now, now

	orgM, err := model.NewOrganizationModel(org)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, orgM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateSlug
		}

		return storeError(err, "failed to create organization")
	}
	org.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *organizationRepository) FindByID(ctx context.Context, id string) (*entity.Organization, error) {
	var orgM model.OrganizationModel
	if err := findByIDOr(ctx, repo.coll, id, "slug", &orgM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, storeError(err, "failed to find organization by ID")
	}

	return orgM.ToEntity(), nil
}

func (repo *organizationRepository) List(ctx context.Context, filter repository.OrganizationFilter) ([]*entity.Organization, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query := bson.M{}
	if filter.MemberID != "" {
		oid, err := model.ParseID(filter.MemberID)
		if err != nil {
			return nil, err
		}
		query["members.userId"] = oid
	}

	orgs, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "name", Value: 1}}),
		(*model.OrganizationModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list organizations")
	}

	return orgs, nil
}

func (repo *organizationRepository) Update(ctx context.Context, id string, patch entity.OrganizationPatch) (*entity.Organization, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Name != nil {
		set["name"] = *patch.Name
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.Members != nil {
		members, err := model.NewMemberModels(*patch.Members)
		if err != nil {
			return nil, err
		}
		set["members"] = members
	}

	var orgM model.OrganizationModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&orgM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrOrganizationNotFound
		}

		return nil, storeError(err, "failed to update organization")
	}

	return orgM.ToEntity(), nil
}
