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

// connectionRepository implements the repository.ConnectionRepository interface.
type connectionRepository struct {
	coll *mongo.Collection
}

// NewConnectionRepository is the constructor for connectionRepository.
func NewConnectionRepository(db *mongo.Database) repository.ConnectionRepository {
	return &connectionRepository{coll: db.Collection(model.ConnectionsCollection)}
}

// Create inserts a connection; the unique (pairLow, pairHigh) index rejects a
// second document for the same unordered pair.
func (repo *connectionRepository) Create(ctx context.Context, connection *entity.Connection) error {
	now := time.Now().UTC()
	connection.CreatedAt, connection.UpdatedAt = now, now

	connectionM, err := model.NewConnectionModel(connection)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, connectionM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateConnection
		}

		return storeError(err, "failed to create connection")
	}
	connection.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *connectionRepository) FindByID(ctx context.Context, id string) (*entity.Connection, error) {
	var connectionM model.ConnectionModel
	if err := findByID(ctx, repo.coll, id, &connectionM); err != nil {
		return nil, lookupError(err, repository.ErrConnectionNotFound, "failed to find connection by ID")
	}

	return connectionM.ToEntity(), nil
}

func (repo *connectionRepository) List(ctx context.Context, filter repository.ConnectionFilter) ([]*entity.Connection, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, err := involvingQuery(filter.UserID)
	if err != nil {
		return nil, err
	}
	if filter.Status != "" {
		query["status"] = string(filter.Status)
	}

	connections, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "updatedAt", Value: -1}}),
		(*model.ConnectionModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list connections")
	}

	return connections, nil
}

// UpdateStatus sets the status and returns the document as it was before.
func (repo *connectionRepository) UpdateStatus(ctx context.Context, id string, status entity.ConnectionStatus) (*entity.Connection, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	update := bson.M{"$set": bson.M{"status": string(status), "updatedAt": time.Now().UTC()}}

	var connectionM model.ConnectionModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, update,
		options.FindOneAndUpdate().SetReturnDocument(options.Before)).Decode(&connectionM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrConnectionNotFound
		}

		return nil, storeError(err, "failed to update connection status")
	}

	return connectionM.ToEntity(), nil
}

func (repo *connectionRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeError(err, "failed to delete connection")
	}
	if res.DeletedCount == 0 {
		return repository.ErrConnectionNotFound
	}

	return nil
}

// ListAcceptedPeerIDs returns the other party of every ACCEPTED connection of userID.
func (repo *connectionRepository) ListAcceptedPeerIDs(ctx context.Context, userID string) ([]string, error) {
	query, err := acceptedPeersQuery(userID)
	if err != nil {
		return nil, err
	}

	opts := options.Find().SetProjection(bson.M{"requesterId": 1, "recipientId": 1})
	connections, err := findAll(ctx, repo.coll, query, opts, (*model.ConnectionModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list accepted connections")
	}

	peers := make([]string, 0, len(connections))
	for _, connection := range connections {
		peers = append(peers, connection.Other(userID))
	}

	return peers, nil
}

// acceptedPeersQuery matches the ACCEPTED connections userID is part of.
// Pending, rejected and blocked requests never make a peer.
func acceptedPeersQuery(userID string) (bson.M, error) {
	query, err := involvingQuery(userID)
	if err != nil {
		return nil, err
	}
	query["status"] = string(entity.ConnectionStatusAccepted)

	return query, nil
}

func involvingQuery(userID string) (bson.M, error) {
	oid, err := model.ParseID(userID)
	if err != nil {
		return nil, err
	}

	return bson.M{"$or": bson.A{
		bson.M{"requesterId": oid},
		bson.M{"recipientId": oid},
	}}, nil
}
