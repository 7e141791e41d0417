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

// outboxRepository implements the repository.OutboxRepository interface.
type outboxRepository struct {
	coll *mongo.Collection
}

// NewOutboxRepository is the constructor for outboxRepository.
func NewOutboxRepository(db *mongo.Database) repository.OutboxRepository {
	return &outboxRepository{coll: db.Collection(model.OutboxCollection)}
}

func (repo *outboxRepository) Enqueue(ctx context.Context, event *entity.OutboxEvent) error {
	now := time.Now().UTC()
	event.Status = entity.OutboxStatusPending
	event.CreatedAt = now
	if event.AvailableAt.IsZero() {
		event.AvailableAt = now
	}

	res, err := repo.coll.InsertOne(ctx, model.NewOutboxModel(event))
	if err != nil {
		return storeError(err, "failed to enqueue outbox event")
	}
	event.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

// Claim flips due records to PROCESSING one at a time, so two relays never
// claim the same record while its lock holds.
func (repo *outboxRepository) Claim(ctx context.Context, now time.Time, lease time.Duration, limit int) ([]*entity.OutboxEvent, error) {
	now = now.UTC()
	lockedUntil := now.Add(lease)

	query := dueQuery(now)
	update := bson.M{"$set": bson.M{
		"status":      string(entity.OutboxStatusProcessing),
		"lockedUntil": lockedUntil,
	}}
	opts := options.FindOneAndUpdate().
		SetSort(bson.D{{Key: "availableAt", Value: 1}}).
		SetReturnDocument(options.After)

	claimed := make([]*entity.OutboxEvent, 0, limit)
	for len(claimed) < limit {
		var outboxM model.OutboxModel
		err := repo.coll.FindOneAndUpdate(ctx, query, update, opts).Decode(&outboxM)
		if isNotFound(err) {
			break
		}
		if err != nil {
			return claimed, storeError(err, "failed to claim outbox event")
		}
		claimed = append(claimed, outboxM.ToEntity())
	}

	return claimed, nil
}

// dueQuery matches PENDING records whose time has come and PROCESSING
// records whose lock expired.
func dueQuery(now time.Time) bson.M {
	return bson.M{"$or": bson.A{
		bson.M{"status": string(entity.OutboxStatusPending), "availableAt": bson.M{"$lte": now}},
		bson.M{"status": string(entity.OutboxStatusProcessing), "lockedUntil": bson.M{"$lte": now}},
	}}
}

func (repo *outboxRepository) MarkDispatched(ctx context.Context, id string, at time.Time) error {
	return repo.update(ctx, id, bson.M{
		"$set":   bson.M{"status": string(entity.OutboxStatusDispatched), "dispatchedAt": at.UTC()},
		"$unset": bson.M{"lockedUntil": ""},
	}, "failed to mark outbox event dispatched")
}

func (repo *outboxRepository) Reschedule(ctx context.Context, id string, attempts int, availableAt time.Time, lastErr string) error {
	return repo.update(ctx, id, bson.M{
		"$set": bson.M{
			"status":      string(entity.OutboxStatusPending),
			"attempts":    attempts,
			"availableAt": availableAt.UTC(),
			"lastError":   lastErr,
		},
		"$unset": bson.M{"lockedUntil": ""},
	}, "failed to reschedule outbox event")
}

func (repo *outboxRepository) MarkDead(ctx context.Context, id string, attempts int, lastErr string) error {
	return repo.update(ctx, id, bson.M{
		"$set": bson.M{
			"status":    string(entity.OutboxStatusDead),
			"attempts":  attempts,
			"lastError": lastErr,
		},
		"$unset": bson.M{"lockedUntil": ""},
	}, "failed to mark outbox event dead")
}

func (repo *outboxRepository) update(ctx context.Context, id string, update bson.M, details string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, update)
	if err != nil {
		return storeError(err, details)
	}
	if res.MatchedCount == 0 {
		return repository.ErrOutboxEventNotFound
	}

	return nil
}
