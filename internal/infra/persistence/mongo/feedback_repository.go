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

// feedbackRepository implements the repository.FeedbackRepository interface.
type feedbackRepository struct {
	coll *mongo.Collection
}

// NewFeedbackRepository is the constructor for feedbackRepository.
func NewFeedbackRepository(db *mongo.Database) repository.FeedbackRepository {
	return &feedbackRepository{coll: db.Collection(model.FeedbackCollection)}
}

func (repo *feedbackRepository) Create(ctx context.Context, feedback *entity.Feedback) error {
	feedback.CreatedAt = time.Now().UTC()

	feedbackM, err := model.NewFeedbackModel(feedback)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, feedbackM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateFeedback
		}

		return storeError(err, "failed to create feedback")
	}
	feedback.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

func (repo *feedbackRepository) List(ctx context.Context, filter repository.FeedbackFilter) ([]*entity.Feedback, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	oid, err := model.ParseID(filter.EventID)
	if err != nil {
		return nil, err
	}

	items, err := findAll(ctx, repo.coll, bson.M{"eventId": oid},
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: -1}}),
		(*model.FeedbackModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list feedback")
	}

	return items, nil
}

type feedbackStats struct {
	Count   int     `bson:"count"`
	Average float64 `bson:"average"`
}

// Stats aggregates the count and average rating of an event's feedback.
func (repo *feedbackRepository) Stats(ctx context.Context, eventID string) (int, float64, error) {
	oid, err := model.ParseID(eventID)
	if err != nil {
		return 0, 0, err
	}

	pipeline := bson.A{
		bson.M{"$match": bson.M{"eventId": oid}},
		bson.M{"$group": bson.M{
			"_id":     nil,
			"count":   bson.M{"$sum": 1},
			"average": bson.M{"$avg": "$rating"},
		}},
	}

	cursor, err := repo.coll.Aggregate(ctx, pipeline)
	if err != nil {
		return 0, 0, storeError(err, "failed to aggregate feedback")
	}

	var stats []feedbackStats
	if err := cursor.All(ctx, &stats); err != nil {
		return 0, 0, storeError(err, "failed to decode feedback stats")
	}
	if len(stats) == 0 {
		return 0, 0, nil
	}

	return stats[0].Count, stats[0].Average, nil
}
