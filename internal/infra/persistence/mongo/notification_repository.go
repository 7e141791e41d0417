package mongo

import (
	"context"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"
	"eventhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

const duplicateKeyCode = 11000

// notificationRepository implements the repository.NotificationRepository interface.
type notificationRepository struct {
	coll *mongo.Collection
}

// NewNotificationRepository is the constructor for notificationRepository.
func NewNotificationRepository(db *mongo.Database) repository.NotificationRepository {
	return &notificationRepository{coll: db.Collection(model.NotificationsCollection)}
}

// InsertMany inserts notifications unordered so one failure does not stop the
// rest. Duplicate dedupe keys are redeliveries and are not reported.
func (repo *notificationRepository) InsertMany(ctx context.Context, notifications []*entity.Notification) (int, error) {
	if len(notifications) == 0 {
		return 0, nil
	}

	now := time.Now().UTC()
	docs := make([]any, 0, len(notifications))
	models := make([]*model.NotificationModel, 0, len(notifications))
	for _, notification := range notifications {
		if notification.CreatedAt.IsZero() {
			notification.CreatedAt = now
		}
		notificationM, err := model.NewNotificationModel(notification)
		if err != nil {
			return 0, err
		}
		docs = append(docs, notificationM)
		models = append(models, notificationM)
	}

	_, err := repo.coll.InsertMany(ctx, docs, options.InsertMany().SetOrdered(false))
	failed, err := skipDuplicates(err)
	if err != nil {
		return 0, storeError(err, "failed to insert notifications")
	}

	for i, notificationM := range models {
		if !failed[i] {
			notifications[i].ID = notificationM.ID.Hex()
		}
	}

	return len(notifications) - len(failed), nil
}

// skipDuplicates inspects an unordered bulk insert error. It returns the
// indexes rejected as duplicates, or the error when anything else failed.
func skipDuplicates(err error) (map[int]bool, error) {
	failed := map[int]bool{}
	if err == nil {
		return failed, nil
	}

	var bulkErr mongo.BulkWriteException
	if !errors.As(err, &bulkErr) || bulkErr.WriteConcernError != nil || len(bulkErr.WriteErrors) == 0 {
		return nil, err
	}
	for _, writeErr := range bulkErr.WriteErrors {
		if writeErr.Code != duplicateKeyCode {
			return nil, err
		}
		failed[writeErr.Index] = true
	}

	return failed, nil
}

func (repo *notificationRepository) FindByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notificationM model.NotificationModel
	if err := findByID(ctx, repo.coll, id, &notificationM); err != nil {
		return nil, lookupError(err, repository.ErrNotificationNotFound, "failed to find notification by ID")
	}

	return notificationM.ToEntity(), nil
}

func (repo *notificationRepository) List(ctx context.Context, filter repository.NotificationFilter) ([]*entity.Notification, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	oid, err := model.ParseID(filter.RecipientID)
	if err != nil {
		return nil, err
	}
	query := bson.M{"recipientId": oid}
	if filter.UnreadOnly {
		query["read"] = false
	}

	notifications, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "createdAt", Value: -1}}),
		(*model.NotificationModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list notifications")
	}

	return notifications, nil
}

func (repo *notificationRepository) CountUnread(ctx context.Context, recipientID string) (int64, error) {
	oid, err := model.ParseID(recipientID)
	if err != nil {
		return 0, err
	}

	count, err := repo.coll.CountDocuments(ctx, bson.M{"recipientId": oid, "read": false})
	if err != nil {
		return 0, storeError(err, "failed to count unread notifications")
	}

	return count, nil
}

func (repo *notificationRepository) MarkRead(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return storeError(err, "failed to mark notification as read")
	}
	if res.MatchedCount == 0 {
		return repository.ErrNotificationNotFound
	}

	return nil
}

func (repo *notificationRepository) MarkAllRead(ctx context.Context, recipientID string) (int64, error) {
	oid, err := model.ParseID(recipientID)
	if err != nil {
		return 0, err
	}

	res, err := repo.coll.UpdateMany(ctx,
		bson.M{"recipientId": oid, "read": false},
		bson.M{"$set": bson.M{"read": true}})
	if err != nil {
		return 0, storeError(err, "failed to mark notifications as read")
	}

	return res.ModifiedCount, nil
}
