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

// deviceRepository implements the repository.DeviceRepository interface.
type deviceRepository struct {
	coll *mongo.Collection
}

// NewDeviceRepository is the constructor for deviceRepository.
func NewDeviceRepository(db *mongo.Database) repository.DeviceRepository {
	return &deviceRepository{coll: db.Collection(model.DevicesCollection)}
}

// Upsert registers a device per (user, device id) and reactivates it.
func (repo *deviceRepository) Upsert(ctx context.Context, device *entity.UserDevice) error {
	userID, err := model.ParseID(device.UserID)
	if err != nil {
		return err
	}

	now := time.Now().UTC()
	query := bson.M{"userId": userID, "deviceId": device.DeviceID}
	update := bson.M{
		"$set": bson.M{
			"fcmToken":  device.FCMToken,
			"platform":  string(device.Platform),
			"isActive":  true,
			"updatedAt": now,
		},
		"$setOnInsert": bson.M{"createdAt": now},
	}
	opts := options.FindOneAndUpdate().SetUpsert(true).SetReturnDocument(options.After)

	var deviceM model.UserDeviceModel
	err = repo.coll.FindOneAndUpdate(ctx, query, update, opts).Decode(&deviceM)
	if isDuplicateKey(err) {
		// Lost an upsert race; the document exists now.
		err = repo.coll.FindOneAndUpdate(ctx, query, update, opts).Decode(&deviceM)
	}
	if err != nil {
		return storeError(err, "failed to upsert device")
	}

	*device = *deviceM.ToEntity()

	return nil
}

func (repo *deviceRepository) FindByID(ctx context.Context, id string) (*entity.UserDevice, error) {
	var deviceM model.UserDeviceModel
	if err := findByID(ctx, repo.coll, id, &deviceM); err != nil {
		return nil, lookupError(err, repository.ErrDeviceNotFound, "failed to find device by ID")
	}

	return deviceM.ToEntity(), nil
}

func (repo *deviceRepository) ListByUser(ctx context.Context, userID string) ([]*entity.UserDevice, error) {
	oid, err := model.ParseID(userID)
	if err != nil {
		return nil, err
	}

	devices, err := findAll(ctx, repo.coll, bson.M{"userId": oid},
		options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}}),
		(*model.UserDeviceModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list devices by user")
	}

	return devices, nil
}

func (repo *deviceRepository) ListActiveByUsers(ctx context.Context, userIDs []string) ([]*entity.UserDevice, error) {
	if len(userIDs) == 0 {
		return []*entity.UserDevice{}, nil
	}

	query, err := inIDs("userId", userIDs)
	if err != nil {
		return nil, err
	}
	query["isActive"] = true

	devices, err := findAll(ctx, repo.coll, query, options.Find(), (*model.UserDeviceModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list active devices")
	}

	return devices, nil
}

func (repo *deviceRepository) UpdateToken(ctx context.Context, id, fcmToken string) error {
	return repo.update(ctx, id, bson.M{"fcmToken": fcmToken, "isActive": true}, "failed to update FCM token")
}

func (repo *deviceRepository) Deactivate(ctx context.Context, id string) error {
	return repo.update(ctx, id, bson.M{"isActive": false}, "failed to deactivate device")
}

func (repo *deviceRepository) update(ctx context.Context, id string, set bson.M, details string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	set["updatedAt"] = time.Now().UTC()
	res, err := repo.coll.UpdateOne(ctx, bson.M{"_id": oid}, bson.M{"$set": set})
	if err != nil {
		return storeError(err, details)
	}
	if res.MatchedCount == 0 {
		return repository.ErrDeviceNotFound
	}

	return nil
}

// DeactivateByTokens turns off every active device holding one of tokens.
func (repo *deviceRepository) DeactivateByTokens(ctx context.Context, tokens []string) (int64, error) {
	if len(tokens) == 0 {
		return 0, nil
	}

	res, err := repo.coll.UpdateMany(ctx,
		bson.M{"fcmToken": bson.M{"$in": tokens}, "isActive": true},
		bson.M{"$set": bson.M{"isActive": false, "updatedAt": time.Now().UTC()}})
	if err != nil {
		return 0, storeError(err, "failed to deactivate devices")
	}

	return res.ModifiedCount, nil
}
