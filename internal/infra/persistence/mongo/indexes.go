package mongo

import (
	"context"

	"eventhub/internal/infra/persistence/model"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// stringSlug restricts slug uniqueness to documents that have one.
var stringSlug = bson.M{"slug": bson.M{"$type": "string"}}

func keys(fields ...string) bson.D {
	d := make(bson.D, 0, len(fields))
	for _, field := range fields {
		d = append(d, bson.E{Key: field, Value: 1})
	}

	return d
}

// indexModels lists the indexes of every collection. Unique indexes carry the
// natural keys, so concurrent duplicates resolve to one winner.
func indexModels() map[string][]mongo.IndexModel {
	return map[string][]mongo.IndexModel{
		model.UsersCollection: {
			{Keys: keys("email"), Options: options.Index().SetUnique(true)},
			{Keys: keys("externalId"), Options: options.Index().SetUnique(true).SetSparse(true)},
			{Keys: keys("organizationIds")},
		},
		model.EventsCollection: {
			{Keys: keys("slug"), Options: options.Index().SetUnique(true).SetPartialFilterExpression(stringSlug)},
			{Keys: bson.D{{Key: "location.point", Value: "2dsphere"}}},
			{Keys: keys("organizationId", "startTime")},
			{Keys: keys("partnerOrganizationIds")},
			{Keys: keys("organizerId")},
			{Keys: keys("startTime")},
		},
		model.OrganizationsCollection: {
			{Keys: keys("slug"), Options: options.Index().SetUnique(true).SetPartialFilterExpression(stringSlug)},
			{Keys: keys("members.userId")},
		},
		model.RegistrationsCollection: {
			{Keys: keys("eventId", "userId"), Options: options.Index().SetUnique(true)},
			{Keys: keys("userId")},
		},
		model.ConnectionsCollection: {
			{Keys: keys("pairLow", "pairHigh"), Options: options.Index().SetUnique(true)},
			{Keys: keys("requesterId", "status")},
			{Keys: keys("recipientId", "status")},
		},
		model.SubscriptionsCollection: {
			{Keys: keys("userId", "organizationId"), Options: options.Index().SetUnique(true)},
			{Keys: keys("organizationId")},
		},
		model.NotificationsCollection: {
			{
				Keys: keys("dedupeKey"),
				Options: options.Index().SetUnique(true).
					SetPartialFilterExpression(bson.M{"dedupeKey": bson.M{"$type": "string"}}),
			},
			{Keys: bson.D{{Key: "recipientId", Value: 1}, {Key: "createdAt", Value: -1}}},
		},
		model.BadgesCollection: {
			{Keys: keys("eventId")},
			{Keys: keys("organizationId")},
		},
		model.BadgeClaimsCollection: {
			{Keys: keys("badgeId", "userId"), Options: options.Index().SetUnique(true)},
			{Keys: keys("userId")},
		},
		model.FeedbackCollection: {
			{Keys: keys("eventId", "userId"), Options: options.Index().SetUnique(true)},
		},
		model.DevicesCollection: {
			{Keys: keys("userId", "deviceId"), Options: options.Index().SetUnique(true)},
			{Keys: keys("fcmToken")},
		},
		model.OutboxCollection: {
			{Keys: keys("status", "availableAt")},
			{Keys: keys("status", "lockedUntil")},
		},
	}
}

// EnsureIndexes creates the indexes of every collection. Existing indexes
// with the same definition are left alone.
func EnsureIndexes(ctx context.Context, db *mongo.Database) error {
	for collection, models := range indexModels() {
		if _, err := db.Collection(collection).Indexes().CreateMany(ctx, models); err != nil {
			return storeError(err, "failed to create indexes on "+collection)
		}
	}

	return nil
}
