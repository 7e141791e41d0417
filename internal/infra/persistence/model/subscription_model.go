package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// SubscriptionModel is a document of the subscriptions collection.
// (userId, organizationId) is unique.
type SubscriptionModel struct {
	ID             bson.ObjectID `bson:"_id,omitempty"`
	UserID         bson.ObjectID `bson:"userId"`
	OrganizationID bson.ObjectID `bson:"organizationId"`
	CreatedAt      time.Time     `bson:"createdAt"`
}

// ToEntity converts the document back into a subscription.
func (m *SubscriptionModel) ToEntity() *entity.Subscription {
	return &entity.Subscription{
		ID:             m.ID.Hex(),
		UserID:         m.UserID.Hex(),
		OrganizationID: m.OrganizationID.Hex(),
		CreatedAt:      m.CreatedAt,
	}
}
