package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// BadgeModel is a document of the badges collection.
type BadgeModel struct {
	ID             bson.ObjectID  `bson:"_id,omitempty"`
	Name           string         `bson:"name"`
	Description    string         `bson:"description,omitempty"`
	Type           string         `bson:"type"`
	EventID        *bson.ObjectID `bson:"eventId,omitempty"`
	OrganizationID *bson.ObjectID `bson:"organizationId,omitempty"`
	CreatedBy      bson.ObjectID  `bson:"createdBy"`
	CreatedAt      time.Time      `bson:"createdAt"`
}

// BadgeClaimModel is a document of the badge_claims collection.
// (badgeId, userId) is unique.
type BadgeClaimModel struct {
	ID        bson.ObjectID  `bson:"_id,omitempty"`
	BadgeID   bson.ObjectID  `bson:"badgeId"`
	UserID    bson.ObjectID  `bson:"userId"`
	EventID   *bson.ObjectID `bson:"eventId,omitempty"`
	ClaimedAt time.Time      `bson:"claimedAt"`
}

// NewBadgeModel converts a badge into its document.
func NewBadgeModel(badge *entity.Badge) (*BadgeModel, error) {
	eventID, err := ParseOptionalID(badge.EventID)
	if err != nil {
		return nil, err
	}
	organizationID, err := ParseOptionalID(badge.OrganizationID)
	if err != nil {
		return nil, err
	}
	createdBy, err := ParseID(badge.CreatedBy)
	if err != nil {
		return nil, err
	}

	return &BadgeModel{
		Name:           badge.Name,
		Description:    badge.Description,
		Type:           string(badge.Type),
		EventID:        eventID,
		OrganizationID: organizationID,
		CreatedBy:      createdBy,
		CreatedAt:      badge.CreatedAt,
	}, nil
}

// ToEntity converts the document back into a badge.
func (m *BadgeModel) ToEntity() *entity.Badge {
	return &entity.Badge{
		ID:             m.ID.Hex(),
		Name:           m.Name,
		Description:    m.Description,
		Type:           entity.BadgeType(m.Type),
		EventID:        Hex(m.EventID),
		OrganizationID: Hex(m.OrganizationID),
		CreatedBy:      m.CreatedBy.Hex(),
		CreatedAt:      m.CreatedAt,
	}
}

// NewBadgeClaimModel converts a claim into its document.
func NewBadgeClaimModel(claim *entity.BadgeClaim) (*BadgeClaimModel, error) {
	badgeID, err := ParseID(claim.BadgeID)
	if err != nil {
		return nil, err
	}
	userID, err := ParseID(claim.UserID)
	if err != nil {
		return nil, err
	}
	eventID, err := ParseOptionalID(claim.EventID)
	if err != nil {
		return nil, err
	}

	return &BadgeClaimModel{
		BadgeID:   badgeID,
		UserID:    userID,
		EventID:   eventID,
		ClaimedAt: claim.ClaimedAt,
	}, nil
}

// ToEntity converts the document back into a claim.
func (m *BadgeClaimModel) ToEntity() *entity.BadgeClaim {
	return &entity.BadgeClaim{
		ID:        m.ID.Hex(),
		BadgeID:   m.BadgeID.Hex(),
		UserID:    m.UserID.Hex(),
		EventID:   Hex(m.EventID),
		ClaimedAt: m.ClaimedAt,
	}
}
