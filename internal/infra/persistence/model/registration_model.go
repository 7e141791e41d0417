package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// RegistrationModel is a document of the registrations collection.
// (eventId, userId) is unique.
type RegistrationModel struct {
	ID          bson.ObjectID     `bson:"_id,omitempty"`
	EventID     bson.ObjectID     `bson:"eventId"`
	UserID      bson.ObjectID     `bson:"userId"`
	CheckedIn   bool              `bson:"checkedIn"`
	CheckedInAt *time.Time        `bson:"checkedInAt,omitempty"`
	Responses   map[string]string `bson:"responses,omitempty"`
	CreatedAt   time.Time         `bson:"createdAt"`
	UpdatedAt   time.Time         `bson:"updatedAt"`
}

// NewRegistrationModel converts a registration into its document.
func NewRegistrationModel(registration *entity.Registration) (*RegistrationModel, error) {
	eventID, err := ParseID(registration.EventID)
	if err != nil {
		return nil, err
	}
	userID, err := ParseID(registration.UserID)
	if err != nil {
		return nil, err
	}

	return &RegistrationModel{
		EventID:     eventID,
		UserID:      userID,
		CheckedIn:   registration.CheckedIn,
		CheckedInAt: registration.CheckedInAt,
		Responses:   registration.Responses,
		CreatedAt:   registration.CreatedAt,
		UpdatedAt:   registration.UpdatedAt,
	}, nil
}

// ToEntity converts the document back into a registration.
func (m *RegistrationModel) ToEntity() *entity.Registration {
	return &entity.Registration{
		ID:          m.ID.Hex(),
		EventID:     m.EventID.Hex(),
		UserID:      m.UserID.Hex(),
		CheckedIn:   m.CheckedIn,
		CheckedInAt: m.CheckedInAt,
		Responses:   m.Responses,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
