package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// UserModel is a document of the users collection.
type UserModel struct {
	ID              bson.ObjectID   `bson:"_id,omitempty"`
	ExternalID      string          `bson:"externalId,omitempty"`
	Email           string          `bson:"email"`
	Name            string          `bson:"name"`
	PasswordHash    string          `bson:"passwordHash,omitempty"`
	Bio             string          `bson:"bio,omitempty"`
	AvatarURL       string          `bson:"avatarUrl,omitempty"`
	OrganizationIDs []bson.ObjectID `bson:"organizationIds"`
	CreatedAt       time.Time       `bson:"createdAt"`
	UpdatedAt       time.Time       `bson:"updatedAt"`
}

// NewUserModel converts a user into its document.
func NewUserModel(user *entity.User) (*UserModel, error) {
	orgIDs, err := ParseIDs(user.OrganizationIDs)
	if err != nil {
		return nil, err
	}

	return &UserModel{
		ExternalID:      user.ExternalID,
		Email:           user.Email,
		Name:            user.Name,
		PasswordHash:    user.PasswordHash,
		Bio:             user.Bio,
		AvatarURL:       user.AvatarURL,
		OrganizationIDs: orgIDs,
		CreatedAt:       user.CreatedAt,
		UpdatedAt:       user.UpdatedAt,
	}, nil
}

// ToEntity converts the document back into a user.
func (m *UserModel) ToEntity() *entity.User {
	return &entity.User{
		ID:              m.ID.Hex(),
		ExternalID:      m.ExternalID,
		Email:           m.Email,
		Name:            m.Name,
		PasswordHash:    m.PasswordHash,
		Bio:             m.Bio,
		AvatarURL:       m.AvatarURL,
		OrganizationIDs: Hexes(m.OrganizationIDs),
		CreatedAt:       m.CreatedAt,
		UpdatedAt:       m.UpdatedAt,
	}
}
