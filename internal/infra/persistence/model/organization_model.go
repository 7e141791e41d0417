package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// OrganizationModel is a document of the organizations collection.
type OrganizationModel struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	Slug        string        `bson:"slug,omitempty"`
	Name        string        `bson:"name"`
	Description string        `bson:"description,omitempty"`
	OwnerID     bson.ObjectID `bson:"ownerId"`
	Members     []MemberModel `bson:"members"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

// MemberModel is an embedded organization membership.
type MemberModel struct {
	UserID bson.ObjectID `bson:"userId"`
	Role   string        `bson:"role"`
}

// NewMemberModels converts memberships into embedded documents.
func NewMemberModels(members []entity.OrganizationMember) ([]MemberModel, error) {
	models := make([]MemberModel, 0, len(members))
	for _, member := range members {
		userID, err := ParseID(member.UserID)
		if err != nil {
			return nil, err
		}
		models = append(models, MemberModel{UserID: userID, Role: string(member.Role)})
	}

	return models, nil
}

// NewOrganizationModel converts an organization into its document.
func NewOrganizationModel(org *entity.Organization) (*OrganizationModel, error) {
	ownerID, err := ParseID(org.OwnerID)
	if err != nil {
		return nil, err
	}
	members, err := NewMemberModels(org.Members)
	if err != nil {
		return nil, err
	}

	return &OrganizationModel{
		Slug:        org.Slug,
		Name:        org.Name,
		Description: org.Description,
		OwnerID:     ownerID,
		Members:     members,
		CreatedAt:   org.CreatedAt,
		UpdatedAt:   org.UpdatedAt,
	}, nil
}

// ToEntity converts the document back into an organization.
func (m *OrganizationModel) ToEntity() *entity.Organization {
	members := make([]entity.OrganizationMember, 0, len(m.Members))
	for _, member := range m.Members {
		members = append(members, entity.OrganizationMember{
			UserID: member.UserID.Hex(),
			Role:   entity.MemberRole(member.Role),
		})
	}

	return &entity.Organization{
		ID:          m.ID.Hex(),
		Slug:        m.Slug,
		Name:        m.Name,
		Description: m.Description,
		OwnerID:     m.OwnerID.Hex(),
		Members:     members,
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
