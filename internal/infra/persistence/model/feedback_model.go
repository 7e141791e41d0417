package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// FeedbackModel is a document of the feedback collection.
// (eventId, userId) is unique.
type FeedbackModel struct {
	ID        bson.ObjectID `bson:"_id,omitempty"`
	EventID   bson.ObjectID `bson:"eventId"`
	UserID    bson.ObjectID `bson:"userId"`
	Rating    int           `bson:"rating"`
	Comment   string        `bson:"comment,omitempty"`
	Anonymous bool          `bson:"anonymous"`
	CreatedAt time.Time     `bson:"createdAt"`
}

// NewFeedbackModel converts feedback into its document.
func NewFeedbackModel(feedback *entity.Feedback) (*FeedbackModel, error) {
	eventID, err := ParseID(feedback.EventID)
	if err != nil {
		return nil, err
	}
	userID, err := ParseID(feedback.UserID)
	if err != nil {
		return nil, err
	}

	return &FeedbackModel{
		EventID:   eventID,
		UserID:    userID,
		Rating:    feedback.Rating,
		Comment:   feedback.Comment,
		Anonymous: feedback.Anonymous,
		CreatedAt: feedback.CreatedAt,
	}, nil
}

// ToEntity converts the document back into feedback.
func (m *FeedbackModel) ToEntity() *entity.Feedback {
	return &entity.Feedback{
		ID:        m.ID.Hex(),
		EventID:   m.EventID.Hex(),
		UserID:    m.UserID.Hex(),
		Rating:    m.Rating,
		Comment:   m.Comment,
		Anonymous: m.Anonymous,
		CreatedAt: m.CreatedAt,
	}
}
