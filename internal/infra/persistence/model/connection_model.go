package model

import (
	"bytes"
	"time"

	"eventhub/internal/domain/entity"

	"go.mongodb.org/mongo-driver/v2/bson"
)

// ConnectionModel is a document of the connections collection.
// (pairLow, pairHigh) is unique, so each unordered pair has one document.
type ConnectionModel struct {
	ID          bson.ObjectID `bson:"_id,omitempty"`
	RequesterID bson.ObjectID `bson:"requesterId"`
	RecipientID bson.ObjectID `bson:"recipientId"`
	Status      string        `bson:"status"`
	PairLow     bson.ObjectID `bson:"pairLow"`
	PairHigh    bson.ObjectID `bson:"pairHigh"`
	CreatedAt   time.Time     `bson:"createdAt"`
	UpdatedAt   time.Time     `bson:"updatedAt"`
}

// NewConnectionModel converts a connection into its document.
func NewConnectionModel(connection *entity.Connection) (*ConnectionModel, error) {
	requesterID, err := ParseID(connection.RequesterID)
	if err != nil {
		return nil, err
	}
	recipientID, err := ParseID(connection.RecipientID)
	if err != nil {
		return nil, err
	}

	low, high := requesterID, recipientID
	if bytes.Compare(requesterID[:], recipientID[:]) > 0 {
		low, high = recipientID, requesterID
	}

	return &ConnectionModel{
		RequesterID: requesterID,
		RecipientID: recipientID,
		Status:      string(connection.Status),
		PairLow:     low,
		PairHigh:    high,
		CreatedAt:   connection.CreatedAt,
		UpdatedAt:   connection.UpdatedAt,
	}, nil
}

// ToEntity converts the document back into a connection.
func (m *ConnectionModel) ToEntity() *entity.Connection {
	return &entity.Connection{
		ID:          m.ID.Hex(),
		RequesterID: m.RequesterID.Hex(),
		RecipientID: m.RecipientID.Hex(),
		Status:      entity.ConnectionStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
	}
}
