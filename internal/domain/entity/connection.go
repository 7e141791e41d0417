package entity

import (
	"strings"
	"time"
)

// ConnectionStatus is the state of a connection between two users.
type ConnectionStatus string

const (
	ConnectionStatusPending  ConnectionStatus = "PENDING"
	ConnectionStatusAccepted ConnectionStatus = "ACCEPTED"
	ConnectionStatusRejected ConnectionStatus = "REJECTED"
	ConnectionStatusBlocked  ConnectionStatus = "BLOCKED"
)

// IsValid checks if the ConnectionStatus is a valid value.
func (s ConnectionStatus) IsValid() bool {
	switch s {
	case ConnectionStatusPending, ConnectionStatusAccepted, ConnectionStatusRejected, ConnectionStatusBlocked:
		return true
	default:
		return false
	}
}

// Connection is a friendship request between two users. Only one
// connection exists per unordered pair, whoever sent it.
type Connection struct {
	ID          string           `json:"id"`
	RequesterID string           `json:"requester_id"`
	RecipientID string           `json:"recipient_id"`
	Status      ConnectionStatus `json:"status"`
	CreatedAt   time.Time        `json:"created_at"`
	UpdatedAt   time.Time        `json:"updated_at"`
}

// Involves reports whether userID is the requester or the recipient.
func (c *Connection) Involves(userID string) bool {
	return strings.EqualFold(c.RequesterID, userID) || strings.EqualFold(c.RecipientID, userID)
}

// Other returns the counter-party of userID.
func (c *Connection) Other(userID string) string {
	if strings.EqualFold(c.RequesterID, userID) {
		return c.RecipientID
	}

	return c.RequesterID
}

