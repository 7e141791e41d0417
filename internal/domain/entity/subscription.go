package entity

import "time"

// Subscription means a user follows an organization and hears about
// the events it publishes.
type Subscription struct {
	ID             string    `json:"id"`
	UserID         string    `json:"user_id"`
	OrganizationID string    `json:"organization_id"`
	CreatedAt      time.Time `json:"created_at"`
}
