package entity

import "time"

// BadgeType classifies a badge and decides its claim precondition.
type BadgeType string

const (
	BadgeTypeParticipant BadgeType = "PARTICIPANT"
	BadgeTypeSpeaker     BadgeType = "SPEAKER"
	BadgeTypeSponsor     BadgeType = "SPONSOR"
	BadgeTypeCustom      BadgeType = "CUSTOM"
)

// IsValid checks if the BadgeType is a valid value.
func (t BadgeType) IsValid() bool {
	switch t {
	case BadgeTypeParticipant, BadgeTypeSpeaker, BadgeTypeSponsor, BadgeTypeCustom:
		return true
	default:
		return false
	}
}

// Badge is an award users claim, usually for taking part in an event.
type Badge struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Description    string    `json:"description,omitempty"`
	Type           BadgeType `json:"type"`
	EventID        string    `json:"event_id,omitempty"` // Required for PARTICIPANT badges.
	OrganizationID string    `json:"organization_id,omitempty"`
	CreatedBy      string    `json:"created_by"`
	CreatedAt      time.Time `json:"created_at"`
}

// BadgeClaim records that a user holds a badge. At most one per (BadgeID, UserID).
type BadgeClaim struct {
	ID        string    `json:"id"`
	BadgeID   string    `json:"badge_id"`
	UserID    string    `json:"user_id"`
	EventID   string    `json:"event_id,omitempty"`
	ClaimedAt time.Time `json:"claimed_at"`
}
