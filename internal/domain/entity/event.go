package entity

import (
	"time"

	"github.com/paulmach/orb"
)

// Event is something users can discover and register for.
type Event struct {
	ID                     string    `json:"id"`
	Slug                   string    `json:"slug,omitempty"` // Human readable secondary key.
	Title                  string    `json:"title"`          // Required.
	Description            string    `json:"description,omitempty"`
	OrganizerID            string    `json:"organizer_id"`              // User who created the event.
	OrganizationID         string    `json:"organization_id,omitempty"` // Publishing organization; its subscribers are notified.
	PartnerOrganizationIDs []string  `json:"partner_organization_ids"`
	StartTime              time.Time `json:"start_time"`
	EndTime                time.Time `json:"end_time"`
	Location               *Location `json:"location,omitempty"`
	Capacity               int       `json:"capacity"` // 0 means unlimited.
	CreatedAt              time.Time `json:"created_at"`
	UpdatedAt              time.Time `json:"updated_at"`

	// DistanceKm is only populated by proximity searches.
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// Location is where an event takes place.
type Location struct {
	Name    string     `json:"name"`
	Address string     `json:"address,omitempty"`
	Point   *orb.Point `json:"point,omitempty"` // [longitude, latitude]
}

// HasPartner reports whether orgID co-hosts the event.
func (e *Event) HasPartner(orgID string) bool {
	for _, id := range e.PartnerOrganizationIDs {
		if id == orgID {
			return true
		}
	}

	return false
}

// EventPatch carries editable event fields. Nil means unchanged.
type EventPatch struct {
	Title                  *string
	Description            *string
	StartTime              *time.Time
	EndTime                *time.Time
	Location               *Location
	Capacity               *int
	PartnerOrganizationIDs *[]string
}

func (p EventPatch) IsEmpty() bool {
	return p.Title == nil && p.Description == nil && p.StartTime == nil && p.EndTime == nil &&
		p.Location == nil && p.Capacity == nil && p.PartnerOrganizationIDs == nil
}
