package repository

import (
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/errors"
)

const (
	// DefaultLimit is used when a filter does not set a page size.
	DefaultLimit = 50
	// MaxLimit caps the page size of every list query.
	MaxLimit = 200

	DefaultRadiusKm = 10.0
	MaxRadiusKm     = 500.0
)

// ErrInvalidFilter is returned by Validate when a filter cannot be turned into a query.
var ErrInvalidFilter = errors.New("invalid filter")

// Page is the pagination window shared by all filters.
type Page struct {
	Limit  int `schema:"limit"`
	Offset int `schema:"offset"`
}

// Validate normalizes the window and rejects negative values.
func (p *Page) Validate() error {
	if p.Limit < 0 || p.Offset < 0 {
		return errors.Wrap(ErrInvalidFilter, "limit and offset must not be negative")
	}
	if p.Limit == 0 {
		p.Limit = DefaultLimit
	}
	if p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}

	return nil
}

// UserFilter selects users.
type UserFilter struct {
	IDs []string `schema:"id"`
	Page
}

func (f *UserFilter) Validate() error {
	return f.Page.Validate()
}

// EventFilter selects events. Lat, Lng and RadiusKm describe an optional
// proximity search.
type EventFilter struct {
	OrganizationID string     `schema:"organizationId"`
	PartnerID      string     `schema:"partnerId"`
	OrganizerID    string     `schema:"organizerId"`
	From           *time.Time `schema:"from"`
	To             *time.Time `schema:"to"`
	Lat            *float64   `schema:"lat"`
	Lng            *float64   `schema:"lng"`
	RadiusKm       float64    `schema:"radiusKm"`
	Page
}

// Near reports whether the filter asks for a proximity search.
func (f *EventFilter) Near() bool {
	return f.Lat != nil && f.Lng != nil
}

func (f *EventFilter) Validate() error {
	if f.From != nil && f.To != nil && f.To.Before(*f.From) {
		return errors.Wrap(ErrInvalidFilter, "to must not be before from")
	}
	if (f.Lat == nil) != (f.Lng == nil) {
		return errors.Wrap(ErrInvalidFilter, "lat and lng must be given together")
	}
	if f.Near() {
		if *f.Lat < -90 || *f.Lat > 90 || *f.Lng < -180 || *f.Lng > 180 {
			return errors.Wrap(ErrInvalidFilter, "coordinates out of range")
		}
		if f.RadiusKm < 0 || f.RadiusKm > MaxRadiusKm {
			return errors.Wrapf(ErrInvalidFilter, "radiusKm must be between 0 and %v", MaxRadiusKm)
		}
		if f.RadiusKm == 0 {
			f.RadiusKm = DefaultRadiusKm
		}
	}

	return f.Page.Validate()
}

// OrganizationFilter selects organizations, optionally those MemberID belongs to.
type OrganizationFilter struct {
	MemberID string `schema:"memberId"`
	Page
}

func (f *OrganizationFilter) Validate() error {
	return f.Page.Validate()
}

// RegistrationFilter selects registrations.
type RegistrationFilter struct {
	EventID   string `schema:"-"`
	UserID    string `schema:"userId"`
	CheckedIn *bool  `schema:"checkedIn"`
	Page
}

func (f *RegistrationFilter) Validate() error {
	return f.Page.Validate()
}

// ConnectionFilter selects the connections UserID takes part in.
type ConnectionFilter struct {
	UserID string                  `schema:"-"`
	Status entity.ConnectionStatus `schema:"status"`
	Page
}

func (f *ConnectionFilter) Validate() error {
	if f.UserID == "" {
		return errors.Wrap(ErrInvalidFilter, "user is required")
	}
	if f.Status != "" && !f.Status.IsValid() {
		return errors.Wrapf(ErrInvalidFilter, "unknown status %q", f.Status)
	}

	return f.Page.Validate()
}

// SubscriptionFilter selects subscriptions by user or organization.
type SubscriptionFilter struct {
	UserID         string `schema:"-"`
	OrganizationID string `schema:"-"`
	Page
}

func (f *SubscriptionFilter) Validate() error {
	if f.UserID == "" && f.OrganizationID == "" {
		return errors.Wrap(ErrInvalidFilter, "user or organization is required")
	}

	return f.Page.Validate()
}

// NotificationFilter selects the notifications of a recipient.
type NotificationFilter struct {
	RecipientID string `schema:"-"`
	UnreadOnly  bool   `schema:"unread"`
	Page
}

func (f *NotificationFilter) Validate() error {
	if f.RecipientID == "" {
		return errors.Wrap(ErrInvalidFilter, "recipient is required")
	}

	return f.Page.Validate()
}

// BadgeFilter selects badges.
type BadgeFilter struct {
	EventID        string           `schema:"eventId"`
	OrganizationID string           `schema:"organizationId"`
	Type           entity.BadgeType `schema:"type"`
	Page
}

func (f *BadgeFilter) Validate() error {
	if f.Type != "" && !f.Type.IsValid() {
		return errors.Wrapf(ErrInvalidFilter, "unknown badge type %q", f.Type)
	}

	return f.Page.Validate()
}

// BadgeClaimFilter selects badge claims.
type BadgeClaimFilter struct {
	UserID  string `schema:"-"`
	BadgeID string `schema:"badgeId"`
	Page
}

func (f *BadgeClaimFilter) Validate() error {
	return f.Page.Validate()
}

// FeedbackFilter selects feedback entries of an event.
type FeedbackFilter struct {
	EventID string `schema:"-"`
	Page
}

func (f *FeedbackFilter) Validate() error {
	if f.EventID == "" {
		return errors.Wrap(ErrInvalidFilter, "event is required")
	}

	return f.Page.Validate()
}
