package model

import (
	"time"

	"eventhub/internal/domain/entity"

	"github.com/paulmach/orb"
	"go.mongodb.org/mongo-driver/v2/bson"
)

// EventModel is a document of the events collection.
type EventModel struct {
	ID                     bson.ObjectID   `bson:"_id,omitempty"`
	Slug                   string          `bson:"slug,omitempty"`
	Title                  string          `bson:"title"`
	Description            string          `bson:"description,omitempty"`
	OrganizerID            bson.ObjectID   `bson:"organizerId"`
	OrganizationID         *bson.ObjectID  `bson:"organizationId,omitempty"`
	PartnerOrganizationIDs []bson.ObjectID `bson:"partnerOrganizationIds"`
	StartTime              time.Time       `bson:"startTime"`
	EndTime                time.Time       `bson:"endTime"`
	Location               *LocationModel  `bson:"location,omitempty"`
	Capacity               int             `bson:"capacity"`
	CreatedAt              time.Time       `bson:"createdAt"`
	UpdatedAt              time.Time       `bson:"updatedAt"`
}

// LocationModel is the embedded location of an event.
type LocationModel struct {
	Name    string    `bson:"name"`
	Address string    `bson:"address,omitempty"`
	Point   *GeoPoint `bson:"point,omitempty"`
}

// GeoPoint is a GeoJSON point, the shape 2dsphere indexes expect.
type GeoPoint struct {
	Type        string    `bson:"type"`
	Coordinates []float64 `bson:"coordinates"` // [lng, lat]
}

// NewGeoPoint converts an orb point into GeoJSON.
func NewGeoPoint(p orb.Point) *GeoPoint {
	return &GeoPoint{Type: "Point", Coordinates: []float64{p.Lon(), p.Lat()}}
}

// Point converts the GeoJSON point back into an orb point.
func (g *GeoPoint) Point() *orb.Point {
	if g == nil || len(g.Coordinates) != 2 {
		return nil
	}
	p := orb.Point{g.Coordinates[0], g.Coordinates[1]}

	return &p
}

// NewLocationModel converts a location into its embedded document.
func NewLocationModel(loc *entity.Location) *LocationModel {
	if loc == nil {
		return nil
	}
	m := &LocationModel{Name: loc.Name, Address: loc.Address}
	if loc.Point != nil {
		m.Point = NewGeoPoint(*loc.Point)
	}

	return m
}

func (m *LocationModel) toEntity() *entity.Location {
	if m == nil {
		return nil
	}

	return &entity.Location{Name: m.Name, Address: m.Address, Point: m.Point.Point()}
}

// NewEventModel converts an event into its document.
func NewEventModel(event *entity.Event) (*EventModel, error) {
	organizerID, err := ParseID(event.OrganizerID)
	if err != nil {
		return nil, err
	}
	organizationID, err := ParseOptionalID(event.OrganizationID)
	if err != nil {
		return nil, err
	}
	partners, err := ParseIDs(event.PartnerOrganizationIDs)
	if err != nil {
		return nil, err
	}

	return &EventModel{
		Slug:                   event.Slug,
		Title:                  event.Title,
		Description:            event.Description,
		OrganizerID:            organizerID,
		OrganizationID:         organizationID,
		PartnerOrganizationIDs: partners,
		StartTime:              event.StartTime,
		EndTime:                event.EndTime,
		Location:               NewLocationModel(event.Location),
		Capacity:               event.Capacity,
		CreatedAt:              event.CreatedAt,
		UpdatedAt:              event.UpdatedAt,
	}, nil
}

// ToEntity converts the document back into an event.
func (m *EventModel) ToEntity() *entity.Event {
	return &entity.Event{
		ID:                     m.ID.Hex(),
		Slug:                   m.Slug,
		Title:                  m.Title,
		Description:            m.Description,
		OrganizerID:            m.OrganizerID.Hex(),
		OrganizationID:         Hex(m.OrganizationID),
		PartnerOrganizationIDs: Hexes(m.PartnerOrganizationIDs),
		StartTime:              m.StartTime,
		EndTime:                m.EndTime,
		Location:               m.Location.toEntity(),
		Capacity:               m.Capacity,
		CreatedAt:              m.CreatedAt,
		UpdatedAt:              m.UpdatedAt,
	}
}
