package mongo

import (
	"context"
	"sort"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"
	"eventhub/internal/infra/persistence/model"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// earthRadiusKm converts kilometers into the radians $centerSphere expects.
const earthRadiusKm = 6378.1

// eventRepository implements the repository.EventRepository interface.
type eventRepository struct {
	coll *mongo.Collection
}

// NewEventRepository is the constructor for eventRepository.
func NewEventRepository(db *mongo.Database) repository.EventRepository {
	return &eventRepository{coll: db.Collection(model.EventsCollection)}
}

// Create persists a new event.
func (repo *eventRepository) Create(ctx context.Context, event *entity.Event) error {
	now := time.Now().UTC()
	event.CreatedAt, event.UpdatedAt = now, now
	if event.PartnerOrganizationIDs == nil {
		event.PartnerOrganizationIDs = []string{}
	}

	eventM, err := model.NewEventModel(event)
	if err != nil {
		return err
	}

	res, err := repo.coll.InsertOne(ctx, eventM)
	if err != nil {
		if isDuplicateKey(err) {
			return repository.ErrDuplicateSlug
		}

		return storeError(err, "failed to create event")
	}
	event.ID = res.InsertedID.(bson.ObjectID).Hex()

	return nil
}

// FindByID retrieves an event by store id or slug.
func (repo *eventRepository) FindByID(ctx context.Context, id string) (*entity.Event, error) {
	var eventM model.EventModel
	if err := findByIDOr(ctx, repo.coll, id, "slug", &eventM); err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEventNotFound
		}

		return nil, storeError(err, "failed to find event by ID")
	}

	return eventM.ToEntity(), nil
}

// List returns the events matching filter ordered by start time, or by
// distance for proximity searches.
func (repo *eventRepository) List(ctx context.Context, filter repository.EventFilter) ([]*entity.Event, error) {
	if err := filter.Validate(); err != nil {
		return nil, err
	}

	query, err := eventQuery(filter)
	if err != nil {
		return nil, err
	}

	events, err := findAll(ctx, repo.coll, query,
		pageOptions(filter.Page, bson.D{{Key: "startTime", Value: 1}}),
		(*model.EventModel).ToEntity)
	if err != nil {
		return nil, storeError(err, "failed to list events")
	}

	if filter.Near() {
		annotateDistance(events, orb.Point{*filter.Lng, *filter.Lat})
	}

	return events, nil
}

// eventQuery builds the find filter of a validated EventFilter.
func eventQuery(filter repository.EventFilter) (bson.M, error) {
	query := bson.M{}

	if filter.OrganizationID != "" {
		oid, err := model.ParseID(filter.OrganizationID)
		if err != nil {
			return nil, err
		}
		query["organizationId"] = oid
	}
	if filter.PartnerID != "" {
		oid, err := model.ParseID(filter.PartnerID)
		if err != nil {
			return nil, err
		}
		query["partnerOrganizationIds"] = oid
	}
	if filter.OrganizerID != "" {
		oid, err := model.ParseID(filter.OrganizerID)
		if err != nil {
			return nil, err
		}
		query["organizerId"] = oid
	}

	window := bson.M{}
	if filter.From != nil {
		window["$gte"] = filter.From.UTC()
	}
	if filter.To != nil {
		window["$lte"] = filter.To.UTC()
	}
	if len(window) > 0 {
		query["startTime"] = window
	}

	if filter.Near() {
		query["location.point"] = bson.M{
			"$geoWithin": bson.M{
				"$centerSphere": bson.A{
					bson.A{*filter.Lng, *filter.Lat},
					filter.RadiusKm / earthRadiusKm,
				},
			},
		}
	}

	return query, nil
}

// annotateDistance fills DistanceKm and orders events nearest first.
func annotateDistance(events []*entity.Event, origin orb.Point) {
	for _, event := range events {
		if event.Location == nil || event.Location.Point == nil {
			continue
		}
		km := geo.Distance(origin, *event.Location.Point) / 1000
		event.DistanceKm = &km
	}

	sort.SliceStable(events, func(i, j int) bool {
		di, dj := events[i].DistanceKm, events[j].DistanceKm
		if di == nil || dj == nil {
			return di != nil
		}

		return *di < *dj
	})
}

// Update applies patch to an event.
func (repo *eventRepository) Update(ctx context.Context, id string, patch entity.EventPatch) (*entity.Event, error) {
	oid, err := model.ParseID(id)
	if err != nil {
		return nil, err
	}

	set := bson.M{"updatedAt": time.Now().UTC()}
	if patch.Title != nil {
		set["title"] = *patch.Title
	}
	if patch.Description != nil {
		set["description"] = *patch.Description
	}
	if patch.StartTime != nil {
		set["startTime"] = patch.StartTime.UTC()
	}
	if patch.EndTime != nil {
		set["endTime"] = patch.EndTime.UTC()
	}
	if patch.Location != nil {
		set["location"] = model.NewLocationModel(patch.Location)
	}
	if patch.Capacity != nil {
		set["capacity"] = *patch.Capacity
	}
	if patch.PartnerOrganizationIDs != nil {
		partners, err := model.ParseIDs(*patch.PartnerOrganizationIDs)
		if err != nil {
			return nil, err
		}
		set["partnerOrganizationIds"] = partners
	}

	var eventM model.EventModel
	err = repo.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set},
		options.FindOneAndUpdate().SetReturnDocument(options.After)).Decode(&eventM)
	if err != nil {
		if isNotFound(err) {
			return nil, repository.ErrEventNotFound
		}

		return nil, storeError(err, "failed to update event")
	}

	return eventM.ToEntity(), nil
}

// Delete removes an event.
func (repo *eventRepository) Delete(ctx context.Context, id string) error {
	oid, err := model.ParseID(id)
	if err != nil {
		return err
	}

	res, err := repo.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return storeError(err, "failed to delete event")
	}
	if res.DeletedCount == 0 {
		return repository.ErrEventNotFound
	}

	return nil
}
