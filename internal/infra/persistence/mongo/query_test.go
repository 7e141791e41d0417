package mongo

import (
	"strings"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	domainerrors "eventhub/internal/domain/errors"
	"eventhub/internal/domain/repository"
	"eventhub/internal/errors"

	"github.com/paulmach/orb"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
)

func TestEventQuery_Filters(t *testing.T) {
	orgID := bson.NewObjectID()
	from := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	to := from.Add(48 * time.Hour)

	query, err := eventQuery(repository.EventFilter{
		OrganizationID: orgID.Hex(),
		From:           &from,
		To:             &to,
	})

	require.NoError(t, err)
	assert.Equal(t, orgID, query["organizationId"])
	assert.Equal(t, bson.M{"$gte": from, "$lte": to}, query["startTime"])
	assert.NotContains(t, query, "location.point")
}

func TestEventQuery_Near(t *testing.T) {
	lat, lng := 25.03, 121.56
	filter := repository.EventFilter{Lat: &lat, Lng: &lng}
	require.NoError(t, filter.Validate())

	query, err := eventQuery(filter)

	require.NoError(t, err)
	geo := query["location.point"].(bson.M)["$geoWithin"].(bson.M)["$centerSphere"].(bson.A)
	assert.Equal(t, bson.A{lng, lat}, geo[0])
	assert.InDelta(t, repository.DefaultRadiusKm/earthRadiusKm, geo[1], 1e-9)
}

func TestEventQuery_InvalidReference(t *testing.T) {
	_, err := eventQuery(repository.EventFilter{PartnerID: "not-an-id"})

	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestAnnotateDistance_SortsNearestFirst(t *testing.T) {
	near := orb.Point{121.57, 25.04}
	far := orb.Point{121.90, 25.20}
	events := []*entity.Event{
		{ID: "far", Location: &entity.Location{Point: &far}},
		{ID: "nowhere"},
		{ID: "near", Location: &entity.Location{Point: &near}},
	}

	annotateDistance(events, orb.Point{121.56, 25.03})

	require.Len(t, events, 3)
	assert.Equal(t, "near", events[0].ID)
	assert.Equal(t, "far", events[1].ID)
	assert.Equal(t, "nowhere", events[2].ID)
	require.NotNil(t, events[0].DistanceKm)
	assert.Less(t, *events[0].DistanceKm, 2.0)
	assert.Nil(t, events[2].DistanceKm)
}

func TestSkipDuplicates(t *testing.T) {
	t.Run("nil error", func(t *testing.T) {
		failed, err := skipDuplicates(nil)
		require.NoError(t, err)
		assert.Empty(t, failed)
	})

	t.Run("only duplicates", func(t *testing.T) {
		bulkErr := mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 1, Code: duplicateKeyCode}},
			{WriteError: mongo.WriteError{Index: 3, Code: duplicateKeyCode}},
		}}

		failed, err := skipDuplicates(bulkErr)

		require.NoError(t, err)
		assert.Equal(t, map[int]bool{1: true, 3: true}, failed)
	})

	t.Run("other write error", func(t *testing.T) {
		bulkErr := mongo.BulkWriteException{WriteErrors: []mongo.BulkWriteError{
			{WriteError: mongo.WriteError{Index: 0, Code: duplicateKeyCode}},
			{WriteError: mongo.WriteError{Index: 1, Code: 121}},
		}}

		_, err := skipDuplicates(bulkErr)

		assert.Error(t, err)
	})

	t.Run("not a bulk error", func(t *testing.T) {
		_, err := skipDuplicates(errors.New("boom"))

		assert.Error(t, err)
	})
}

func TestStoreError(t *testing.T) {
	t.Run("disconnected client is unavailable", func(t *testing.T) {
		err := storeError(mongo.ErrClientDisconnected, "failed to list events")

		assert.ErrorIs(t, err, domainerrors.ErrStoreUnavailable)
	})

	t.Run("other failures are execute errors", func(t *testing.T) {
		err := storeError(errors.New("boom"), "failed to list events")

		var dbErr *domainerrors.DatabaseExecuteError
		require.ErrorAs(t, err, &dbErr)
		assert.Equal(t, "failed to list events", dbErr.Details())
	})
}

func TestLookupError(t *testing.T) {
	assert.Equal(t, repository.ErrBadgeNotFound,
		lookupError(mongo.ErrNoDocuments, repository.ErrBadgeNotFound, "lookup"))

	invalid := errors.Wrap(repository.ErrInvalidID, "x")
	assert.Equal(t, invalid, lookupError(invalid, repository.ErrBadgeNotFound, "lookup"))
}

func TestDueQuery(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	branches := dueQuery(now)["$or"].(bson.A)

	require.Len(t, branches, 2)
	assert.Equal(t, bson.M{"status": "PENDING", "availableAt": bson.M{"$lte": now}}, branches[0])
	assert.Equal(t, bson.M{"status": "PROCESSING", "lockedUntil": bson.M{"$lte": now}}, branches[1])
}

func TestAcceptedPeersQuery(t *testing.T) {
	userID := bson.NewObjectID()

	query, err := acceptedPeersQuery(strings.ToUpper(userID.Hex()))

	require.NoError(t, err)
	assert.Equal(t, string(entity.ConnectionStatusAccepted), query["status"])
	assert.Equal(t, bson.A{
		bson.M{"requesterId": userID},
		bson.M{"recipientId": userID},
	}, query["$or"])

	_, err = acceptedPeersQuery("not-an-id")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}
