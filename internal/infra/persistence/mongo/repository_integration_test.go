package mongo

import (
	"context"
	"os"
	"sync"
	"testing"
	"time"

	"eventhub/internal/domain/entity"
	"eventhub/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// openTestDatabase connects to EVENTHUB_TEST_MONGO_URI and returns a fresh
// database that is dropped when the test ends.
func openTestDatabase(t *testing.T) *mongo.Database {
	t.Helper()

	uri := os.Getenv("EVENTHUB_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("EVENTHUB_TEST_MONGO_URI not set")
	}

	client, err := mongo.Connect(options.Client().ApplyURI(uri).SetTimeout(10 * time.Second))
	require.NoError(t, err)

	db := client.Database("eventhub_test_" + bson.NewObjectID().Hex())
	require.NoError(t, EnsureIndexes(t.Context(), db))

	t.Cleanup(func() {
		ctx := context.Background()
		_ = db.Drop(ctx)
		_ = client.Disconnect(ctx)
	})

	return db
}

func newID() string {
	return bson.NewObjectID().Hex()
}

func TestRegistrationRepository_Integration(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewRegistrationRepository(db)
	ctx := t.Context()
	eventID, userID := newID(), newID()

	t.Run("concurrent duplicates have one winner", func(t *testing.T) {
		var wg sync.WaitGroup
		errs := make([]error, 5)
		for i := range errs {
			wg.Add(1)
			go func(i int) {
				defer wg.Done()
				errs[i] = repo.Create(ctx, &entity.Registration{EventID: eventID, UserID: userID})
			}(i)
		}
		wg.Wait()

		var ok, dup int
		for _, err := range errs {
			switch {
			case err == nil:
				ok++
			case assert.ErrorIs(t, err, repository.ErrDuplicateRegistration):
				dup++
			}
		}
		assert.Equal(t, 1, ok)
		assert.Equal(t, 4, dup)
	})

	t.Run("check-in is idempotent", func(t *testing.T) {
		first, err := repo.MarkCheckedIn(ctx, eventID, userID, time.Now())
		require.NoError(t, err)
		second, err := repo.MarkCheckedIn(ctx, eventID, userID, time.Now().Add(time.Minute))
		require.NoError(t, err)

		assert.Equal(t, first.ID, second.ID)
		assert.True(t, second.CheckedIn)
		count, err := repo.CountByEvent(ctx, eventID)
		require.NoError(t, err)
		assert.EqualValues(t, 1, count)
	})

	t.Run("check-in without registration", func(t *testing.T) {
		_, err := repo.MarkCheckedIn(ctx, eventID, newID(), time.Now())

		assert.ErrorIs(t, err, repository.ErrRegistrationNotFound)
	})
}

func TestConnectionRepository_Integration(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewConnectionRepository(db)
	ctx := t.Context()
	a, b, c := newID(), newID(), newID()

	ab := &entity.Connection{RequesterID: a, RecipientID: b, Status: entity.ConnectionStatusPending}
	require.NoError(t, repo.Create(ctx, ab))

	err := repo.Create(ctx, &entity.Connection{RequesterID: b, RecipientID: a, Status: entity.ConnectionStatusPending})
	assert.ErrorIs(t, err, repository.ErrDuplicateConnection)

	require.NoError(t, repo.Create(ctx, &entity.Connection{RequesterID: c, RecipientID: a, Status: entity.ConnectionStatusPending}))

	before, err := repo.UpdateStatus(ctx, ab.ID, entity.ConnectionStatusAccepted)
	require.NoError(t, err)
	assert.Equal(t, entity.ConnectionStatusPending, before.Status)

	peers, err := repo.ListAcceptedPeerIDs(ctx, a)
	require.NoError(t, err)
	assert.Equal(t, []string{b}, peers)

	_, err = repo.FindByID(ctx, "nope")
	assert.ErrorIs(t, err, repository.ErrInvalidID)
}

func TestNotificationRepository_Integration_Dedupe(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewNotificationRepository(db)
	ctx := t.Context()
	recipient := newID()

	build := func() []*entity.Notification {
		return []*entity.Notification{
			{RecipientID: recipient, Type: entity.NotificationTypeNewEvent, DedupeKey: entity.NotificationDedupeKey("d1", recipient)},
			{RecipientID: recipient, Type: entity.NotificationTypeNewEvent, DedupeKey: entity.NotificationDedupeKey("d2", recipient)},
		}
	}

	inserted, err := repo.InsertMany(ctx, build())
	require.NoError(t, err)
	assert.Equal(t, 2, inserted)

	inserted, err = repo.InsertMany(ctx, build())
	require.NoError(t, err)
	assert.Zero(t, inserted)

	unread, err := repo.CountUnread(ctx, recipient)
	require.NoError(t, err)
	assert.EqualValues(t, 2, unread)
}

func TestSubscriptionRepository_Integration_Upsert(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewSubscriptionRepository(db)
	ctx := t.Context()
	userID, orgID := newID(), newID()

	first, err := repo.Upsert(ctx, userID, orgID)
	require.NoError(t, err)
	second, err := repo.Upsert(ctx, userID, orgID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	subscribers, err := repo.ListSubscriberIDs(ctx, orgID)
	require.NoError(t, err)
	assert.Equal(t, []string{userID}, subscribers)
}

func TestEventRepository_Integration_SlugFallback(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewEventRepository(db)
	ctx := t.Context()

	event := &entity.Event{Title: "Demo", Slug: "demo", OrganizerID: newID()}
	require.NoError(t, repo.Create(ctx, event))
	require.NoError(t, repo.Create(ctx, &entity.Event{Title: "No slug", OrganizerID: newID()}))
	require.NoError(t, repo.Create(ctx, &entity.Event{Title: "No slug either", OrganizerID: newID()}))

	bySlug, err := repo.FindByID(ctx, "demo")
	require.NoError(t, err)
	assert.Equal(t, event.ID, bySlug.ID)

	byID, err := repo.FindByID(ctx, event.ID)
	require.NoError(t, err)
	assert.Equal(t, "demo", byID.Slug)

	err = repo.Create(ctx, &entity.Event{Title: "Copy", Slug: "demo", OrganizerID: newID()})
	assert.ErrorIs(t, err, repository.ErrDuplicateSlug)
}

func TestOutboxRepository_Integration_Claim(t *testing.T) {
	db := openTestDatabase(t)
	repo := NewOutboxRepository(db)
	ctx := t.Context()
	now := time.Now()

	for range 3 {
		require.NoError(t, repo.Enqueue(ctx, &entity.OutboxEvent{Type: entity.DomainEventEventPublished, ActorID: newID()}))
	}

	claimed, err := repo.Claim(ctx, now.Add(time.Second), time.Minute, 2)
	require.NoError(t, err)
	assert.Len(t, claimed, 2)

	again, err := repo.Claim(ctx, now.Add(time.Second), time.Minute, 10)
	require.NoError(t, err)
	assert.Len(t, again, 1)

	expired, err := repo.Claim(ctx, now.Add(2*time.Minute), time.Minute, 10)
	require.NoError(t, err)
	assert.Len(t, expired, 3)

	require.NoError(t, repo.MarkDispatched(ctx, claimed[0].ID, now))
	assert.ErrorIs(t, repo.MarkDispatched(ctx, newID(), now), repository.ErrOutboxEventNotFound)
}
