package sqlite

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wanderlanka/planner-cli/internal/ports"
	"github.com/wanderlanka/planner-cli/internal/testutil"
)

func newTestArchive(t *testing.T) *TripArchive {
	t.Helper()
	archive, err := NewTripArchive(filepath.Join(t.TempDir(), "trips.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := archive.Close(); err != nil {
			t.Logf("warning: failed to close archive: %v", err)
		}
	})
	return archive
}

func TestNewTripArchive_RequiresPath(t *testing.T) {
	_, err := NewTripArchive("")
	require.Error(t, err)
}

func TestTripArchive_PutAndGet(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	trip := testutil.SavedTrip("t-1", "Coastal Week")
	require.NoError(t, archive.Put(ctx, trip))

	got, err := archive.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, trip.ID, got.ID)
	assert.Equal(t, trip.Title, got.Title)
	assert.Equal(t, trip.Itinerary, got.Itinerary)
	assert.Equal(t, trip.CreatedAt.Unix(), got.CreatedAt.Unix())
}

func TestTripArchive_PutAssignsID(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	trip := testutil.SavedTrip("", "Coastal Week")
	require.NoError(t, archive.Put(ctx, trip))

	trips, err := archive.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 1)
	assert.NotEmpty(t, trips[0].ID)
}

func TestTripArchive_PutReplacesExisting(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	require.NoError(t, archive.Put(ctx, testutil.SavedTrip("t-1", "Coastal Week")))

	updated := testutil.SavedTrip("t-1", "Coastal Fortnight")
	require.NoError(t, archive.Put(ctx, updated))

	got, err := archive.Get(ctx, "t-1")
	require.NoError(t, err)
	assert.Equal(t, "Coastal Fortnight", got.Title)

	trips, err := archive.List(ctx)
	require.NoError(t, err)
	assert.Len(t, trips, 1)
}

func TestTripArchive_ListNewestFirst(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	older := testutil.SavedTrip("t-1", "Older")
	older.CreatedAt = time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	newer := testutil.SavedTrip("t-2", "Newer")
	newer.CreatedAt = time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)

	require.NoError(t, archive.Put(ctx, older))
	require.NoError(t, archive.Put(ctx, newer))

	trips, err := archive.List(ctx)
	require.NoError(t, err)
	require.Len(t, trips, 2)
	assert.Equal(t, "Newer", trips[0].Title)
	assert.Equal(t, "Older", trips[1].Title)
}

func TestTripArchive_GetMissing(t *testing.T) {
	archive := newTestArchive(t)

	_, err := archive.Get(context.Background(), "missing")
	assert.ErrorIs(t, err, ports.ErrTripNotFound)
}

func TestTripArchive_Delete(t *testing.T) {
	archive := newTestArchive(t)
	ctx := context.Background()

	require.NoError(t, archive.Put(ctx, testutil.SavedTrip("t-1", "Coastal Week")))
	require.NoError(t, archive.Delete(ctx, "t-1"))

	_, err := archive.Get(ctx, "t-1")
	assert.ErrorIs(t, err, ports.ErrTripNotFound)

	// Deleting again is a no-op.
	assert.NoError(t, archive.Delete(ctx, "t-1"))
}
