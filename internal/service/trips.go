package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/wanderlanka/planner-cli/internal/ports"
)

// TripsOptions groups dependencies for Trips.
type TripsOptions struct {
	API     ports.TripsAPI
	Archive ports.TripArchive
	Tokens  ports.TokenSource
	Logger  *slog.Logger
}

// Trips manages saved itineraries. The server is the source of truth;
// the local archive mirrors it so trips list and open without a network
// round trip.
type Trips struct {
	api     ports.TripsAPI
	archive ports.TripArchive
	tokens  ports.TokenSource
	logger  *slog.Logger
}

// NewTrips constructs a new Trips service.
func NewTrips(opts TripsOptions) (*Trips, error) {
	if opts.API == nil {
		return nil, errors.New("trips API is required")
	}
	if opts.Archive == nil {
		return nil, errors.New("trip archive is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("token source is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Trips{
		api:     opts.API,
		archive: opts.Archive,
		tokens:  opts.Tokens,
		logger:  logger,
	}, nil
}

// Sync pulls the saved trips from the server into the local archive and
// returns them. Trips deleted remotely are removed locally.
func (t *Trips) Sync(ctx context.Context) ([]ports.SavedTrip, error) {
	remote, err := t.api.ListTrips(ctx, t.tokens.Token())
	if err != nil {
		return nil, fmt.Errorf("listing saved trips: %w", err)
	}

	keep := make(map[string]struct{}, len(remote))
	for _, trip := range remote {
		keep[trip.ID] = struct{}{}
		if err := t.archive.Put(ctx, trip); err != nil {
			return nil, fmt.Errorf("mirroring trip %q: %w", trip.ID, err)
		}
	}

	local, err := t.archive.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("listing archived trips: %w", err)
	}
	for _, trip := range local {
		if _, ok := keep[trip.ID]; ok {
			continue
		}
		if err := t.archive.Delete(ctx, trip.ID); err != nil {
			return nil, fmt.Errorf("pruning trip %q: %w", trip.ID, err)
		}
	}

	return remote, nil
}

// List returns the locally archived trips, newest first.
func (t *Trips) List(ctx context.Context) ([]ports.SavedTrip, error) {
	return t.archive.List(ctx)
}

// Save stores the trip on the server, then mirrors it locally under the
// server-assigned ID.
func (t *Trips) Save(ctx context.Context, trip ports.SavedTrip) (ports.SavedTrip, error) {
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now().UTC()
	}

	id, err := t.api.SaveTrip(ctx, t.tokens.Token(), trip)
	if err != nil {
		return ports.SavedTrip{}, fmt.Errorf("saving trip: %w", err)
	}
	trip.ID = id

	if err := t.archive.Put(ctx, trip); err != nil {
		t.logger.WarnContext(ctx, "trip saved remotely but not mirrored",
			slog.String("trip_id", id), slog.Any("error", err))
	}
	return trip, nil
}

// Open returns an archived trip by ID.
func (t *Trips) Open(ctx context.Context, id string) (ports.SavedTrip, error) {
	return t.archive.Get(ctx, id)
}

// Delete removes a trip from the server and the local archive. A trip
// the server no longer has is still pruned locally.
func (t *Trips) Delete(ctx context.Context, id string) error {
	if err := t.api.DeleteTrip(ctx, t.tokens.Token(), id); err != nil && !errors.Is(err, ports.ErrTripNotFound) {
		return fmt.Errorf("deleting trip: %w", err)
	}
	return t.archive.Delete(ctx, id)
}
