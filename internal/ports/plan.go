package ports

import (
	"context"
	"time"

	"github.com/wanderlanka/planner-cli/internal/domain/plan"
)

// TokenSource exposes the current bearer token. The conversation engine
// reads it at call time; a token refreshed or cleared mid-flight does
// not affect an already-dispatched request.
type TokenSource interface {
	Token() string
}

// PlanningService is the remote itinerary generator. The response is
// decoded into the tagged plan.Result union at this boundary; transport
// and server faults surface as errors.
type PlanningService interface {
	Plan(ctx context.Context, bearer string, prefs plan.Preferences) (plan.Result, error)
}

// SavedTrip is a previously generated itinerary kept for later reuse.
type SavedTrip struct {
	ID        string         `json:"id"`
	Title     string         `json:"title"`
	Itinerary plan.Itinerary `json:"itinerary_json"`
	CreatedAt time.Time      `json:"created_at"`
}

// TripsAPI manages saved trips on the assistant's server.
type TripsAPI interface {
	ListTrips(ctx context.Context, bearer string) ([]SavedTrip, error)
	SaveTrip(ctx context.Context, bearer string, trip SavedTrip) (string, error)
	DeleteTrip(ctx context.Context, bearer, id string) error
}

// TripArchive is the local mirror of saved trips, so itineraries open
// without contacting the server.
type TripArchive interface {
	Put(ctx context.Context, trip SavedTrip) error
	List(ctx context.Context) ([]SavedTrip, error)
	Get(ctx context.Context, id string) (SavedTrip, error)
	Delete(ctx context.Context, id string) error
}

// ErrTripNotFound is returned when a saved trip does not exist.
type tripNotFoundError struct{}

func (tripNotFoundError) Error() string { return "trip not found" }

var ErrTripNotFound error = tripNotFoundError{}
