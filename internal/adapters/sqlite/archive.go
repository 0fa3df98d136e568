package sqlite

// Package sqlite provides the local saved-trip archive so itineraries
// open without contacting the server.

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/ports"
	_ "modernc.org/sqlite"
)

// TripArchive implements ports.TripArchive using SQLite.
type TripArchive struct {
	db *sql.DB
}

var _ ports.TripArchive = (*TripArchive)(nil)

// NewTripArchive opens (creating if needed) the archive at dbPath.
func NewTripArchive(dbPath string) (*TripArchive, error) {
	if dbPath == "" {
		return nil, errors.New("archive path is required")
	}
	if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
		return nil, fmt.Errorf("create archive directory: %w", err)
	}

	dsn := dbPath + "?_journal=WAL&_sync=NORMAL&_busy_timeout=5000"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open archive: %w", err)
	}

	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping archive: %w", err)
	}

	archive := &TripArchive{db: db}
	if err := archive.initSchema(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}
	return archive, nil
}

func (a *TripArchive) initSchema() error {
	query := `
	CREATE TABLE IF NOT EXISTS saved_trips (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		itinerary_json TEXT NOT NULL,
		created_at INTEGER NOT NULL
	);
	CREATE INDEX IF NOT EXISTS idx_saved_trips_created ON saved_trips(created_at);
	`
	if _, err := a.db.Exec(query); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}

// Close releases the underlying database handle.
func (a *TripArchive) Close() error {
	return a.db.Close()
}

// Put inserts or replaces a trip. A trip without an ID is assigned one.
func (a *TripArchive) Put(ctx context.Context, trip ports.SavedTrip) error {
	if trip.ID == "" {
		trip.ID = uuid.New().String()
	}
	if trip.CreatedAt.IsZero() {
		trip.CreatedAt = time.Now()
	}

	data, err := json.Marshal(trip.Itinerary)
	if err != nil {
		return fmt.Errorf("marshal itinerary: %w", err)
	}

	_, err = a.db.ExecContext(ctx, `
		INSERT INTO saved_trips (id, title, itinerary_json, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(id) DO UPDATE SET
			title = excluded.title,
			itinerary_json = excluded.itinerary_json,
			created_at = excluded.created_at
	`, trip.ID, trip.Title, string(data), trip.CreatedAt.Unix())
	if err != nil {
		return fmt.Errorf("upsert trip: %w", err)
	}
	return nil
}

// List returns all archived trips, newest first.
func (a *TripArchive) List(ctx context.Context) ([]ports.SavedTrip, error) {
	rows, err := a.db.QueryContext(ctx, `
		SELECT id, title, itinerary_json, created_at
		FROM saved_trips
		ORDER BY created_at DESC, id
	`)
	if err != nil {
		return nil, fmt.Errorf("query trips: %w", err)
	}
	defer rows.Close()

	var trips []ports.SavedTrip
	for rows.Next() {
		trip, scanErr := scanTrip(rows)
		if scanErr != nil {
			return nil, scanErr
		}
		trips = append(trips, trip)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate trips: %w", err)
	}
	return trips, nil
}

// Get returns a single archived trip.
func (a *TripArchive) Get(ctx context.Context, id string) (ports.SavedTrip, error) {
	row := a.db.QueryRowContext(ctx, `
		SELECT id, title, itinerary_json, created_at
		FROM saved_trips
		WHERE id = ?
	`, id)

	trip, err := scanTrip(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.SavedTrip{}, ports.ErrTripNotFound
		}
		return ports.SavedTrip{}, err
	}
	return trip, nil
}

// Delete removes a trip; deleting a missing trip is not an error.
func (a *TripArchive) Delete(ctx context.Context, id string) error {
	if _, err := a.db.ExecContext(ctx, `DELETE FROM saved_trips WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete trip: %w", err)
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanTrip(row rowScanner) (ports.SavedTrip, error) {
	var (
		trip      ports.SavedTrip
		rawJSON   string
		createdAt int64
	)
	if err := row.Scan(&trip.ID, &trip.Title, &rawJSON, &createdAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return ports.SavedTrip{}, err
		}
		return ports.SavedTrip{}, fmt.Errorf("scan trip: %w", err)
	}

	var it plan.Itinerary
	if err := json.Unmarshal([]byte(rawJSON), &it); err != nil {
		return ports.SavedTrip{}, fmt.Errorf("unmarshal itinerary: %w", err)
	}
	trip.Itinerary = it
	trip.CreatedAt = time.Unix(createdAt, 0).UTC()
	return trip, nil
}
