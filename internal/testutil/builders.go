package testutil

// Shared builders for domain objects used across test packages.

import (
	"io"
	"log/slog"
	"time"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/plan"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// DiscardLogger returns a logger that drops everything, keeping test
// output clean.
func DiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// UserSession builds an authenticated non-admin session.
func UserSession() domainauth.Session {
	return domainauth.Session{
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
		User:         domainauth.User{ID: "u-1", Email: "traveler@example.com", Role: domainauth.RoleUser},
	}
}

// AdminSession builds an authenticated admin session.
func AdminSession() domainauth.Session {
	s := UserSession()
	s.User.Role = domainauth.RoleAdmin
	return s
}

// Itinerary builds a small two-day itinerary with the given title.
func Itinerary(title string) plan.Itinerary {
	return plan.Itinerary{
		Title:     title,
		Summary:   "Two days on the coast.",
		TotalDays: 2,
		Days: []plan.Day{
			{
				Day:      1,
				Location: "Galle",
				Theme:    "History",
				Activities: []plan.Activity{
					{Time: "Morning", Activity: "Fort walk", Description: "Walk the Dutch ramparts."},
				},
			},
			{
				Day:      2,
				Location: "Mirissa",
				Theme:    "Beach",
				Activities: []plan.Activity{
					{Time: "Morning", Activity: "Whale watching", Description: "Boat tour at dawn."},
				},
			},
		},
	}
}

// SavedTrip builds a saved trip wrapping Itinerary(title).
func SavedTrip(id, title string) ports.SavedTrip {
	return ports.SavedTrip{
		ID:        id,
		Title:     title,
		Itinerary: Itinerary(title),
		CreatedAt: time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC),
	}
}
