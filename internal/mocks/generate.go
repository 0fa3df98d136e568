// Package mocks provides mock implementations for testing the planner services.
//
// This package uses go.uber.org/mock (gomock) to generate type-safe mocks for our port interfaces.
// The mocks are generated using go:generate directives and provide a fluent API for setting up test expectations.
//
// To regenerate mocks after interface changes, run:
//
//	go generate ./internal/mocks
//
// Usage in tests:
//
//	ctrl := gomock.NewController(t)
//	defer ctrl.Finish()
//	mockPlanner := mocks.NewMockPlanningService(ctrl)
//	mockPlanner.EXPECT().Plan(gomock.Any(), gomock.Any(), gomock.Any()).Return(result, nil)
package mocks

// Generate mock for PlanningService interface from internal/ports package.
// This creates MockPlanningService with methods for all PlanningService interface methods:
// Plan
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=planning_service_mock.go github.com/wanderlanka/planner-cli/internal/ports PlanningService

// Generate mock for TripsAPI interface from internal/ports package.
// This creates MockTripsAPI with methods for all TripsAPI interface methods:
// ListTrips, SaveTrip, DeleteTrip
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=trips_api_mock.go github.com/wanderlanka/planner-cli/internal/ports TripsAPI

// Generate mock for TripArchive interface from internal/ports package.
// This creates MockTripArchive with methods for all TripArchive interface methods:
// Put, List, Get, Delete
//go:generate go run go.uber.org/mock/mockgen@v0.6.0 -package=mocks -destination=trip_archive_mock.go github.com/wanderlanka/planner-cli/internal/ports TripArchive
