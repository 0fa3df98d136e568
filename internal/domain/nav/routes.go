package nav

// Package nav declares the client's views and their access-control
// metadata. The table is static: requirements are attached at
// construction and consulted by the authorization guard on every
// transition.

// Route identifies a navigable view.
type Route string

const (
	// RouteHome is the anonymous landing view, and the redirect target
	// for every denied transition.
	RouteHome Route = "home"
	// RoutePlanner is the conversational planning view.
	RoutePlanner Route = "planner"
	// RouteAdmin is the administrative dashboard.
	RouteAdmin Route = "admin"
)

// Requirement is the per-route access-control metadata.
type Requirement struct {
	RequiresAuth  bool
	RequiresAdmin bool
}

var table = map[Route]Requirement{
	RouteHome:    {},
	RoutePlanner: {RequiresAuth: true},
	RouteAdmin:   {RequiresAuth: true, RequiresAdmin: true},
}

// RequirementFor returns the declared requirement for a route. Unknown
// routes fall back to requiring authentication so a missing table entry
// fails closed.
func RequirementFor(r Route) Requirement {
	req, ok := table[r]
	if !ok {
		return Requirement{RequiresAuth: true}
	}
	return req
}

// Known reports whether the route exists in the table.
func Known(r Route) bool {
	_, ok := table[r]
	return ok
}
