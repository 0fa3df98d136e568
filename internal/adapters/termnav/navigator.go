package termnav

// Package termnav adapts view navigation to a terminal session: the
// current view is a piece of state commands consult, not a rendered
// page.

import (
	"sync"

	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Navigator tracks the current view for the terminal session.
type Navigator struct {
	mu      sync.Mutex
	current nav.Route
}

var _ ports.Navigator = (*Navigator)(nil)

// New creates a Navigator starting at the landing view.
func New() *Navigator {
	return &Navigator{current: nav.RouteHome}
}

func (n *Navigator) Goto(route nav.Route) {
	n.mu.Lock()
	n.current = route
	n.mu.Unlock()
}

// Current returns the view the session is on.
func (n *Navigator) Current() nav.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	return n.current
}
