package service

import (
	"context"
	"errors"
	"log/slog"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Decision is the outcome of evaluating a route requirement against
// the session state.
type Decision struct {
	Allow bool
	// Redirect is the route to send the caller to instead; only set
	// when Allow is false.
	Redirect nav.Route
	// AdminDenial marks rule-2 denials, which must be recorded.
	AdminDenial bool
}

// Decide evaluates the access rules for one transition. It is a pure
// function of the requirement and the session; rules apply in order and
// the first match wins:
//  1. anonymous session and the route requires auth: redirect to home.
//  2. route requires admin and the user's role lacks it: redirect to
//     home, denial recorded.
//  3. allow.
func Decide(req nav.Requirement, sess *domainauth.Session) Decision {
	if req.RequiresAuth && sess == nil {
		return Decision{Redirect: nav.RouteHome}
	}
	if req.RequiresAdmin && (sess == nil || !sess.User.Role.IsAdmin()) {
		return Decision{Redirect: nav.RouteHome, AdminDenial: true}
	}
	return Decision{Allow: true}
}

// GuardOptions groups dependencies for Guard.
type GuardOptions struct {
	Sessions *SessionManager
	Events   ports.AccessEvents
	Nav      ports.Navigator
	Logger   *slog.Logger
}

// Guard intercepts every route transition. It enforces
// restore-before-decide: a persisted credential is loaded into memory
// before any rule is evaluated, so the guard never decides against a
// session that persistence already holds.
type Guard struct {
	sessions *SessionManager
	events   ports.AccessEvents
	nav      ports.Navigator
	logger   *slog.Logger
}

// NewGuard constructs a new Guard.
func NewGuard(opts GuardOptions) (*Guard, error) {
	if opts.Sessions == nil {
		return nil, errors.New("session manager is required")
	}
	if opts.Events == nil {
		return nil, errors.New("access events sink is required")
	}
	if opts.Nav == nil {
		return nil, errors.New("navigator is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &Guard{
		sessions: opts.Sessions,
		events:   opts.Events,
		nav:      opts.Nav,
		logger:   logger,
	}, nil
}

// Authorize evaluates a transition to the target route, performs the
// resulting navigation, and reports whether the target was reached.
// Denied admin attempts are recorded, never silently dropped.
func (g *Guard) Authorize(ctx context.Context, route nav.Route) bool {
	if g.sessions.Current() == nil {
		g.sessions.Restore(ctx)
	}
	sess := g.sessions.Current()

	decision := Decide(nav.RequirementFor(route), sess)
	if decision.Allow {
		g.nav.Goto(route)
		return true
	}

	if decision.AdminDenial {
		var user domainauth.User
		if sess != nil {
			user = sess.User
		}
		g.events.RecordDenial(ctx, route, user)
	}

	g.logger.InfoContext(ctx, "navigation redirected",
		slog.String("target", string(route)),
		slog.String("redirect", string(decision.Redirect)),
	)
	g.nav.Goto(decision.Redirect)
	return false
}
