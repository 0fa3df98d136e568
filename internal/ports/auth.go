package ports

// Package ports defines interfaces (hexagonal ports) for the client's
// collaborators. Implementations live in internal/adapters;
// orchestration in internal/service.

import (
	"context"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
)

// CredentialStore persists the session record across process restarts.
// Save writes the access token, refresh token, and user record as a
// unit; Load returns ErrNoCredentials for an absent or malformed
// record; Clear is idempotent.
type CredentialStore interface {
	Save(ctx context.Context, rec domainauth.Record) error
	Load(ctx context.Context) (domainauth.Record, error)
	Clear(ctx context.Context) error
}

// ErrNoCredentials is returned by Load when no usable record exists.
// Malformed persisted data is reported the same way: it means "no
// session", never a user-facing error.
type noCredentialsError struct{}

func (noCredentialsError) Error() string { return "no stored credentials" }

var ErrNoCredentials error = noCredentialsError{}

// TokenRequest carries the identifier/secret pair for the token endpoint.
type TokenRequest struct {
	Username string
	Password string
}

// TokenResponse is the credential pair issued on successful sign-in.
type TokenResponse struct {
	Access  string
	Refresh string
}

// AuthAPI talks to the assistant's authentication endpoints.
type AuthAPI interface {
	// Token exchanges credentials for an access/refresh pair.
	// A rejected pair is reported as domainauth.ErrInvalidCredentials.
	Token(ctx context.Context, req TokenRequest) (TokenResponse, error)

	// Register creates a new identity. Registration does not by itself
	// establish a session.
	Register(ctx context.Context, email, password string) error

	// Refresh exchanges a refresh token for a new access token.
	Refresh(ctx context.Context, refreshToken string) (string, error)
}

// RoleMapper assigns an application role to a signed-in identity.
// The token endpoint carries no role claim, so the mapping is a
// client-side policy decision.
type RoleMapper interface {
	Map(email string) domainauth.Role
}

// Navigator performs view transitions. Navigation triggered by sign-in
// and sign-out is an explicit, observable effect of those operations.
type Navigator interface {
	Goto(route nav.Route)
}

// AccessEvents records security-relevant authorization outcomes.
// Denied admin-route attempts must reach this sink; they are never
// silently dropped.
type AccessEvents interface {
	RecordDenial(ctx context.Context, route nav.Route, user domainauth.User)
}
