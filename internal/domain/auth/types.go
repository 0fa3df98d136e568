package auth

// Package auth contains domain-level types for identity and sessions.
// It is pure and free of transport/adapter concerns.

import "errors"

// Role represents the application's authorization role.
// Keep string form for easy persistence.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdmin Role = "admin"
	RoleUser  Role = "user"
)

// IsAdmin reports whether the role carries the administrative flag.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// User is the identity record the assistant API authorizes requests for.
// Replaced wholesale on sign-in, cleared on sign-out.
type User struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Role  Role   `json:"role"`
}

// Session pairs the bearer credentials with the User they authorize.
// Exactly one Session is live per process; a nil Session means anonymous.
// Invariant: a non-nil Session always carries a non-zero User.
type Session struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Record is the persisted form of a Session. All three fields are
// written and cleared together as a unit.
type Record struct {
	AccessToken  string `json:"access_token"`
	RefreshToken string `json:"refresh_token"`
	User         User   `json:"user"`
}

// Session reconstructs the in-memory Session from a persisted Record.
func (r Record) Session() Session {
	return Session{
		AccessToken:  r.AccessToken,
		RefreshToken: r.RefreshToken,
		User:         r.User,
	}
}

// NewRecord captures a Session for persistence.
func NewRecord(s Session) Record {
	return Record{
		AccessToken:  s.AccessToken,
		RefreshToken: s.RefreshToken,
		User:         s.User,
	}
}

// Valid reports whether a persisted record is well-formed enough to
// rebuild a session from. A record failing this check is treated as
// "no session", never as an error.
func (r Record) Valid() bool {
	return r.AccessToken != "" && r.User.Email != ""
}

// ErrInvalidCredentials is returned when the authentication endpoint
// rejects an identifier/secret pair. It is recovered locally and
// surfaced as a user-visible notice, never propagated as fatal.
var ErrInvalidCredentials = errors.New("invalid credentials")
