package auth

// Package auth contains simple hand-written test doubles for auth ports.
// These are lightweight and suitable for unit tests without codegen.

import (
	"context"
	"fmt"
	"sync"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// Ensure compile-time conformance to ports.
var (
	_ ports.AuthAPI         = (*MockAuthAPI)(nil)
	_ ports.CredentialStore = (*MemoryCredentialStore)(nil)
	_ ports.Navigator       = (*RecordingNavigator)(nil)
	_ ports.AccessEvents    = (*RecordingAccessEvents)(nil)
	_ ports.TokenSource     = StaticTokenSource("")
)

// MockAuthAPI simulates the assistant's auth endpoints with
// deterministic token issuance.
type MockAuthAPI struct {
	TokenFunc    func(ctx context.Context, req ports.TokenRequest) (ports.TokenResponse, error)
	RegisterFunc func(ctx context.Context, email, password string) error
	RefreshFunc  func(ctx context.Context, refreshToken string) (string, error)

	// Accounts maps email to the password it accepts. When nil, every
	// pair is accepted.
	Accounts map[string]string

	mu         sync.Mutex
	issued     int
	registered []string
}

// NewMockAuthAPI creates a MockAuthAPI that accepts any credentials.
func NewMockAuthAPI() *MockAuthAPI {
	return &MockAuthAPI{}
}

func (m *MockAuthAPI) Token(ctx context.Context, req ports.TokenRequest) (ports.TokenResponse, error) {
	if m.TokenFunc != nil {
		return m.TokenFunc(ctx, req)
	}

	if m.Accounts != nil {
		secret, ok := m.Accounts[req.Username]
		if !ok || secret != req.Password {
			return ports.TokenResponse{}, domainauth.ErrInvalidCredentials
		}
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.issued++
	return ports.TokenResponse{
		Access:  fmt.Sprintf("access-%d", m.issued),
		Refresh: fmt.Sprintf("refresh-%d", m.issued),
	}, nil
}

func (m *MockAuthAPI) Register(ctx context.Context, email, password string) error {
	if m.RegisterFunc != nil {
		return m.RegisterFunc(ctx, email, password)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.registered = append(m.registered, email)
	if m.Accounts != nil {
		m.Accounts[email] = password
	}
	return nil
}

func (m *MockAuthAPI) Refresh(ctx context.Context, refreshToken string) (string, error) {
	if m.RefreshFunc != nil {
		return m.RefreshFunc(ctx, refreshToken)
	}

	m.mu.Lock()
	defer m.mu.Unlock()
	m.issued++
	return fmt.Sprintf("access-%d", m.issued), nil
}

// Registered returns the emails passed to Register, in order.
func (m *MockAuthAPI) Registered() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]string, len(m.registered))
	copy(out, m.registered)
	return out
}

// MemoryCredentialStore is an in-memory credential store for unit
// tests, with optional fault injection per operation.
type MemoryCredentialStore struct {
	SaveErr  error
	LoadErr  error
	ClearErr error

	mu  sync.Mutex
	rec *domainauth.Record
}

// NewMemoryCredentialStore creates an empty in-memory store.
func NewMemoryCredentialStore() *MemoryCredentialStore {
	return &MemoryCredentialStore{}
}

func (m *MemoryCredentialStore) Save(_ context.Context, rec domainauth.Record) error {
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = &rec
	return nil
}

func (m *MemoryCredentialStore) Load(_ context.Context) (domainauth.Record, error) {
	if m.LoadErr != nil {
		return domainauth.Record{}, m.LoadErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return domainauth.Record{}, ports.ErrNoCredentials
	}
	return *m.rec, nil
}

func (m *MemoryCredentialStore) Clear(_ context.Context) error {
	if m.ClearErr != nil {
		return m.ClearErr
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.rec = nil
	return nil
}

// Stored returns the persisted record, or nil when the store is empty.
func (m *MemoryCredentialStore) Stored() *domainauth.Record {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.rec == nil {
		return nil
	}
	rec := *m.rec
	return &rec
}

// RecordingNavigator records every route transition in order.
type RecordingNavigator struct {
	mu     sync.Mutex
	visits []nav.Route
}

func (n *RecordingNavigator) Goto(route nav.Route) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.visits = append(n.visits, route)
}

// Visits returns the recorded transitions in order.
func (n *RecordingNavigator) Visits() []nav.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	out := make([]nav.Route, len(n.visits))
	copy(out, n.visits)
	return out
}

// Last returns the most recent transition, or empty when none occurred.
func (n *RecordingNavigator) Last() nav.Route {
	n.mu.Lock()
	defer n.mu.Unlock()
	if len(n.visits) == 0 {
		return ""
	}
	return n.visits[len(n.visits)-1]
}

// Denial is one recorded authorization denial.
type Denial struct {
	Route nav.Route
	User  domainauth.User
}

// RecordingAccessEvents records denied access attempts.
type RecordingAccessEvents struct {
	mu      sync.Mutex
	denials []Denial
}

func (r *RecordingAccessEvents) RecordDenial(_ context.Context, route nav.Route, user domainauth.User) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.denials = append(r.denials, Denial{Route: route, User: user})
}

// Denials returns the recorded denials in order.
func (r *RecordingAccessEvents) Denials() []Denial {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Denial, len(r.denials))
	copy(out, r.denials)
	return out
}

// StaticTokenSource returns a fixed bearer token.
type StaticTokenSource string

func (s StaticTokenSource) Token() string { return string(s) }
