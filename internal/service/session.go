package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"golang.org/x/sync/singleflight"

	domainauth "github.com/wanderlanka/planner-cli/internal/domain/auth"
	"github.com/wanderlanka/planner-cli/internal/domain/nav"
	"github.com/wanderlanka/planner-cli/internal/ports"
)

// SessionManagerOptions groups dependencies for SessionManager.
type SessionManagerOptions struct {
	API    ports.AuthAPI
	Store  ports.CredentialStore
	Roles  ports.RoleMapper
	Nav    ports.Navigator
	Logger *slog.Logger
}

// SessionManager owns the current user identity and tokens. It is the
// single writer of session state: sign-in replaces it wholesale,
// sign-out clears it, and restore rebuilds it from the credential
// store exactly once per process.
type SessionManager struct {
	api    ports.AuthAPI
	store  ports.CredentialStore
	roles  ports.RoleMapper
	nav    ports.Navigator
	logger *slog.Logger

	restoring singleflight.Group

	mu         sync.RWMutex
	session    *domainauth.Session
	loading    bool
	promptOpen bool
}

// NewSessionManager constructs a new SessionManager.
func NewSessionManager(opts SessionManagerOptions) (*SessionManager, error) {
	if opts.API == nil {
		return nil, errors.New("auth API is required")
	}
	if opts.Store == nil {
		return nil, errors.New("credential store is required")
	}
	if opts.Roles == nil {
		return nil, errors.New("role mapper is required")
	}
	if opts.Nav == nil {
		return nil, errors.New("navigator is required")
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &SessionManager{
		api:    opts.API,
		store:  opts.Store,
		roles:  opts.Roles,
		nav:    opts.Nav,
		logger: logger,
	}, nil
}

// Restore rebuilds the session from the credential store. An absent or
// malformed record leaves the state anonymous without raising an error.
// Concurrent callers coalesce into a single load, and a live session is
// never overwritten.
func (m *SessionManager) Restore(ctx context.Context) {
	_, _, _ = m.restoring.Do("restore", func() (any, error) {
		m.mu.RLock()
		live := m.session != nil
		m.mu.RUnlock()
		if live {
			return nil, nil
		}

		rec, err := m.store.Load(ctx)
		if err != nil {
			if !errors.Is(err, ports.ErrNoCredentials) {
				m.logger.WarnContext(ctx, "credential load failed, treating as anonymous", "error", err)
			}
			return nil, nil
		}

		sess := rec.Session()
		m.mu.Lock()
		if m.session == nil {
			m.session = &sess
		}
		m.mu.Unlock()
		return nil, nil
	})
}

// SignIn exchanges credentials for tokens, persists the credential
// record, closes the auth prompt, and navigates to the planner view.
// On failure the session state is left untouched and the error is a
// local, user-surfaceable notice; overlapping calls are a caller error
// (tracked by the loading flag, not serialized here).
func (m *SessionManager) SignIn(ctx context.Context, email, secret string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	resp, err := m.api.Token(ctx, ports.TokenRequest{Username: email, Password: secret})
	if err != nil {
		if errors.Is(err, domainauth.ErrInvalidCredentials) {
			return err
		}
		return fmt.Errorf("sign in: %w", err)
	}

	sess := domainauth.Session{
		AccessToken:  resp.Access,
		RefreshToken: resp.Refresh,
		User: domainauth.User{
			ID:    email,
			Email: email,
			Role:  m.roles.Map(email),
		},
	}

	// Persist before publishing so a storage fault leaves no partial state.
	if err := m.store.Save(ctx, domainauth.NewRecord(sess)); err != nil {
		return fmt.Errorf("persist credentials: %w", err)
	}

	m.mu.Lock()
	m.session = &sess
	m.promptOpen = false
	m.mu.Unlock()

	m.nav.Goto(nav.RoutePlanner)
	return nil
}

// SignUp registers a new identity and, on success, immediately signs in
// with the same credentials. Registration alone establishes no session.
func (m *SessionManager) SignUp(ctx context.Context, email, secret string) error {
	m.setLoading(true)
	defer m.setLoading(false)

	if err := m.api.Register(ctx, email, secret); err != nil {
		return fmt.Errorf("sign up: %w", err)
	}

	return m.SignIn(ctx, email, secret)
}

// SignOut clears the session, the credential record, and navigates to
// the landing route. It is idempotent: with no live session only the
// navigation happens.
func (m *SessionManager) SignOut(ctx context.Context) error {
	m.mu.Lock()
	m.session = nil
	m.mu.Unlock()

	err := m.store.Clear(ctx)

	m.nav.Goto(nav.RouteHome)

	if err != nil {
		return fmt.Errorf("clear credentials: %w", err)
	}
	return nil
}

// RefreshAccess exchanges the refresh token for a new access token and
// re-persists the record.
func (m *SessionManager) RefreshAccess(ctx context.Context) error {
	m.mu.RLock()
	sess := m.session
	m.mu.RUnlock()

	if sess == nil || sess.RefreshToken == "" {
		return errors.New("no refresh token available")
	}

	access, err := m.api.Refresh(ctx, sess.RefreshToken)
	if err != nil {
		return fmt.Errorf("refresh access token: %w", err)
	}

	updated := *sess
	updated.AccessToken = access

	if err := m.store.Save(ctx, domainauth.NewRecord(updated)); err != nil {
		return fmt.Errorf("persist refreshed credentials: %w", err)
	}

	m.mu.Lock()
	m.session = &updated
	m.mu.Unlock()
	return nil
}

// SetPromptVisible sets whether the authentication prompt is shown.
// Pure state, no session side effects.
func (m *SessionManager) SetPromptVisible(open bool) {
	m.mu.Lock()
	m.promptOpen = open
	m.mu.Unlock()
}

// PromptVisible reports whether the authentication prompt is shown.
func (m *SessionManager) PromptVisible() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.promptOpen
}

// Loading reports whether a sign-in or sign-up attempt is in flight.
func (m *SessionManager) Loading() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.loading
}

// Current returns a snapshot of the live session, or nil when anonymous.
func (m *SessionManager) Current() *domainauth.Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return nil
	}
	snapshot := *m.session
	return &snapshot
}

// Token returns the current bearer token, empty when anonymous. The
// conversation engine reads it at dispatch time.
func (m *SessionManager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if m.session == nil {
		return ""
	}
	return m.session.AccessToken
}

func (m *SessionManager) setLoading(v bool) {
	m.mu.Lock()
	m.loading = v
	m.mu.Unlock()
}
