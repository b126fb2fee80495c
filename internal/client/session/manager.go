package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/aahadaazar/patients-app/internal/client/models"
	"github.com/aahadaazar/patients-app/internal/client/store"
	"github.com/aahadaazar/patients-app/internal/logging"
)

// Store keys for the persisted credential pair.
const (
	tokenKey = "jwt_token"
	userKey  = "user_data"
)

var (
	ErrEmptyToken  = errors.New("token must not be empty")
	ErrInvalidRole = errors.New("invalid user role")
)

// Manager owns the process-wide Session and is the only writer of the
// persisted credential store.
type Manager struct {
	mu    sync.RWMutex
	cur   Session
	store store.Store
	log   logging.Logger
}

func NewManager(st store.Store, log logging.Logger) *Manager {
	return &Manager{
		cur:   Session{Loading: true},
		store: st,
		log:   log.With("component", "session"),
	}
}

// Current returns a snapshot of the session.
func (m *Manager) Current() Session {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur
}

// Token implements the gateway's TokenSource.
func (m *Manager) Token() string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.cur.Token
}

// Restore attempts silent restoration of a persisted session. It must be
// invoked exactly once at process start, before any protected view renders.
// A missing or unparseable credential pair clears the store and leaves the
// session at the unauthenticated baseline. In every case Loading becomes
// false.
func (m *Manager) Restore(ctx context.Context) error {
	token, err := m.store.Get(ctx, tokenKey)
	if err != nil {
		return fmt.Errorf("failed to read persisted token: %w", err)
	}
	rawUser, err := m.store.Get(ctx, userKey)
	if err != nil {
		return fmt.Errorf("failed to read persisted user: %w", err)
	}

	if len(token) == 0 || len(rawUser) == 0 {
		m.setUnauthenticated()
		return nil
	}

	var user models.User
	if err := json.Unmarshal(rawUser, &user); err != nil || !user.Role.Valid() {
		// Corrupted persisted session: self-heal by wiping the store,
		// treated as no session at all.
		m.log.Warn(ctx, "persisted session unreadable, clearing", "error", err)
		if clearErr := m.store.Clear(ctx); clearErr != nil {
			m.log.Error(ctx, "failed to clear session store", "error", clearErr)
		}
		m.setUnauthenticated()
		return nil
	}

	m.mu.Lock()
	m.cur = Session{Token: string(token), User: &user}
	m.mu.Unlock()

	m.log.Info(ctx, "session restored", "user", user.ID, "role", user.Role)
	return nil
}

// Login persists the credential pair and replaces the session atomically.
// Logging in over an existing session is a replace; no prior logout is
// required.
func (m *Manager) Login(ctx context.Context, token string, user models.User) error {
	if token == "" {
		return ErrEmptyToken
	}
	if !user.Role.Valid() {
		return fmt.Errorf("%w: %q", ErrInvalidRole, user.Role)
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("failed to serialize user: %w", err)
	}
	if err := m.store.Set(ctx, tokenKey, []byte(token)); err != nil {
		return err
	}
	if err := m.store.Set(ctx, userKey, rawUser); err != nil {
		return err
	}

	m.mu.Lock()
	m.cur = Session{Token: token, User: &user}
	m.mu.Unlock()

	m.log.Info(ctx, "logged in", "user", user.ID, "role", user.Role)
	return nil
}

// Logout clears the persisted store and resets the session to the
// unauthenticated baseline. Idempotent.
func (m *Manager) Logout(ctx context.Context) error {
	if err := m.store.Clear(ctx); err != nil {
		return fmt.Errorf("failed to clear session store: %w", err)
	}
	m.setUnauthenticated()
	m.log.Info(ctx, "logged out")
	return nil
}

func (m *Manager) setUnauthenticated() {
	m.mu.Lock()
	m.cur = Session{}
	m.mu.Unlock()
}
