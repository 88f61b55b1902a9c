package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var (
	ErrNotFound           = errors.New("session not found")
	ErrExpired            = errors.New("session expired, please login again")
	ErrInvalidCredentials = errors.New("username and password are required")
)

const RoleAdmin = "Admin"

// Context is the explicit replacement for process-wide session storage. It is
// created by Manager.Login and destroyed by Manager.Logout.
type Context struct {
	ID        string    `json:"id"`
	Token     string    `json:"token"`
	UserID    int       `json:"user_id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
	ExpiresAt time.Time `json:"expires_at"`
}

func (c Context) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// Expired reports whether the session has ended. A zero ExpiresAt never expires.
func (c Context) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

// Check returns ErrExpired once the session has ended.
func (c Context) Check() error {
	if c.Expired(time.Now()) {
		return ErrExpired
	}
	return nil
}

type Credentials struct {
	Token    string
	UserID   int
	Username string
	Role     string
}

type Authenticator interface {
	Login(ctx context.Context, username, password string) (Credentials, error)
}

type Store interface {
	Save(ctx context.Context, sess Context, ttl time.Duration) error
	Load(ctx context.Context, id string) (Context, error)
	Delete(ctx context.Context, id string) error
}

type Manager struct {
	auth  Authenticator
	store Store
	ttl   time.Duration
	now   func() time.Time
}

func NewManager(auth Authenticator, store Store, ttl time.Duration) *Manager {
	return &Manager{auth: auth, store: store, ttl: ttl, now: time.Now}
}

func (m *Manager) Login(ctx context.Context, username, password string) (Context, error) {
	if username == "" || password == "" {
		return Context{}, ErrInvalidCredentials
	}

	creds, err := m.auth.Login(ctx, username, password)
	if err != nil {
		return Context{}, err
	}

	now := m.now()
	sess := Context{
		ID:        uuid.NewString(),
		Token:     creds.Token,
		UserID:    creds.UserID,
		Username:  creds.Username,
		Role:      creds.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(m.ttl),
	}
	if sess.Username == "" {
		sess.Username = username
	}

	if err := m.store.Save(ctx, sess, m.ttl); err != nil {
		return Context{}, fmt.Errorf("failed to store session: %w", err)
	}
	return sess, nil
}

func (m *Manager) Resolve(ctx context.Context, id string) (Context, error) {
	if id == "" {
		return Context{}, ErrNotFound
	}
	sess, err := m.store.Load(ctx, id)
	if err != nil {
		return Context{}, err
	}
	if sess.Expired(m.now()) {
		_ = m.store.Delete(ctx, id)
		return Context{}, ErrExpired
	}
	return sess, nil
}

func (m *Manager) Logout(ctx context.Context, id string) error {
	return m.store.Delete(ctx, id)
}
