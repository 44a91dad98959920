// Package session owns the locally persisted auth tokens. The tokens are
// opaque credentials issued by the auth API; this package never validates
// signatures, it only stores, returns, and clears them, with a local
// expiry peek when the access token happens to be a JWT.
package session

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/mirajehossain/ecom-customer/internal/storage"
)

// Manager reads and writes the session tokens in the key-value store.
// A nil store degrades to a logged-out session; no operation errors.
type Manager struct {
	store  storage.Store
	logger *slog.Logger
}

// NewManager creates a session manager over the given store.
func NewManager(store storage.Store, logger *slog.Logger) *Manager {
	return &Manager{store: store, logger: logger}
}

// AccessToken returns the stored access token, or "" when absent or the
// store is unavailable.
func (m *Manager) AccessToken(ctx context.Context) string {
	return m.read(ctx, storage.KeyAccessToken)
}

// RefreshToken returns the stored refresh token, or "".
func (m *Manager) RefreshToken(ctx context.Context) string {
	return m.read(ctx, storage.KeyRefreshToken)
}

// SetTokens persists the token pair. An empty refresh token clears the
// refresh slot.
func (m *Manager) SetTokens(ctx context.Context, access, refresh string) {
	if m.store == nil {
		return
	}
	if err := m.store.Set(ctx, storage.KeyAccessToken, []byte(access)); err != nil {
		m.logger.Warn("persist access token", slog.String("error", err.Error()))
	}
	if refresh == "" {
		_ = m.store.Delete(ctx, storage.KeyRefreshToken)
		return
	}
	if err := m.store.Set(ctx, storage.KeyRefreshToken, []byte(refresh)); err != nil {
		m.logger.Warn("persist refresh token", slog.String("error", err.Error()))
	}
}

// Clear removes both tokens. Called on logout and whenever the API answers
// with 401.
func (m *Manager) Clear(ctx context.Context) {
	if m.store == nil {
		return
	}
	if err := m.store.Delete(ctx, storage.KeyAccessToken); err != nil {
		m.logger.Warn("clear access token", slog.String("error", err.Error()))
	}
	if err := m.store.Delete(ctx, storage.KeyRefreshToken); err != nil {
		m.logger.Warn("clear refresh token", slog.String("error", err.Error()))
	}
}

// LoggedIn reports whether an access token is present and, when the token
// parses as a JWT, whether its exp claim is still in the future. Opaque
// non-JWT tokens count as logged in; the server remains the authority.
func (m *Manager) LoggedIn(ctx context.Context) bool {
	token := m.AccessToken(ctx)
	if token == "" {
		return false
	}

	claims := jwt.MapClaims{}
	_, _, err := jwt.NewParser().ParseUnverified(token, claims)
	if err != nil {
		return true
	}

	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return true
	}
	return exp.After(time.Now())
}

func (m *Manager) read(ctx context.Context, key string) string {
	if m.store == nil {
		return ""
	}
	data, err := m.store.Get(ctx, key)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			m.logger.Warn("read session token",
				slog.String("key", key),
				slog.String("error", err.Error()),
			)
		}
		return ""
	}
	return string(data)
}
