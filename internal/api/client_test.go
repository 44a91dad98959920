package api

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/mirajehossain/ecom-customer/pkg/errors"
	"github.com/mirajehossain/ecom-customer/pkg/httpclient"

	"github.com/mirajehossain/ecom-customer/internal/session"
	"github.com/mirajehossain/ecom-customer/internal/storage"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

// newTestClient builds a Client against the given handler with a fresh
// in-memory session.
func newTestClient(t *testing.T, handler http.Handler) (*Client, *session.Manager) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	doer := httpclient.New(httpclient.Config{
		Timeout:         5 * time.Second,
		MaxRetries:      0,
		RetryWaitMin:    time.Millisecond,
		RetryWaitMax:    time.Millisecond,
		MaxConnsPerHost: 10,
	})
	sess := session.NewManager(storage.NewMemory(), newTestLogger())
	return New(server.URL, doer, sess, newTestLogger()), sess
}

func TestClient_AttachesBearerToken(t *testing.T) {
	var gotAuth string
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	sess.SetTokens(context.Background(), "tok-123", "")

	_, err := client.Categories.List(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer tok-123", gotAuth)
}

func TestClient_NoAuthHeaderWhenLoggedOut(t *testing.T) {
	var gotAuth string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	_, err := client.Categories.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, gotAuth)
}

func TestClient_SetsRequestID(t *testing.T) {
	var gotID string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotID = r.Header.Get("X-Request-Id")
		_, _ = w.Write([]byte(`{"data":[]}`))
	}))

	_, err := client.Categories.List(context.Background())
	require.NoError(t, err)
	assert.NotEmpty(t, gotID)
}

func TestClient_UnauthorizedClearsSessionAndNotifies(t *testing.T) {
	client, sess := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"error":"token expired"}`))
	}))

	ctx := context.Background()
	sess.SetTokens(ctx, "stale", "stale-refresh")

	var notified int
	client.OnUnauthorized(func() { notified++ })

	_, err := client.Orders.List(ctx)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrUnauthorized))
	assert.Empty(t, sess.AccessToken(ctx))
	assert.Empty(t, sess.RefreshToken(ctx))
	assert.Equal(t, 1, notified)
}

func TestClient_ErrorEnvelopeTranslated(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"product not found"}`))
	}))

	_, err := client.Products.GetByID(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, errors.Is(err, apperrors.ErrNotFound))
	assert.Contains(t, err.Error(), "product not found")
}
