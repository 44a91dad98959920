package app

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mirajehossain/ecom-customer/internal/config"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testConfig() *config.Config {
	return &config.Config{
		Environment:    "development",
		APIBaseURL:     "http://localhost:8080/api",
		APITimeout:     time.Second,
		PageSize:       20,
		SessionBackend: config.BackendMemory,
	}
}

func TestNewWiresComponents(t *testing.T) {
	a, err := New(context.Background(), testConfig(), newTestLogger())

	require.NoError(t, err)
	defer a.Close()

	assert.NotNil(t, a.Session)
	assert.NotNil(t, a.API)
	assert.NotNil(t, a.Cart)
	assert.NotNil(t, a.Wishlist)
	assert.NotNil(t, a.Catalog)
	assert.NotNil(t, a.Checkout)
}

func TestCartAndWishlistShareBackend(t *testing.T) {
	a, err := New(context.Background(), testConfig(), newTestLogger())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	a.Cart.Add(ctx, domain.Product{ID: 1, Name: "Mug", Price: 10})
	a.Wishlist.Add(ctx, domain.Product{ID: 2, Name: "Plate", Price: 8})

	assert.Len(t, a.Cart.Get(ctx), 1)
	assert.Equal(t, 1, a.Wishlist.Count())
}

func TestFileBackendUsesConfiguredDir(t *testing.T) {
	cfg := testConfig()
	cfg.SessionBackend = config.BackendFile
	cfg.SessionDir = t.TempDir()

	a, err := New(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	defer a.Close()

	ctx := context.Background()
	a.Cart.Add(ctx, domain.Product{ID: 1, Name: "Mug", Price: 10})

	// A second app over the same dir sees the persisted cart.
	b, err := New(context.Background(), cfg, newTestLogger())
	require.NoError(t, err)
	defer b.Close()

	assert.Len(t, b.Cart.Get(ctx), 1)
}
