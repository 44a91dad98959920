// Package app wires the storefront client together: storage backend, session,
// API client, the cart and wishlist stores, the listing controller and the
// checkout service.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/redis/go-redis/v9"

	"github.com/mirajehossain/ecom-customer/pkg/httpclient"

	"github.com/mirajehossain/ecom-customer/internal/api"
	"github.com/mirajehossain/ecom-customer/internal/cart"
	"github.com/mirajehossain/ecom-customer/internal/catalog"
	"github.com/mirajehossain/ecom-customer/internal/checkout"
	"github.com/mirajehossain/ecom-customer/internal/config"
	"github.com/mirajehossain/ecom-customer/internal/session"
	"github.com/mirajehossain/ecom-customer/internal/storage"
	"github.com/mirajehossain/ecom-customer/internal/wishlist"
)

// App holds every wired component for one client session.
type App struct {
	Config   *config.Config
	Session  *session.Manager
	API      *api.Client
	Cart     *cart.Store
	Wishlist *wishlist.Store
	Catalog  *catalog.Controller
	Checkout *checkout.Service

	logger *slog.Logger
	redis  *redis.Client
}

// New builds the application from configuration. The context covers startup
// work only (wishlist rehydration, storage probes).
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	a := &App{Config: cfg, logger: logger}

	store, err := a.buildStorage(cfg)
	if err != nil {
		return nil, fmt.Errorf("build storage: %w", err)
	}

	a.Session = session.NewManager(store, logger)

	httpCfg := httpclient.DefaultConfig()
	httpCfg.Timeout = cfg.APITimeout
	httpc := httpclient.New(httpCfg)
	breaker := httpclient.NewCircuitBreakerClient(httpc,
		httpclient.DefaultCircuitBreakerConfig("commerce-api"), logger)

	a.API = api.New(cfg.APIBaseURL, breaker, a.Session, logger)
	a.API.OnUnauthorized(func() {
		logger.Warn("session expired, sign in again")
	})

	a.Cart = cart.NewStore(store, logger)
	a.Wishlist = wishlist.NewStore(ctx, store, logger)
	a.Catalog = catalog.NewController(a.API.Products, cfg.PageSize, logger)
	a.Checkout = checkout.NewService(a.API.Orders, a.Cart, logger)

	return a, nil
}

// Close releases backend resources.
func (a *App) Close() error {
	if a.redis != nil {
		return a.redis.Close()
	}
	return nil
}

func (a *App) buildStorage(cfg *config.Config) (storage.Store, error) {
	switch cfg.SessionBackend {
	case config.BackendMemory:
		return storage.NewMemory(), nil

	case config.BackendRedis:
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.RedisAddr,
			Password: cfg.RedisPassword,
			DB:       cfg.RedisDB,
		})
		a.redis = client
		return storage.NewRedis(client, "local", cfg.RedisTTL), nil

	case config.BackendFile:
		dir := cfg.SessionDir
		if dir == "" {
			base, err := os.UserConfigDir()
			if err != nil {
				return nil, fmt.Errorf("resolve session dir: %w", err)
			}
			dir = filepath.Join(base, "storefront")
		}
		return storage.NewFile(dir)

	default:
		return nil, fmt.Errorf("unknown session backend %q", cfg.SessionBackend)
	}
}
