// Package storage provides the persisted key-value store backing client
// session state (cart, wishlist, auth tokens). Backends are interchangeable:
// a JSON file directory for normal sessions, memory for ephemeral runs and
// tests, Redis for sessions shared across devices.
package storage

import (
	"context"
	"errors"
)

// ErrKeyNotFound is returned by Get when the key has never been written
// or has been deleted.
var ErrKeyNotFound = errors.New("storage: key not found")

// Store is durable byte storage keyed by string. Values are written whole;
// there is no partial update. Concurrent writers to the same key follow
// last-write-wins with no merge.
type Store interface {
	// Get retrieves the value stored under key, or ErrKeyNotFound.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error
}

// Well-known session keys.
const (
	KeyCart         = "cart"
	KeyWishlist     = "wishlist-storage"
	KeyAccessToken  = "access_token"
	KeyRefreshToken = "refresh_token"
)
