// Package wishlist maintains the locally persisted wishlist. Unlike the
// cart, a wishlist entry is a full product snapshot with no quantity; adding
// a product that is already present is a no-op that keeps the first snapshot.
package wishlist

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mirajehossain/ecom-customer/pkg/pubsub"

	"github.com/mirajehossain/ecom-customer/internal/domain"
	"github.com/mirajehossain/ecom-customer/internal/storage"
)

// envelope is the persisted wishlist document. The items array is wrapped in
// an object so the stored shape can grow fields without a format break.
type envelope struct {
	Items []domain.Product `json:"items"`
}

// Store owns the wishlist state. State is rehydrated from storage once at
// construction and held in memory; every mutation commits the new snapshot
// back before notifying subscribers with the updated item list. A nil or
// failing storage backend degrades to in-memory-only behavior.
type Store struct {
	storage storage.Store
	logger  *slog.Logger
	items   []domain.Product
	changes pubsub.Hub[[]domain.Product]
}

// NewStore creates a wishlist store and rehydrates persisted state. Absent,
// unavailable, or corrupt storage yields an empty wishlist.
func NewStore(ctx context.Context, st storage.Store, logger *slog.Logger) *Store {
	s := &Store{storage: st, logger: logger}
	s.items = s.load(ctx)
	return s
}

// Subscribe registers fn to receive the wishlist after every mutation.
// Returns an unsubscribe function.
func (s *Store) Subscribe(fn func(items []domain.Product)) func() {
	return s.changes.Subscribe(fn)
}

// Items returns the current wishlist.
func (s *Store) Items() []domain.Product {
	out := make([]domain.Product, len(s.items))
	copy(out, s.items)
	return out
}

// Count returns the number of wishlist entries.
func (s *Store) Count() int {
	return len(s.items)
}

// IsInWishlist reports whether the product id is present.
func (s *Store) IsInWishlist(id int64) bool {
	return s.indexOf(id) >= 0
}

// Add appends the product snapshot unless its id is already present. The
// first stored snapshot wins; re-adding never refreshes product data.
// Returns true when the product was added.
func (s *Store) Add(ctx context.Context, product domain.Product) bool {
	if s.indexOf(product.ID) >= 0 {
		return false
	}

	s.items = append(s.items, product)
	s.commit(ctx)
	s.changes.Publish(s.Items())
	return true
}

// Remove drops the entry with the given id, if present. Returns true when an
// entry was removed.
func (s *Store) Remove(ctx context.Context, id int64) bool {
	i := s.indexOf(id)
	if i < 0 {
		return false
	}

	s.items = append(s.items[:i], s.items[i+1:]...)
	s.commit(ctx)
	s.changes.Publish(s.Items())
	return true
}

// Clear empties the wishlist. The key is rewritten with an empty envelope
// rather than deleted so the persisted shape stays stable.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.commit(ctx)
	s.changes.Publish(s.Items())
}

func (s *Store) indexOf(id int64) int {
	for i := range s.items {
		if s.items[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *Store) load(ctx context.Context) []domain.Product {
	if s.storage == nil {
		return nil
	}

	data, err := s.storage.Get(ctx, storage.KeyWishlist)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("load wishlist", slog.String("error", err.Error()))
		}
		return nil
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		s.logger.Warn("discarding corrupt wishlist data", slog.String("error", err.Error()))
		return nil
	}
	return env.Items
}

func (s *Store) commit(ctx context.Context) {
	if s.storage == nil {
		return
	}

	env := envelope{Items: s.items}
	if env.Items == nil {
		env.Items = []domain.Product{}
	}
	data, err := json.Marshal(env)
	if err != nil {
		s.logger.Warn("encode wishlist", slog.String("error", err.Error()))
		return
	}
	if err := s.storage.Set(ctx, storage.KeyWishlist, data); err != nil {
		s.logger.Warn("persist wishlist", slog.String("error", err.Error()))
	}
}
