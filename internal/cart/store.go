// Package cart maintains the locally persisted shopping cart. The cart is
// an ordered list with at most one line per product id; re-adding a product
// bumps its quantity instead of duplicating the line.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"

	"github.com/mirajehossain/ecom-customer/pkg/pubsub"

	"github.com/mirajehossain/ecom-customer/internal/domain"
	"github.com/mirajehossain/ecom-customer/internal/storage"
)

// Store owns the cart state. Every mutation loads the persisted snapshot,
// applies the change in memory, commits it back, then notifies subscribers.
// A nil or failing storage backend degrades to empty/no-op behavior; cart
// operations never surface storage errors.
type Store struct {
	storage storage.Store
	logger  *slog.Logger
	changes pubsub.Hub[struct{}]
}

// NewStore creates a cart store over the given storage backend.
func NewStore(st storage.Store, logger *slog.Logger) *Store {
	return &Store{storage: st, logger: logger}
}

// Subscribe registers fn to run after every cart mutation. The notification
// carries no payload; subscribers re-read via Get. Returns an unsubscribe
// function.
func (s *Store) Subscribe(fn func()) func() {
	return s.changes.Subscribe(func(struct{}) { fn() })
}

// Get returns the current cart. Absent, unavailable, or corrupt storage all
// yield an empty cart.
func (s *Store) Get(ctx context.Context) domain.CartItems {
	return s.load(ctx)
}

// Add merges a product into the cart: an existing line's quantity grows by
// one, otherwise a new line with quantity 1 is appended. The line image
// follows the product's display image selection. Returns the updated cart.
func (s *Store) Add(ctx context.Context, product domain.Product) domain.CartItems {
	items := s.load(ctx)

	if i := items.FindIndex(product.ID); i >= 0 {
		items[i].Quantity++
	} else {
		items = append(items, domain.CartItem{
			ID:        product.ID,
			ProductID: product.ID,
			Name:      product.Name,
			Price:     product.Price,
			Image:     product.PrimaryImage(),
			Quantity:  1,
		})
	}

	s.commit(ctx, items)
	s.changes.Publish(struct{}{})
	return items
}

// Remove drops the line with the given id, if present. Returns the updated
// cart.
func (s *Store) Remove(ctx context.Context, id int64) domain.CartItems {
	items := s.load(ctx)

	i := items.FindIndex(id)
	if i >= 0 {
		items = append(items[:i], items[i+1:]...)
	}

	s.commit(ctx, items)
	s.changes.Publish(struct{}{})
	return items
}

// Update sets the quantity of the line with the given id verbatim. The store
// does not translate a non-positive quantity into a removal; callers that
// want removal semantics must call Remove instead. Returns the updated cart.
func (s *Store) Update(ctx context.Context, id int64, quantity int) domain.CartItems {
	items := s.load(ctx)

	if i := items.FindIndex(id); i >= 0 {
		items[i].Quantity = quantity
		s.commit(ctx, items)
		s.changes.Publish(struct{}{})
	}

	return items
}

// Clear deletes all persisted cart data and notifies subscribers.
func (s *Store) Clear(ctx context.Context) {
	if s.storage != nil {
		if err := s.storage.Delete(ctx, storage.KeyCart); err != nil {
			s.logger.Warn("clear cart", slog.String("error", err.Error()))
		}
	}
	s.changes.Publish(struct{}{})
}

func (s *Store) load(ctx context.Context) domain.CartItems {
	if s.storage == nil {
		return domain.CartItems{}
	}

	data, err := s.storage.Get(ctx, storage.KeyCart)
	if err != nil {
		if !errors.Is(err, storage.ErrKeyNotFound) {
			s.logger.Warn("load cart", slog.String("error", err.Error()))
		}
		return domain.CartItems{}
	}

	var items domain.CartItems
	if err := json.Unmarshal(data, &items); err != nil {
		// Corrupt persisted state counts as an empty cart.
		s.logger.Warn("discarding corrupt cart data", slog.String("error", err.Error()))
		return domain.CartItems{}
	}
	return items
}

func (s *Store) commit(ctx context.Context, items domain.CartItems) {
	if s.storage == nil {
		return
	}

	data, err := json.Marshal(items)
	if err != nil {
		s.logger.Warn("encode cart", slog.String("error", err.Error()))
		return
	}
	if err := s.storage.Set(ctx, storage.KeyCart, data); err != nil {
		s.logger.Warn("persist cart", slog.String("error", err.Error()))
	}
}
