// Package checkout submits the current cart as an order.
package checkout

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mirajehossain/ecom-customer/pkg/validator"

	"github.com/mirajehossain/ecom-customer/internal/api"
	"github.com/mirajehossain/ecom-customer/internal/domain"
)

// OrderCreator is the order submission surface the service consumes.
type OrderCreator interface {
	Create(ctx context.Context, req api.CreateOrderRequest) (int64, error)
}

// Cart is the cart surface the service consumes.
type Cart interface {
	Get(ctx context.Context) domain.CartItems
	Clear(ctx context.Context)
}

// Service turns the cart plus a shipping address into a created order. The
// cart is cleared only after the API confirms the order; any failure leaves
// it intact.
type Service struct {
	orders OrderCreator
	cart   Cart
	logger *slog.Logger
}

// NewService creates a checkout service.
func NewService(orders OrderCreator, cart Cart, logger *slog.Logger) *Service {
	return &Service{orders: orders, cart: cart, logger: logger}
}

// Submit validates the address, submits the cart and returns the created
// order id. An empty cart is rejected before any request is made.
func (s *Service) Submit(ctx context.Context, address domain.ShippingAddress, notes string) (int64, error) {
	items := s.cart.Get(ctx)
	if len(items) == 0 {
		return 0, fmt.Errorf("checkout: cart is empty")
	}

	if err := validator.Validate(address); err != nil {
		return 0, fmt.Errorf("checkout: %w", err)
	}

	req := api.CreateOrderRequest{
		CartItems:       orderLines(items),
		ShippingAddress: address,
		Notes:           notes,
	}

	id, err := s.orders.Create(ctx, req)
	if err != nil {
		return 0, err
	}

	s.logger.Info("order created",
		slog.Int64("order_id", id),
		slog.Int("items", len(items)),
	)
	s.cart.Clear(ctx)
	return id, nil
}

// orderLines maps cart lines to the order payload. ProductID falls back to
// the line id when the snapshot predates the product_id field.
func orderLines(items domain.CartItems) []api.OrderCartItem {
	lines := make([]api.OrderCartItem, 0, len(items))
	for _, item := range items {
		productID := item.ProductID
		if productID == 0 {
			productID = item.ID
		}
		lines = append(lines, api.OrderCartItem{
			ProductID: productID,
			Quantity:  item.Quantity,
		})
	}
	return lines
}
