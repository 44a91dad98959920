package api

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	apperrors "github.com/mirajehossain/ecom-customer/pkg/errors"

	"github.com/mirajehossain/ecom-customer/internal/domain"
)

// OrderCartItem is a cart line in the order creation payload.
type OrderCartItem struct {
	ProductID int64 `json:"product_id"`
	VariantID int64 `json:"variant_id"`
	Quantity  int   `json:"quantity"`
}

// CreateOrderRequest is the order creation payload.
type CreateOrderRequest struct {
	CartItems       []OrderCartItem        `json:"cart_items"`
	ShippingAddress domain.ShippingAddress `json:"shipping_address"`
	Notes           string                 `json:"notes"`
}

// OrderDetail is the order endpoint's detail envelope.
type OrderDetail struct {
	Order domain.Order       `json:"order"`
	Items []domain.OrderItem `json:"items"`
}

// OrdersService calls the order endpoints.
type OrdersService struct {
	c *Client
}

// createOrderResponse covers every id placement the API has been observed
// to use: {"data":{"id":N}}, {"id":N} and {"order":{"id":N}}.
type createOrderResponse struct {
	ID   int64 `json:"id"`
	Data *struct {
		ID int64 `json:"id"`
	} `json:"data"`
	Order *struct {
		ID int64 `json:"id"`
	} `json:"order"`
}

func (r createOrderResponse) orderID() int64 {
	switch {
	case r.Data != nil && r.Data.ID != 0:
		return r.Data.ID
	case r.ID != 0:
		return r.ID
	case r.Order != nil && r.Order.ID != 0:
		return r.Order.ID
	default:
		return 0
	}
}

// Create submits an order and returns the created order id. The request
// carries an idempotency key so a retried submission cannot double-charge.
func (s OrdersService) Create(ctx context.Context, req CreateOrderRequest) (int64, error) {
	header := http.Header{}
	header.Set("Idempotency-Key", uuid.NewString())

	var resp createOrderResponse
	if err := s.c.do(ctx, http.MethodPost, "/orders", nil, header, req, &resp); err != nil {
		return 0, fmt.Errorf("create order: %w", err)
	}

	id := resp.orderID()
	if id == 0 {
		return 0, fmt.Errorf("create order: %w",
			apperrors.Internal(fmt.Errorf("response carried no order id")))
	}
	return id, nil
}

// List fetches the caller's order history.
func (s OrdersService) List(ctx context.Context) ([]domain.Order, error) {
	var resp struct {
		Orders []domain.Order `json:"orders"`
	}
	if err := s.c.get(ctx, "/orders", nil, &resp); err != nil {
		return nil, fmt.Errorf("list orders: %w", err)
	}
	return resp.Orders, nil
}

// GetByID fetches one order with its line items.
func (s OrdersService) GetByID(ctx context.Context, id int64) (*OrderDetail, error) {
	var detail OrderDetail
	if err := s.c.get(ctx, "/orders/"+strconv.FormatInt(id, 10), nil, &detail); err != nil {
		return nil, fmt.Errorf("get order %d: %w", id, err)
	}
	return &detail, nil
}
