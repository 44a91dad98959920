package domain

import (
	"encoding/json"
	"fmt"
	"time"
)

// ShippingAddress is the checkout delivery form. Validation tags follow the
// fields the order API requires.
type ShippingAddress struct {
	FirstName  string `json:"first_name" validate:"required"`
	LastName   string `json:"last_name" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required"`
	Address    string `json:"address" validate:"required"`
	City       string `json:"city" validate:"required"`
	State      string `json:"state" validate:"required"`
	PostalCode string `json:"postal_code" validate:"required"`
	Country    string `json:"country,omitempty"`
}

// OrderItem is a product line inside a placed order.
type OrderItem struct {
	ProductID int64  `json:"product_id"`
	Name      string `json:"name,omitempty"`
	Price     Price  `json:"price"`
	Quantity  int    `json:"quantity"`
}

// Order is an order record as returned by the API. The shipping address
// comes back JSON-encoded inside a string field; use DecodeShippingAddress
// to unpack it.
type Order struct {
	ID              int64     `json:"id"`
	OrderNumber     string    `json:"order_number,omitempty"`
	Status          string    `json:"status,omitempty"`
	Subtotal        Price     `json:"subtotal,omitempty"`
	Tax             Price     `json:"tax,omitempty"`
	Shipping        Price     `json:"shipping,omitempty"`
	Total           Price     `json:"total,omitempty"`
	ShippingAddress string    `json:"shipping_address,omitempty"`
	Notes           string    `json:"notes,omitempty"`
	CreatedAt       time.Time `json:"created_at,omitempty"`
}

// DecodeShippingAddress unpacks the JSON-encoded shipping address field.
func (o Order) DecodeShippingAddress() (*ShippingAddress, error) {
	if o.ShippingAddress == "" {
		return nil, fmt.Errorf("order %d has no shipping address", o.ID)
	}
	var addr ShippingAddress
	if err := json.Unmarshal([]byte(o.ShippingAddress), &addr); err != nil {
		return nil, fmt.Errorf("decode shipping address: %w", err)
	}
	return &addr, nil
}
