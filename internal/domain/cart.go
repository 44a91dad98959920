package domain

// CartItem is a single line in the shopping cart. ID equals the product id
// for this catalog; there is no separate per-line identity.
type CartItem struct {
	ID        int64  `json:"id"`
	ProductID int64  `json:"product_id"`
	Name      string `json:"name"`
	Price     Price  `json:"price"`
	Image     string `json:"image,omitempty"`
	Quantity  int    `json:"quantity"`
}

// CartItems is an ordered cart snapshot.
type CartItems []CartItem

// FindIndex returns the index of the item with the given id, or -1.
func (items CartItems) FindIndex(id int64) int {
	for i := range items {
		if items[i].ID == id {
			return i
		}
	}
	return -1
}

// Count returns the total unit count across all lines.
func (items CartItems) Count() int {
	var count int
	for _, item := range items {
		count += item.Quantity
	}
	return count
}

// Subtotal returns the summed price of all lines.
func (items CartItems) Subtotal() Price {
	var total Price
	for _, item := range items {
		total += item.Price * Price(item.Quantity)
	}
	return total
}
