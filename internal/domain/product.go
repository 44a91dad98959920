package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// Price is a product price as returned by the commerce API. The API is not
// consistent about the wire type: some endpoints return a JSON number,
// others a decimal string. Both decode into Price.
type Price float64

// UnmarshalJSON accepts either a JSON number or a numeric string.
func (p *Price) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" || s == `""` {
		*p = 0
		return nil
	}
	s = strings.Trim(s, `"`)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fmt.Errorf("parse price %q: %w", s, err)
	}
	*p = Price(v)
	return nil
}

// String formats the price with two decimal places.
func (p Price) String() string {
	return strconv.FormatFloat(float64(p), 'f', 2, 64)
}

// ProductImage is an image attached to a product.
type ProductImage struct {
	ID        int64  `json:"id,omitempty"`
	ImageURL  string `json:"image_url"`
	IsPrimary bool   `json:"is_primary"`
	SortOrder int    `json:"sort_order,omitempty"`
}

// Product is a catalog product snapshot as returned by the API.
type Product struct {
	ID          int64          `json:"id"`
	Name        string         `json:"name"`
	Description string         `json:"description,omitempty"`
	Price       Price          `json:"price"`
	CategoryID  int64          `json:"category_id,omitempty"`
	Images      []ProductImage `json:"images,omitempty"`
	// Image is the flat single-image field some API responses carry
	// instead of the images collection.
	Image    string `json:"image,omitempty"`
	Stock    int    `json:"stock,omitempty"`
	Featured bool   `json:"featured,omitempty"`

	// Raw preserves the full API payload so a stored snapshot (e.g. a
	// wishlist entry) round-trips fields this client does not model.
	Raw json.RawMessage `json:"-"`
}

// UnmarshalJSON decodes the product and retains the original payload in Raw.
func (p *Product) UnmarshalJSON(data []byte) error {
	type alias Product
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	*p = Product(a)
	p.Raw = append(json.RawMessage(nil), data...)
	return nil
}

// MarshalJSON emits the original API payload when one was captured, so a
// persisted snapshot keeps fields this client does not model.
func (p Product) MarshalJSON() ([]byte, error) {
	if len(p.Raw) > 0 {
		return p.Raw, nil
	}
	type alias Product
	return json.Marshal(alias(p))
}

// PrimaryImage selects the display image: the primary-flagged image first,
// then the first image in the collection, then the flat image field.
// Returns "" when the product has no image at all.
func (p Product) PrimaryImage() string {
	for _, img := range p.Images {
		if img.IsPrimary && img.ImageURL != "" {
			return img.ImageURL
		}
	}
	if len(p.Images) > 0 && p.Images[0].ImageURL != "" {
		return p.Images[0].ImageURL
	}
	return p.Image
}

// Category is a product category. ParentID is zero for top-level categories.
type Category struct {
	ID       int64  `json:"id"`
	Name     string `json:"name"`
	ParentID int64  `json:"parent_id,omitempty"`
}

// IsTopLevel reports whether the category has no parent.
func (c Category) IsTopLevel() bool {
	return c.ParentID == 0
}
