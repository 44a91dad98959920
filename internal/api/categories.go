package api

import (
	"context"
	"fmt"
	"strconv"

	"github.com/mirajehossain/ecom-customer/internal/domain"
)

// CategoriesService calls the category endpoints.
type CategoriesService struct {
	c *Client
}

// List fetches all categories. Parent/child structure is expressed through
// Category.ParentID; subcategory expansion for filtering happens server-side.
func (s CategoriesService) List(ctx context.Context) ([]domain.Category, error) {
	var resp struct {
		Data []domain.Category `json:"data"`
	}
	if err := s.c.get(ctx, "/categories", nil, &resp); err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return resp.Data, nil
}

// GetByID fetches a single category.
func (s CategoriesService) GetByID(ctx context.Context, id int64) (*domain.Category, error) {
	var resp struct {
		Data domain.Category `json:"data"`
	}
	if err := s.c.get(ctx, "/categories/"+strconv.FormatInt(id, 10), nil, &resp); err != nil {
		return nil, fmt.Errorf("get category %d: %w", id, err)
	}
	return &resp.Data, nil
}
