package api

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"github.com/mirajehossain/ecom-customer/internal/domain"
)

// ListFilter holds the product listing query. Zero values mean "not
// filtered"; MinPrice and MaxPrice stay strings because they travel as raw
// form input.
type ListFilter struct {
	Page                 int
	Limit                int
	Search               string
	CategoryID           int64
	Sort                 string
	MinPrice             string
	MaxPrice             string
	IncludeSubcategories bool
}

// Pagination is the paging envelope the listing endpoint returns.
type Pagination struct {
	Page  int `json:"page"`
	Pages int `json:"pages"`
	Total int `json:"total"`
}

// ProductPage is one page of listing results.
type ProductPage struct {
	Products   []domain.Product `json:"products"`
	Pagination Pagination       `json:"pagination"`
}

// ProductsService calls the product endpoints.
type ProductsService struct {
	c *Client
}

// List fetches one page of products matching the filter.
func (s ProductsService) List(ctx context.Context, filter ListFilter) (*ProductPage, error) {
	query := url.Values{}
	if filter.Page > 0 {
		query.Set("page", strconv.Itoa(filter.Page))
	}
	if filter.Limit > 0 {
		query.Set("limit", strconv.Itoa(filter.Limit))
	}
	query.Set("search", filter.Search)
	if filter.CategoryID > 0 {
		query.Set("category_id", strconv.FormatInt(filter.CategoryID, 10))
	}
	if filter.Sort != "" {
		query.Set("sort", filter.Sort)
	}
	if filter.MinPrice != "" {
		query.Set("min_price", filter.MinPrice)
	}
	if filter.MaxPrice != "" {
		query.Set("max_price", filter.MaxPrice)
	}
	if filter.IncludeSubcategories {
		query.Set("include_subcategories", "true")
	}

	var page ProductPage
	if err := s.c.get(ctx, "/products", query, &page); err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return &page, nil
}

// GetByID fetches a single product.
func (s ProductsService) GetByID(ctx context.Context, id int64) (*domain.Product, error) {
	var resp struct {
		Data domain.Product `json:"data"`
	}
	if err := s.c.get(ctx, "/products/"+strconv.FormatInt(id, 10), nil, &resp); err != nil {
		return nil, fmt.Errorf("get product %d: %w", id, err)
	}
	return &resp.Data, nil
}

// GetFeatured fetches up to limit featured products.
func (s ProductsService) GetFeatured(ctx context.Context, limit int) ([]domain.Product, error) {
	query := url.Values{}
	if limit > 0 {
		query.Set("limit", strconv.Itoa(limit))
	}

	var resp struct {
		Products []domain.Product `json:"products"`
	}
	if err := s.c.get(ctx, "/products/featured", query, &resp); err != nil {
		return nil, fmt.Errorf("get featured products: %w", err)
	}
	return resp.Products, nil
}
