package paystack

import (
	"context"
	"net/http"
)

// ProductsService manages the product inventory sold through payment pages
type ProductsService service

// Product is an item for sale
type Product struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductCode  string `json:"product_code"`
	Slug         string `json:"slug,omitempty"`
	Price        int64  `json:"price"`
	Currency     string `json:"currency"`
	Quantity     int    `json:"quantity"`
	QuantitySold *int   `json:"quantity_sold"`
	Type         string `json:"type,omitempty"`
	Unlimited    bool   `json:"unlimited"`
	Active       bool   `json:"active"`
	InStock      bool   `json:"in_stock"`
	Metadata     any    `json:"metadata,omitempty"`
	Integration  int64  `json:"integration"`
	Domain       string `json:"domain"`
	CreatedAt    string `json:"createdAt,omitempty"`
	UpdatedAt    string `json:"updatedAt,omitempty"`
}

// CreateProductParams creates a product
type CreateProductParams struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Price       int64    `json:"price" validate:"required,gt=0"`
	Currency    Currency `json:"currency" validate:"required,currency"`
	Unlimited   *bool    `json:"unlimited,omitempty"`
	Quantity    int      `json:"quantity,omitempty" validate:"omitempty,gt=0"`
	Metadata    Metadata `json:"metadata,omitempty"`
}

// ListProductsParams filters List
type ListProductsParams struct {
	Pagination
}

// UpdateProductParams updates the product identified by ID
type UpdateProductParams struct {
	ID int64 `json:"-" url:"-" path:"id" validate:"required"`
	CreateProductParams
}

// Create creates a product
func (s *ProductsService) Create(ctx context.Context, params *CreateProductParams) (*Response[Product], error) {
	return do[Product](ctx, s.client, http.MethodPost, "product", params)
}

// List returns products
func (s *ProductsService) List(ctx context.Context, params *ListProductsParams) (*Response[[]Product], error) {
	return do[[]Product](ctx, s.client, http.MethodGet, "product", params)
}

// Fetch returns a product
func (s *ProductsService) Fetch(ctx context.Context, id int64) (*Response[Product], error) {
	return do[Product](ctx, s.client, http.MethodGet, "product/{id}", &idParam{ID: id})
}

// Update changes a product
func (s *ProductsService) Update(ctx context.Context, params *UpdateProductParams) (*Response[Product], error) {
	return do[Product](ctx, s.client, http.MethodPut, "product/{id}", params)
}
