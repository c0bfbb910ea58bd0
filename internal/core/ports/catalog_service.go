package ports

import (
	"context"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

// CreateProductInput carries the fields accepted when creating a product.
// Price arrives in its raw string form (the storefront form posts strings);
// the service parses it. An empty Price means no price was supplied.
type CreateProductInput struct {
	Name        string
	Category    string
	Price       string
	Description string
	ImageURL    string
}

// UpdateProductInput carries a partial product update. Nil fields were not
// supplied and are left unchanged.
type UpdateProductInput struct {
	Name        *string
	Category    *string
	Price       *string
	Description *string
	ImageURL    *string
}

// CatalogService defines use-case operations for the product catalog.
type CatalogService interface {
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	// List returns products newest-first, optionally filtered to an exact
	// category match ("" = all).
	List(ctx context.Context, category string) ([]*domain.Product, error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Update(ctx context.Context, id string, input UpdateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
