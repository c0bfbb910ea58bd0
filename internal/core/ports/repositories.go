package ports

import (
	"context"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

// UserRepository defines persistence operations for user accounts.
// Email uniqueness is enforced at this level by every implementation.
type UserRepository interface {
	// FindByEmail returns the user registered under email, or
	// domain.ErrUserNotFound.
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	// Insert persists a new user and returns it with its id populated.
	// Returns domain.ErrDuplicateEmail when the email is already taken.
	Insert(ctx context.Context, user *domain.User) (*domain.User, error)
}

// ProductPatch carries a partial product update. Nil fields are left
// untouched by Update; non-nil fields overwrite the stored value.
type ProductPatch struct {
	Name        *string
	Category    *string
	Price       *float64
	Description *string
	ImageURL    *string
}

// ProductRepository defines persistence operations for catalog products.
//
// Ids are opaque strings whose internal form is backend-specific: the
// durable backend uses its native document ids, the transient backend
// generated tokens. Operations taking an id return domain.ErrInvalidID
// when the string is not a well-formed id for the active backend.
type ProductRepository interface {
	// Find returns products newest-created first, optionally restricted
	// to an exact category match. An empty category means no filter.
	Find(ctx context.Context, category string) ([]*domain.Product, error)
	// Get returns the product with the given id, or domain.ErrProductNotFound.
	Get(ctx context.Context, id string) (*domain.Product, error)
	// Insert persists a new product and returns it with its id populated.
	Insert(ctx context.Context, product *domain.Product) (*domain.Product, error)
	// Update merges the non-nil patch fields into the stored record and
	// stamps UpdatedAt. Returns domain.ErrProductNotFound when no record
	// matches.
	Update(ctx context.Context, id string, patch ProductPatch) (*domain.Product, error)
	// Delete removes the product and reports whether a record was removed.
	Delete(ctx context.Context, id string) (bool, error)
}
