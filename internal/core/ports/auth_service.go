package ports

import (
	"context"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
)

// AuthService registers accounts and checks credentials. Login performs a
// one-shot credential check; it issues no token and keeps no session state.
type AuthService interface {
	Register(ctx context.Context, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*domain.User, error)
	// Profile returns the account registered under email, or
	// domain.ErrUserNotFound.
	Profile(ctx context.Context, email string) (*domain.User, error)
}
