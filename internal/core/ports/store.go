package ports

import "context"

// Store hands out the repositories of whichever backend is active. The
// first call resolves the backend (one durable connection attempt, then a
// permanent in-process fallback); every later call returns the same
// decision. Implementations must be safe for concurrent first use.
type Store interface {
	Users(ctx context.Context) UserRepository
	Products(ctx context.Context) ProductRepository
}
