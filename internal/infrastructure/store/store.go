// Package store selects the record backend at first use: MongoDB when it is
// reachable, in-process tables otherwise. The decision is made exactly once
// per process and never revisited, so every caller sees the same backend for
// the lifetime of the instance.
package store

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"github.com/rs/zerolog"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/api/metrics"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/ports"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/db/memory"
	mongodb "github.com/pradeep1865/websiteFromStitchDesign/internal/infrastructure/db/mongo"
)

// Kind identifies which backend a Store resolved to.
type Kind string

const (
	KindMongo  Kind = "mongo"
	KindMemory Kind = "memory"
)

// Backend bundles the repositories of the resolved backend together with
// its health and teardown hooks. Both hooks are nil for the in-memory
// backend, which has nothing to check or release.
type Backend struct {
	Kind     Kind
	Users    ports.UserRepository
	Products ports.ProductRepository

	ping  func(ctx context.Context) error
	close func(ctx context.Context) error
}

// Ping reports whether the backend is reachable.
func (b *Backend) Ping(ctx context.Context) error {
	if b.ping == nil {
		return nil
	}
	return b.ping(ctx)
}

type connectFunc func(ctx context.Context) (*Backend, error)

// Store resolves and hands out the record backend. The zero value is not
// usable; construct with New.
type Store struct {
	connect connectFunc
	log     zerolog.Logger

	once    sync.Once
	backend atomic.Pointer[Backend]
}

// New returns a Store that will connect to MongoDB with cfg on first use
// and fall back to in-process tables if that attempt fails.
func New(cfg mongodb.Config, log zerolog.Logger) *Store {
	return &Store{connect: mongoConnect(cfg), log: log}
}

func mongoConnect(cfg mongodb.Config) connectFunc {
	return func(ctx context.Context) (*Backend, error) {
		client, db, err := mongodb.Connect(ctx, cfg)
		if err != nil {
			return nil, err
		}

		users := mongodb.NewUserRepository(db)
		products := mongodb.NewProductRepository(db)

		// A backend whose indexes cannot be created would accept duplicate
		// emails, so index failure counts as connection failure.
		if err := users.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure user indexes: %w", err)
		}
		if err := products.EnsureIndexes(ctx); err != nil {
			_ = client.Disconnect(ctx)
			return nil, fmt.Errorf("ensure product indexes: %w", err)
		}

		return &Backend{
			Kind:     KindMongo,
			Users:    users,
			Products: products,
			ping: func(ctx context.Context) error {
				return client.Ping(ctx, nil)
			},
			close: client.Disconnect,
		}, nil
	}
}

// Backend returns the resolved backend, resolving it on first call. The
// first caller performs the single connection attempt; concurrent callers
// block until it finishes, and every call afterwards returns the same
// *Backend without further probing.
func (s *Store) Backend(ctx context.Context) *Backend {
	s.once.Do(func() { s.resolve(ctx) })
	return s.backend.Load()
}

func (s *Store) resolve(ctx context.Context) {
	// The decision binds the whole process, so it must not be made by a
	// caller whose request was already canceled.
	ctx = context.WithoutCancel(ctx)

	b, err := s.connect(ctx)
	if err != nil {
		s.log.Warn().Err(err).Msg("mongodb unreachable, falling back to in-memory store")
		b = &Backend{
			Kind:     KindMemory,
			Users:    memory.NewUserRepository(),
			Products: memory.NewProductRepository(),
		}
	}

	metrics.StoreResolutionsTotal.WithLabelValues(string(b.Kind)).Inc()
	s.log.Info().Str("backend", string(b.Kind)).Msg("record store resolved")
	s.backend.Store(b)
}

// Users returns the user repository of the active backend.
func (s *Store) Users(ctx context.Context) ports.UserRepository {
	return s.Backend(ctx).Users
}

// Products returns the product repository of the active backend.
func (s *Store) Products(ctx context.Context) ports.ProductRepository {
	return s.Backend(ctx).Products
}

// Close releases backend resources. Calling it before any resolution took
// place is a no-op; it never triggers a resolution itself.
func (s *Store) Close(ctx context.Context) error {
	b := s.backend.Load()
	if b == nil || b.close == nil {
		return nil
	}
	return b.close(ctx)
}
