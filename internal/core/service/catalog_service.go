package service

import (
	"context"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/ports"
)

type catalogService struct {
	store ports.Store
	log   zerolog.Logger
}

// NewCatalogService returns a CatalogService backed by the record store.
func NewCatalogService(store ports.Store, log zerolog.Logger) ports.CatalogService {
	return &catalogService{store: store, log: log}
}

func (s *catalogService) Create(ctx context.Context, input ports.CreateProductInput) (*domain.Product, error) {
	if input.Name == "" || input.Category == "" {
		return nil, domain.ErrMissingField
	}

	price, err := parsePrice(input.Price)
	if err != nil {
		return nil, err
	}

	created, err := s.store.Products(ctx).Insert(ctx, &domain.Product{
		Name:        input.Name,
		Category:    input.Category,
		Price:       price,
		Description: input.Description,
		ImageURL:    input.ImageURL,
		CreatedAt:   time.Now().UTC(),
	})
	if err != nil {
		s.log.Error().Err(err).Msg("failed to insert product")
		return nil, err
	}

	s.log.Info().Str("product_id", created.ID).Str("category", created.Category).Msg("product created")
	return created, nil
}

func (s *catalogService) List(ctx context.Context, category string) ([]*domain.Product, error) {
	return s.store.Products(ctx).Find(ctx, category)
}

func (s *catalogService) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.store.Products(ctx).Get(ctx, id)
}

func (s *catalogService) Update(ctx context.Context, id string, input ports.UpdateProductInput) (*domain.Product, error) {
	// Name and category are mandatory on every product, so a supplied empty
	// value is rejected rather than merged.
	if input.Name != nil && *input.Name == "" {
		return nil, domain.ErrMissingField
	}
	if input.Category != nil && *input.Category == "" {
		return nil, domain.ErrMissingField
	}

	patch := ports.ProductPatch{
		Name:        input.Name,
		Category:    input.Category,
		Description: input.Description,
		ImageURL:    input.ImageURL,
	}
	if input.Price != nil {
		price, err := parsePrice(*input.Price)
		if err != nil {
			return nil, err
		}
		patch.Price = price
	}

	updated, err := s.store.Products(ctx).Update(ctx, id, patch)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("product_id", updated.ID).Msg("product updated")
	return updated, nil
}

func (s *catalogService) Delete(ctx context.Context, id string) error {
	removed, err := s.store.Products(ctx).Delete(ctx, id)
	if err != nil {
		return err
	}
	if !removed {
		return domain.ErrProductNotFound
	}

	s.log.Info().Str("product_id", id).Msg("product deleted")
	return nil
}

// parsePrice converts the raw form value to a numeric price. Empty means no
// price was supplied; anything else must parse to a non-negative number.
func parsePrice(raw string) (*float64, error) {
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return nil, fmt.Errorf("%w: %q", domain.ErrInvalidPrice, raw)
	}
	return &v, nil
}
