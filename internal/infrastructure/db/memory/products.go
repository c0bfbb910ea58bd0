package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/ports"
)

// ProductRepository is an in-process product table. Ids are generated
// tokens rather than database ids, so Get/Update/Delete accept any string
// and report existence by lookup alone. The seq counter breaks ordering
// ties between products created within the same clock tick.
type ProductRepository struct {
	mu   sync.RWMutex
	rows map[string]productRow
	seq  uint64
}

type productRow struct {
	product domain.Product
	seq     uint64
}

func NewProductRepository() *ProductRepository {
	return &ProductRepository{rows: make(map[string]productRow)}
}

// cloneProduct copies p including its pointer fields, so table rows and
// caller-held structs never alias.
func cloneProduct(p domain.Product) domain.Product {
	if p.Price != nil {
		price := *p.Price
		p.Price = &price
	}
	if p.UpdatedAt != nil {
		at := *p.UpdatedAt
		p.UpdatedAt = &at
	}
	return p
}

func (r *ProductRepository) Find(_ context.Context, category string) ([]*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	matched := make([]productRow, 0, len(r.rows))
	for _, row := range r.rows {
		if category != "" && row.product.Category != category {
			continue
		}
		matched = append(matched, row)
	}

	sort.Slice(matched, func(i, j int) bool {
		a, b := matched[i], matched[j]
		if !a.product.CreatedAt.Equal(b.product.CreatedAt) {
			return a.product.CreatedAt.After(b.product.CreatedAt)
		}
		return a.seq > b.seq
	})

	out := make([]*domain.Product, 0, len(matched))
	for _, row := range matched {
		p := cloneProduct(row.product)
		out = append(out, &p)
	}
	return out, nil
}

func (r *ProductRepository) Get(_ context.Context, id string) (*domain.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	p := cloneProduct(row.product)
	return &p, nil
}

func (r *ProductRepository) Insert(_ context.Context, product *domain.Product) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	created := cloneProduct(*product)
	created.ID = uuid.NewString()
	r.seq++
	r.rows[created.ID] = productRow{product: created, seq: r.seq}

	out := cloneProduct(created)
	return &out, nil
}

func (r *ProductRepository) Update(_ context.Context, id string, patch ports.ProductPatch) (*domain.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	row, ok := r.rows[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}

	if patch.Name != nil {
		row.product.Name = *patch.Name
	}
	if patch.Category != nil {
		row.product.Category = *patch.Category
	}
	if patch.Price != nil {
		price := *patch.Price
		row.product.Price = &price
	}
	if patch.Description != nil {
		row.product.Description = *patch.Description
	}
	if patch.ImageURL != nil {
		row.product.ImageURL = *patch.ImageURL
	}

	now := time.Now().UTC()
	row.product.UpdatedAt = &now
	r.rows[id] = row

	p := cloneProduct(row.product)
	return &p, nil
}

func (r *ProductRepository) Delete(_ context.Context, id string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.rows[id]; !ok {
		return false, nil
	}
	delete(r.rows, id)
	return true, nil
}
