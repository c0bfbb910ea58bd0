package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/domain"
	"github.com/pradeep1865/websiteFromStitchDesign/internal/core/ports"
)

func newCatalog() ports.CatalogService {
	return NewCatalogService(newStubStore(), zerolog.Nop())
}

func TestCatalogService_CreateAndGet(t *testing.T) {
	svc := newCatalog()

	created, err := svc.Create(context.Background(), ports.CreateProductInput{
		Name:     "Shirt",
		Category: "boys",
		Price:    "19.99",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.ID == "" {
		t.Fatal("expected populated id")
	}
	if created.Price == nil || *created.Price != 19.99 {
		t.Fatalf("expected numeric price 19.99, got %v", created.Price)
	}
	if created.Description != "" || created.ImageURL != "" {
		t.Fatalf("expected unset string fields to default to empty, got %+v", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatal("expected CreatedAt to be stamped")
	}
	if created.UpdatedAt != nil {
		t.Fatal("UpdatedAt set on a fresh product")
	}

	got, err := svc.Get(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Shirt" || got.Category != "boys" || *got.Price != 19.99 {
		t.Fatalf("unexpected product: %+v", got)
	}
}

func TestCatalogService_Create_Validation(t *testing.T) {
	svc := newCatalog()

	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Category: "boys"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for missing name, got %v", err)
	}
	if _, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Shirt"}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for missing category, got %v", err)
	}

	for _, price := range []string{"abc", "-5", "NaN", "+Inf"} {
		_, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Shirt", Category: "boys", Price: price})
		if !errors.Is(err, domain.ErrInvalidPrice) {
			t.Fatalf("price %q: expected ErrInvalidPrice, got %v", price, err)
		}
	}
}

func TestCatalogService_Create_WithoutPrice(t *testing.T) {
	svc := newCatalog()

	created, err := svc.Create(context.Background(), ports.CreateProductInput{Name: "Shirt", Category: "boys"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	if created.Price != nil {
		t.Fatalf("expected absent price, got %v", *created.Price)
	}
}

func TestCatalogService_List_FilterAndOrder(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	first, err := svc.Create(ctx, ports.CreateProductInput{Name: "Shirt", Category: "boys"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	second, err := svc.Create(ctx, ports.CreateProductInput{Name: "Dress", Category: "girls"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	all, err := svc.List(ctx, "")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("expected 2 products, got %d", len(all))
	}
	if all[0].ID != second.ID || all[1].ID != first.ID {
		t.Fatalf("expected newest first, got %s then %s", all[0].Name, all[1].Name)
	}

	boys, err := svc.List(ctx, "boys")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(boys) != 1 || boys[0].Name != "Shirt" {
		t.Fatalf("unexpected filtered result: %+v", boys)
	}

	none, err := svc.List(ctx, "shoes")
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if none == nil || len(none) != 0 {
		t.Fatalf("expected empty non-nil sequence, got %+v", none)
	}
}

func TestCatalogService_Update_PriceOnly(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateProductInput{
		Name:        "Shirt",
		Category:    "boys",
		Price:       "19.99",
		Description: "cotton",
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	price := "9.99"
	updated, err := svc.Update(ctx, created.ID, ports.UpdateProductInput{Price: &price})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Price == nil || *updated.Price != 9.99 {
		t.Fatalf("expected price 9.99, got %v", updated.Price)
	}
	if updated.Name != "Shirt" || updated.Category != "boys" || updated.Description != "cotton" {
		t.Fatalf("untouched fields changed: %+v", updated)
	}
	if updated.UpdatedAt == nil {
		t.Fatal("expected UpdatedAt to be stamped")
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatal("CreatedAt changed on update")
	}
}

func TestCatalogService_Update_Validation(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateProductInput{Name: "Shirt", Category: "boys"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	empty := ""
	if _, err := svc.Update(ctx, created.ID, ports.UpdateProductInput{Name: &empty}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty name, got %v", err)
	}
	if _, err := svc.Update(ctx, created.ID, ports.UpdateProductInput{Category: &empty}); !errors.Is(err, domain.ErrMissingField) {
		t.Fatalf("expected ErrMissingField for empty category, got %v", err)
	}

	bad := "not-a-number"
	if _, err := svc.Update(ctx, created.ID, ports.UpdateProductInput{Price: &bad}); !errors.Is(err, domain.ErrInvalidPrice) {
		t.Fatalf("expected ErrInvalidPrice, got %v", err)
	}
}

func TestCatalogService_Update_Missing(t *testing.T) {
	svc := newCatalog()

	name := "Shirt"
	_, err := svc.Update(context.Background(), "no-such-id", ports.UpdateProductInput{Name: &name})
	if !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound, got %v", err)
	}
}

func TestCatalogService_DeleteThenGet(t *testing.T) {
	svc := newCatalog()
	ctx := context.Background()

	created, err := svc.Create(ctx, ports.CreateProductInput{Name: "Shirt", Category: "boys"})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := svc.Delete(ctx, created.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, err := svc.Get(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound after delete, got %v", err)
	}
	if err := svc.Delete(ctx, created.ID); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("expected ErrProductNotFound on second delete, got %v", err)
	}
}
