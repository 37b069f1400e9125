package repository

import (
	"context"
	"testing"
	"time"

	"catalog/internal/domain"
)

func sampleProduct(id string) domain.Product {
	now := time.Now().UTC()
	return domain.Product{
		ProductID:     id,
		Name:          "Keyboard",
		Status:        domain.StatusActive,
		Stock:         25,
		Description:   "Mechanical keyboard",
		Price:         100,
		CreatedBy:     domain.SystemActor,
		LastUpdatedBy: domain.SystemActor,
		CreatedAt:     now,
		LastUpdatedAt: now,
	}
}

func TestMemoryStore_InsertGetReplace(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := sampleProduct("11111111-1111-1111-1111-111111111111")
	if err := store.Insert(ctx, &p); err != nil {
		t.Fatalf("insert: %v", err)
	}

	got, err := store.GetByID(ctx, p.ProductID)
	if err != nil || got.ProductID != p.ProductID {
		t.Fatalf("get: %v", err)
	}

	p.Price = 120
	p.LastUpdatedAt = time.Now().UTC()
	if err := store.Replace(ctx, &p); err != nil {
		t.Fatalf("replace: %v", err)
	}
	got, err = store.GetByID(ctx, p.ProductID)
	if err != nil || got.Price != 120 {
		t.Fatalf("after replace: %v %+v", err, got)
	}
}

func TestMemoryStore_GetView(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := sampleProduct("11111111-1111-1111-1111-111111111111")
	if err := store.Insert(ctx, &p); err != nil {
		t.Fatal(err)
	}

	v, err := store.GetView(ctx, p.ProductID)
	if err != nil {
		t.Fatalf("get view: %v", err)
	}
	if v.ProductID != p.ProductID || v.Name != p.Name || v.Price != p.Price ||
		v.CreatedBy != p.CreatedBy || !v.CreatedAt.Equal(p.CreatedAt) {
		t.Fatalf("view mismatch: %+v", v)
	}
	// вычисляемые поля проекция не заполняет
	if v.StatusName != "" || v.Discount != 0 || !v.FinalPrice.IsZero() {
		t.Fatalf("computed fields populated: %+v", v)
	}
}

func TestMemoryStore_NotFound(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	if _, err := store.GetByID(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("get: %v", err)
	}
	if _, err := store.GetView(ctx, "missing"); err != ErrNotFound {
		t.Fatalf("get view: %v", err)
	}
	p := sampleProduct("missing")
	if err := store.Replace(ctx, &p); err != ErrNotFound {
		t.Fatalf("replace: %v", err)
	}
}

func TestMemoryStore_ReturnsCopies(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	p := sampleProduct("11111111-1111-1111-1111-111111111111")
	if err := store.Insert(ctx, &p); err != nil {
		t.Fatal(err)
	}

	got, _ := store.GetByID(ctx, p.ProductID)
	got.Price = 999
	again, _ := store.GetByID(ctx, p.ProductID)
	if again.Price != 100 {
		t.Fatalf("mutation leaked into store: %+v", again)
	}
}
