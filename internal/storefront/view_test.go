package storefront

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/order"
)

type fakeLoader struct {
	products map[uuid.UUID]*models.Product
	hooks    map[uuid.UUID]func()
}

func (f *fakeLoader) GetProduct(_ context.Context, id uuid.UUID) (*models.Product, error) {
	if hook, ok := f.hooks[id]; ok {
		hook()
	}
	product, ok := f.products[id]
	if !ok {
		return nil, errors.New("product not found")
	}
	return product, nil
}

func testProduct() *models.Product {
	return &models.Product{
		ID:        uuid.New(),
		Name:      "CapCut Pro",
		BasePrice: 150000,
		Variants: []models.Variant{
			{ID: uuid.New(), Name: "1 Bulan", Price: 50000, IsAvailable: true},
			{ID: uuid.New(), Name: "1 Tahun", Price: 150000, IsAvailable: false},
		},
	}
}

func TestProductView_LoadSelectsDefaultVariant(t *testing.T) {
	t.Parallel()

	product := testProduct()
	loader := &fakeLoader{products: map[uuid.UUID]*models.Product{product.ID: product}}
	view := NewProductView(loader, order.NewHandoff("628111", nil))

	if err := view.Load(context.Background(), product.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	snap := view.Snapshot()
	if snap.Product == nil || snap.Product.ID != product.ID {
		t.Fatalf("expected loaded product, got %+v", snap.Product)
	}
	if snap.SelectedVariant == nil || snap.SelectedVariant.Name != "1 Bulan" {
		t.Fatalf("expected first variant selected, got %+v", snap.SelectedVariant)
	}
	if snap.Quantity != 1 {
		t.Fatalf("expected quantity reset to 1, got %d", snap.Quantity)
	}
}

func TestProductView_StaleLoadIsDiscarded(t *testing.T) {
	t.Parallel()

	first := testProduct()
	second := testProduct()
	gate := make(chan struct{})
	started := make(chan struct{})
	loader := &fakeLoader{
		products: map[uuid.UUID]*models.Product{first.ID: first, second.ID: second},
		hooks: map[uuid.UUID]func(){
			first.ID: func() {
				close(started)
				<-gate
			},
		},
	}

	view := NewProductView(loader, order.NewHandoff("628111", nil))

	firstDone := make(chan error, 1)
	go func() {
		firstDone <- view.Load(context.Background(), first.ID)
	}()

	// Wait until the first fetch is in flight, run the second load to
	// completion, then let the first resolve.
	<-started
	if err := view.Load(context.Background(), second.ID); err != nil {
		t.Fatalf("expected second load to succeed, got %v", err)
	}
	close(gate)

	if err := <-firstDone; !errors.Is(err, ErrStaleLoad) {
		t.Fatalf("expected ErrStaleLoad, got %v", err)
	}

	snap := view.Snapshot()
	if snap.Product == nil || snap.Product.ID != second.ID {
		t.Fatalf("expected newest product to win, got %+v", snap.Product)
	}
}

func TestProductView_SelectVariant(t *testing.T) {
	t.Parallel()

	product := testProduct()
	loader := &fakeLoader{products: map[uuid.UUID]*models.Product{product.ID: product}}
	view := NewProductView(loader, order.NewHandoff("628111", nil))

	if err := view.Load(context.Background(), product.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	// Unavailable variants are still selectable for viewing.
	if !view.SelectVariant(product.Variants[1].ID) {
		t.Fatal("expected unavailable variant to be selectable")
	}
	if snap := view.Snapshot(); snap.SelectedVariant.Name != "1 Tahun" {
		t.Fatalf("expected selection to move, got %+v", snap.SelectedVariant)
	}

	if view.SelectVariant(uuid.New()) {
		t.Fatal("expected unknown variant id to be rejected")
	}
	if snap := view.Snapshot(); snap.SelectedVariant.Name != "1 Tahun" {
		t.Fatalf("expected selection to stay, got %+v", snap.SelectedVariant)
	}
}

func TestProductView_QuantityFloorsAtOne(t *testing.T) {
	t.Parallel()

	view := NewProductView(&fakeLoader{}, order.NewHandoff("628111", nil))

	if got := view.DecrementQuantity(); got != 1 {
		t.Fatalf("expected quantity floor of 1, got %d", got)
	}
	view.IncrementQuantity()
	if got := view.IncrementQuantity(); got != 3 {
		t.Fatalf("expected quantity 3, got %d", got)
	}
	view.DecrementQuantity()
	if snap := view.Snapshot(); snap.Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", snap.Quantity)
	}
}

func TestProductView_Order(t *testing.T) {
	t.Parallel()

	product := testProduct()
	loader := &fakeLoader{products: map[uuid.UUID]*models.Product{product.ID: product}}
	view := NewProductView(loader, order.NewHandoff("628111", nil))

	if _, err := view.Order(); !errors.Is(err, ErrNotReady) {
		t.Fatalf("expected ErrNotReady before load, got %v", err)
	}

	if err := view.Load(context.Background(), product.ID); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	summary, err := view.Order()
	if err != nil {
		t.Fatalf("expected order to compose, got %v", err)
	}
	if summary.UnitPrice != 50000 {
		t.Fatalf("expected unit price 50000, got %d", summary.UnitPrice)
	}

	view.SelectVariant(product.Variants[1].ID)
	if _, err := view.Order(); !errors.Is(err, order.ErrVariantUnavailable) {
		t.Fatalf("expected ErrVariantUnavailable, got %v", err)
	}
}
