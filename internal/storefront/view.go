// Package storefront holds the per-view catalog browsing state: the current
// product, the selected variant, and the order quantity. Each view owns its
// state exclusively; nothing here is shared between views.
package storefront

import (
	"context"
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/order"
)

var (
	ErrStaleLoad = errors.New("load superseded by a newer request")
	ErrNotReady  = errors.New("view has no loaded product")
)

// Loader fetches a product with its variants.
type Loader interface {
	GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error)
}

// ProductView is the detail-view state machine. The selection starts at the
// first variant when variants exist; selecting an unavailable variant is
// allowed for viewing, but Order refuses it.
type ProductView struct {
	loader  Loader
	handoff *order.Handoff

	mu       sync.Mutex
	gen      uint64
	loading  bool
	product  *models.Product
	selected *models.Variant
	quantity int
	loadErr  error
}

func NewProductView(loader Loader, handoff *order.Handoff) *ProductView {
	return &ProductView{
		loader:   loader,
		handoff:  handoff,
		quantity: 1,
	}
}

// Load fetches the product and replaces the view state wholesale on
// completion. Concurrent loads are serialized by generation: if a newer Load
// starts before this one resolves, the resolved data is discarded and
// ErrStaleLoad is returned so the stale result never clobbers the view.
func (v *ProductView) Load(ctx context.Context, id uuid.UUID) error {
	v.mu.Lock()
	v.gen++
	gen := v.gen
	v.loading = true
	v.mu.Unlock()

	product, err := v.loader.GetProduct(ctx, id)

	v.mu.Lock()
	defer v.mu.Unlock()
	if gen != v.gen {
		return ErrStaleLoad
	}
	v.loading = false
	v.loadErr = err
	if err != nil {
		v.product = nil
		v.selected = nil
		return err
	}

	v.product = product
	v.quantity = 1
	v.selected = product.DefaultVariant()
	return nil
}

// SelectVariant moves the selection to the variant with the given id. The
// transition is unconditional for any variant of the loaded product, even an
// unavailable one; availability only blocks ordering.
func (v *ProductView) SelectVariant(id uuid.UUID) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.product == nil {
		return false
	}
	for i := range v.product.Variants {
		if v.product.Variants[i].ID == id {
			v.selected = &v.product.Variants[i]
			return true
		}
	}
	return false
}

// IncrementQuantity raises the order quantity by one.
func (v *ProductView) IncrementQuantity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.quantity++
	return v.quantity
}

// DecrementQuantity lowers the order quantity, never below one.
func (v *ProductView) DecrementQuantity() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.quantity > 1 {
		v.quantity--
	}
	return v.quantity
}

// Order composes the order message for the current selection. It fails when
// no product is loaded or when the selected variant is unavailable; in the
// latter case the handoff is never invoked.
func (v *ProductView) Order() (*order.Summary, error) {
	v.mu.Lock()
	defer v.mu.Unlock()
	if v.loading || v.product == nil {
		return nil, ErrNotReady
	}
	if v.selected != nil && !v.selected.IsAvailable {
		return nil, order.ErrVariantUnavailable
	}
	return v.handoff.Compose(v.product, v.selected, v.quantity)
}

// Snapshot is an immutable copy of the view state for rendering.
type Snapshot struct {
	Loading         bool
	Product         *models.Product
	SelectedVariant *models.Variant
	Quantity        int
	Err             error
}

func (v *ProductView) Snapshot() Snapshot {
	v.mu.Lock()
	defer v.mu.Unlock()

	snap := Snapshot{
		Loading:  v.loading,
		Quantity: v.quantity,
		Err:      v.loadErr,
	}
	if v.product != nil {
		product := *v.product
		snap.Product = &product
	}
	if v.selected != nil {
		selected := *v.selected
		snap.SelectedVariant = &selected
	}
	return snap
}
