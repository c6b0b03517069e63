// Package catalog implements price resolution, normalization, and import
// tooling for the product catalog.
package catalog

import (
	"github.com/nareldigital/narel/internal/models"
)

type Pricer struct{}

func NewPricer() *Pricer {
	return &Pricer{}
}

// ResolveBasePrice returns the pre-discount price for the selection: the
// variant's own price when it is positive, otherwise the product base price.
// A variant with a non-positive price is treated as carrying no price of its
// own.
func (p *Pricer) ResolveBasePrice(product *models.Product, variant *models.Variant) int64 {
	if product == nil {
		return 0
	}
	if variant != nil && variant.Price > 0 {
		return variant.Price
	}
	if product.BasePrice < 0 {
		return 0
	}
	return product.BasePrice
}

// ResolveDiscountPercent returns the discount percentage that applies to the
// selection, clamped to [0,100]. A variant percentage of zero means "not
// set" and falls through to the product percentage.
//
// A variant-level discount always applies on its own. The product-level
// percentage is honored only when the product's discount flag is enabled;
// a stray percentage with the flag off never discounts.
func (p *Pricer) ResolveDiscountPercent(product *models.Product, variant *models.Variant) int {
	if variant != nil && variant.DiscountPercent > 0 {
		return clampPercent(variant.DiscountPercent)
	}
	if product != nil && product.DiscountEnabled && product.DiscountPercent > 0 {
		return clampPercent(product.DiscountPercent)
	}
	return 0
}

// ResolveFinalPrice computes the price the buyer pays for a single unit.
// When no discount applies the result equals ResolveBasePrice exactly.
func (p *Pricer) ResolveFinalPrice(product *models.Product, variant *models.Variant) int64 {
	base := p.ResolveBasePrice(product, variant)
	pct := p.ResolveDiscountPercent(product, variant)
	if pct == 0 {
		return base
	}
	final := base - base*int64(pct)/100
	if final < 0 {
		return 0
	}
	return final
}

// Quote bundles the resolved price figures for one selection.
type Quote struct {
	BasePrice       int64 `json:"original_price"`
	FinalPrice      int64 `json:"final_price"`
	DiscountPercent int   `json:"discount_percentage,omitempty"`
}

// Discounted reports whether the final price is below the base price.
func (q Quote) Discounted() bool {
	return q.FinalPrice < q.BasePrice
}

// Resolve computes all price figures for a product with an optionally
// selected variant.
func (p *Pricer) Resolve(product *models.Product, variant *models.Variant) Quote {
	return Quote{
		BasePrice:       p.ResolveBasePrice(product, variant),
		FinalPrice:      p.ResolveFinalPrice(product, variant),
		DiscountPercent: p.ResolveDiscountPercent(product, variant),
	}
}

func clampPercent(pct int) int {
	if pct < 0 {
		return 0
	}
	if pct > 100 {
		return 100
	}
	return pct
}
