package catalog

import "github.com/nareldigital/narel/internal/models"

// Normalize collapses legacy variant pricing into a single representation
// and drops variants that cannot be shown at all. After normalization every
// variant carries an absolute price: a variant with no price of its own but
// a legacy price adjustment gets the product base price plus the adjustment,
// floored at zero. Out-of-range discount percentages are clamped so later
// resolution never produces a negative price.
func Normalize(product *models.Product) {
	if product == nil {
		return
	}
	if product.BasePrice < 0 {
		product.BasePrice = 0
	}
	product.DiscountPercent = clampPercent(product.DiscountPercent)

	kept := product.Variants[:0]
	for _, variant := range product.Variants {
		if variant.Name == "" {
			continue
		}
		if variant.Price <= 0 && variant.PriceAdjustment != 0 {
			variant.Price = product.BasePrice + variant.PriceAdjustment
		}
		if variant.Price < 0 {
			variant.Price = 0
		}
		variant.PriceAdjustment = 0
		variant.DiscountPercent = clampPercent(variant.DiscountPercent)
		kept = append(kept, variant)
	}
	product.Variants = kept
}
