package catalog

import (
	"testing"

	"github.com/nareldigital/narel/internal/models"
)

func TestPricer_ResolveBasePrice(t *testing.T) {
	t.Parallel()

	pricer := NewPricer()

	tests := []struct {
		name    string
		product *models.Product
		variant *models.Variant
		want    int64
	}{
		{
			name:    "no variant uses product base",
			product: &models.Product{BasePrice: 500000},
			want:    500000,
		},
		{
			name:    "variant with positive price overrides base",
			product: &models.Product{BasePrice: 500000},
			variant: &models.Variant{Price: 650000},
			want:    650000,
		},
		{
			name:    "variant with zero price falls back to base",
			product: &models.Product{BasePrice: 500000},
			variant: &models.Variant{Price: 0},
			want:    500000,
		},
		{
			name:    "variant with negative price falls back to base",
			product: &models.Product{BasePrice: 500000},
			variant: &models.Variant{Price: -1},
			want:    500000,
		},
		{
			name: "nil product resolves to zero",
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pricer.ResolveBasePrice(tt.product, tt.variant); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPricer_ResolveDiscountPercent(t *testing.T) {
	t.Parallel()

	pricer := NewPricer()

	tests := []struct {
		name    string
		product *models.Product
		variant *models.Variant
		want    int
	}{
		{
			name:    "disabled product discount never applies",
			product: &models.Product{DiscountEnabled: false, DiscountPercent: 25},
			want:    0,
		},
		{
			name:    "enabled product discount applies",
			product: &models.Product{DiscountEnabled: true, DiscountPercent: 25},
			want:    25,
		},
		{
			name:    "variant discount wins over product discount",
			product: &models.Product{DiscountEnabled: true, DiscountPercent: 20},
			variant: &models.Variant{DiscountPercent: 15},
			want:    15,
		},
		{
			name:    "zero variant discount falls through to product",
			product: &models.Product{DiscountEnabled: true, DiscountPercent: 20},
			variant: &models.Variant{DiscountPercent: 0},
			want:    20,
		},
		{
			name:    "variant discount applies even with product flag off",
			product: &models.Product{DiscountEnabled: false},
			variant: &models.Variant{DiscountPercent: 10},
			want:    10,
		},
		{
			name:    "percentage above hundred is clamped",
			product: &models.Product{DiscountEnabled: true, DiscountPercent: 150},
			want:    100,
		},
		{
			name:    "negative variant percentage is ignored",
			product: &models.Product{DiscountEnabled: true, DiscountPercent: 20},
			variant: &models.Variant{DiscountPercent: -5},
			want:    20,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pricer.ResolveDiscountPercent(tt.product, tt.variant); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestPricer_ResolveFinalPrice(t *testing.T) {
	t.Parallel()

	pricer := NewPricer()

	tests := []struct {
		name    string
		product *models.Product
		variant *models.Variant
		want    int64
	}{
		{
			name:    "no discount returns base price unchanged",
			product: &models.Product{BasePrice: 500000},
			want:    500000,
		},
		{
			name:    "quarter off",
			product: &models.Product{BasePrice: 500000, DiscountEnabled: true, DiscountPercent: 25},
			want:    375000,
		},
		{
			name:    "full discount floors at zero",
			product: &models.Product{BasePrice: 500000, DiscountEnabled: true, DiscountPercent: 100},
			want:    0,
		},
		{
			name:    "variant discount applies to variant price",
			product: &models.Product{BasePrice: 100000, DiscountEnabled: false},
			variant: &models.Variant{Price: 150000, DiscountPercent: 10},
			want:    135000,
		},
		{
			name:    "integer division truncates",
			product: &models.Product{BasePrice: 99, DiscountEnabled: true, DiscountPercent: 10},
			want:    90,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := pricer.ResolveFinalPrice(tt.product, tt.variant); got != tt.want {
				t.Fatalf("expected %d, got %d", tt.want, got)
			}
		})
	}
}

func TestQuote_Discounted(t *testing.T) {
	t.Parallel()

	pricer := NewPricer()

	discounted := pricer.Resolve(&models.Product{BasePrice: 500000, DiscountEnabled: true, DiscountPercent: 25}, nil)
	if !discounted.Discounted() {
		t.Fatalf("expected quote %+v to be discounted", discounted)
	}

	full := pricer.Resolve(&models.Product{BasePrice: 500000, DiscountPercent: 25}, nil)
	if full.Discounted() {
		t.Fatalf("expected quote %+v not to be discounted", full)
	}
	if full.FinalPrice != full.BasePrice {
		t.Fatalf("expected final price to equal base price, got %d vs %d", full.FinalPrice, full.BasePrice)
	}
}
