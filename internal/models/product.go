package models

import (
	"time"

	"github.com/google/uuid"
)

// ProductType classifies what kind of digital good a product is.
type ProductType string

const (
	TypePremiumApp     ProductType = "premium_app"
	TypeDigitalService ProductType = "digital_service"
	TypeDigitalProduct ProductType = "digital_product"
)

// Product is a digital good listed in the public catalog. Prices are whole
// Rupiah; there is no minor unit.
type Product struct {
	ID              uuid.UUID   `json:"id"`
	Name            string      `json:"name"`
	BasePrice       int64       `json:"price"`
	DiscountEnabled bool        `json:"discount"`
	DiscountPercent int         `json:"discount_percentage,omitempty"`
	Description     string      `json:"description"`
	Images          []string    `json:"images"`
	ProductType     ProductType `json:"product_type,omitempty"`
	Variants        []Variant   `json:"variants,omitempty"`
	CreatedAt       time.Time   `json:"created_at"`
	UpdatedAt       time.Time   `json:"updated_at"`
}

// PrimaryImage returns the first image URL or an empty string.
func (p *Product) PrimaryImage() string {
	if p == nil || len(p.Images) == 0 {
		return ""
	}
	return p.Images[0]
}

// DefaultVariant returns the first variant, which is always the initial
// selection when a product has variants.
func (p *Product) DefaultVariant() *Variant {
	if p == nil || len(p.Variants) == 0 {
		return nil
	}
	return &p.Variants[0]
}

// Variant is a purchasable sub-option of a product with its own absolute
// price, availability, and optional discount override.
type Variant struct {
	ID              uuid.UUID `json:"id"`
	ProductID       uuid.UUID `json:"product_id"`
	Name            string    `json:"variant_name"`
	Price           int64     `json:"price"`
	PriceAdjustment int64     `json:"price_adjustment,omitempty"`
	DiscountPercent int       `json:"discount_percentage,omitempty"`
	IsAvailable     bool      `json:"is_available"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// Selectable reports whether the variant can be shown as a choice at all.
// Unavailable variants remain selectable for viewing; only ordering is
// blocked.
func (v *Variant) Selectable() bool {
	return v != nil && v.Name != ""
}
