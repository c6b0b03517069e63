package catalog

import "github.com/nareldigital/narel/internal/models"

// TypeInfo carries the display label and tagline for a product type.
type TypeInfo struct {
	Type    models.ProductType `json:"type"`
	Label   string             `json:"label"`
	Tagline string             `json:"tagline"`
}

// ProductTypeInfo returns presentation info for a product type. Unknown or
// unset types fall back to the generic digital product label.
func ProductTypeInfo(productType models.ProductType) TypeInfo {
	switch productType {
	case models.TypePremiumApp:
		return TypeInfo{
			Type:    models.TypePremiumApp,
			Label:   "Premium App",
			Tagline: "Premium aplikasi dengan fitur lengkap",
		}
	case models.TypeDigitalService:
		return TypeInfo{
			Type:    models.TypeDigitalService,
			Label:   "Digital Service",
			Tagline: "Layanan digital profesional",
		}
	case models.TypeDigitalProduct:
		return TypeInfo{
			Type:    models.TypeDigitalProduct,
			Label:   "Digital Product",
			Tagline: "Produk digital berkualitas tinggi",
		}
	default:
		return TypeInfo{
			Type:    models.TypeDigitalProduct,
			Label:   "Digital Product",
			Tagline: "Produk digital",
		}
	}
}

// ValidProductType reports whether the value is one of the known product
// types or unset.
func ValidProductType(value string) bool {
	switch models.ProductType(value) {
	case "", models.TypePremiumApp, models.TypeDigitalService, models.TypeDigitalProduct:
		return true
	default:
		return false
	}
}
