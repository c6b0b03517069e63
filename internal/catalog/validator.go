package catalog

import (
	"fmt"
	"strings"
)

type Validator struct{}

func NewValidator() *Validator {
	return &Validator{}
}

func (v *Validator) Validate(file *ImportFile) error {
	if len(file.Products) == 0 {
		return fmt.Errorf("at least one product is required")
	}

	names := make(map[string]bool)
	for i, product := range file.Products {
		if err := v.validateProduct(&product); err != nil {
			return fmt.Errorf("product %d validation failed: %w", i, err)
		}

		if names[product.Name] {
			return fmt.Errorf("duplicate product name: %s", product.Name)
		}
		names[product.Name] = true
	}

	return nil
}

func (v *Validator) validateProduct(product *ProductImport) error {
	if strings.TrimSpace(product.Name) == "" {
		return fmt.Errorf("product name is required")
	}

	if product.Price < 0 {
		return fmt.Errorf("product price must be zero or positive")
	}

	if product.DiscountPercent < 0 || product.DiscountPercent > 100 {
		return fmt.Errorf("product discount percentage must be between 0 and 100")
	}

	if product.Discount && product.DiscountPercent == 0 {
		return fmt.Errorf("discount percentage is required when discount is enabled")
	}

	if !ValidProductType(product.ProductType) {
		return fmt.Errorf("unknown product type: %s", product.ProductType)
	}

	variantNames := make(map[string]bool)
	for i, variant := range product.Variants {
		if err := v.validateVariant(&variant); err != nil {
			return fmt.Errorf("variant %d validation failed: %w", i, err)
		}

		if variantNames[variant.VariantName] {
			return fmt.Errorf("duplicate variant name: %s", variant.VariantName)
		}
		variantNames[variant.VariantName] = true
	}

	return nil
}

func (v *Validator) validateVariant(variant *VariantImport) error {
	if strings.TrimSpace(variant.VariantName) == "" {
		return fmt.Errorf("variant name is required")
	}

	if variant.Price < 0 {
		return fmt.Errorf("variant price must be zero or positive")
	}

	if variant.DiscountPercent < 0 || variant.DiscountPercent > 100 {
		return fmt.Errorf("variant discount percentage must be between 0 and 100")
	}

	return nil
}
