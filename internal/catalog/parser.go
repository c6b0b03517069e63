package catalog

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

type ImportFile struct {
	Products []ProductImport `yaml:"products"`
}

type ProductImport struct {
	Name            string          `yaml:"name"`
	Price           int64           `yaml:"price"`
	Discount        bool            `yaml:"discount"`
	DiscountPercent int             `yaml:"discount_percentage"`
	Description     string          `yaml:"description"`
	Images          []string        `yaml:"images"`
	ProductType     string          `yaml:"product_type"`
	Variants        []VariantImport `yaml:"variants"`
}

type VariantImport struct {
	VariantName     string `yaml:"variant_name"`
	Price           int64  `yaml:"price"`
	PriceAdjustment int64  `yaml:"price_adjustment"`
	DiscountPercent int    `yaml:"discount_percentage"`
	IsAvailable     bool   `yaml:"is_available"`
}

type Parser struct{}

func NewParser() *Parser {
	return &Parser{}
}

func (p *Parser) Parse(content []byte) (*ImportFile, error) {
	var file ImportFile
	if err := yaml.Unmarshal(content, &file); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	return &file, nil
}

func (p *Parser) ParseFromString(content string) (*ImportFile, error) {
	return p.Parse([]byte(content))
}
