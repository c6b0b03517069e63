package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/getsentry/sentry-go"
	"github.com/getsentry/sentry-go/attribute"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/nareldigital/narel/internal/catalog"
	"github.com/nareldigital/narel/internal/db"
	"github.com/nareldigital/narel/internal/logging"
	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/observability"
)

// UserError carries a message safe to show to the caller verbatim.
type UserError struct {
	Message string
}

func (e UserError) Error() string {
	return e.Message
}

// ProductInput is the write payload for creating or updating a product.
// Updates replace the variant list wholesale; variants omitted from the
// input are deleted.
type ProductInput struct {
	Name            string         `json:"name" validate:"required,max=200"`
	BasePrice       int64          `json:"price" validate:"gte=0"`
	DiscountEnabled bool           `json:"discount"`
	DiscountPercent int            `json:"discount_percentage" validate:"gte=0,lte=100"`
	Description     string         `json:"description"`
	Images          []string       `json:"images" validate:"dive,required"`
	ProductType     string         `json:"product_type" validate:"omitempty,oneof=premium_app digital_service digital_product"`
	Variants        []VariantInput `json:"variants" validate:"dive"`
}

type VariantInput struct {
	Name            string `json:"variant_name" validate:"required,max=200"`
	Price           int64  `json:"price" validate:"gte=0"`
	PriceAdjustment int64  `json:"price_adjustment"`
	DiscountPercent int    `json:"discount_percentage" validate:"gte=0,lte=100"`
	IsAvailable     bool   `json:"is_available"`
}

// AdminService performs validated catalog writes and keeps the public read
// cache coherent after each mutation.
type AdminService struct {
	products  *db.ProductStore
	catalog   *CatalogService
	parser    *catalog.Parser
	validator *catalog.Validator
	validate  *validator.Validate
	logger    *slog.Logger
}

func NewAdminService(products *db.ProductStore, catalogService *CatalogService, logger *slog.Logger) *AdminService {
	if logger == nil {
		logger = logging.Discard()
	}

	return &AdminService{
		products:  products,
		catalog:   catalogService,
		parser:    catalog.NewParser(),
		validator: catalog.NewValidator(),
		validate:  validator.New(validator.WithRequiredStructEnabled()),
		logger:    logger,
	}
}

func (s *AdminService) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// ListProducts returns every product with variants for the admin table.
func (s *AdminService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}

	for _, product := range products {
		variants, err := s.products.ListVariants(ctx, product.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to load variants: %w", err)
		}
		product.Variants = variants
		catalog.Normalize(product)
	}

	return products, nil
}

// GetProduct loads one product for the admin edit form.
func (s *AdminService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	catalog.Normalize(product)
	return product, nil
}

func (s *AdminService) CreateProduct(ctx context.Context, input ProductInput) (*models.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}

	if err := s.products.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("failed to create product: %w", err)
	}

	s.invalidate(ctx, product.ID)
	s.loggerFromContext(ctx).Info("product created", "product_id", product.ID, "name", product.Name)
	observability.MeterFromContext(ctx).Count("catalog.product.created", 1)
	return product, nil
}

// UpdateProduct overwrites the product and replaces its variant list with
// the variants in the input.
func (s *AdminService) UpdateProduct(ctx context.Context, id uuid.UUID, input ProductInput) (*models.Product, error) {
	product, err := s.buildProduct(input)
	if err != nil {
		return nil, err
	}
	product.ID = id

	if err := s.products.Update(ctx, product); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to update product: %w", err)
	}

	s.invalidate(ctx, id)
	s.loggerFromContext(ctx).Info("product updated", "product_id", id, "name", product.Name)
	return product, nil
}

// DeleteProduct removes the product and, through the store, its variants.
func (s *AdminService) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	if err := s.products.Delete(ctx, id); err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return ErrProductNotFound
		}
		return fmt.Errorf("failed to delete product: %w", err)
	}

	s.invalidate(ctx, id)
	s.loggerFromContext(ctx).Info("product deleted", "product_id", id)
	return nil
}

// ImportResult reports what an import run created.
type ImportResult struct {
	Created []uuid.UUID `json:"created"`
	Names   []string    `json:"names"`
}

// ImportCatalog parses a YAML catalog file and creates every product in it.
// The file is validated as a whole first; a file with any invalid entry
// creates nothing.
func (s *AdminService) ImportCatalog(ctx context.Context, content []byte) (*ImportResult, error) {
	span := sentry.StartSpan(
		ctx,
		"service.admin.import_catalog",
		sentry.WithOpName("service.admin"),
		sentry.WithDescription("ImportCatalog"),
		sentry.WithSpanOrigin(sentry.SpanOriginManual),
	)
	defer span.Finish()
	ctx = span.Context()

	meter := observability.MeterFromContext(ctx)
	recordFailed := func(reason string) {
		meter.Count("catalog.import.failed", 1, sentry.WithAttributes(
			attribute.String("reason", reason),
		))
	}

	file, err := s.parser.Parse(content)
	if err != nil {
		recordFailed("parse_failed")
		return nil, UserError{Message: fmt.Sprintf("Invalid catalog file: %s", err.Error())}
	}
	if len(file.Products) == 0 {
		recordFailed("empty_file")
		return nil, UserError{Message: "Catalog file contains no products"}
	}
	if err := s.validator.Validate(file); err != nil {
		recordFailed("validation_failed")
		return nil, UserError{Message: err.Error()}
	}

	result := &ImportResult{}
	for i := range file.Products {
		product := importedProduct(&file.Products[i])
		if err := s.products.Create(ctx, product); err != nil {
			recordFailed("store_failed")
			return nil, fmt.Errorf("failed to import product %q: %w", product.Name, err)
		}
		result.Created = append(result.Created, product.ID)
		result.Names = append(result.Names, product.Name)
	}

	s.invalidate(ctx, result.Created...)
	s.loggerFromContext(ctx).Info("catalog imported", "products", len(result.Created))
	meter.Count("catalog.import.processed", 1, sentry.WithAttributes(
		attribute.Int("products", len(result.Created)),
	))
	return result, nil
}

func (s *AdminService) buildProduct(input ProductInput) (*models.Product, error) {
	if err := s.validate.Struct(input); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return nil, UserError{Message: fmt.Sprintf("Invalid value for %s", strings.ToLower(fieldErrs[0].Field()))}
		}
		return nil, UserError{Message: "Invalid product input"}
	}

	product := &models.Product{
		Name:            strings.TrimSpace(input.Name),
		BasePrice:       input.BasePrice,
		DiscountEnabled: input.DiscountEnabled,
		DiscountPercent: input.DiscountPercent,
		Description:     input.Description,
		Images:          input.Images,
		ProductType:     models.ProductType(input.ProductType),
		Variants:        make([]models.Variant, 0, len(input.Variants)),
	}
	for _, v := range input.Variants {
		product.Variants = append(product.Variants, models.Variant{
			Name:            strings.TrimSpace(v.Name),
			Price:           v.Price,
			PriceAdjustment: v.PriceAdjustment,
			DiscountPercent: v.DiscountPercent,
			IsAvailable:     v.IsAvailable,
		})
	}

	catalog.Normalize(product)
	return product, nil
}

func importedProduct(in *catalog.ProductImport) *models.Product {
	product := &models.Product{
		Name:            strings.TrimSpace(in.Name),
		BasePrice:       in.Price,
		DiscountEnabled: in.Discount,
		DiscountPercent: in.DiscountPercent,
		Description:     in.Description,
		Images:          in.Images,
		ProductType:     models.ProductType(in.ProductType),
		Variants:        make([]models.Variant, 0, len(in.Variants)),
	}
	for _, v := range in.Variants {
		product.Variants = append(product.Variants, models.Variant{
			Name:            strings.TrimSpace(v.VariantName),
			Price:           v.Price,
			PriceAdjustment: v.PriceAdjustment,
			DiscountPercent: v.DiscountPercent,
			IsAvailable:     v.IsAvailable,
		})
	}

	catalog.Normalize(product)
	return product
}

func (s *AdminService) invalidate(ctx context.Context, ids ...uuid.UUID) {
	if s.catalog == nil {
		return
	}
	s.catalog.Invalidate(ctx, ids...)
}
