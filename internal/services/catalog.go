package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/nareldigital/narel/internal/cache"
	"github.com/nareldigital/narel/internal/catalog"
	"github.com/nareldigital/narel/internal/db"
	"github.com/nareldigital/narel/internal/logging"
	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/order"
)

// ErrProductNotFound is returned when a requested product does not exist.
var ErrProductNotFound = errors.New("product not found")

const (
	listCacheTTL    = time.Minute
	productCacheTTL = time.Minute
)

// CatalogService is the public read path: product listing and detail with
// prices resolved, normalized at the store boundary, and cached per key.
// Cache failures degrade to direct reads; they never fail a request.
type CatalogService struct {
	products *db.ProductStore
	cache    cache.Provider
	pricer   *catalog.Pricer
	handoff  *order.Handoff
	logger   *slog.Logger
}

func NewCatalogService(products *db.ProductStore, cacheProvider cache.Provider, pricer *catalog.Pricer, handoff *order.Handoff, logger *slog.Logger) *CatalogService {
	if pricer == nil {
		pricer = catalog.NewPricer()
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &CatalogService{
		products: products,
		cache:    cacheProvider,
		pricer:   pricer,
		handoff:  handoff,
		logger:   logger,
	}
}

func (s *CatalogService) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, s.logger)
}

// ListProducts returns all products newest first, without variants.
func (s *CatalogService) ListProducts(ctx context.Context) ([]*models.Product, error) {
	if cached, err := s.cache.Get(ctx, cache.ProductListKey()); err == nil {
		var products []*models.Product
		if err := json.Unmarshal([]byte(cached), &products); err == nil {
			return products, nil
		}
		s.loggerFromContext(ctx).Warn("discarding malformed cached product list")
	}

	products, err := s.products.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load products: %w", err)
	}
	for _, product := range products {
		catalog.Normalize(product)
	}

	s.cacheSet(ctx, cache.ProductListKey(), products, listCacheTTL)
	return products, nil
}

// GetProduct returns one product with its variants normalized. A missing id
// maps to ErrProductNotFound, never a raw store error.
func (s *CatalogService) GetProduct(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	if cached, err := s.cache.Get(ctx, cache.ProductKey(id)); err == nil {
		var product models.Product
		if err := json.Unmarshal([]byte(cached), &product); err == nil {
			return &product, nil
		}
		s.loggerFromContext(ctx).Warn("discarding malformed cached product", "product_id", id)
	}

	product, err := s.products.Get(ctx, id)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, fmt.Errorf("failed to load product: %w", err)
	}
	catalog.Normalize(product)

	s.cacheSet(ctx, cache.ProductKey(id), product, productCacheTTL)
	return product, nil
}

// ComposeOrder resolves the selection and builds the order handoff summary.
// A nil variant id selects the default variant when the product has any.
// An unavailable selection is rejected with order.ErrVariantUnavailable.
func (s *CatalogService) ComposeOrder(ctx context.Context, productID uuid.UUID, variantID *uuid.UUID, quantity int) (*order.Summary, error) {
	product, err := s.GetProduct(ctx, productID)
	if err != nil {
		return nil, err
	}

	variant := product.DefaultVariant()
	if variantID != nil {
		variant = nil
		for i := range product.Variants {
			if product.Variants[i].ID == *variantID {
				variant = &product.Variants[i]
				break
			}
		}
		if variant == nil {
			return nil, ErrProductNotFound
		}
	}

	return s.handoff.Compose(product, variant, quantity)
}

// Invalidate drops the cached entries touched by a catalog write.
func (s *CatalogService) Invalidate(ctx context.Context, productIDs ...uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.ProductListKey()); err != nil {
		s.loggerFromContext(ctx).Warn("failed to invalidate product list cache", "error", err)
	}
	for _, id := range productIDs {
		if err := s.cache.Delete(ctx, cache.ProductKey(id)); err != nil {
			s.loggerFromContext(ctx).Warn("failed to invalidate product cache", "product_id", id, "error", err)
		}
	}
}

func (s *CatalogService) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	encoded, err := json.Marshal(value)
	if err != nil {
		return
	}
	if err := s.cache.Set(ctx, key, string(encoded), ttl); err != nil {
		s.loggerFromContext(ctx).Warn("failed to populate cache", "key", key, "error", err)
	}
}
