package db

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nareldigital/narel/internal/models"
)

// ProductStore persists products and their variants. Variant editing uses
// full-replace semantics: every update deletes the product's variants and
// re-inserts the submitted set, preserving submission order.
type ProductStore struct {
	pool *pgxpool.Pool
}

func NewProductStore(pool *pgxpool.Pool) *ProductStore {
	return &ProductStore{pool: pool}
}

const productColumns = `id, name, price, discount, discount_percentage, description, images, product_type, created_at, updated_at`

// List returns all products ordered by creation time, newest first. Variants
// are not loaded; use Get for the full detail.
func (s *ProductStore) List(ctx context.Context) ([]*models.Product, error) {
	rows, err := s.pool.Query(ctx, `SELECT `+productColumns+` FROM products ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := make([]*models.Product, 0)
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}
		products = append(products, product)
	}
	return products, rows.Err()
}

// Get returns one product with its variants in stored order.
func (s *ProductStore) Get(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	row := s.pool.QueryRow(ctx, `SELECT `+productColumns+` FROM products WHERE id = $1`, id)
	product, err := scanProduct(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	variants, err := s.ListVariants(ctx, id)
	if err != nil {
		return nil, err
	}
	product.Variants = variants
	return product, nil
}

// ListVariants returns a product's variants in stored order.
func (s *ProductStore) ListVariants(ctx context.Context, productID uuid.UUID) ([]models.Variant, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT id, product_id, variant_name, price, price_adjustment, discount_percentage, is_available, created_at, updated_at
		FROM product_variants
		WHERE product_id = $1
		ORDER BY position ASC`, productID)
	if err != nil {
		return nil, fmt.Errorf("failed to list variants: %w", err)
	}
	defer rows.Close()

	variants := make([]models.Variant, 0)
	for rows.Next() {
		var v models.Variant
		if err := rows.Scan(&v.ID, &v.ProductID, &v.Name, &v.Price, &v.PriceAdjustment, &v.DiscountPercent, &v.IsAvailable, &v.CreatedAt, &v.UpdatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan variant: %w", err)
		}
		variants = append(variants, v)
	}
	return variants, rows.Err()
}

// Create inserts the product and its variants in one transaction and fills
// in generated ids and timestamps.
func (s *ProductStore) Create(ctx context.Context, product *models.Product) error {
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	err = tx.QueryRow(ctx, `
		INSERT INTO products (name, price, discount, discount_percentage, description, images, product_type)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id, created_at, updated_at`,
		product.Name,
		product.BasePrice,
		product.DiscountEnabled,
		product.DiscountPercent,
		product.Description,
		imagesJSON,
		productTypeParam(product.ProductType),
	).Scan(&product.ID, &product.CreatedAt, &product.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to insert product: %w", err)
	}

	if err := insertVariants(ctx, tx, product.ID, product.Variants); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product: %w", err)
	}
	return nil
}

// Update rewrites the product row and replaces its variant set wholesale.
func (s *ProductStore) Update(ctx context.Context, product *models.Product) error {
	imagesJSON, err := marshalImages(product.Images)
	if err != nil {
		return err
	}

	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck

	tag, err := tx.Exec(ctx, `
		UPDATE products
		SET name = $2, price = $3, discount = $4, discount_percentage = $5,
		    description = $6, images = $7, product_type = $8, updated_at = now()
		WHERE id = $1`,
		product.ID,
		product.Name,
		product.BasePrice,
		product.DiscountEnabled,
		product.DiscountPercent,
		product.Description,
		imagesJSON,
		productTypeParam(product.ProductType),
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}

	if _, err := tx.Exec(ctx, `DELETE FROM product_variants WHERE product_id = $1`, product.ID); err != nil {
		return fmt.Errorf("failed to delete variants: %w", err)
	}
	if err := insertVariants(ctx, tx, product.ID, product.Variants); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("failed to commit product update: %w", err)
	}
	return nil
}

// Delete removes the product; variants go with it via the cascade.
func (s *ProductStore) Delete(ctx context.Context, id uuid.UUID) error {
	tag, err := s.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func insertVariants(ctx context.Context, tx pgx.Tx, productID uuid.UUID, variants []models.Variant) error {
	for i := range variants {
		variant := &variants[i]
		err := tx.QueryRow(ctx, `
			INSERT INTO product_variants (product_id, variant_name, price, price_adjustment, discount_percentage, is_available, position)
			VALUES ($1, $2, $3, $4, $5, $6, $7)
			RETURNING id, created_at, updated_at`,
			productID,
			variant.Name,
			variant.Price,
			variant.PriceAdjustment,
			variant.DiscountPercent,
			variant.IsAvailable,
			i,
		).Scan(&variant.ID, &variant.CreatedAt, &variant.UpdatedAt)
		if err != nil {
			return fmt.Errorf("failed to insert variant %d: %w", i, err)
		}
		variant.ProductID = productID
	}
	return nil
}

func scanProduct(row pgx.Row) (*models.Product, error) {
	var (
		product     models.Product
		imagesJSON  []byte
		productType pgtype.Text
	)
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.BasePrice,
		&product.DiscountEnabled,
		&product.DiscountPercent,
		&product.Description,
		&imagesJSON,
		&productType,
		&product.CreatedAt,
		&product.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if len(imagesJSON) > 0 {
		if err := json.Unmarshal(imagesJSON, &product.Images); err != nil {
			return nil, fmt.Errorf("failed to decode product images: %w", err)
		}
	}
	if productType.Valid {
		product.ProductType = models.ProductType(productType.String)
	}
	return &product, nil
}

func marshalImages(images []string) ([]byte, error) {
	if images == nil {
		images = []string{}
	}
	out, err := json.Marshal(images)
	if err != nil {
		return nil, fmt.Errorf("failed to encode product images: %w", err)
	}
	return out, nil
}

func productTypeParam(productType models.ProductType) pgtype.Text {
	if productType == "" {
		return pgtype.Text{}
	}
	return pgtype.Text{String: string(productType), Valid: true}
}
