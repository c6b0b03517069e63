package db

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nareldigital/narel/internal/models"
)

// AdminStore persists the operator accounts that gate catalog writes.
type AdminStore struct {
	pool *pgxpool.Pool
}

func NewAdminStore(pool *pgxpool.Pool) *AdminStore {
	return &AdminStore{pool: pool}
}

func (s *AdminStore) GetByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	var admin models.AdminUser
	err := s.pool.QueryRow(ctx, `
		SELECT id, email, password_hash, created_at
		FROM admin_users
		WHERE email = $1`, normalizeEmail(email),
	).Scan(&admin.ID, &admin.Email, &admin.PasswordHash, &admin.CreatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	return &admin, nil
}

// Ensure inserts the account if no admin with that email exists yet. Used
// for bootstrap provisioning; an existing account is never overwritten.
func (s *AdminStore) Ensure(ctx context.Context, email, passwordHash string) error {
	_, err := s.pool.Exec(ctx, `
		INSERT INTO admin_users (email, password_hash)
		VALUES ($1, $2)
		ON CONFLICT (email) DO NOTHING`, normalizeEmail(email), passwordHash)
	if err != nil {
		return fmt.Errorf("failed to ensure admin user: %w", err)
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
