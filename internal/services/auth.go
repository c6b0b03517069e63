package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/nareldigital/narel/internal/db"
	"github.com/nareldigital/narel/internal/logging"
	"github.com/nareldigital/narel/internal/models"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid or expired token")
)

const tokenTTL = 24 * time.Hour

// AuthService verifies admin credentials and issues bearer tokens for
// non-browser API clients. Browser clients use cookie sessions instead;
// both gates lead to the same admin identity.
type AuthService struct {
	adminStore *db.AdminStore
	jwtSecret  []byte
	logger     *slog.Logger
}

func NewAuthService(adminStore *db.AdminStore, jwtSecret string, logger *slog.Logger) (*AuthService, error) {
	if adminStore == nil {
		return nil, fmt.Errorf("admin store is required")
	}
	if len(jwtSecret) < 32 {
		return nil, fmt.Errorf("jwt secret must be at least 32 bytes")
	}
	if logger == nil {
		logger = logging.Discard()
	}

	return &AuthService{
		adminStore: adminStore,
		jwtSecret:  []byte(jwtSecret),
		logger:     logger,
	}, nil
}

// SignIn checks the email and password against the stored bcrypt hash.
// Lookup misses and hash mismatches return the same error so the response
// does not reveal which accounts exist.
func (s *AuthService) SignIn(ctx context.Context, email, password string) (*models.AdminUser, error) {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil, ErrInvalidCredentials
	}

	admin, err := s.adminStore.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, fmt.Errorf("failed to look up admin: %w", err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return admin, nil
}

// TokenClaims is the payload carried by an admin API token.
type TokenClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// IssueToken creates a signed bearer token for the admin.
func (s *AuthService) IssueToken(admin *models.AdminUser) (string, error) {
	if admin == nil {
		return "", fmt.Errorf("admin is required")
	}

	now := time.Now()
	claims := TokenClaims{
		Email: admin.Email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   admin.ID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// VerifyToken parses and validates a bearer token and returns the admin
// identity it encodes.
func (s *AuthService) VerifyToken(tokenString string) (uuid.UUID, string, error) {
	var claims TokenClaims
	token, err := jwt.ParseWithClaims(tokenString, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil || !token.Valid {
		return uuid.Nil, "", ErrInvalidToken
	}

	adminID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", ErrInvalidToken
	}
	return adminID, claims.Email, nil
}

// EnsureBootstrapAdmin provisions the configured operator account at
// startup. An existing account with the same email is left untouched.
func (s *AuthService) EnsureBootstrapAdmin(ctx context.Context, email, password string) error {
	email = strings.TrimSpace(email)
	if email == "" || password == "" {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash bootstrap password: %w", err)
	}

	if err := s.adminStore.Ensure(ctx, email, string(hash)); err != nil {
		return err
	}

	logging.FromContext(ctx, s.logger).Info("bootstrap admin ensured", "email", email)
	return nil
}
