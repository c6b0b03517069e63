package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/nareldigital/narel/internal/config"
	"github.com/nareldigital/narel/internal/logging"
	"github.com/nareldigital/narel/internal/services"
	"github.com/nareldigital/narel/internal/session"
)

const maxRequestBodyBytes = 1 << 20 // 1 MB

// Handlers provides HTTP request handlers for the storefront API.
type Handlers struct {
	config         *config.Config
	db             *pgxpool.Pool
	authService    *services.AuthService
	catalogService *services.CatalogService
	adminService   *services.AdminService
	sessionManager *session.Manager
	logger         *slog.Logger
}

type Dependencies struct {
	Config         *config.Config
	DB             *pgxpool.Pool
	AuthService    *services.AuthService
	CatalogService *services.CatalogService
	AdminService   *services.AdminService
	SessionManager *session.Manager
	Logger         *slog.Logger
}

func New(deps Dependencies) (*Handlers, error) {
	logger := deps.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if deps.Config == nil {
		return nil, fmt.Errorf("handlers dependencies: config is required")
	}
	if deps.DB == nil {
		return nil, fmt.Errorf("handlers dependencies: db is required")
	}
	if deps.AuthService == nil {
		return nil, fmt.Errorf("handlers dependencies: authService is required")
	}
	if deps.CatalogService == nil {
		return nil, fmt.Errorf("handlers dependencies: catalogService is required")
	}
	if deps.AdminService == nil {
		return nil, fmt.Errorf("handlers dependencies: adminService is required")
	}
	if deps.SessionManager == nil {
		return nil, fmt.Errorf("handlers dependencies: sessionManager is required")
	}

	return &Handlers{
		config:         deps.Config,
		db:             deps.DB,
		authService:    deps.AuthService,
		catalogService: deps.CatalogService,
		adminService:   deps.AdminService,
		sessionManager: deps.SessionManager,
		logger:         logger.With("component", "handlers"),
	}, nil
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := h.loggerFromContext(ctx)

	if err := h.db.Ping(ctx); err != nil {
		logger.Error("database health check failed", "error", err)
		writeError(w, http.StatusServiceUnavailable, "Database unhealthy")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "healthy"})
}

// SessionMiddleware adds session data to the request context.
func (h *Handlers) SessionMiddleware(next http.Handler) http.Handler {
	return h.sessionManager.Middleware(next)
}

func (h *Handlers) loggerFromContext(ctx context.Context) *slog.Logger {
	return logging.FromContext(ctx, h.logger)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

// writeServiceError maps service errors onto API status codes. Unexpected
// errors are logged and hidden behind a generic message.
func (h *Handlers) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	var userErr services.UserError
	switch {
	case errors.Is(err, services.ErrProductNotFound):
		writeError(w, http.StatusNotFound, "Product not found")
	case errors.As(err, &userErr):
		writeError(w, http.StatusUnprocessableEntity, userErr.Message)
	default:
		h.loggerFromContext(r.Context()).Error("request failed", "error", err, "path", r.URL.Path)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func decodeJSON(r *http.Request, dst any) error {
	defer func() { _, _ = io.Copy(io.Discard, r.Body) }()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("failed to decode request body: %w", err)
	}
	return nil
}

func SecureCookiesFromConfig(cfg *config.Config) bool {
	if cfg == nil {
		return false
	}

	baseURL := strings.TrimSpace(cfg.BaseURL)
	if baseURL != "" {
		if parsed, err := url.Parse(baseURL); err == nil {
			return strings.EqualFold(parsed.Scheme, "https")
		}
	}

	return cfg.Port == "443" || cfg.Port == "8443"
}
