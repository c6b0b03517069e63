package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/nareldigital/narel/internal/config"
	"github.com/nareldigital/narel/internal/handlers"
)

type Server struct {
	cfg        *config.Config
	logger     *slog.Logger
	handlers   *handlers.Handlers
	httpServer *http.Server
}

func New(cfg *config.Config, logger *slog.Logger, h *handlers.Handlers) (*Server, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config is required")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required")
	}
	if h == nil {
		return nil, fmt.Errorf("handlers are required")
	}

	s := &Server{
		cfg:      cfg,
		logger:   logger,
		handlers: h,
	}

	router := s.buildRouter()
	s.httpServer = &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    1 << 20,
	}

	return s, nil
}

func (s *Server) Run() error {
	s.logger.Info("server starting", "port", s.cfg.Port)

	err := s.httpServer.ListenAndServe()
	if errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return err
}

func (s *Server) Close(ctx context.Context) error {
	if s == nil || s.httpServer == nil {
		return nil
	}

	s.logger.Info("server shutting down")
	if err := s.httpServer.Shutdown(ctx); err != nil {
		return err
	}
	s.logger.Info("server stopped")
	return nil
}

func (s *Server) buildRouter() *mux.Router {
	h := s.handlers

	r := mux.NewRouter()
	r.Use(h.RequestLogger)
	r.Use(h.SecurityHeaders)
	r.Use(h.MetricsContext)
	r.HandleFunc("/health", h.Health).Methods("GET").Name("health")

	// 404 handler - must be last
	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"error":"Not found"}`))
	})

	// Public storefront API
	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/products", h.ListProducts).Methods("GET").Name("api.products")
	api.HandleFunc("/products/{id}", h.GetProduct).Methods("GET").Name("api.products.detail")
	api.HandleFunc("/products/{id}/order", h.OrderProduct).Methods("POST").Name("api.products.order")
	api.HandleFunc("/meta/{page}", h.PageMeta).Methods("GET").Name("api.meta")

	// Session endpoints - session is read but not required
	r.Handle("/admin/login", h.SessionMiddleware(http.HandlerFunc(h.AdminLogin))).Methods("POST").Name("admin.login")
	r.Handle("/admin/logout", h.SessionMiddleware(http.HandlerFunc(h.AdminLogout))).Methods("POST").Name("admin.logout")

	// Protected admin routes - require authentication
	adminRouter := r.PathPrefix("/admin").Subrouter()
	adminRouter.Use(h.SessionMiddleware)
	adminRouter.Use(h.RequireAdmin)
	adminRouter.Use(h.RequireSameOrigin)
	adminRouter.HandleFunc("/session", h.AdminSession).Methods("GET").Name("admin.session")
	adminRouter.HandleFunc("/products", h.AdminListProducts).Methods("GET").Name("admin.products")
	adminRouter.HandleFunc("/products", h.AdminCreateProduct).Methods("POST").Name("admin.products.create")
	adminRouter.HandleFunc("/products/{id}", h.AdminGetProduct).Methods("GET").Name("admin.products.detail")
	adminRouter.HandleFunc("/products/{id}", h.AdminUpdateProduct).Methods("PUT").Name("admin.products.update")
	adminRouter.HandleFunc("/products/{id}", h.AdminDeleteProduct).Methods("DELETE").Name("admin.products.delete")
	adminRouter.HandleFunc("/catalog/import", h.AdminImportCatalog).Methods("POST").Name("admin.catalog.import")

	return r
}
