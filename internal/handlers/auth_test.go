package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/nareldigital/narel/internal/db"
	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/services"
	"github.com/nareldigital/narel/internal/session"
)

func newTestAuthService(t *testing.T) *services.AuthService {
	t.Helper()

	service, err := services.NewAuthService(&db.AdminStore{}, strings.Repeat("s", 32), nil)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	return service
}

func TestBearerToken(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		header string
		want   string
	}{
		{name: "no header", header: "", want: ""},
		{name: "bearer token", header: "Bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "lowercase scheme", header: "bearer abc.def.ghi", want: "abc.def.ghi"},
		{name: "wrong scheme", header: "Basic dXNlcjpwYXNz", want: ""},
		{name: "scheme only", header: "Bearer ", want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}

			if got := bearerToken(req); got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestRequireAdmin_AllowsSession(t *testing.T) {
	t.Parallel()

	h := &Handlers{authService: newTestAuthService(t)}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	ctx := session.WithData(req.Context(), &session.Data{AdminID: uuid.New(), Email: "admin@narel.id"})
	rec := httptest.NewRecorder()

	h.RequireAdmin(next).ServeHTTP(rec, req.WithContext(ctx))

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestRequireAdmin_AllowsBearerToken(t *testing.T) {
	t.Parallel()

	authService := newTestAuthService(t)
	h := &Handlers{authService: authService}

	admin := &models.AdminUser{ID: uuid.New(), Email: "admin@narel.id"}
	token, err := authService.IssueToken(admin)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	var seen *session.Data
	next := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = session.FromContext(r.Context())
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()

	h.RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
	if seen == nil || seen.AdminID != admin.ID {
		t.Fatalf("expected admin identity in context, got %+v", seen)
	}
}

func TestRequireAdmin_RejectsAnonymous(t *testing.T) {
	t.Parallel()

	h := &Handlers{authService: newTestAuthService(t)}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	rec := httptest.NewRecorder()

	h.RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestRequireAdmin_RejectsInvalidToken(t *testing.T) {
	t.Parallel()

	h := &Handlers{authService: newTestAuthService(t)}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		t.Fatal("next handler must not run")
	})

	req := httptest.NewRequest(http.MethodGet, "/admin/products", nil)
	req.Header.Set("Authorization", "Bearer invalid.token")
	rec := httptest.NewRecorder()

	h.RequireAdmin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected status %d, got %d", http.StatusUnauthorized, rec.Code)
	}
}

func TestAdminSession(t *testing.T) {
	t.Parallel()

	h := &Handlers{}
	adminID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	ctx := session.WithData(req.Context(), &session.Data{AdminID: adminID, Email: "admin@narel.id"})
	rec := httptest.NewRecorder()

	h.AdminSession(rec, req.WithContext(ctx))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	body := rec.Body.String()
	if !strings.Contains(body, adminID.String()) || !strings.Contains(body, "admin@narel.id") {
		t.Fatalf("expected identity in body, got %s", body)
	}
}
