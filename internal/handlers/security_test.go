package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/nareldigital/narel/internal/config"
)

func TestRequireSameOrigin_AllowsMatchingOrigin(t *testing.T) {
	t.Parallel()

	h := &Handlers{
		config: &config.Config{BaseURL: "https://narel.id"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "https://narel.id/admin/products", nil)
	req.Header.Set("Origin", "https://narel.id")
	rec := httptest.NewRecorder()

	h.RequireSameOrigin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestRequireSameOrigin_RejectsMissingOriginAndReferer(t *testing.T) {
	t.Parallel()

	h := &Handlers{
		config: &config.Config{BaseURL: "https://narel.id"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "https://narel.id/admin/products", nil)
	rec := httptest.NewRecorder()

	h.RequireSameOrigin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireSameOrigin_RejectsCrossOrigin(t *testing.T) {
	t.Parallel()

	h := &Handlers{
		config: &config.Config{BaseURL: "https://narel.id"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodPost, "https://narel.id/admin/products", nil)
	req.Header.Set("Origin", "https://attacker.example")
	rec := httptest.NewRecorder()

	h.RequireSameOrigin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected status %d, got %d", http.StatusForbidden, rec.Code)
	}
}

func TestRequireSameOrigin_SkipsReadOnlyMethods(t *testing.T) {
	t.Parallel()

	h := &Handlers{
		config: &config.Config{BaseURL: "https://narel.id"},
	}

	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	})

	req := httptest.NewRequest(http.MethodGet, "https://narel.id/admin/products", nil)
	rec := httptest.NewRecorder()

	h.RequireSameOrigin(next).ServeHTTP(rec, req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected status %d, got %d", http.StatusNoContent, rec.Code)
	}
}

func TestSecurityHeaders(t *testing.T) {
	t.Parallel()

	h := &Handlers{}
	next := http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	rec := httptest.NewRecorder()

	h.SecurityHeaders(next).ServeHTTP(rec, req)

	if got := rec.Header().Get("X-Content-Type-Options"); got != "nosniff" {
		t.Fatalf("expected nosniff, got %q", got)
	}
	if got := rec.Header().Get("X-Frame-Options"); got != "DENY" {
		t.Fatalf("expected DENY, got %q", got)
	}
}

func TestSecureCookiesFromConfig(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cfg  *config.Config
		want bool
	}{
		{name: "nil config", cfg: nil, want: false},
		{name: "https base url", cfg: &config.Config{BaseURL: "https://narel.id"}, want: true},
		{name: "http base url", cfg: &config.Config{BaseURL: "http://localhost:8080"}, want: false},
		{name: "tls port fallback", cfg: &config.Config{Port: "443"}, want: true},
		{name: "plain port", cfg: &config.Config{Port: "8080"}, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := SecureCookiesFromConfig(tt.cfg); got != tt.want {
				t.Fatalf("expected %t, got %t", tt.want, got)
			}
		})
	}
}
