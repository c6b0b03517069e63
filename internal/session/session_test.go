package session

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
)

func TestManager_SessionRoundTrip(t *testing.T) {
	t.Parallel()

	manager := NewManager(NewMemoryStore(), false)
	t.Cleanup(func() { _ = manager.Close() })

	adminID := uuid.New()
	rec := httptest.NewRecorder()

	sessionID, err := manager.CreateSession(context.Background(), rec, &Data{
		AdminID: adminID,
		Email:   "admin@narel.id",
	})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if sessionID == "" {
		t.Fatal("expected a session id")
	}

	cookies := rec.Result().Cookies()
	if len(cookies) != 1 || cookies[0].Name != cookieName {
		t.Fatalf("expected session cookie, got %+v", cookies)
	}
	if !cookies[0].HttpOnly {
		t.Fatal("expected HttpOnly cookie")
	}

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	req.AddCookie(cookies[0])

	data, err := manager.GetSession(context.Background(), req)
	if err != nil {
		t.Fatalf("expected session, got %v", err)
	}
	if data.AdminID != adminID || data.Email != "admin@narel.id" {
		t.Fatalf("unexpected session data: %+v", data)
	}
}

func TestManager_GetSessionWithoutCookie(t *testing.T) {
	t.Parallel()

	manager := NewManager(NewMemoryStore(), false)
	t.Cleanup(func() { _ = manager.Close() })

	req := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	if _, err := manager.GetSession(context.Background(), req); err == nil {
		t.Fatal("expected error, got nil")
	}
}

func TestManager_DestroySession(t *testing.T) {
	t.Parallel()

	manager := NewManager(NewMemoryStore(), false)
	t.Cleanup(func() { _ = manager.Close() })

	rec := httptest.NewRecorder()
	if _, err := manager.CreateSession(context.Background(), rec, &Data{AdminID: uuid.New()}); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	cookie := rec.Result().Cookies()[0]

	req := httptest.NewRequest(http.MethodPost, "/admin/logout", nil)
	req.AddCookie(cookie)
	destroyRec := httptest.NewRecorder()

	if err := manager.DestroySession(context.Background(), destroyRec, req); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	cleared := destroyRec.Result().Cookies()
	if len(cleared) != 1 || cleared[0].MaxAge != -1 {
		t.Fatalf("expected expired cookie, got %+v", cleared)
	}

	lookup := httptest.NewRequest(http.MethodGet, "/admin/session", nil)
	lookup.AddCookie(cookie)
	if _, err := manager.GetSession(context.Background(), lookup); err == nil {
		t.Fatal("expected destroyed session to be gone")
	}
}

func TestMemoryStore_Expiry(t *testing.T) {
	t.Parallel()

	store := NewMemoryStore()
	t.Cleanup(func() { _ = store.Close() })

	store.Set(context.Background(), "short", &Data{Email: "admin@narel.id"}, time.Millisecond)
	time.Sleep(5 * time.Millisecond)

	if _, ok := store.Get(context.Background(), "short"); ok {
		t.Fatal("expected expired session to be gone")
	}
}
