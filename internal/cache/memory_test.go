package cache

import (
	"context"
	"errors"
	"testing"
	"time"
)

func TestMemoryProvider_RoundTrip(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	ctx := context.Background()

	if err := provider.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	got, err := provider.Get(ctx, "key")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if got != "value" {
		t.Fatalf("expected %q, got %q", "value", got)
	}
}

func TestMemoryProvider_MissingKey(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	if _, err := provider.Get(context.Background(), "absent"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestMemoryProvider_Expiry(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	ctx := context.Background()
	if err := provider.Set(ctx, "short", "value", time.Millisecond); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	time.Sleep(5 * time.Millisecond)

	if _, err := provider.Get(ctx, "short"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after expiry, got %v", err)
	}
}

func TestMemoryProvider_Delete(t *testing.T) {
	t.Parallel()

	provider, err := NewMemoryProvider()
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	t.Cleanup(func() { _ = provider.Close() })

	ctx := context.Background()
	if err := provider.Set(ctx, "key", "value", time.Minute); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if err := provider.Delete(ctx, "key"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if _, err := provider.Get(ctx, "key"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound after delete, got %v", err)
	}
}

func TestNewProvider_UnsupportedProvider(t *testing.T) {
	t.Parallel()

	if _, err := NewProvider(Config{Provider: "memcached"}); err == nil {
		t.Fatal("expected error, got nil")
	}
}
