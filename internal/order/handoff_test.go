package order

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/nareldigital/narel/internal/models"
)

func TestHandoff_Compose(t *testing.T) {
	t.Parallel()

	handoff := NewHandoff("6281234567890", nil)
	product := &models.Product{Name: "CapCut Pro", BasePrice: 150000}
	variant := &models.Variant{Name: "1 Tahun", Price: 375000, IsAvailable: true}

	summary, err := handoff.Compose(product, variant, 2)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if summary.UnitPrice != 375000 {
		t.Fatalf("expected unit price 375000, got %d", summary.UnitPrice)
	}
	if summary.Total != 750000 {
		t.Fatalf("expected total 750000, got %d", summary.Total)
	}
	if summary.TotalDisplay != "Rp 750.000" {
		t.Fatalf("expected total display %q, got %q", "Rp 750.000", summary.TotalDisplay)
	}

	for _, want := range []string{
		"Halo, saya ingin membeli produk berikut:",
		"*CapCut Pro*",
		"Variant: 1 Tahun",
		"Jumlah: 2",
		"Total Harga: Rp 750.000",
		"Mohon informasi untuk pembayaran. Terima kasih!",
	} {
		if !strings.Contains(summary.Message, want) {
			t.Fatalf("expected message to contain %q, got:\n%s", want, summary.Message)
		}
	}

	link, err := url.Parse(summary.Link)
	if err != nil {
		t.Fatalf("expected valid link, got %v", err)
	}
	query := link.Query()
	if query.Get("phone") != "6281234567890" {
		t.Fatalf("expected phone in link, got %q", query.Get("phone"))
	}
	if query.Get("text") != summary.Message {
		t.Fatalf("expected encoded message to round-trip, got %q", query.Get("text"))
	}
	if query.Get("type") != "phone_number" || query.Get("app_absent") != "0" {
		t.Fatalf("unexpected link params: %v", query)
	}
}

func TestHandoff_ComposeWithoutVariant(t *testing.T) {
	t.Parallel()

	handoff := NewHandoff("628111", nil)
	product := &models.Product{Name: "Template Pack", BasePrice: 50000}

	summary, err := handoff.Compose(product, nil, 1)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}

	if strings.Contains(summary.Message, "Variant:") {
		t.Fatalf("expected no variant line, got:\n%s", summary.Message)
	}
	if summary.Total != 50000 {
		t.Fatalf("expected total 50000, got %d", summary.Total)
	}
}

func TestHandoff_ComposeRejectsUnavailableVariant(t *testing.T) {
	t.Parallel()

	handoff := NewHandoff("628111", nil)
	product := &models.Product{Name: "CapCut Pro", BasePrice: 150000}
	variant := &models.Variant{Name: "Sold Out", Price: 100000, IsAvailable: false}

	if _, err := handoff.Compose(product, variant, 1); !errors.Is(err, ErrVariantUnavailable) {
		t.Fatalf("expected ErrVariantUnavailable, got %v", err)
	}
}

func TestHandoff_ComposeClampsQuantity(t *testing.T) {
	t.Parallel()

	handoff := NewHandoff("628111", nil)
	product := &models.Product{Name: "Template Pack", BasePrice: 50000}

	summary, err := handoff.Compose(product, nil, 0)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if summary.Quantity != 1 {
		t.Fatalf("expected quantity clamped to 1, got %d", summary.Quantity)
	}
}

func TestHandoff_ComposeRequiresProduct(t *testing.T) {
	t.Parallel()

	handoff := NewHandoff("628111", nil)
	if _, err := handoff.Compose(nil, nil, 1); !errors.Is(err, ErrProductRequired) {
		t.Fatalf("expected ErrProductRequired, got %v", err)
	}
}
