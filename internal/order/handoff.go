// Package order composes pre-filled order messages for the WhatsApp handoff.
package order

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/nareldigital/narel/internal/catalog"
	"github.com/nareldigital/narel/internal/models"
)

var (
	ErrVariantUnavailable = errors.New("variant is not available")
	ErrProductRequired    = errors.New("product is required")
)

const whatsappSendURL = "https://api.whatsapp.com/send/"

// Handoff builds order messages and deep links for a fixed destination
// contact. It performs no I/O; opening the link is the client's job.
type Handoff struct {
	phone  string
	pricer *catalog.Pricer
}

func NewHandoff(phone string, pricer *catalog.Pricer) *Handoff {
	if pricer == nil {
		pricer = catalog.NewPricer()
	}
	return &Handoff{
		phone:  strings.TrimSpace(phone),
		pricer: pricer,
	}
}

// Summary is a fully composed order ready to hand to the messaging link.
type Summary struct {
	Message      string `json:"message"`
	Link         string `json:"whatsapp_url"`
	Quantity     int    `json:"quantity"`
	UnitPrice    int64  `json:"unit_price"`
	Total        int64  `json:"total"`
	TotalDisplay string `json:"total_display"`
}

// Compose builds the order message for a product with an optionally selected
// variant. An unavailable variant must never reach the handoff; Compose
// rejects it rather than trusting the caller's guard.
func (h *Handoff) Compose(product *models.Product, variant *models.Variant, quantity int) (*Summary, error) {
	if product == nil {
		return nil, ErrProductRequired
	}
	if variant != nil && !variant.IsAvailable {
		return nil, ErrVariantUnavailable
	}
	if quantity < 1 {
		quantity = 1
	}

	unitPrice := h.pricer.ResolveFinalPrice(product, variant)
	total := unitPrice * int64(quantity)
	totalDisplay := catalog.FormatIDR(total)

	var b strings.Builder
	b.WriteString("Halo, saya ingin membeli produk berikut:\n\n")
	fmt.Fprintf(&b, "*%s*\n", product.Name)
	if variant != nil {
		fmt.Fprintf(&b, "Variant: %s\n", variant.Name)
	}
	fmt.Fprintf(&b, "Jumlah: %d\n", quantity)
	fmt.Fprintf(&b, "Total Harga: %s\n", totalDisplay)
	b.WriteString("\nMohon informasi untuk pembayaran. Terima kasih!")

	message := b.String()

	return &Summary{
		Message:      message,
		Link:         h.link(message),
		Quantity:     quantity,
		UnitPrice:    unitPrice,
		Total:        total,
		TotalDisplay: totalDisplay,
	}, nil
}

func (h *Handoff) link(message string) string {
	params := url.Values{}
	params.Set("phone", h.phone)
	params.Set("text", message)
	params.Set("type", "phone_number")
	params.Set("app_absent", "0")
	return whatsappSendURL + "?" + params.Encode()
}
