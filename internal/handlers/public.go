package handlers

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/nareldigital/narel/internal/catalog"
	"github.com/nareldigital/narel/internal/meta"
	"github.com/nareldigital/narel/internal/models"
	"github.com/nareldigital/narel/internal/order"
)

// ProductCard is the listing payload: the product plus its resolved price.
type ProductCard struct {
	*models.Product
	Pricing      catalog.Quote    `json:"pricing"`
	PriceDisplay string           `json:"price_display"`
	TypeInfo     catalog.TypeInfo `json:"type_info"`
}

// VariantView is a variant with its price resolved against the product.
type VariantView struct {
	models.Variant
	Pricing      catalog.Quote `json:"pricing"`
	PriceDisplay string        `json:"price_display"`
}

// ProductDetail is the detail payload: every variant priced, the
// description split into renderable segments.
type ProductDetail struct {
	*models.Product
	Pricing      catalog.Quote     `json:"pricing"`
	PriceDisplay string            `json:"price_display"`
	TypeInfo     catalog.TypeInfo  `json:"type_info"`
	Variants     []VariantView     `json:"variants"`
	Segments     []catalog.Segment `json:"description_segments"`
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	products, err := h.catalogService.ListProducts(ctx)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	pricer := catalog.NewPricer()
	cards := make([]ProductCard, 0, len(products))
	for _, product := range products {
		quote := pricer.Resolve(product, product.DefaultVariant())
		cards = append(cards, ProductCard{
			Product:      product,
			Pricing:      quote,
			PriceDisplay: catalog.FormatIDR(quote.FinalPrice),
			TypeInfo:     catalog.ProductTypeInfo(product.ProductType),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": cards})
}

func (h *Handlers) GetProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := productIDFromRequest(w, r)
	if !ok {
		return
	}

	product, err := h.catalogService.GetProduct(ctx, id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	pricer := catalog.NewPricer()
	variants := make([]VariantView, 0, len(product.Variants))
	for _, variant := range product.Variants {
		quote := pricer.Resolve(product, &variant)
		variants = append(variants, VariantView{
			Variant:      variant,
			Pricing:      quote,
			PriceDisplay: catalog.FormatIDR(quote.FinalPrice),
		})
	}

	quote := pricer.Resolve(product, product.DefaultVariant())
	writeJSON(w, http.StatusOK, ProductDetail{
		Product:      product,
		Pricing:      quote,
		PriceDisplay: catalog.FormatIDR(quote.FinalPrice),
		TypeInfo:     catalog.ProductTypeInfo(product.ProductType),
		Variants:     variants,
		Segments:     catalog.FormatDescription(product.Description),
	})
}

type orderRequest struct {
	VariantID *uuid.UUID `json:"variant_id"`
	Quantity  int        `json:"quantity"`
}

// OrderProduct composes the pre-filled order message and deep link for the
// selected variant and quantity.
func (h *Handlers) OrderProduct(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, ok := productIDFromRequest(w, r)
	if !ok {
		return
	}

	var req orderRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	summary, err := h.catalogService.ComposeOrder(ctx, id, req.VariantID, req.Quantity)
	if err != nil {
		h.writeOrderError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, summary)
}

func (h *Handlers) writeOrderError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, order.ErrVariantUnavailable) {
		writeError(w, http.StatusConflict, "Selected variant is not available")
		return
	}
	h.writeServiceError(w, r, err)
}

func (h *Handlers) PageMeta(w http.ResponseWriter, r *http.Request) {
	page := mux.Vars(r)["page"]

	metadata, ok := meta.ForPage(page)
	if !ok {
		writeError(w, http.StatusNotFound, "Unknown page")
		return
	}

	writeJSON(w, http.StatusOK, metadata)
}

func productIDFromRequest(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	id, err := uuid.Parse(mux.Vars(r)["id"])
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid product ID")
		return uuid.Nil, false
	}
	return id, true
}
