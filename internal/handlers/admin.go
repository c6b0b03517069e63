package handlers

import (
	"io"
	"net/http"

	"github.com/nareldigital/narel/internal/services"
)

func (h *Handlers) AdminListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.adminService.ListProducts(r.Context())
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"products": products})
}

func (h *Handlers) AdminGetProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromRequest(w, r)
	if !ok {
		return
	}

	product, err := h.adminService.GetProduct(r.Context(), id)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handlers) AdminCreateProduct(w http.ResponseWriter, r *http.Request) {
	var input services.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.adminService.CreateProduct(r.Context(), input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusCreated, product)
}

func (h *Handlers) AdminUpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromRequest(w, r)
	if !ok {
		return
	}

	var input services.ProductInput
	if err := decodeJSON(r, &input); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	product, err := h.adminService.UpdateProduct(r.Context(), id, input)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, product)
}

func (h *Handlers) AdminDeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := productIDFromRequest(w, r)
	if !ok {
		return
	}

	if err := h.adminService.DeleteProduct(r.Context(), id); err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// AdminImportCatalog accepts a YAML catalog file in the request body and
// creates every product it describes.
func (h *Handlers) AdminImportCatalog(w http.ResponseWriter, r *http.Request) {
	content, err := io.ReadAll(io.LimitReader(r.Body, maxRequestBodyBytes))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Failed to read request body")
		return
	}
	if len(content) == 0 {
		writeError(w, http.StatusBadRequest, "Catalog file is required")
		return
	}

	result, err := h.adminService.ImportCatalog(r.Context(), content)
	if err != nil {
		h.writeServiceError(w, r, err)
		return
	}

	writeJSON(w, http.StatusOK, result)
}
