package http

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/catalog"
)

type ProductHandler struct {
	catalog catalog.Store
}

func NewProductHandler(store catalog.Store) *ProductHandler {
	return &ProductHandler{catalog: store}
}

// GET /api/v1/products?category=...&search=...&min_price=...&max_price=...
func (h *ProductHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	filter := catalog.Filter{
		CategorySlug: q.Get("category"),
		Search:       q.Get("search"),
	}

	if raw := q.Get("min_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_min_price", "min_price must be a number")
			return
		}
		filter.MinPrice = &d
	}
	if raw := q.Get("max_price"); raw != "" {
		d, err := decimal.NewFromString(raw)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid_max_price", "max_price must be a number")
			return
		}
		filter.MaxPrice = &d
	}

	respondJSON(w, http.StatusOK, h.catalog.List(filter))
}

// GET /api/v1/products/{product_id}
func (h *ProductHandler) Get(w http.ResponseWriter, r *http.Request) {
	productID := chi.URLParam(r, "product_id")

	product, err := h.catalog.Get(productID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// GET /api/v1/categories
func (h *ProductHandler) Categories(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.catalog.Categories())
}
