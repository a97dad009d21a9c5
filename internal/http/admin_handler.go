package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/catalog"
	"github.com/saylla/ponto-eletronico-shop/internal/domain"
	"github.com/saylla/ponto-eletronico-shop/internal/orders"
)

// AdminHandler serves the back-office: product management and order
// tracking. All writes mutate in-memory state only and vanish on restart.
type AdminHandler struct {
	catalog catalog.Store
	orders  orders.Store
}

func NewAdminHandler(catalogStore catalog.Store, orderStore orders.Store) *AdminHandler {
	return &AdminHandler{catalog: catalogStore, orders: orderStore}
}

type ProductRequestDTO struct {
	Name             string           `json:"name"`
	Price            decimal.Decimal  `json:"price"`
	OldPrice         *decimal.Decimal `json:"old_price,omitempty"`
	Image            string           `json:"image"`
	Category         string           `json:"category"`
	ShortDescription string           `json:"short_description"`
}

type UpdateOrderStatusRequestDTO struct {
	Status domain.OrderStatus `json:"status"`
}

// POST /api/v1/admin/products
func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Name == "" || req.Price.IsNegative() || req.Price.IsZero() {
		respondError(w, http.StatusBadRequest, "invalid_product", "name and a positive price are required")
		return
	}

	created := h.catalog.Create(domain.Product{
		Name:             req.Name,
		Price:            req.Price,
		OldPrice:         req.OldPrice,
		Image:            req.Image,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
	})

	respondJSON(w, http.StatusCreated, created)
}

// PUT /api/v1/admin/products/{product_id}
func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	var req ProductRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	product := domain.Product{
		ID:               chi.URLParam(r, "product_id"),
		Name:             req.Name,
		Price:            req.Price,
		OldPrice:         req.OldPrice,
		Image:            req.Image,
		Category:         req.Category,
		ShortDescription: req.ShortDescription,
	}

	if err := h.catalog.Update(product); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, product)
}

// DELETE /api/v1/admin/products/{product_id}
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	if err := h.catalog.Delete(chi.URLParam(r, "product_id")); err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// GET /api/v1/admin/orders
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.orders.List())
}

// GET /api/v1/admin/orders/{order_id}
func (h *AdminHandler) GetOrder(w http.ResponseWriter, r *http.Request) {
	order, err := h.orders.Get(chi.URLParam(r, "order_id"))
	if err != nil {
		if errors.Is(err, orders.ErrOrderNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "order not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	respondJSON(w, http.StatusOK, order)
}

// PUT /api/v1/admin/orders/{order_id}/status
func (h *AdminHandler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	var req UpdateOrderStatusRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	orderID := chi.URLParam(r, "order_id")
	if err := h.orders.UpdateStatus(orderID, req.Status); err != nil {
		switch {
		case errors.Is(err, orders.ErrOrderNotFound):
			respondError(w, http.StatusNotFound, "not_found", "order not found")
		case errors.Is(err, orders.ErrInvalidStatus):
			respondError(w, http.StatusBadRequest, "invalid_status", "unknown order status")
		default:
			respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		}
		return
	}

	order, err := h.orders.Get(orderID)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}
	respondJSON(w, http.StatusOK, order)
}
