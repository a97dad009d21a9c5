package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/shopspring/decimal"

	"github.com/saylla/ponto-eletronico-shop/internal/cart"
	"github.com/saylla/ponto-eletronico-shop/internal/catalog"
	"github.com/saylla/ponto-eletronico-shop/internal/currency"
	"github.com/saylla/ponto-eletronico-shop/internal/domain"
	"github.com/saylla/ponto-eletronico-shop/internal/pricing"
)

type CartHandler struct {
	carts   cart.Store
	catalog catalog.Store
}

func NewCartHandler(carts cart.Store, catalogStore catalog.Store) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalogStore}
}

type AddItemRequestDTO struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

type UpdateQuantityRequestDTO struct {
	Quantity int `json:"quantity"`
}

// CartSummaryDTO carries the pricing snapshot plus its display strings, so
// every money value the client shows went through the shared formatter.
type CartSummaryDTO struct {
	Subtotal             decimal.Decimal  `json:"subtotal"`
	Shipping             decimal.Decimal  `json:"shipping"`
	Total                decimal.Decimal  `json:"total"`
	SubtotalDisplay      string           `json:"subtotal_display"`
	ShippingDisplay      string           `json:"shipping_display"`
	TotalDisplay         string           `json:"total_display"`
	AmountToFreeShipping *decimal.Decimal `json:"amount_to_free_shipping,omitempty"`
	FreeShippingMessage  string           `json:"free_shipping_message,omitempty"`
}

type CartResponseDTO struct {
	Items   []domain.LineItem `json:"items"`
	Summary CartSummaryDTO    `json:"summary"`
	Message string            `json:"message,omitempty"`
}

func cartResponse(items []domain.LineItem, message string) CartResponseDTO {
	snap := pricing.ComputeSnapshot(items)

	summary := CartSummaryDTO{
		Subtotal:        snap.Subtotal,
		Shipping:        snap.Shipping,
		Total:           snap.Total,
		SubtotalDisplay: currency.FormatPrice(snap.Subtotal),
		ShippingDisplay: currency.FormatPrice(snap.Shipping),
		TotalDisplay:    currency.FormatPrice(snap.Total),
	}
	if snap.Shipping.IsZero() {
		summary.ShippingDisplay = "Grátis"
	} else {
		missing := pricing.AmountToFreeShipping(snap)
		summary.AmountToFreeShipping = &missing
		summary.FreeShippingMessage = "Adicione mais " + currency.FormatPrice(missing) + " para ganhar frete grátis!"
	}

	return CartResponseDTO{Items: items, Summary: summary, Message: message}
}

// GET /api/v1/cart
func (h *CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	respondJSON(w, http.StatusOK, cartResponse(h.carts.Items(user.ID), ""))
}

// POST /api/v1/cart/items
func (h *CartHandler) AddItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req AddItemRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}
	if req.Quantity < 1 {
		req.Quantity = 1
	}

	product, err := h.catalog.Get(req.ProductID)
	if err != nil {
		if errors.Is(err, catalog.ErrProductNotFound) {
			respondError(w, http.StatusNotFound, "not_found", "product not found")
			return
		}
		respondError(w, http.StatusInternalServerError, "internal_error", "internal server error")
		return
	}

	h.carts.AddItem(user.ID, domain.LineItem{
		ProductID: product.ID,
		Name:      product.Name,
		UnitPrice: product.Price,
		Image:     product.Image,
		Quantity:  req.Quantity,
	})

	respondJSON(w, http.StatusCreated, cartResponse(h.carts.Items(user.ID), "Produto adicionado ao carrinho."))
}

// PUT /api/v1/cart/items/{product_id}
//
// Quantities below 1 and unknown products are silent no-ops: repeated
// decrement clicks and concurrent removals are normal, not errors. The
// response always reflects the current cart.
func (h *CartHandler) UpdateQuantity(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	var req UpdateQuantityRequestDTO
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid_request", "invalid JSON body")
		return
	}

	h.carts.SetQuantity(user.ID, chi.URLParam(r, "product_id"), req.Quantity)

	respondJSON(w, http.StatusOK, cartResponse(h.carts.Items(user.ID), ""))
}

// DELETE /api/v1/cart/items/{product_id}
func (h *CartHandler) RemoveItem(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	message := ""
	if h.carts.Remove(user.ID, chi.URLParam(r, "product_id")) {
		message = "O item foi removido do seu carrinho."
	}

	respondJSON(w, http.StatusOK, cartResponse(h.carts.Items(user.ID), message))
}

// DELETE /api/v1/cart
func (h *CartHandler) Clear(w http.ResponseWriter, r *http.Request) {
	user, ok := userFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "unauthorized", "missing user authentication")
		return
	}

	h.carts.Clear(user.ID)
	respondJSON(w, http.StatusOK, cartResponse(nil, ""))
}
