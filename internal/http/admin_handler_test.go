package http

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylla/ponto-eletronico-shop/internal/catalog"
	"github.com/saylla/ponto-eletronico-shop/internal/domain"
	"github.com/saylla/ponto-eletronico-shop/internal/orders"
)

func setupAdminRouter(t *testing.T) (*chi.Mux, catalog.Store, orders.Store) {
	t.Helper()

	catalogStore := catalog.NewMemoryStore()
	orderStore := orders.NewMemoryStore()
	handler := NewAdminHandler(catalogStore, orderStore)

	r := chi.NewRouter()
	r.Post("/admin/products", handler.CreateProduct)
	r.Put("/admin/products/{product_id}", handler.UpdateProduct)
	r.Delete("/admin/products/{product_id}", handler.DeleteProduct)
	r.Get("/admin/orders", handler.ListOrders)
	r.Get("/admin/orders/{order_id}", handler.GetOrder)
	r.Put("/admin/orders/{order_id}/status", handler.UpdateOrderStatus)
	return r, catalogStore, orderStore
}

func TestAdminHandler_CreateProduct(t *testing.T) {
	router, catalogStore, _ := setupAdminRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/products", ProductRequestDTO{
		Name:     "Mouse Sem Fio",
		Price:    decimal.RequireFromString("99.90"),
		Category: "cabos-usb",
	})
	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, catalogStore.List(catalog.Filter{Search: "Mouse"}), 1)
}

func TestAdminHandler_CreateProduct_Invalid(t *testing.T) {
	router, _, _ := setupAdminRouter(t)

	rec := doJSON(t, router, http.MethodPost, "/admin/products", ProductRequestDTO{Name: ""})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAdminHandler_UpdateAndDeleteProduct(t *testing.T) {
	router, catalogStore, _ := setupAdminRouter(t)

	rec := doJSON(t, router, http.MethodPut, "/admin/products/1", ProductRequestDTO{
		Name:     "Fone de Ouvido Bluetooth XYZ v2",
		Price:    decimal.RequireFromString("229.90"),
		Category: "fones-de-ouvido",
	})
	require.Equal(t, http.StatusOK, rec.Code)

	p, err := catalogStore.Get("1")
	require.NoError(t, err)
	assert.Equal(t, "Fone de Ouvido Bluetooth XYZ v2", p.Name)

	rec = doJSON(t, router, http.MethodDelete, "/admin/products/1", nil)
	require.Equal(t, http.StatusNoContent, rec.Code)
	_, err = catalogStore.Get("1")
	assert.ErrorIs(t, err, catalog.ErrProductNotFound)

	rec = doJSON(t, router, http.MethodDelete, "/admin/products/1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestAdminHandler_Orders(t *testing.T) {
	router, _, orderStore := setupAdminRouter(t)

	order := domain.Order{
		ID:            uuid.New().String(),
		Total:         decimal.RequireFromString("109.80"),
		PaymentMethod: domain.PaymentMethodPix,
		Status:        domain.OrderStatusProcessing,
	}
	orderStore.Create(order)

	rec := doJSON(t, router, http.MethodGet, "/admin/orders", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), order.ID)

	rec = doJSON(t, router, http.MethodPut, "/admin/orders/"+order.ID+"/status",
		UpdateOrderStatusRequestDTO{Status: domain.OrderStatusShipped})
	require.Equal(t, http.StatusOK, rec.Code)

	got, err := orderStore.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)

	rec = doJSON(t, router, http.MethodPut, "/admin/orders/"+order.ID+"/status",
		UpdateOrderStatusRequestDTO{Status: "LOST"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/admin/orders/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
