package orders

import (
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

func testOrder() domain.Order {
	return domain.Order{
		ID:            uuid.New().String(),
		Total:         decimal.RequireFromString("109.80"),
		PaymentMethod: domain.PaymentMethodPix,
		Status:        domain.OrderStatusProcessing,
	}
}

func TestMemoryStore_CreateAndGet(t *testing.T) {
	store := NewMemoryStore()
	order := testOrder()
	store.Create(order)

	got, err := store.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, order.ID, got.ID)
	assert.Equal(t, domain.OrderStatusProcessing, got.Status)
}

func TestMemoryStore_Get_NotFound(t *testing.T) {
	store := NewMemoryStore()
	_, err := store.Get("missing")
	assert.ErrorIs(t, err, ErrOrderNotFound)
}

func TestMemoryStore_List_NewestFirst(t *testing.T) {
	store := NewMemoryStore()
	first := testOrder()
	second := testOrder()
	store.Create(first)
	store.Create(second)

	list := store.List()
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
}

func TestMemoryStore_UpdateStatus(t *testing.T) {
	store := NewMemoryStore()
	order := testOrder()
	store.Create(order)

	require.NoError(t, store.UpdateStatus(order.ID, domain.OrderStatusShipped))

	got, err := store.Get(order.ID)
	require.NoError(t, err)
	assert.Equal(t, domain.OrderStatusShipped, got.Status)
}

func TestMemoryStore_UpdateStatus_Invalid(t *testing.T) {
	store := NewMemoryStore()
	order := testOrder()
	store.Create(order)

	assert.ErrorIs(t, store.UpdateStatus(order.ID, "LOST"), ErrInvalidStatus)
	assert.ErrorIs(t, store.UpdateStatus("missing", domain.OrderStatusShipped), ErrOrderNotFound)
}
