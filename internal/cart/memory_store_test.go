package cart

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/saylla/ponto-eletronico-shop/internal/domain"
)

func lineItem(productID string, price string, qty int) domain.LineItem {
	return domain.LineItem{
		ProductID: productID,
		Name:      "Produto " + productID,
		UnitPrice: decimal.RequireFromString(price),
		Quantity:  qty,
	}
}

func TestMemoryStore_AddItem_And_Items(t *testing.T) {
	store := NewMemoryStore()

	store.AddItem("u1", lineItem("1", "249.90", 1))
	store.AddItem("u1", lineItem("3", "199.90", 2))

	items := store.Items("u1")
	require.Len(t, items, 2)

	// Insertion order is preserved
	assert.Equal(t, "1", items[0].ProductID)
	assert.Equal(t, "3", items[1].ProductID)
	assert.Equal(t, 2, items[1].Quantity)
}

func TestMemoryStore_AddItem_MergesSameProduct(t *testing.T) {
	store := NewMemoryStore()

	store.AddItem("u1", lineItem("1", "249.90", 1))
	store.AddItem("u1", lineItem("1", "249.90", 2))

	items := store.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestMemoryStore_SetQuantity(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))

	store.SetQuantity("u1", "1", 5)

	items := store.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, 5, items[0].Quantity)
}

func TestMemoryStore_SetQuantity_BelowOneIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 3))

	store.SetQuantity("u1", "1", 0)
	store.SetQuantity("u1", "1", -1)

	items := store.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, 3, items[0].Quantity)
}

func TestMemoryStore_SetQuantity_UnknownProductIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))

	store.SetQuantity("u1", "999", 5)

	items := store.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestMemoryStore_Remove(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))
	store.AddItem("u1", lineItem("3", "199.90", 2))

	removed := store.Remove("u1", "1")
	assert.True(t, removed)

	items := store.Items("u1")
	require.Len(t, items, 1)
	assert.Equal(t, "3", items[0].ProductID)
}

func TestMemoryStore_Remove_UnknownProductIsNoOp(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))

	removed := store.Remove("u1", "999")
	assert.False(t, removed)
	assert.Len(t, store.Items("u1"), 1)
}

func TestMemoryStore_Clear(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))
	store.AddItem("u2", lineItem("4", "89.90", 1))

	store.Clear("u1")

	assert.Empty(t, store.Items("u1"))
	assert.Len(t, store.Items("u2"), 1, "other carts are untouched")
}

func TestMemoryStore_ItemsReturnsCopy(t *testing.T) {
	store := NewMemoryStore()
	store.AddItem("u1", lineItem("1", "249.90", 1))

	items := store.Items("u1")
	items[0].Quantity = 99

	assert.Equal(t, 1, store.Items("u1")[0].Quantity)
}
