package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCartAddItemMergesDuplicateLines(t *testing.T) {
	var c Cart
	c.AddItem(7, 100, 1)
	c.AddItem(7, 100, 2)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 3, c.Items[0].Quantity)
	assert.Equal(t, float64(300), c.Total)
}

func TestCartTotalInvariantAfterMutations(t *testing.T) {
	var c Cart
	c.AddItem(1, 50, 2)  // 100
	c.AddItem(2, 200, 1) // 300

	assert.Equal(t, float64(300), c.Total)
	assert.Equal(t, float64(300), c.TotalAfterDiscount)

	require.True(t, c.SetQuantity(1, 4)) // 400
	assert.Equal(t, float64(400), c.Total)

	require.True(t, c.RemoveItem(2)) // 200
	assert.Equal(t, float64(200), c.Total)
	require.Len(t, c.Items, 1)
}

func TestCartSetQuantityZeroRemovesLine(t *testing.T) {
	var c Cart
	c.AddItem(1, 10, 1)

	require.True(t, c.SetQuantity(1, 0))
	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
}

func TestCartSetQuantityUnknownProduct(t *testing.T) {
	var c Cart
	c.AddItem(1, 10, 1)

	assert.False(t, c.SetQuantity(99, 2))
	assert.False(t, c.RemoveItem(99))
}

func TestCartAddItemClampsQuantity(t *testing.T) {
	var c Cart
	c.AddItem(1, 10, 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 1, c.Items[0].Quantity)
}

func TestCartDiscount(t *testing.T) {
	var c Cart
	c.AddItem(1, 100, 2)
	c.ApplyDiscount(25)

	assert.Equal(t, float64(200), c.Total)
	assert.Equal(t, float64(150), c.TotalAfterDiscount)

	// further mutations keep the discounted total consistent
	c.AddItem(2, 100, 2)
	assert.Equal(t, float64(400), c.Total)
	assert.Equal(t, float64(300), c.TotalAfterDiscount)
}

func TestCartClearResetsEverything(t *testing.T) {
	var c Cart
	c.AddItem(1, 100, 1)
	c.ApplyDiscount(10)
	c.Clear()

	assert.Empty(t, c.Items)
	assert.Zero(t, c.Total)
	assert.Zero(t, c.Discount)
	assert.Zero(t, c.TotalAfterDiscount)
}
