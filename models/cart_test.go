package models

import (
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bookProduct(id uint, price float64) Product {
	return Product{
		ID:    id,
		Name:  LocalizedString{PT: "Livro", EN: "Book"},
		Price: price,
		Type:  ProductTypeBook,
	}
}

func TestMergeItemAddsAndGrows(t *testing.T) {
	p := bookProduct(1, 4500)

	items := MergeItem(nil, p, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)

	items = MergeItem(items, p, 1)
	require.Len(t, items, 1)
	assert.Equal(t, 2, items[0].Quantity)
}

func TestMergeItemClampsQuantity(t *testing.T) {
	items := MergeItem(nil, bookProduct(1, 100), -3)
	require.Len(t, items, 1)
	assert.Equal(t, 1, items[0].Quantity)
}

func TestMergeItemSnapshotsProduct(t *testing.T) {
	p := bookProduct(7, 9900)
	items := MergeItem(nil, p, 2)
	require.Len(t, items, 1)
	assert.Equal(t, uint(7), items[0].ProductID)
	assert.Equal(t, "Livro", items[0].ProductNamePT)
	assert.Equal(t, 9900.0, items[0].Price)
}

func TestSetQuantity(t *testing.T) {
	items := MergeItem(nil, bookProduct(1, 100), 1)
	items = MergeItem(items, bookProduct(2, 200), 1)

	items, found := SetQuantity(items, 1, 5)
	require.True(t, found)
	assert.Equal(t, 5, items[0].Quantity)

	items, found = SetQuantity(items, 2, 0)
	require.True(t, found)
	assert.Len(t, items, 1)

	_, found = SetQuantity(items, 99, 3)
	assert.False(t, found)
}

func TestCartCount(t *testing.T) {
	items := MergeItem(nil, bookProduct(1, 100), 2)
	items = MergeItem(items, bookProduct(2, 200), 3)
	assert.Equal(t, 5, CartCount(items))
	assert.Equal(t, 0, CartCount(nil))
}

func TestCartTotalProperty(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("total equals sum of price times quantity", prop.ForAll(
		func(prices []float64, quantities []int) bool {
			n := len(prices)
			if len(quantities) < n {
				n = len(quantities)
			}
			var items []CartItem
			expected := 0.0
			for i := 0; i < n; i++ {
				items = append(items, CartItem{
					ProductID: uint(i + 1),
					Price:     prices[i],
					Quantity:  quantities[i],
				})
				expected += prices[i] * float64(quantities[i])
			}
			return CartTotal(items) == expected
		},
		gen.SliceOf(gen.Float64Range(0, 100000)),
		gen.SliceOf(gen.IntRange(1, 50)),
	))

	properties.TestingRun(t)
}
