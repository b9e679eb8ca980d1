package productcontroller

import (
	"testing"

	"github.com/neokudilonga-dev/neokudilonga-api/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseProductRowFull(t *testing.T) {
	cells := []string{
		"12", "Matemática 5", "Maths 5", "Manual oficial", "Official textbook",
		"4500", "30", "book", "in_stock", "3", "Texto Editores",
		"https://images.neokudilonga.ao/a.jpg|https://images.neokudilonga.ao/b.jpg",
	}

	id, product, err := parseProductRow(cells)
	require.NoError(t, err)
	assert.Equal(t, uint(12), id)
	assert.Equal(t, "Matemática 5", product.Name.PT)
	assert.Equal(t, "Maths 5", product.Name.EN)
	assert.Equal(t, 4500.0, product.Price)
	assert.Equal(t, 30, product.Stock)
	assert.Equal(t, models.ProductTypeBook, product.Type)
	assert.Equal(t, models.StockStatusInStock, product.StockStatus)
	assert.Equal(t, uint(3), product.CategoryID)
	assert.Equal(t, "Texto Editores", product.Publisher)
	require.Len(t, product.Images, 2)
	assert.Equal(t, "https://images.neokudilonga.ao/a.jpg", product.Images[0].URL)
}

func TestParseProductRowDefaults(t *testing.T) {
	cells := []string{"", "Dobble", "", "", "", "9900"}

	id, product, err := parseProductRow(cells)
	require.NoError(t, err)
	assert.Zero(t, id)
	assert.Equal(t, models.ProductTypeBook, product.Type)
	assert.Equal(t, models.StockStatusInStock, product.StockStatus)
	assert.Zero(t, product.Stock)
	assert.Empty(t, product.Images)
}

func TestParseProductRowErrors(t *testing.T) {
	cases := map[string][]string{
		"missing name":   {"", "", "", "", "", "100"},
		"bad id":         {"abc", "Livro", "", "", "", "100"},
		"bad price":      {"", "Livro", "", "", "", "free"},
		"negative price": {"", "Livro", "", "", "", "-5"},
		"bad stock":      {"", "Livro", "", "", "", "100", "many"},
		"bad type":       {"", "Livro", "", "", "", "100", "1", "toy"},
		"bad status":     {"", "Livro", "", "", "", "100", "1", "book", "gone"},
	}

	for name, cells := range cases {
		_, _, err := parseProductRow(cells)
		assert.Error(t, err, name)
	}
}

func TestCategoryIDSet(t *testing.T) {
	set := categoryIDSet([]models.Category{{ID: 1}, {ID: 7}})

	assert.True(t, set[1])
	assert.True(t, set[7])
	assert.False(t, set[3])

	// An imported row naming category 3 fails the membership check that
	// gates the import loop.
	_, product, err := parseProductRow([]string{"", "Livro", "", "", "", "100", "1", "book", "in_stock", "3"})
	require.NoError(t, err)
	assert.Equal(t, uint(3), product.CategoryID)
	assert.False(t, product.CategoryID != 0 && set[product.CategoryID])
	assert.True(t, product.CategoryID != 0 && !set[product.CategoryID])
}

func TestParseProductRowShortRow(t *testing.T) {
	// Rows shorter than the column layout read missing cells as empty.
	_, _, err := parseProductRow([]string{"", "Livro"})
	assert.Error(t, err) // price cell empty
}
