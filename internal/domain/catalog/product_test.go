package catalog

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/storefront/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProduct(t *testing.T) {
	t.Run("creates product with valid inputs", func(t *testing.T) {
		product, err := NewProduct("Espresso Beans", "espresso", decimal.NewFromFloat(12.5), 10)
		require.NoError(t, err)
		require.NotNil(t, product)

		assert.Equal(t, "Espresso Beans", product.Title)
		assert.Equal(t, "espresso", product.Slug)
		assert.True(t, product.Price.Equal(decimal.NewFromFloat(12.5)))
		assert.Equal(t, 10, product.Inventory)
		assert.Nil(t, product.CollectionID)
		assert.Nil(t, product.Description)
		assert.NotEqual(t, uuid.Nil, product.ID)
		assert.Equal(t, 1, product.GetVersion())
	})

	t.Run("derives slug from title", func(t *testing.T) {
		product, err := NewProduct("Crème Brûlée Mix", "", decimal.NewFromInt(5), 0)
		require.NoError(t, err)
		assert.Equal(t, "creme-brulee-mix", product.Slug)
	})

	t.Run("accepts minimum price", func(t *testing.T) {
		_, err := NewProduct("Sticker", "", decimal.NewFromInt(1), 0)
		require.NoError(t, err)
	})

	t.Run("fails with price below one", func(t *testing.T) {
		_, err := NewProduct("Sticker", "", decimal.NewFromFloat(0.99), 0)
		require.Error(t, err)
		assert.True(t, shared.HasCode(err, shared.CodeValidation))
		assert.Contains(t, err.Error(), "greater than or equal to 1")
	})

	t.Run("fails with price above column range", func(t *testing.T) {
		_, err := NewProduct("Boat", "", decimal.NewFromInt(10000), 0)
		require.Error(t, err)
	})

	t.Run("fails with sub-cent price", func(t *testing.T) {
		_, err := NewProduct("Sticker", "", decimal.RequireFromString("1.005"), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "2 decimal places")
	})

	t.Run("fails with negative inventory", func(t *testing.T) {
		_, err := NewProduct("Sticker", "", decimal.NewFromInt(2), -1)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "inventory")
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewProduct("   ", "", decimal.NewFromInt(2), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Title cannot be empty")
	})

	t.Run("fails with title too long", func(t *testing.T) {
		_, err := NewProduct(strings.Repeat("a", 256), "", decimal.NewFromInt(2), 0)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 255 characters")
	})
}

func TestProduct_ChangePrice(t *testing.T) {
	product, err := NewProduct("Mug", "", decimal.NewFromInt(8), 3)
	require.NoError(t, err)

	t.Run("updates price and version", func(t *testing.T) {
		require.NoError(t, product.ChangePrice(decimal.NewFromInt(9)))
		assert.True(t, product.Price.Equal(decimal.NewFromInt(9)))
		assert.Equal(t, 2, product.GetVersion())
	})

	t.Run("rejects invalid price and keeps old one", func(t *testing.T) {
		err := product.ChangePrice(decimal.Zero)
		require.Error(t, err)
		assert.True(t, product.Price.Equal(decimal.NewFromInt(9)))
	})
}

func TestProduct_Update(t *testing.T) {
	product, err := NewProduct("Mug", "", decimal.NewFromInt(8), 3)
	require.NoError(t, err)

	desc := "  Stoneware, 350ml  "
	require.NoError(t, product.Update("Large Mug", "", &desc))
	assert.Equal(t, "Large Mug", product.Title)
	assert.Equal(t, "large-mug", product.Slug)
	require.NotNil(t, product.Description)
	assert.Equal(t, "Stoneware, 350ml", *product.Description)

	blank := ""
	product.SetDescription(&blank)
	assert.Nil(t, product.Description)
}

func TestProduct_SetInventory(t *testing.T) {
	product, err := NewProduct("Mug", "", decimal.NewFromInt(8), 3)
	require.NoError(t, err)

	require.NoError(t, product.SetInventory(0))
	assert.Equal(t, 0, product.Inventory)
	assert.Error(t, product.SetInventory(-5))
	require.NoError(t, product.SetInventory(MaxInventory))
	assert.Error(t, product.SetInventory(MaxInventory+1))
	assert.Equal(t, MaxInventory, product.Inventory)
}

func TestProduct_AssignCollection(t *testing.T) {
	product, err := NewProduct("Mug", "", decimal.NewFromInt(8), 3)
	require.NoError(t, err)

	collectionID := uuid.New()
	product.AssignCollection(&collectionID)
	require.NotNil(t, product.CollectionID)
	assert.Equal(t, collectionID, *product.CollectionID)

	product.AssignCollection(nil)
	assert.Nil(t, product.CollectionID)
}

func TestProduct_PriceWithTax(t *testing.T) {
	tests := []struct {
		name     string
		price    string
		rate     string
		expected string
	}{
		{"ten percent", "10.00", "0.1", "11"},
		{"rounds to cents", "19.99", "0.1", "21.99"},
		{"zero rate", "5.50", "0", "5.5"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			product, err := NewProduct("Item", "", decimal.RequireFromString(tt.price), 0)
			require.NoError(t, err)
			got := product.PriceWithTax(decimal.RequireFromString(tt.rate))
			assert.True(t, got.Equal(decimal.RequireFromString(tt.expected)), "got %s", got)
		})
	}
}

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Hello World", "hello-world"},
		{"  Leading and trailing  ", "leading-and-trailing"},
		{"Café & Crème", "cafe-creme"},
		{"already-a-slug", "already-a-slug"},
		{"Multiple   spaces -- dashes", "multiple-spaces-dashes"},
		{"100% Cotton T-Shirt", "100-cotton-t-shirt"},
		{"!!!", ""},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, Slugify(tt.in))
		})
	}
}
