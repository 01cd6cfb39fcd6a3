package catalog

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCollection(t *testing.T) {
	t.Run("creates collection", func(t *testing.T) {
		c, err := NewCollection("  Kitchen  ")
		require.NoError(t, err)
		assert.Equal(t, "Kitchen", c.Title)
		assert.Nil(t, c.FeaturedProductID)
		assert.NotEqual(t, uuid.Nil, c.ID)
	})

	t.Run("fails with empty title", func(t *testing.T) {
		_, err := NewCollection("")
		require.Error(t, err)
	})
}

func TestCollection_RenameAndFeature(t *testing.T) {
	c, err := NewCollection("Kitchen")
	require.NoError(t, err)

	require.NoError(t, c.Rename("Home & Kitchen"))
	assert.Equal(t, "Home & Kitchen", c.Title)
	assert.Error(t, c.Rename(""))
	assert.Equal(t, "Home & Kitchen", c.Title)

	productID := uuid.New()
	c.Feature(&productID)
	require.NotNil(t, c.FeaturedProductID)
	assert.Equal(t, productID, *c.FeaturedProductID)

	c.Feature(nil)
	assert.Nil(t, c.FeaturedProductID)
}

func TestNewReview(t *testing.T) {
	productID := uuid.New()

	t.Run("creates review dated today", func(t *testing.T) {
		r, err := NewReview(productID, "Ana", "Great beans")
		require.NoError(t, err)
		assert.Equal(t, productID, r.ProductID)
		assert.Equal(t, "Ana", r.Name)
		assert.False(t, r.Date.IsZero())
		assert.Equal(t, 0, r.Date.Hour())
	})

	t.Run("requires name", func(t *testing.T) {
		_, err := NewReview(productID, " ", "Great beans")
		assert.Error(t, err)
	})

	t.Run("requires description", func(t *testing.T) {
		_, err := NewReview(productID, "Ana", "")
		assert.Error(t, err)
	})
}
