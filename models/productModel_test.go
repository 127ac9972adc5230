package models

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDetail() ProductDetail {
	return ProductDetail{
		ID:       "linen-60-lee",
		Name:     "100% Linen-60 Lee",
		Subtitle: "Unstitched breathable shirt fabric",
		Material: "100% Pure Linen",
		ColorVariants: []ColorVariant{
			{ID: "teal-blue", Name: "Teal Blue", Image: "/images/colors/teal-blue.png", Price: 1599, InStock: false},
			{ID: "navy-blue", Name: "Navy Blue", Image: "/images/colors/navy-blue.png", Price: 1599, InStock: true},
			{ID: "olive-green", Name: "Olive Green", Image: "/images/colors/olive-green.png", Price: 1799, InStock: true},
		},
	}
}

func TestFirstAvailableVariantSkipsOutOfStock(t *testing.T) {
	d := testDetail()

	v, ok := d.FirstAvailableVariant()
	require.True(t, ok)
	assert.Equal(t, "navy-blue", v.ID)
}

func TestFirstAvailableVariantAllOutOfStock(t *testing.T) {
	d := ProductDetail{ColorVariants: []ColorVariant{{ID: "a", InStock: false}}}

	_, ok := d.FirstAvailableVariant()
	assert.False(t, ok)
}

func TestVariantLookup(t *testing.T) {
	d := testDetail()

	v, ok := d.Variant("olive-green")
	require.True(t, ok)
	assert.Equal(t, 1799, v.Price)

	_, ok = d.Variant("magenta")
	assert.False(t, ok)
}

func TestCartProductBuildsCompositeLineItem(t *testing.T) {
	d := testDetail()
	v, _ := d.Variant("olive-green")

	p := d.CartProduct(v)
	assert.Equal(t, "linen-60-lee-olive-green", p.ID)
	assert.Equal(t, "100% Linen-60 Lee - Olive Green", p.Name)
	assert.Equal(t, "Unstitched breathable shirt fabric", p.Description)
	assert.Equal(t, 1799, p.Price)
	assert.Equal(t, "/images/colors/olive-green.png", p.Image)
	assert.Equal(t, "100% Pure Linen", p.Material)
}

func TestCartItemMarshalsFlat(t *testing.T) {
	item := CartItem{
		Product:  Product{ID: "cotton-2", Name: "Denis Art White Edition", Price: 2499},
		Quantity: 2,
	}

	raw, err := json.Marshal(item)
	require.NoError(t, err)

	// Persisted records are a flat product-plus-quantity object, not a
	// nested one.
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(raw, &decoded))
	assert.Equal(t, "cotton-2", decoded["id"])
	assert.Equal(t, float64(2), decoded["quantity"])
	assert.NotContains(t, decoded, "product")
}
