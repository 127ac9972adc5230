package models

// Product is one catalog record. The catalog is assembled at build time and
// never mutated while the process is running.
type Product struct {
	ID          string `json:"id" binding:"required"`
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
	Price       int    `json:"price" binding:"required"`
	Image       string `json:"image"`
	Material    string `json:"material,omitempty"`
	Brand       string `json:"brand,omitempty"`
	Category    string `json:"category,omitempty"`
}

// ColorVariant is a color option on a product detail page. Its ID is unique
// within the parent product only; cart entries for a variant use the
// composite id "<productId>-<variantId>".
type ColorVariant struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Image   string `json:"image"`
	Price   int    `json:"price"`
	InStock bool   `json:"inStock"`
}

// ProductDetail extends a product with the fields shown on its detail page.
type ProductDetail struct {
	ID            string         `json:"id"`
	Name          string         `json:"name"`
	Subtitle      string         `json:"subtitle"`
	Description   string         `json:"description"`
	Material      string         `json:"material"`
	Weight        string         `json:"weight"`
	Width         string         `json:"width"`
	Care          string         `json:"care"`
	Features      []string       `json:"features"`
	ColorVariants []ColorVariant `json:"colorVariants"`
}

// FirstAvailableVariant returns the first in-stock color, mirroring the
// default selection on the detail page.
func (d *ProductDetail) FirstAvailableVariant() (ColorVariant, bool) {
	for _, v := range d.ColorVariants {
		if v.InStock {
			return v, true
		}
	}
	return ColorVariant{}, false
}

// Variant looks up a color variant by its id.
func (d *ProductDetail) Variant(variantID string) (ColorVariant, bool) {
	for _, v := range d.ColorVariants {
		if v.ID == variantID {
			return v, true
		}
	}
	return ColorVariant{}, false
}

// CartProduct builds the pseudo-product a variant selection adds to the cart:
// composite id, combined display name, the variant's price and image, the
// parent's material and the subtitle as description.
func (d *ProductDetail) CartProduct(variant ColorVariant) Product {
	return Product{
		ID:          d.ID + "-" + variant.ID,
		Name:        d.Name + " - " + variant.Name,
		Description: d.Subtitle,
		Price:       variant.Price,
		Image:       variant.Image,
		Material:    d.Material,
	}
}
