package search

import (
	"net/url"
	"strings"

	"github.com/sahil-jamadar/new-couture-project/catalog"
	"github.com/sahil-jamadar/new-couture-project/models"
)

// Suggestion type tags. They double as the "type" query parameter on the
// results page.
const (
	TypeProduct  = "product"
	TypeMaterial = "material"
	TypeBrand    = "brand"
	TypeCategory = "category"
)

const (
	// Queries shorter than this (trimmed) produce no suggestions at all.
	// This is a usability debounce, not a performance guard.
	minQueryLength = 2
	maxSuggestions = 8
)

// Engine answers free-text queries over the static catalog. It is a linear
// scan over tens of records; no index is built.
type Engine struct {
	catalog *catalog.Catalog
}

func NewEngine(c *catalog.Catalog) *Engine {
	return &Engine{catalog: c}
}

// Suggest produces the typed suggestion list for a partial query. Candidates
// come from four pools in a fixed order: products (name or description
// match), materials, brands and categories. Duplicate (title, type) pairs are
// dropped first-wins and the result is capped at eight entries. Ordering is
// pool order, not relevance.
func (e *Engine) Suggest(query string) []models.Suggestion {
	if len(strings.TrimSpace(query)) < minQueryLength {
		return nil
	}
	term := strings.ToLower(query)

	var candidates []models.Suggestion

	all := e.catalog.All()
	for i := range all {
		p := all[i]
		if strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) {
			candidates = append(candidates, models.Suggestion{
				ID:       "product-" + p.ID,
				Title:    p.Name,
				Type:     TypeProduct,
				Category: p.Material,
				Product:  &all[i],
			})
		}
	}

	for _, material := range e.catalog.Materials() {
		if strings.Contains(strings.ToLower(material), term) {
			candidates = append(candidates, models.Suggestion{
				ID:       "material-" + material,
				Title:    material,
				Type:     TypeMaterial,
				Category: "Material",
			})
		}
	}

	for _, brand := range e.catalog.Brands() {
		if strings.Contains(strings.ToLower(brand), term) {
			candidates = append(candidates, models.Suggestion{
				ID:       "brand-" + brand,
				Title:    brand,
				Type:     TypeBrand,
				Category: "Brand",
			})
		}
	}

	for _, category := range e.catalog.Categories() {
		if strings.Contains(strings.ToLower(category), term) {
			candidates = append(candidates, models.Suggestion{
				ID:       "category-" + category,
				Title:    category,
				Type:     TypeCategory,
				Category: "Category",
			})
		}
	}

	seen := make(map[string]bool)
	var suggestions []models.Suggestion
	for _, s := range candidates {
		key := s.Title + "\x00" + s.Type
		if seen[key] {
			continue
		}
		seen[key] = true
		suggestions = append(suggestions, s)
		if len(suggestions) == maxSuggestions {
			break
		}
	}
	return suggestions
}

// ActivationParams builds the query parameters a selected suggestion routes
// to the results page with: its title as q, its type, and its display label
// as category when present.
func ActivationParams(s models.Suggestion) url.Values {
	params := url.Values{}
	params.Set("q", s.Title)
	params.Set("type", s.Type)
	if s.Category != "" {
		params.Set("category", s.Category)
	}
	return params
}

// QueryParams builds the parameters for a plain free-text search, used when
// no suggestion is highlighted.
func QueryParams(query string) url.Values {
	params := url.Values{}
	params.Set("q", strings.TrimSpace(query))
	return params
}
