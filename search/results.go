package search

import (
	"strconv"
	"strings"

	"github.com/sahil-jamadar/new-couture-project/models"
)

const (
	// Related products are only computed when the primary result set is
	// smaller than this, and the related list itself is capped.
	relatedThreshold = 10
	relatedLimit     = 8

	// Query tokens this short are ignored when hunting for related products.
	minRelatedTokenLength = 2
)

// Filters are the independently selected result facets. Empty fields are
// inactive; active ones AND together over the type-filtered base set.
type Filters struct {
	Brand    string
	Material string
	Category string
	// PriceRange is "min-max" (both inclusive) or a bare "min" for the
	// top-open bucket.
	PriceRange string
}

// Search runs a results-page query: a type-directed base match, the facet
// filters, and a secondary related-products set when the primary results are
// sparse. An empty or whitespace-only query short-circuits to nothing.
func (e *Engine) Search(query, searchType string, filters Filters) (results, related []models.Product) {
	if strings.TrimSpace(query) == "" {
		return nil, nil
	}
	term := strings.ToLower(query)

	for _, p := range e.catalog.All() {
		if e.matches(p, term, searchType) {
			results = append(results, p)
		}
	}

	results = e.applyFilters(results, filters)

	if len(results) < relatedThreshold {
		related = e.relatedProducts(term, results)
	}
	return results, related
}

// matches applies the type hint carried over from a suggestion click: brand
// searches fall back to the name field for records without a brand, material
// and category searches stay on their own field, and an untyped search hits
// any of name, description, material or brand.
func (e *Engine) matches(p models.Product, term, searchType string) bool {
	switch searchType {
	case TypeBrand:
		return strings.Contains(strings.ToLower(p.Brand), term) ||
			strings.Contains(strings.ToLower(p.Name), term)
	case TypeMaterial:
		return p.Material != "" && strings.Contains(strings.ToLower(p.Material), term)
	case TypeCategory:
		return strings.Contains(strings.ToLower(e.catalog.Section(p.ID)), term)
	default:
		return strings.Contains(strings.ToLower(p.Name), term) ||
			strings.Contains(strings.ToLower(p.Description), term) ||
			strings.Contains(strings.ToLower(p.Material), term) ||
			strings.Contains(strings.ToLower(p.Brand), term)
	}
}

func (e *Engine) applyFilters(results []models.Product, filters Filters) []models.Product {
	filtered := results
	if filters.Brand != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Brand == filters.Brand
		})
	}
	if filters.Material != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return p.Material == filters.Material
		})
	}
	if filters.PriceRange != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return priceInRange(p.Price, filters.PriceRange)
		})
	}
	if filters.Category != "" {
		filtered = keep(filtered, func(p models.Product) bool {
			return e.catalog.Section(p.ID) == filters.Category
		})
	}
	return filtered
}

func keep(products []models.Product, pred func(models.Product) bool) []models.Product {
	var out []models.Product
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}

// priceInRange evaluates a price bucket. Both bounds are inclusive; a bucket
// without a parseable upper bound is open at the top. An unparseable lower
// bound matches nothing.
func priceInRange(price int, priceRange string) bool {
	parts := strings.SplitN(priceRange, "-", 2)
	min, err := strconv.Atoi(parts[0])
	if err != nil {
		return false
	}
	if len(parts) == 2 {
		if max, err := strconv.Atoi(parts[1]); err == nil {
			return price >= min && price <= max
		}
	}
	return price >= min
}

// relatedProducts widens a sparse result set: the query is split on
// whitespace, tokens longer than two characters are matched against name,
// description and material, and anything already in the primary results is
// excluded.
func (e *Engine) relatedProducts(term string, results []models.Product) []models.Product {
	tokens := strings.Fields(term)

	inResults := make(map[string]bool, len(results))
	for _, p := range results {
		inResults[p.ID] = true
	}

	var related []models.Product
	for _, p := range e.catalog.All() {
		if inResults[p.ID] {
			continue
		}
		name := strings.ToLower(p.Name)
		description := strings.ToLower(p.Description)
		material := strings.ToLower(p.Material)
		for _, token := range tokens {
			if len(token) <= minRelatedTokenLength {
				continue
			}
			if strings.Contains(name, token) ||
				strings.Contains(description, token) ||
				(p.Material != "" && strings.Contains(material, token)) {
				related = append(related, p)
				break
			}
		}
		if len(related) == relatedLimit {
			break
		}
	}
	return related
}
