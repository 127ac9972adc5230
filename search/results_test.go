package search

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sahil-jamadar/new-couture-project/models"
)

func ids(products []models.Product) []string {
	out := make([]string, 0, len(products))
	for _, p := range products {
		out = append(out, p.ID)
	}
	return out
}

func TestSearchEmptyQueryReturnsNothing(t *testing.T) {
	e := newTestEngine(t)

	results, related := e.Search("", "", Filters{})
	assert.Nil(t, results)
	assert.Nil(t, related)

	results, related = e.Search("   ", "", Filters{})
	assert.Nil(t, results)
	assert.Nil(t, related)
}

func TestSearchDefaultMatchesAcrossFields(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("cotton", "", Filters{})

	// Matched through description or material even when the name has no
	// "cotton" in it, but a pure linen product stays out.
	assert.Contains(t, ids(results), "cotton-2")
	assert.NotContains(t, ids(results), "linen-60-lee")
}

func TestSearchMaterialTypeIgnoresNameMatches(t *testing.T) {
	e := newTestEngine(t)

	// "lee" hits the linen product's name, but a material-typed search only
	// looks at the material field.
	results, _ := e.Search("lee", TypeMaterial, Filters{})
	assert.Empty(t, results)

	results, _ = e.Search("lee", "", Filters{})
	assert.Equal(t, []string{"linen-60-lee"}, ids(results))
}

func TestSearchBrandTypeFallsBackToName(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("raymond", TypeBrand, Filters{})
	assert.Equal(t, []string{"trouser-1"}, ids(results))

	// Catalog records carry no brand for most products, so a brand-typed
	// search still finds name matches.
	results, _ = e.Search("armani", TypeBrand, Filters{})
	assert.Equal(t, []string{"trouser-1"}, ids(results))
}

func TestSearchCategoryTypeMatchesSection(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("trouser", TypeCategory, Filters{})
	assert.Equal(t, []string{"trouser-1", "trouser-2", "trouser-3"}, ids(results))
}

func TestSearchPriceRangeFacet(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("cotton", "", Filters{PriceRange: "2000-3000"})
	assert.Contains(t, ids(results), "cotton-2")
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, 2000)
		assert.LessOrEqual(t, p.Price, 3000)
	}
	assert.NotContains(t, ids(results), "cotton-3")
}

func TestSearchPriceRangeOpenTop(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("fabric", "", Filters{PriceRange: "2500"})
	require.NotEmpty(t, results)
	for _, p := range results {
		assert.GreaterOrEqual(t, p.Price, 2500)
	}
}

func TestSearchPriceRangeUnparseableMinMatchesNothing(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("cotton", "", Filters{PriceRange: "cheap-3000"})
	assert.Empty(t, results)
}

func TestSearchBrandAndMaterialFacetsAreExact(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("fabric", "", Filters{Material: "Egyptian Giza Cotton"})
	assert.Equal(t, []string{"cotton-2", "cotton-4"}, ids(results))

	results, _ = e.Search("fabric", "", Filters{Brand: "Arvind"})
	assert.Equal(t, []string{"cotton-5"}, ids(results))

	// A partial value is not a match.
	results, _ = e.Search("fabric", "", Filters{Material: "Giza Cotton"})
	assert.Empty(t, results)
}

func TestSearchCategoryFacetMatchesSection(t *testing.T) {
	e := newTestEngine(t)

	results, _ := e.Search("fabric", "", Filters{Category: "Ethnic"})
	assert.Equal(t, []string{"ethnic-1", "ethnic-2"}, ids(results))
}

func TestSearchRelatedOnlyWhenResultsSparse(t *testing.T) {
	e := newTestEngine(t)

	// Every product in the test catalog mentions "fabric", so the result
	// set reaches the threshold and no related set is computed.
	results, related := e.Search("fabric", "", Filters{})
	assert.GreaterOrEqual(t, len(results), 10)
	assert.Nil(t, related)
}

func TestSearchRelatedWidensSparseResults(t *testing.T) {
	e := newTestEngine(t)

	// The full phrase matches nothing; its long tokens pull in silk and
	// linen products as related.
	results, related := e.Search("silk lee", "", Filters{})
	assert.Empty(t, results)
	assert.Equal(t, []string{"linen-60-lee", "ethnic-1", "ethnic-2"}, ids(related))
}

func TestSearchRelatedExcludesPrimaryResults(t *testing.T) {
	e := newTestEngine(t)

	// "premium" matches four products directly; the same token drives the
	// related scan, so everything it finds is already a primary result.
	results, related := e.Search("premium", "", Filters{})
	require.NotEmpty(t, results)
	assert.Empty(t, related)
}

func TestSearchRelatedIgnoresShortTokens(t *testing.T) {
	e := newTestEngine(t)

	// "co" would substring-match every cotton product, but two-character
	// tokens are skipped.
	_, related := e.Search("co silk", "", Filters{})
	assert.Equal(t, []string{"ethnic-1", "ethnic-2"}, ids(related))
}
