package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/models"
	"github.com/sahil-jamadar/new-couture-project/search"
)

type SearchController struct {
	engine *search.Engine
}

func NewSearchController(engine *search.Engine) *SearchController {
	return &SearchController{engine: engine}
}

// GetSuggestions serves the typed suggestion list while the user types. Each
// suggestion ships the parameters its activation should route to the results
// page with.
func (sc *SearchController) GetSuggestions(ctx *gin.Context) {
	query := ctx.Query("q")
	suggestions := sc.engine.Suggest(query)

	type entry struct {
		ID       string      `json:"id"`
		Title    string      `json:"title"`
		Type     string      `json:"type"`
		Category string      `json:"category,omitempty"`
		Product  interface{} `json:"product,omitempty"`
		Params   string      `json:"params"`
	}
	entries := make([]entry, 0, len(suggestions))
	for _, s := range suggestions {
		e := entry{
			ID:       s.ID,
			Title:    s.Title,
			Type:     s.Type,
			Category: s.Category,
			Params:   search.ActivationParams(s).Encode(),
		}
		if s.Product != nil {
			e.Product = s.Product
		}
		entries = append(entries, e)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"suggestions": entries,
		"count":       len(entries),
	})
}

// Search serves the results page: the type-directed primary results, the
// active facet filters, and the related-products set when results are sparse.
// No match is a valid empty state, not an error.
func (sc *SearchController) Search(ctx *gin.Context) {
	query := ctx.Query("q")
	searchType := ctx.Query("type")

	// The "category" parameter is the display hint carried over from a
	// suggestion click; the category facet filters on section labels and
	// arrives as "section".
	filters := search.Filters{
		Brand:      ctx.Query("brand"),
		Material:   ctx.Query("material"),
		Category:   ctx.Query("section"),
		PriceRange: ctx.Query("price"),
	}

	results, related := sc.engine.Search(query, searchType, filters)
	if results == nil {
		results = []models.Product{}
	}
	if related == nil {
		related = []models.Product{}
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"query":    query,
		"type":     searchType,
		"category": ctx.Query("category"),
		"results":  results,
		"count":    len(results),
		"related":  related,
	})
}
