package controllers

import (
	"net/http"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/catalog"
	"github.com/sahil-jamadar/new-couture-project/models"
	"github.com/sahil-jamadar/new-couture-project/utils"
)

type ProductController struct {
	catalog *catalog.Catalog
}

func NewProductController(c *catalog.Catalog) *ProductController {
	return &ProductController{catalog: c}
}

// GetProducts lists the catalog, optionally narrowed to one section.
func (pc *ProductController) GetProducts(ctx *gin.Context) {
	if section := ctx.Query("section"); section != "" {
		products := pc.catalog.SectionProducts(section)
		if products == nil {
			products = []models.Product{}
		}
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"section":  section,
			"products": products,
		})
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"products": pc.catalog.All()})
}

// GetProduct serves a detail page. An unknown id is an explicit not-found
// state the client redirects away from, never a hard failure.
func (pc *ProductController) GetProduct(ctx *gin.Context) {
	id := ctx.Param("id")
	detail := pc.catalog.DetailByID(id)
	if detail == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	response := gin.H{
		"product": detail,
		"section": pc.catalog.Section(id),
	}
	if variant, ok := detail.FirstAvailableVariant(); ok {
		response["defaultVariant"] = variant.ID
	}
	sendJSONResponse(ctx, http.StatusOK, response)
}

// GetProductShareLinks builds the share targets for a product page.
func (pc *ProductController) GetProductShareLinks(ctx *gin.Context) {
	id := ctx.Param("id")
	product := pc.catalog.ByID(id)
	if product == nil {
		sendErrorResponse(ctx, http.StatusNotFound, msgProductNotFound)
		return
	}

	pageURL := os.Getenv("FRONTEND_URL") + "/product/" + id
	links := utils.BuildShareLinks(pageURL, product.Name, "Found something amazing on The Coutures")
	sendJSONResponse(ctx, http.StatusOK, gin.H{"links": links})
}

// GetBrandProducts serves a brand collection grouped by category. An unknown
// brand renders as an empty collection.
func (pc *ProductController) GetBrandProducts(ctx *gin.Context) {
	brand := ctx.Param("name")
	products := pc.catalog.BrandProducts(brand)
	if products == nil {
		products = []models.Product{}
	}

	byCategory := make(map[string][]models.Product)
	for _, p := range products {
		byCategory[p.Category] = append(byCategory[p.Category], p)
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"brand":      brand,
		"products":   products,
		"byCategory": byCategory,
		"count":      len(products),
	})
}
