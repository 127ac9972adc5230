package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func GetHome(ctx *gin.Context) {
	message := `Welcome to The Coutures API. Enjoy seamless interaction with this API.

The following are the endpoints for this API:

CATALOG
- GET "/product" - Get all products (optional ?section=Cotton|Trouser|Ethnic)
- GET "/product/{id}" - Get product detail with color variants
- GET "/product/{id}/share" - Get share links for a product
- GET "/brand/{name}" - Get a brand's collection

SEARCH
- GET "/search/suggestions?q=" - Get typed suggestions while typing
- GET "/search?q=&type=&brand=&material=&section=&price=" - Search the catalog

CART
- GET "/cart/{cartId}" - Get cart line items
- POST "/cart/{cartId}/items" - Add a product to the cart
- PATCH "/cart/{cartId}/items/{itemId}" - Update a line item quantity
- DELETE "/cart/{cartId}/items/{itemId}" - Remove a line item
- DELETE "/cart/{cartId}" - Clear the cart
- GET "/cart/{cartId}/summary" - Get subtotal, tax and total
- GET "/cart/{cartId}/count" - Get the cart badge count
- POST "/cart/{cartId}/checkout" - Proceed to checkout (login required)

AUTH
- GET "/auth/session" - Restore the current session
- POST "/auth/signout" - Sign out

TAILORING
- POST "/tailoring" - Request a tailoring service appointment`

	ctx.JSON(http.StatusOK, gin.H{
		"message": message,
	})
}
