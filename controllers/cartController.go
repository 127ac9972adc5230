package controllers

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/cart"
	"github.com/sahil-jamadar/new-couture-project/models"
)

type CartController struct {
	store *cart.Store
}

func NewCartController(store *cart.Store) *CartController {
	return &CartController{store: store}
}

func (cc *CartController) GetCart(ctx *gin.Context) {
	items, err := cc.store.Load(ctx.Request.Context(), ctx.Param("cartId"))
	if err != nil {
		log.Println("Cart load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUnavailable)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"items": items})
}

func (cc *CartController) AddCartItem(ctx *gin.Context) {
	var payload models.CartItem
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		log.Println("Bind error:", err)
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	if payload.Quantity < 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgQuantityBelowOne)
		return
	}

	item, updated, err := cc.store.Add(ctx.Request.Context(), ctx.Param("cartId"), payload.Product, payload.Quantity)
	if err != nil {
		log.Println("Cart add error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to add item to cart")
		return
	}

	if updated {
		sendJSONResponse(ctx, http.StatusOK, gin.H{
			"message": item.Name + " quantity updated",
			"item":    item,
		})
		return
	}
	sendJSONResponse(ctx, http.StatusCreated, gin.H{
		"message": item.Name + " has been added to your cart",
		"item":    item,
	})
}

func (cc *CartController) UpdateCartItem(ctx *gin.Context) {
	var payload struct {
		Quantity int `json:"quantity" binding:"required"`
	}
	if err := ctx.ShouldBindJSON(&payload); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}
	// The store does not clamp quantities; the floor is enforced here, at
	// the caller, the way the quantity controls do.
	if payload.Quantity < 1 {
		sendErrorResponse(ctx, http.StatusBadRequest, msgQuantityBelowOne)
		return
	}

	found, err := cc.store.SetQuantity(ctx.Request.Context(), ctx.Param("cartId"), ctx.Param("itemId"), payload.Quantity)
	if err != nil {
		log.Println("Cart update error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Unable to update cart item quantity.")
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": "Cart item quantity updated"})
}

func (cc *CartController) RemoveCartItem(ctx *gin.Context) {
	found, err := cc.store.Remove(ctx.Request.Context(), ctx.Param("cartId"), ctx.Param("itemId"))
	if err != nil {
		log.Println("Cart remove error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to remove item from cart")
		return
	}
	if !found {
		sendErrorResponse(ctx, http.StatusNotFound, msgCartItemNotFound)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgItemRemoved})
}

func (cc *CartController) ClearCart(ctx *gin.Context) {
	if err := cc.store.Clear(ctx.Request.Context(), ctx.Param("cartId")); err != nil {
		log.Println("Cart clear error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, "Failed to clear cart")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgCartCleared})
}

func (cc *CartController) GetCartSummary(ctx *gin.Context) {
	summary, err := cc.store.Summary(ctx.Request.Context(), ctx.Param("cartId"))
	if err != nil {
		log.Println("Cart summary error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUnavailable)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"summary": summary})
}

func (cc *CartController) GetCartCount(ctx *gin.Context) {
	count, err := cc.store.Count(ctx.Request.Context(), ctx.Param("cartId"))
	if err != nil {
		log.Println("Cart count error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUnavailable)
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{"count": count})
}

// Checkout is the login-required gate at the end of the cart page. Order
// processing itself lives outside this service.
func (cc *CartController) Checkout(ctx *gin.Context) {
	items, err := cc.store.Load(ctx.Request.Context(), ctx.Param("cartId"))
	if err != nil {
		log.Println("Cart load error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgCartUnavailable)
		return
	}
	if len(items) == 0 {
		sendErrorResponse(ctx, http.StatusBadRequest, "Your cart is empty")
		return
	}
	sendJSONResponse(ctx, http.StatusOK, gin.H{
		"message": msgProceedingToCheckout,
		"summary": cart.Summarize(items),
	})
}
