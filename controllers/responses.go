package controllers

import "github.com/gin-gonic/gin"

const (
	msgInvalidInput         = "Invalid input"
	msgProductNotFound      = "Product not found"
	msgCartItemNotFound     = "Cart item not found"
	msgCartUnavailable      = "Cart is temporarily unavailable"
	msgQuantityBelowOne     = "Quantity must be at least 1"
	msgItemRemoved          = "Item has been removed from your cart"
	msgCartCleared          = "Cart cleared"
	msgSignedOut            = "Signed out successfully"
	msgSignOutFailed        = "Failed to sign out, try again later"
	msgTailoringSubmitted   = "Request Submitted Successfully! Our team will contact you within 24 hours to confirm your appointment."
	msgTailoringFailed      = "Failed to submit request, try again later"
	msgProceedingToCheckout = "Proceeding to checkout"
)

func sendJSONResponse(ctx *gin.Context, status int, data gin.H) {
	ctx.JSON(status, data)
}

func sendErrorResponse(ctx *gin.Context, status int, message string) {
	sendJSONResponse(ctx, status, gin.H{"message": message})
}
