package controllers

import (
	"log"
	"net/http"
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/sahil-jamadar/new-couture-project/utils"
)

// TailoringRequest is a home-visit appointment request from the tailoring
// service form.
type TailoringRequest struct {
	Name          string `json:"name" binding:"required"`
	Phone         string `json:"phone" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Address       string `json:"address" binding:"required"`
	PreferredDate string `json:"preferredDate"`
	Notes         string `json:"notes"`
}

// SubmitTailoringRequest emails the request to the shop.
func SubmitTailoringRequest(ctx *gin.Context) {
	var request TailoringRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		sendErrorResponse(ctx, http.StatusBadRequest, msgInvalidInput)
		return
	}

	recipient := os.Getenv("TAILORING_EMAIL")
	if recipient == "" {
		recipient = os.Getenv("FROM_EMAIL")
	}

	templatePath := filepath.Join("templates", "tailoring_request.html")
	if err := utils.SendEmail(recipient, "New Tailoring Service Request", request, templatePath); err != nil {
		log.Println("Tailoring email error:", err)
		sendErrorResponse(ctx, http.StatusInternalServerError, msgTailoringFailed)
		return
	}

	sendJSONResponse(ctx, http.StatusOK, gin.H{"message": msgTailoringSubmitted})
}
