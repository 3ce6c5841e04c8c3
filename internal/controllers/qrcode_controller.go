package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/skip2/go-qrcode"

	"brandtools-be/internal/middleware"
	"brandtools-be/internal/repository"
	"brandtools-be/internal/service"
)

type QRCodeController struct {
	profileService service.ProfileService
}

func NewQRCodeController(profileService service.ProfileService) *QRCodeController {
	return &QRCodeController{profileService: profileService}
}

// ProfileQRCode handles GET /api/profile/qrcode - generates a QR code for
// the website saved in the user's onboarding profile
func (qc *QRCodeController) ProfileQRCode(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, _, err := qc.profileService.GetOnboarding(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("QR code profile lookup error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	if profile == nil || profile.Website == "" {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "No website set in profile",
		})
		return
	}

	// 256x256 pixels, medium error recovery
	qrCode, err := qrcode.New(profile.Website, qrcode.Medium)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code",
		})
		return
	}

	pngData, err := qrCode.PNG(256)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"error": "Failed to generate QR code image",
		})
		return
	}

	c.Header("Content-Disposition", "inline; filename=qrcode.png")
	c.Data(http.StatusOK, "image/png", pngData)
}
