package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandtools-be/internal/middleware"
	"brandtools-be/internal/models"
	"brandtools-be/internal/repository"
	"brandtools-be/internal/service"
)

type OnboardingController struct {
	profileService service.ProfileService
}

func NewOnboardingController(profileService service.ProfileService) *OnboardingController {
	return &OnboardingController{profileService: profileService}
}

// Submit handles POST /api/profile/onboarding
func (oc *OnboardingController) Submit(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	var req models.OnboardingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	profile, err := oc.profileService.SubmitOnboarding(userID, &req)
	if err != nil {
		var missingErr *service.MissingFieldsError
		switch {
		case errors.As(err, &missingErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": missingErr.Error()})
		case errors.Is(err, repository.ErrUserNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		default:
			log.Printf("Onboarding submit error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	c.JSON(http.StatusOK, models.OnboardingResponse{
		Message:             "Onboarding completed successfully",
		Profile:             profile,
		OnboardingCompleted: profile.OnboardingCompleted,
	})
}

// Get handles GET /api/profile/onboarding
func (oc *OnboardingController) Get(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	profile, completed, err := oc.profileService.GetOnboarding(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Onboarding get error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.OnboardingResponse{
		Profile:             profile,
		OnboardingCompleted: completed,
	})
}
