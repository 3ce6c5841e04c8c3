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
	"brandtools-be/internal/workflow"
)

type AuthController struct {
	authService  service.AuthService
	workflows    *workflow.Store
	cookieSecure bool
}

func NewAuthController(authService service.AuthService, workflows *workflow.Store, cookieSecure bool) *AuthController {
	return &AuthController{
		authService:  authService,
		workflows:    workflows,
		cookieSecure: cookieSecure,
	}
}

// Signup handles POST /api/auth/signup
func (ac *AuthController) Signup(c *gin.Context) {
	var req models.SignupRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, token, err := ac.authService.Signup(&req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, repository.ErrEmailTaken):
			c.JSON(http.StatusConflict, gin.H{"error": "User with this email already exists"})
		default:
			log.Printf("Signup error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	middleware.SetSessionCookie(c, token, ac.cookieSecure)
	c.JSON(http.StatusCreated, models.AuthResponse{
		User:    user,
		Message: "User created successfully",
	})
}

// Login handles POST /api/auth/login
func (ac *AuthController) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}

	user, token, err := ac.authService.Login(&req)
	if err != nil {
		var validationErr *service.ValidationError
		switch {
		case errors.As(err, &validationErr):
			c.JSON(http.StatusBadRequest, gin.H{"error": validationErr.Message})
		case errors.Is(err, service.ErrInvalidCredentials):
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid email or password"})
		default:
			log.Printf("Login error: %v", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		}
		return
	}

	middleware.SetSessionCookie(c, token, ac.cookieSecure)
	c.JSON(http.StatusOK, models.AuthResponse{
		User:    user,
		Message: "Login successful",
	})
}

// Logout handles POST /api/auth/logout. It clears the cookie whether or not
// a valid session was presented, so it is safe to call repeatedly.
func (ac *AuthController) Logout(c *gin.Context) {
	middleware.ClearSessionCookie(c, ac.cookieSecure)
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Logged out successfully",
	})
}

// Me handles GET /api/auth/me. A valid cookie can still reference a deleted
// account; that is the one case where an authenticated request returns 404.
func (ac *AuthController) Me(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	user, err := ac.authService.Me(userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Me error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, models.MeResponse{User: user})
}

// DeleteAccount handles DELETE /api/auth/account
func (ac *AuthController) DeleteAccount(c *gin.Context) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}

	if err := ac.authService.DeleteAccount(userID); err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
			return
		}
		log.Printf("Delete account error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	// Saved tool results belong to the account; drop them with it.
	if ac.workflows != nil {
		if err := ac.workflows.Clear(c.Request.Context(), userID); err != nil {
			log.Printf("Failed to clear workflow data for deleted account: %v", err)
		}
	}

	middleware.ClearSessionCookie(c, ac.cookieSecure)
	c.JSON(http.StatusOK, models.MessageResponse{
		Message: "Account deleted successfully",
	})
}
