package controllers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandtools-be/internal/middleware"
	"brandtools-be/internal/webhook"
	"brandtools-be/internal/workflow"
)

type WorkflowController struct {
	workflows *workflow.Store
	registry  webhook.Registry
}

func NewWorkflowController(workflows *workflow.Store, registry webhook.Registry) *WorkflowController {
	return &WorkflowController{
		workflows: workflows,
		registry:  registry,
	}
}

func (wc *WorkflowController) available(c *gin.Context) (string, bool) {
	userID, ok := middleware.UserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return "", false
	}
	if wc.workflows == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Workflow storage is unavailable"})
		return "", false
	}
	return userID, true
}

// All handles GET /api/workflow
func (wc *WorkflowController) All(c *gin.Context) {
	userID, ok := wc.available(c)
	if !ok {
		return
	}

	entries, err := wc.workflows.All(c.Request.Context(), userID)
	if err != nil {
		log.Printf("Workflow list error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"workflow": entries})
}

// Get handles GET /api/workflow/:tool
func (wc *WorkflowController) Get(c *gin.Context) {
	userID, ok := wc.available(c)
	if !ok {
		return
	}

	toolName := c.Param("tool")
	if wc.registry.Lookup(toolName) == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tool: " + toolName})
		return
	}

	entry, err := wc.workflows.Get(c.Request.Context(), userID, toolName)
	if err != nil {
		if errors.Is(err, workflow.ErrNoEntry) {
			c.JSON(http.StatusNotFound, gin.H{"error": "No saved result for tool: " + toolName})
			return
		}
		log.Printf("Workflow get error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, entry)
}

// Clear handles DELETE /api/workflow
func (wc *WorkflowController) Clear(c *gin.Context) {
	userID, ok := wc.available(c)
	if !ok {
		return
	}

	if err := wc.workflows.Clear(c.Request.Context(), userID); err != nil {
		log.Printf("Workflow clear error: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Workflow data cleared"})
}
