package controllers

import (
	"context"
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"brandtools-be/internal/middleware"
	"brandtools-be/internal/models"
	"brandtools-be/internal/webhook"
	"brandtools-be/internal/workflow"
)

type GenerationController struct {
	client    *webhook.Client
	registry  webhook.Registry
	workflows *workflow.Store
}

func NewGenerationController(client *webhook.Client, registry webhook.Registry, workflows *workflow.Store) *GenerationController {
	return &GenerationController{
		client:    client,
		registry:  registry,
		workflows: workflows,
	}
}

// Generate handles POST /api/tools/:tool. The request body is the free-form
// form payload; its shape belongs to the external webhook contract, not to
// this application.
func (gc *GenerationController) Generate(c *gin.Context) {
	toolName := c.Param("tool")
	tool := gc.registry.Lookup(toolName)
	if tool == nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "Unknown tool: " + toolName})
		return
	}

	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error": "Invalid request body",
		})
		return
	}
	if payload == nil {
		payload = map[string]any{}
	}

	if tool.ValidateInput != nil {
		if err := tool.ValidateInput(payload); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	result, err := gc.client.Generate(c.Request.Context(), tool, payload)
	if err != nil {
		gc.respondGenerateError(c, toolName, err)
		return
	}

	// Persist into the workflow chain so the next tool can pick it up.
	// A cache failure should not lose an otherwise successful generation.
	if gc.workflows != nil {
		if userID, ok := middleware.UserID(c); ok {
			if err := gc.workflows.Save(c.Request.Context(), userID, toolName, result.Data); err != nil {
				log.Printf("Failed to save %s result to workflow store: %v", toolName, err)
			}
		}
	}

	c.JSON(http.StatusOK, models.GenerationResponse{
		Tool:      result.Tool,
		RequestID: result.RequestID,
		Result:    result.Data,
	})
}

func (gc *GenerationController) respondGenerateError(c *gin.Context, toolName string, err error) {
	var statusErr *webhook.StatusError
	var networkErr *webhook.NetworkError
	var missingErr *webhook.MissingKeysError

	switch {
	case errors.Is(err, context.DeadlineExceeded):
		c.JSON(http.StatusGatewayTimeout, gin.H{"error": err.Error()})
	case errors.As(err, &statusErr),
		errors.As(err, &networkErr),
		errors.As(err, &missingErr),
		errors.Is(err, webhook.ErrEmptyResponse),
		errors.Is(err, webhook.ErrInvalidJSON),
		errors.Is(err, webhook.ErrEmptyResult):
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
	default:
		log.Printf("Generation error for %s: %v", toolName, err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal server error"})
	}
}
