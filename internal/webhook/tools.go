package webhook

import (
	"fmt"
	"strings"
	"time"

	"brandtools-be/internal/config"
)

// BackoffKind selects the wait strategy between retry attempts
type BackoffKind int

const (
	BackoffNone BackoffKind = iota
	BackoffConstant
	BackoffExponential
)

// Tool describes the webhook contract of one content-generation tool:
// where to post, how long to wait, how to retry, and which top-level keys
// the normalized result must carry.
type Tool struct {
	Name        string
	URL         string
	Timeout     time.Duration // 0 means no timeout
	MaxAttempts int           // total attempts including the first
	Backoff     BackoffKind

	// RequiredKeys lists the top-level keys a normalized result must have.
	// An empty list falls back to the uniform minimum check: the result
	// must be a non-empty JSON object.
	RequiredKeys []string

	// ArrayWrappedRequest posts the payload as a one-element JSON array
	// instead of a bare object (the LinkedIn generator contract).
	ArrayWrappedRequest bool

	// ValidateInput checks tool-specific form fields before any request
	// goes out. Nil means no input requirements.
	ValidateInput func(payload map[string]any) error
}

const longToolTimeout = 10 * time.Minute

// Registry maps tool names to their webhook contracts
type Registry map[string]*Tool

// NewRegistry builds the tool registry from configured webhook URLs
func NewRegistry(cfg *config.Config) Registry {
	tools := []*Tool{
		{
			Name:          "seo-audit",
			URL:           cfg.SEOAuditWebhookURL,
			Timeout:       longToolTimeout,
			MaxAttempts:   3,
			Backoff:       BackoffConstant,
			RequiredKeys:  []string{"site", "performance_score"},
			ValidateInput: requireString("url", 1),
		},
		{
			Name:        "market-analysis",
			URL:         cfg.MarketAnalysisWebhookURL,
			Timeout:     longToolTimeout,
			MaxAttempts: 3,
			Backoff:     BackoffConstant,
			RequiredKeys: []string{
				"Overview",
				"trends",
				"Persona for best idea",
				"Brand Positioning for best idea",
			},
			ValidateInput: requireString("businessIdea", 10),
		},
		{
			Name:          "brandbook",
			URL:           cfg.BrandbookWebhookURL,
			Timeout:       longToolTimeout,
			MaxAttempts:   3,
			Backoff:       BackoffConstant,
			RequiredKeys:  []string{"messaging framer worker", "brand guidelines generator"},
			ValidateInput: requireString("brandIdea", 10),
		},
		{
			Name:        "content-ideas",
			URL:         cfg.ContentIdeasWebhookURL,
			Timeout:     longToolTimeout,
			MaxAttempts: 3,
			Backoff:     BackoffExponential,
		},
		{
			Name:        "landing-page",
			URL:         cfg.LandingPageWebhookURL,
			MaxAttempts: 1,
		},
		{
			Name:                "linkedin-post",
			URL:                 cfg.LinkedInPostWebhookURL,
			MaxAttempts:         1,
			ArrayWrappedRequest: true,
		},
	}

	registry := make(Registry, len(tools))
	for _, t := range tools {
		registry[t.Name] = t
	}
	return registry
}

// Lookup returns the tool with the given name, or nil if unknown
func (r Registry) Lookup(name string) *Tool {
	return r[name]
}

// Names returns all registered tool names
func (r Registry) Names() []string {
	names := make([]string, 0, len(r))
	for name := range r {
		names = append(names, name)
	}
	return names
}

func requireString(field string, minLen int) func(map[string]any) error {
	return func(payload map[string]any) error {
		value, _ := payload[field].(string)
		value = strings.TrimSpace(value)
		if value == "" {
			return fmt.Errorf("field '%s' is required", field)
		}
		if len(value) < minLen {
			return fmt.Errorf("field '%s' must be at least %d characters", field, minLen)
		}
		return nil
	}
}
