package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	Port        string
	Env         string // "production" enables the Secure cookie flag
	DatabaseURL string
	RedisURL    string
	JWTSecret   string // Secret key for session token signing
	JWTTTLHours int    // Session token lifetime in hours

	// Per-tool generation webhook URLs (each independently overridable)
	SEOAuditWebhookURL       string
	MarketAnalysisWebhookURL string
	BrandbookWebhookURL      string
	ContentIdeasWebhookURL   string
	LandingPageWebhookURL    string
	LinkedInPostWebhookURL   string

	RateLimitRPS        float64 // Rate limit for general API endpoints (requests per second)
	RateLimitBurst      int     // Burst size for rate limiting
	RateLimitAuthRPS    float64 // Rate limit for auth endpoints (stricter)
	RateLimitAuthBurst  int     // Burst size for auth endpoints
	RateLimitToolsRPS   float64 // Rate limit for generation endpoints (stricter)
	RateLimitToolsBurst int     // Burst size for generation endpoints
}

func Load() *Config {
	// Try to load .env file (ignore error if file doesn't exist)
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables or defaults")
	}

	return &Config{
		Port:        getEnv("PORT", "8080"),
		Env:         getEnv("ENV", "development"),
		DatabaseURL: getEnv("DATABASE_URL", ""),
		RedisURL:    getEnv("REDIS_URL", ""),
		JWTSecret:   getEnv("JWT_SECRET", ""),
		JWTTTLHours: getEnvInt("JWT_TTL_HOURS", 168), // 7 days

		SEOAuditWebhookURL:       getEnv("SEO_AUDIT_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/seo"),
		MarketAnalysisWebhookURL: getEnv("MARKET_ANALYSIS_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/marketanalyzer"),
		BrandbookWebhookURL:      getEnv("BRANDBOOK_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/brandbook"),
		ContentIdeasWebhookURL:   getEnv("CONTENT_IDEAS_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/content-ideas-generator"),
		LandingPageWebhookURL:    getEnv("LANDING_PAGE_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/landing-page-generator"),
		LinkedInPostWebhookURL:   getEnv("LINKEDIN_POST_WEBHOOK_URL", "https://n8n.ooumph.com/webhook/linkedin-post"),

		RateLimitRPS:        getEnvFloat("RATE_LIMIT_RPS", 10),
		RateLimitBurst:      getEnvInt("RATE_LIMIT_BURST", 20),
		RateLimitAuthRPS:    getEnvFloat("RATE_LIMIT_AUTH_RPS", 5),
		RateLimitAuthBurst:  getEnvInt("RATE_LIMIT_AUTH_BURST", 10),
		RateLimitToolsRPS:   getEnvFloat("RATE_LIMIT_TOOLS_RPS", 2),
		RateLimitToolsBurst: getEnvInt("RATE_LIMIT_TOOLS_BURST", 5),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}

func getEnvFloat(key string, defaultValue float64) float64 {
	if value := os.Getenv(key); value != "" {
		if floatValue, err := strconv.ParseFloat(value, 64); err == nil {
			return floatValue
		}
	}
	return defaultValue
}
