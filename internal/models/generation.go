package models

// GenerationResponse wraps a normalized webhook result returned to the client
type GenerationResponse struct {
	Tool      string         `json:"tool"`
	RequestID string         `json:"requestId"`
	Result    map[string]any `json:"result"`
}
