package models

import "brandtools-be/internal/entities"

// AuthResponse represents the response after successful signup or login.
// The embedded user is always sanitized (the password hash never serializes).
type AuthResponse struct {
	User    *entities.User `json:"user"`
	Message string         `json:"message"`
}

// MeResponse represents the response for the current-user lookup
type MeResponse struct {
	User *entities.User `json:"user"`
}

// MessageResponse is a bare status message body
type MessageResponse struct {
	Message string `json:"message"`
}
