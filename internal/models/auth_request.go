package models

// SignupRequest represents the request body for user signup.
// Presence and format are validated in the auth service so failures carry
// the specific reason.
type SignupRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest represents the request body for user login
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
