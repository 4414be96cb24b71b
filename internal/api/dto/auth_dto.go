package dto

import "time"

// RegisterRequest payload for self registration.
type RegisterRequest struct {
	FirstName  string `json:"first_name"`
	LastName   string `json:"last_name"`
	PersonalID string `json:"personal_id"`
	Password   string `json:"password"`
	Age        int    `json:"age"`
}

// AuthenticateRequest payload for login.
type AuthenticateRequest struct {
	PersonalID string `json:"personal_id"`
	Password   string `json:"password"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
	Roles     []string  `json:"roles"`
}
