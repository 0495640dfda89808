package dto

import (
	"time"

	apperrors "github.com/linkarray/link-service/pkg/util"
)

// SignupRequest payload for new accounts.
type SignupRequest struct {
	Name     string `json:"name"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the signup field rules.
func (r SignupRequest) Validate() error {
	details := map[string]any{}
	if len(r.Name) < 2 {
		details["name"] = "name must be at least 2 characters long"
	}
	if msg := validateUsername(r.Username); msg != "" {
		details["username"] = msg
	}
	if !validEmail(r.Email) {
		details["email"] = "please provide a valid email address"
	}
	if msg := validatePassword(r.Password); msg != "" {
		details["password"] = msg
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid signup payload", details)
	}
	return nil
}

// LoginRequest payload for login.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Validate applies the login field rules.
func (r LoginRequest) Validate() error {
	details := map[string]any{}
	if !validEmail(r.Email) {
		details["email"] = "please provide a valid email address"
	}
	if len(r.Password) < 6 {
		details["password"] = "password must be at least 6 characters long"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid login payload", details)
	}
	return nil
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	ExpiresAt time.Time `json:"expires_at"`
}
