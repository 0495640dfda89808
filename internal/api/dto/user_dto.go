package dto

import (
	"time"

	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// UserResponse is the serialized account shape. The password hash
// never leaves the service.
type UserResponse struct {
	ID        string         `json:"id"`
	Name      string         `json:"name"`
	Username  string         `json:"username"`
	Email     string         `json:"email"`
	Role      domain.Role    `json:"role"`
	Links     []LinkResponse `json:"links,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
}

// NewUserResponse maps a domain user and its links.
func NewUserResponse(user *domain.User, links []domain.Link) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Name:      user.Name,
		Username:  user.Username,
		Email:     user.Email,
		Role:      user.Role,
		Links:     NewLinkResponses(links),
		CreatedAt: user.CreatedAt,
		UpdatedAt: user.UpdatedAt,
	}
}

// PublicUserResponse is the anonymous view of a profile: no email, no role.
type PublicUserResponse struct {
	Name     string         `json:"name"`
	Username string         `json:"username"`
	Links    []LinkResponse `json:"links"`
}

// NewPublicUserResponse maps a domain user for the public profile page.
func NewPublicUserResponse(user *domain.User, links []domain.Link) PublicUserResponse {
	return PublicUserResponse{
		Name:     user.Name,
		Username: user.Username,
		Links:    NewLinkResponses(links),
	}
}

// AdminUpdateUserRequest payload for admin edits; omitted fields keep
// their current values.
type AdminUpdateUserRequest struct {
	Name     *string `json:"name"`
	Username *string `json:"username"`
	Email    *string `json:"email"`
	Role     *string `json:"role"`
}

// Validate applies the account field rules to the fields present.
func (r AdminUpdateUserRequest) Validate() error {
	if r.Name == nil && r.Username == nil && r.Email == nil && r.Role == nil {
		return apperrors.NewValidationError("no fields to update", nil)
	}
	details := map[string]any{}
	if r.Name != nil && len(*r.Name) < 2 {
		details["name"] = "name must be at least 2 characters long"
	}
	if r.Username != nil {
		if msg := validateUsername(*r.Username); msg != "" {
			details["username"] = msg
		}
	}
	if r.Email != nil && !validEmail(*r.Email) {
		details["email"] = "please provide a valid email address"
	}
	if r.Role != nil && !domain.ValidRole(domain.Role(*r.Role)) {
		details["role"] = "role must be one of admin, user, guest"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid user payload", details)
	}
	return nil
}
