package dto

import (
	"strings"
	"time"

	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// CreateLinkRequest payload for adding a profile link.
type CreateLinkRequest struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// Validate applies the link field rules.
func (r CreateLinkRequest) Validate() error {
	details := map[string]any{}
	if msg := validateTitle(r.Title); msg != "" {
		details["title"] = msg
	}
	if !validURL(r.URL) {
		details["url"] = "please provide a valid http(s) URL"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid link payload", details)
	}
	return nil
}

// UpdateLinkRequest payload for editing a link; omitted fields keep
// their current values.
type UpdateLinkRequest struct {
	Title     *string `json:"title"`
	URL       *string `json:"url"`
	IsVisible *bool   `json:"isVisible"`
}

// Validate applies the link field rules to the fields present.
func (r UpdateLinkRequest) Validate() error {
	if r.Title == nil && r.URL == nil && r.IsVisible == nil {
		return apperrors.NewValidationError("no fields to update", nil)
	}
	details := map[string]any{}
	if r.Title != nil {
		if msg := validateTitle(*r.Title); msg != "" {
			details["title"] = msg
		}
	}
	if r.URL != nil && !validURL(*r.URL) {
		details["url"] = "please provide a valid http(s) URL"
	}
	if len(details) > 0 {
		return apperrors.NewValidationError("invalid link payload", details)
	}
	return nil
}

func validateTitle(title string) string {
	trimmed := strings.TrimSpace(title)
	if len(trimmed) < 3 {
		return "title must be at least 3 characters long"
	}
	if len(trimmed) > 50 {
		return "title must be at most 50 characters long"
	}
	return ""
}

// LinkResponse is the serialized link shape.
type LinkResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	URL       string    `json:"url"`
	IsVisible bool      `json:"isVisible"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// NewLinkResponse maps a domain link.
func NewLinkResponse(link domain.Link) LinkResponse {
	return LinkResponse{
		ID:        link.ID,
		Title:     link.Title,
		URL:       link.URL,
		IsVisible: link.IsVisible,
		CreatedAt: link.CreatedAt,
		UpdatedAt: link.UpdatedAt,
	}
}

// NewLinkResponses maps a slice of domain links.
func NewLinkResponses(links []domain.Link) []LinkResponse {
	out := make([]LinkResponse, len(links))
	for i, link := range links {
		out[i] = NewLinkResponse(link)
	}
	return out
}
