package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/repository"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// LinkUpdate carries the mutable link fields; nil means "leave as is".
type LinkUpdate struct {
	Title     *string
	URL       *string
	IsVisible *bool
}

// LinkService owns link CRUD on behalf of the authenticated account.
type LinkService struct {
	links repository.LinkRepository
}

// NewLinkService builds the service.
func NewLinkService(links repository.LinkRepository) *LinkService {
	return &LinkService{links: links}
}

// Add creates a link owned by the caller.
func (s *LinkService) Add(ctx context.Context, userID, title, url string) (*domain.Link, error) {
	link := &domain.Link{
		UserID:    userID,
		Title:     title,
		URL:       url,
		IsVisible: true,
	}
	if err := s.links.Create(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// List returns every link owned by the caller.
func (s *LinkService) List(ctx context.Context, userID string) ([]domain.Link, error) {
	return s.links.ListByUser(ctx, userID, false)
}

// Update applies the given changes to a link the caller owns. An update
// that would change nothing is rejected.
func (s *LinkService) Update(ctx context.Context, userID, linkID string, update LinkUpdate) (*domain.Link, error) {
	link, err := s.getOwned(ctx, userID, linkID)
	if err != nil {
		return nil, err
	}

	changed := false
	if update.Title != nil && *update.Title != link.Title {
		link.Title = *update.Title
		changed = true
	}
	if update.URL != nil && *update.URL != link.URL {
		link.URL = *update.URL
		changed = true
	}
	if update.IsVisible != nil && *update.IsVisible != link.IsVisible {
		link.IsVisible = *update.IsVisible
		changed = true
	}
	if !changed {
		return nil, apperrors.NewValidationError("nothing to update", nil)
	}

	if err := s.links.Update(ctx, link); err != nil {
		return nil, err
	}
	return link, nil
}

// Delete removes a link the caller owns.
func (s *LinkService) Delete(ctx context.Context, userID, linkID string) error {
	if _, err := s.getOwned(ctx, userID, linkID); err != nil {
		return err
	}
	return s.links.Delete(ctx, linkID)
}

func (s *LinkService) getOwned(ctx context.Context, userID, linkID string) (*domain.Link, error) {
	link, err := s.links.GetByID(ctx, linkID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("link", nil)
		}
		return nil, err
	}
	if link.UserID != userID {
		return nil, apperrors.NewForbidden("link belongs to another user")
	}
	return link, nil
}
