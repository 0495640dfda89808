package service

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"

	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/repository"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// UserService serves profile reads and account deletion.
type UserService struct {
	users repository.UserRepository
	links repository.LinkRepository
}

// NewUserService builds the service.
func NewUserService(users repository.UserRepository, links repository.LinkRepository) *UserService {
	return &UserService{users: users, links: links}
}

// Profile returns the caller's account together with all of its links.
func (s *UserService) Profile(ctx context.Context, userID string) (*domain.User, []domain.Link, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("user", nil)
		}
		return nil, nil, err
	}
	links, err := s.links.ListByUser(ctx, user.ID, false)
	if err != nil {
		return nil, nil, err
	}
	return user, links, nil
}

// PublicProfile returns an account by username with its visible links only.
func (s *UserService) PublicProfile(ctx context.Context, username string) (*domain.User, []domain.Link, error) {
	user, err := s.users.GetByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil, apperrors.NewNotFound("user", nil)
		}
		return nil, nil, err
	}
	links, err := s.links.ListByUser(ctx, user.ID, true)
	if err != nil {
		return nil, nil, err
	}
	return user, links, nil
}

// DeleteAccount removes the caller's account and cascades to its links.
// It reports how many links went away with the account.
func (s *UserService) DeleteAccount(ctx context.Context, userID string) (int, error) {
	// Links go first so the count survives the FK cascade.
	deleted, err := s.links.DeleteByUser(ctx, userID)
	if err != nil {
		return 0, err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, apperrors.NewNotFound("user", nil)
		}
		return 0, err
	}
	return deleted, nil
}
