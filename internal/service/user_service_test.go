package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

func TestUserService_PublicProfileHidesInvisibleLinks(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	alice := seedUser(t, users, "alice", domain.RoleUser)

	require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: alice.ID, Title: "shown", URL: "https://a.example.com", IsVisible: true}))
	require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: alice.ID, Title: "hidden", URL: "https://b.example.com", IsVisible: false}))

	s := NewUserService(users, links)

	user, visible, err := s.PublicProfile(context.Background(), "alice")
	require.NoError(t, err)
	require.Equal(t, alice.ID, user.ID)
	require.Len(t, visible, 1)
	require.Equal(t, "shown", visible[0].Title)

	// The owner's own profile view includes everything.
	_, all, err := s.Profile(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Len(t, all, 2)
}

func TestUserService_PublicProfileUnknownUsername(t *testing.T) {
	s := NewUserService(newFakeUserRepo(), newFakeLinkRepo())

	_, _, err := s.PublicProfile(context.Background(), "ghost")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}

func TestUserService_DeleteAccountCascades(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	alice := seedUser(t, users, "alice", domain.RoleUser)

	require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: alice.ID, Title: "one", URL: "https://a.example.com"}))
	require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: alice.ID, Title: "two", URL: "https://b.example.com"}))

	s := NewUserService(users, links)

	deleted, err := s.DeleteAccount(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Equal(t, 2, deleted)

	_, _, err = s.Profile(context.Background(), alice.ID)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
