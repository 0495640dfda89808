package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/linkarray/link-service/internal/domain"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

func seedUser(t *testing.T, users *fakeUserRepo, username string, role domain.Role) *domain.User {
	t.Helper()
	u := &domain.User{
		Name:     username,
		Username: username,
		Email:    username + "@example.com",
		Role:     role,
	}
	require.NoError(t, users.Create(context.Background(), u))
	return u
}

func TestAdminService_DashboardSeries(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()

	seedUser(t, users, "alice", domain.RoleUser)
	seedUser(t, users, "bob", domain.RoleUser)

	today := time.Date(2024, 10, 31, 15, 4, 5, 0, time.UTC)
	users.registrations = map[string]int{
		"2024-10-30": 1,
		"2024-10-31": 1,
		"2024-09-01": 99, // outside the window, must be ignored
	}

	s := NewAdminService(users, links, nil, 0, zap.NewNop())
	s.now = func() time.Time { return today }

	stats, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 2, stats.UsersCount)
	require.Equal(t, 0, stats.LinksCount)

	// Inclusive 30-day window yields 31 dense entries.
	require.Len(t, stats.Registrations, 31)
	require.Equal(t, "2024-10-01", stats.Registrations[0].Date)
	require.Equal(t, "2024-10-31", stats.Registrations[30].Date)

	total := 0
	for _, entry := range stats.Registrations {
		total += entry.Count
	}
	require.Equal(t, 2, total)
	require.Equal(t, 1, stats.Registrations[29].Count)
	require.Equal(t, 1, stats.Registrations[30].Count)
}

func TestAdminService_DashboardUsesCache(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	cache := newFakeCache()
	seedUser(t, users, "alice", domain.RoleUser)

	s := NewAdminService(users, links, cache, time.Minute, zap.NewNop())

	first, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, cache.setCalls)

	// A second user appears, but the cached snapshot is still served.
	seedUser(t, users, "bob", domain.RoleUser)

	second, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, first.UsersCount, second.UsersCount)
	require.Equal(t, 1, cache.setCalls)
	require.Equal(t, 2, cache.getCalls)
}

func TestAdminService_DashboardSurvivesCacheFailure(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	cache := newFakeCache()
	cache.getErr = errors.New("redis down")
	cache.setErr = errors.New("redis down")
	seedUser(t, users, "alice", domain.RoleUser)

	s := NewAdminService(users, links, cache, time.Minute, zap.NewNop())

	stats, err := s.Dashboard(context.Background())
	require.NoError(t, err)
	require.Equal(t, 1, stats.UsersCount)
}

func TestAdminService_UpdateUserEmailConflict(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	alice := seedUser(t, users, "alice", domain.RoleUser)
	seedUser(t, users, "bob", domain.RoleUser)

	s := NewAdminService(users, links, nil, 0, zap.NewNop())

	taken := "bob@example.com"
	_, err := s.UpdateUser(context.Background(), alice.ID, UserUpdate{Email: &taken})
	require.Error(t, err)
	require.Equal(t, "CONFLICT", apperrors.ToDomainError(err).Code)

	fresh := "new@example.com"
	updated, err := s.UpdateUser(context.Background(), alice.ID, UserUpdate{Email: &fresh})
	require.NoError(t, err)
	require.Equal(t, fresh, updated.Email)
}

func TestAdminService_UpdateUserRole(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	alice := seedUser(t, users, "alice", domain.RoleUser)

	s := NewAdminService(users, links, nil, 0, zap.NewNop())

	admin := domain.RoleAdmin
	updated, err := s.UpdateUser(context.Background(), alice.ID, UserUpdate{Role: &admin})
	require.NoError(t, err)
	require.Equal(t, domain.RoleAdmin, updated.Role)

	bogus := domain.Role("superuser")
	_, err = s.UpdateUser(context.Background(), alice.ID, UserUpdate{Role: &bogus})
	require.Error(t, err)
	require.Equal(t, "VALIDATION_FAILED", apperrors.ToDomainError(err).Code)
}

func TestAdminService_DeleteUserCascades(t *testing.T) {
	users := newFakeUserRepo()
	links := newFakeLinkRepo()
	alice := seedUser(t, users, "alice", domain.RoleUser)
	bob := seedUser(t, users, "bob", domain.RoleUser)

	for _, title := range []string{"one", "two"} {
		require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: alice.ID, Title: title, URL: "https://example.com"}))
	}
	require.NoError(t, links.Create(context.Background(), &domain.Link{UserID: bob.ID, Title: "keep", URL: "https://example.com"}))

	s := NewAdminService(users, links, nil, 0, zap.NewNop())

	deleted, linkCount, err := s.DeleteUser(context.Background(), alice.ID)
	require.NoError(t, err)
	require.Equal(t, alice.ID, deleted.ID)
	require.Equal(t, 2, linkCount)

	_, _, err = s.GetUser(context.Background(), alice.ID)
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)

	remaining, err := links.ListByUser(context.Background(), bob.ID, false)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestAdminService_GetUserNotFound(t *testing.T) {
	s := NewAdminService(newFakeUserRepo(), newFakeLinkRepo(), nil, 0, zap.NewNop())

	_, _, err := s.GetUser(context.Background(), "missing")
	require.Error(t, err)
	require.Equal(t, "NOT_FOUND", apperrors.ToDomainError(err).Code)
}
