package service

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/linkarray/link-service/internal/analytics"
	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/repository"
	apperrors "github.com/linkarray/link-service/pkg/util"
)

// dashboardWindowDays is the trailing window charted on the dashboard.
// The window is inclusive of both endpoints, so it spans 31 entries.
const dashboardWindowDays = 30

const dashboardCacheKey = "dashboard:stats"

// SnapshotCache stores short-lived byte snapshots. Implemented by
// persistence.Redis; a miss is (nil, nil).
type SnapshotCache interface {
	GetBytes(ctx context.Context, key string) ([]byte, error)
	SetBytes(ctx context.Context, key string, val []byte, ttl time.Duration) error
}

// DashboardStats is the admin overview payload.
type DashboardStats struct {
	UsersCount    int                    `json:"usersCount"`
	LinksCount    int                    `json:"linksCount"`
	Registrations []analytics.DailyCount `json:"registrations"`
}

// UserUpdate carries admin-editable account fields; nil means "leave as is".
type UserUpdate struct {
	Name     *string
	Username *string
	Email    *string
	Role     *domain.Role
}

// AdminService serves the dashboard and account management operations.
type AdminService struct {
	users    repository.UserRepository
	links    repository.LinkRepository
	cache    SnapshotCache
	cacheTTL time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewAdminService builds the service. cache may be nil to disable
// dashboard snapshot caching.
func NewAdminService(users repository.UserRepository, links repository.LinkRepository, cache SnapshotCache, cacheTTL time.Duration, logger *zap.Logger) *AdminService {
	return &AdminService{
		users:    users,
		links:    links,
		cache:    cache,
		cacheTTL: cacheTTL,
		logger:   logger,
		now:      time.Now,
	}
}

// Dashboard assembles totals plus the dense 30-day registration series.
// A recent snapshot is served from cache when available; cache failures
// only cost the shortcut, never the response.
func (s *AdminService) Dashboard(ctx context.Context) (*DashboardStats, error) {
	if cached := s.cachedStats(ctx); cached != nil {
		return cached, nil
	}

	usersCount, err := s.users.Count(ctx)
	if err != nil {
		return nil, err
	}
	linksCount, err := s.links.Count(ctx)
	if err != nil {
		return nil, err
	}

	end := s.now()
	start := end.AddDate(0, 0, -dashboardWindowDays)
	observations, err := s.users.CountRegistrationsByDay(ctx, start, end)
	if err != nil {
		return nil, err
	}

	series, err := analytics.FillDailySeries(start, end, observations)
	if err != nil {
		if errors.Is(err, analytics.ErrInvalidWindow) {
			return nil, apperrors.NewInvalidWindow(err.Error())
		}
		return nil, err
	}

	stats := &DashboardStats{
		UsersCount:    usersCount,
		LinksCount:    linksCount,
		Registrations: series,
	}
	s.storeStats(ctx, stats)
	return stats, nil
}

// GetUser returns any account with its links.
func (s *AdminService) GetUser(ctx context.Context, userID string) (*domain.User, []domain.Link, error) {
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

// UpdateUser applies admin edits to an account. A new email must not
// belong to another account.
func (s *AdminService) UpdateUser(ctx context.Context, userID string, update UserUpdate) (*domain.User, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.NewNotFound("user", nil)
		}
		return nil, err
	}

	if update.Email != nil && *update.Email != user.Email {
		existing, err := s.users.GetByEmail(ctx, *update.Email)
		if err == nil && existing.ID != user.ID {
			return nil, apperrors.NewConflict("email already in use, try another email", nil)
		}
		if err != nil && !errors.Is(err, pgx.ErrNoRows) {
			return nil, err
		}
		user.Email = *update.Email
	}
	if update.Name != nil {
		user.Name = *update.Name
	}
	if update.Username != nil {
		user.Username = *update.Username
	}
	if update.Role != nil {
		if !domain.ValidRole(*update.Role) {
			return nil, apperrors.NewValidationError("unknown role", nil)
		}
		user.Role = *update.Role
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteUser removes an account and cascades to its links, returning
// the deleted account and how many links went with it.
func (s *AdminService) DeleteUser(ctx context.Context, userID string) (*domain.User, int, error) {
	user, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, 0, apperrors.NewNotFound("user", nil)
		}
		return nil, 0, err
	}
	// Links go first so the count survives the FK cascade.
	deleted, err := s.links.DeleteByUser(ctx, userID)
	if err != nil {
		return nil, 0, err
	}
	if err := s.users.Delete(ctx, userID); err != nil {
		return nil, 0, err
	}
	return user, deleted, nil
}

func (s *AdminService) cachedStats(ctx context.Context) *DashboardStats {
	if s.cache == nil || s.cacheTTL <= 0 {
		return nil
	}
	raw, err := s.cache.GetBytes(ctx, dashboardCacheKey)
	if err != nil {
		s.logger.Warn("dashboard cache read failed", zap.Error(err))
		return nil
	}
	if raw == nil {
		return nil
	}
	var stats DashboardStats
	if err := json.Unmarshal(raw, &stats); err != nil {
		return nil
	}
	return &stats
}

func (s *AdminService) storeStats(ctx context.Context, stats *DashboardStats) {
	if s.cache == nil || s.cacheTTL <= 0 {
		return
	}
	raw, err := json.Marshal(stats)
	if err != nil {
		return
	}
	if err := s.cache.SetBytes(ctx, dashboardCacheKey, raw, s.cacheTTL); err != nil {
		s.logger.Warn("dashboard cache write failed", zap.Error(err))
	}
}
