package service

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/linkarray/link-service/internal/domain"
	"github.com/linkarray/link-service/internal/repository"
)

type fakeUserRepo struct {
	byID          map[string]*domain.User
	registrations map[string]int
	seq           int

	createErr error
	countErr  error
}

var _ repository.UserRepository = (*fakeUserRepo)(nil)

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{byID: map[string]*domain.User{}}
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	f.seq++
	u.ID = fmt.Sprintf("user-%d", f.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUserRepo) Update(_ context.Context, u *domain.User) error {
	if _, ok := f.byID[u.ID]; !ok {
		return pgx.ErrNoRows
	}
	cpy := *u
	f.byID[u.ID] = &cpy
	return nil
}

func (f *fakeUserRepo) GetByID(_ context.Context, id string) (*domain.User, error) {
	if u, ok := f.byID[id]; ok {
		cpy := *u
		return &cpy, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Email == email {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) GetByUsername(_ context.Context, username string) (*domain.User, error) {
	for _, u := range f.byID {
		if u.Username == username {
			cpy := *u
			return &cpy, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeUserRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeUserRepo) Count(context.Context) (int, error) {
	if f.countErr != nil {
		return 0, f.countErr
	}
	return len(f.byID), nil
}

func (f *fakeUserRepo) CountRegistrationsByDay(context.Context, time.Time, time.Time) (map[string]int, error) {
	return f.registrations, nil
}

type fakeLinkRepo struct {
	byID map[string]*domain.Link
	seq  int
}

var _ repository.LinkRepository = (*fakeLinkRepo)(nil)

func newFakeLinkRepo() *fakeLinkRepo {
	return &fakeLinkRepo{byID: map[string]*domain.Link{}}
}

func (f *fakeLinkRepo) Create(_ context.Context, l *domain.Link) error {
	f.seq++
	l.ID = fmt.Sprintf("link-%d", f.seq)
	l.CreatedAt = time.Now()
	l.UpdatedAt = l.CreatedAt
	cpy := *l
	f.byID[l.ID] = &cpy
	return nil
}

func (f *fakeLinkRepo) Update(_ context.Context, l *domain.Link) error {
	if _, ok := f.byID[l.ID]; !ok {
		return pgx.ErrNoRows
	}
	cpy := *l
	f.byID[l.ID] = &cpy
	return nil
}

func (f *fakeLinkRepo) GetByID(_ context.Context, id string) (*domain.Link, error) {
	if l, ok := f.byID[id]; ok {
		cpy := *l
		return &cpy, nil
	}
	return nil, pgx.ErrNoRows
}

func (f *fakeLinkRepo) ListByUser(_ context.Context, userID string, visibleOnly bool) ([]domain.Link, error) {
	links := make([]domain.Link, 0)
	for _, l := range f.byID {
		if l.UserID != userID {
			continue
		}
		if visibleOnly && !l.IsVisible {
			continue
		}
		links = append(links, *l)
	}
	return links, nil
}

func (f *fakeLinkRepo) Delete(_ context.Context, id string) error {
	if _, ok := f.byID[id]; !ok {
		return pgx.ErrNoRows
	}
	delete(f.byID, id)
	return nil
}

func (f *fakeLinkRepo) DeleteByUser(_ context.Context, userID string) (int, error) {
	deleted := 0
	for id, l := range f.byID {
		if l.UserID == userID {
			delete(f.byID, id)
			deleted++
		}
	}
	return deleted, nil
}

func (f *fakeLinkRepo) Count(context.Context) (int, error) {
	return len(f.byID), nil
}

type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte

	getErr error
	setErr error

	getCalls int
	setCalls int
}

var _ SnapshotCache = (*fakeCache)(nil)

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) GetBytes(_ context.Context, key string) ([]byte, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.getCalls++
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.entries[key], nil
}

func (c *fakeCache) SetBytes(_ context.Context, key string, val []byte, _ time.Duration) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.setCalls++
	if c.setErr != nil {
		return c.setErr
	}
	c.entries[key] = append([]byte(nil), val...)
	return nil
}
