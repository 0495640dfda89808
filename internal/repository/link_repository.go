package repository

import (
	"context"

	"github.com/jackc/pgx/v5"

	"github.com/linkarray/link-service/internal/domain"
)

// LinkRepository defines persistence access for profile links.
type LinkRepository interface {
	Create(ctx context.Context, link *domain.Link) error
	Update(ctx context.Context, link *domain.Link) error
	GetByID(ctx context.Context, id string) (*domain.Link, error)
	ListByUser(ctx context.Context, userID string, visibleOnly bool) ([]domain.Link, error)
	Delete(ctx context.Context, id string) error
	// DeleteByUser removes every link owned by the user and reports how
	// many rows went away. Used for account-deletion cascade.
	DeleteByUser(ctx context.Context, userID string) (int, error)
	Count(ctx context.Context) (int, error)
}

type linkRepository struct {
	db DB
}

// NewLinkRepository returns a Postgres-backed implementation.
func NewLinkRepository(db DB) LinkRepository {
	return &linkRepository{db: db}
}

func (r *linkRepository) Create(ctx context.Context, link *domain.Link) error {
	const query = `
        INSERT INTO links (user_id, title, url, is_visible)
        VALUES ($1, $2, $3, $4)
        RETURNING id, created_at, updated_at`

	return r.db.QueryRow(ctx, query,
		link.UserID,
		link.Title,
		link.URL,
		link.IsVisible,
	).Scan(&link.ID, &link.CreatedAt, &link.UpdatedAt)
}

func (r *linkRepository) Update(ctx context.Context, link *domain.Link) error {
	const query = `
        UPDATE links SET title=$1, url=$2, is_visible=$3, updated_at=NOW()
        WHERE id=$4`

	cmd, err := r.db.Exec(ctx, query,
		link.Title,
		link.URL,
		link.IsVisible,
		link.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *linkRepository) GetByID(ctx context.Context, id string) (*domain.Link, error) {
	const query = `
        SELECT id, user_id, title, url, is_visible, created_at, updated_at
        FROM links WHERE id=$1`

	var link domain.Link
	if err := r.db.QueryRow(ctx, query, id).Scan(
		&link.ID,
		&link.UserID,
		&link.Title,
		&link.URL,
		&link.IsVisible,
		&link.CreatedAt,
		&link.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &link, nil
}

func (r *linkRepository) ListByUser(ctx context.Context, userID string, visibleOnly bool) ([]domain.Link, error) {
	query := `
        SELECT id, user_id, title, url, is_visible, created_at, updated_at
        FROM links WHERE user_id=$1`
	if visibleOnly {
		query += ` AND is_visible=TRUE`
	}
	query += ` ORDER BY created_at`

	rows, err := r.db.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	links := make([]domain.Link, 0)
	for rows.Next() {
		var link domain.Link
		if err := rows.Scan(
			&link.ID,
			&link.UserID,
			&link.Title,
			&link.URL,
			&link.IsVisible,
			&link.CreatedAt,
			&link.UpdatedAt,
		); err != nil {
			return nil, err
		}
		links = append(links, link)
	}
	return links, rows.Err()
}

func (r *linkRepository) Delete(ctx context.Context, id string) error {
	cmd, err := r.db.Exec(ctx, `DELETE FROM links WHERE id=$1`, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *linkRepository) DeleteByUser(ctx context.Context, userID string) (int, error) {
	cmd, err := r.db.Exec(ctx, `DELETE FROM links WHERE user_id=$1`, userID)
	if err != nil {
		return 0, err
	}
	return int(cmd.RowsAffected()), nil
}

func (r *linkRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.db.QueryRow(ctx, `SELECT COUNT(*) FROM links`).Scan(&count); err != nil {
		return 0, err
	}
	return count, nil
}
