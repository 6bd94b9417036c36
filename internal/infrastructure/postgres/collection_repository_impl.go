package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinespot/cinespot-api/internal/domain/entity"
	"github.com/cinespot/cinespot-api/internal/domain/repository"
)

// CollectionRepository stores saved movies, one row per (user, movie).
type CollectionRepository struct {
	pool *pgxpool.Pool
}

func NewCollectionRepository(pool *pgxpool.Pool) *CollectionRepository {
	return &CollectionRepository{pool: pool}
}

func (r *CollectionRepository) Add(ctx context.Context, item *entity.CollectionItem) error {
	row := r.pool.QueryRow(ctx, `
		INSERT INTO collection_items (user_id, movie_id, title, poster_url)
		VALUES ($1, $2, $3, $4)
		RETURNING id, added_at
	`, item.UserID, item.MovieID, item.Title, item.PosterURL)

	if err := row.Scan(&item.ID, &item.AddedAt); err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return repository.ErrDuplicateMovie
		}
		return err
	}
	return nil
}

func (r *CollectionRepository) ListByUser(ctx context.Context, userID string) ([]entity.CollectionItem, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT id, user_id, movie_id, title, poster_url, added_at
		FROM collection_items
		WHERE user_id = $1
		ORDER BY added_at DESC
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var items []entity.CollectionItem
	for rows.Next() {
		var it entity.CollectionItem
		if err := rows.Scan(&it.ID, &it.UserID, &it.MovieID, &it.Title, &it.PosterURL, &it.AddedAt); err != nil {
			return nil, err
		}
		items = append(items, it)
	}
	return items, rows.Err()
}

func (r *CollectionRepository) Remove(ctx context.Context, userID, movieID string) error {
	res, err := r.pool.Exec(ctx, `
		DELETE FROM collection_items
		WHERE user_id = $1 AND movie_id = $2
	`, userID, movieID)
	if err != nil {
		return err
	}
	if res.RowsAffected() == 0 {
		return repository.ErrNotFound
	}
	return nil
}

var _ repository.CollectionRepository = (*CollectionRepository)(nil)
