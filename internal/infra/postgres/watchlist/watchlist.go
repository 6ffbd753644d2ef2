package infra_postgres_watchlist

import (
	"context"
	"fmt"

	"github.com/cinematch/core/internal/model"
	usecase_watchlist "github.com/cinematch/core/internal/usecase/watchlist"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
)

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Add inserts a new row. A second add for the same (user_id, external_id)
// never creates a second row; it is reported as ErrAlreadyInWatchlist so
// callers can surface a notice instead of a failure.
func (r *Repository) Add(ctx context.Context, item model.WatchlistItem) error {
	itemDB := FromDomain(item)

	query := `
		INSERT INTO watchlist (user_id, external_id, title, poster_path, vote_average, overview, release_date)
		VALUES (:user_id, :external_id, :title, :poster_path, :vote_average, :overview, :release_date)
		ON CONFLICT (user_id, external_id) DO NOTHING
	`

	result, err := r.db.NamedExecContext(ctx, query, itemDB)
	if err != nil {
		return fmt.Errorf("failed to store watchlist item: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return usecase_watchlist.ErrAlreadyInWatchlist
	}

	return nil
}

func (r *Repository) LoadByUser(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error) {
	query := `
		SELECT user_id, external_id, title, poster_path, vote_average, overview, release_date
		FROM watchlist
		WHERE user_id = $1
	`

	var itemsDB []WatchlistItemDB
	if err := r.db.SelectContext(ctx, &itemsDB, query, userID); err != nil {
		return nil, fmt.Errorf("failed to query watchlist: %w", err)
	}

	items := make([]model.WatchlistItem, len(itemsDB))
	for i, itemDB := range itemsDB {
		items[i] = itemDB.ToDomain()
	}

	return items, nil
}

// Remove deletes the matching row if present. Removing an absent item is a
// no-op, not an error.
func (r *Repository) Remove(ctx context.Context, userID uuid.UUID, externalID int64) error {
	query := `DELETE FROM watchlist WHERE user_id = $1 AND external_id = $2`

	if _, err := r.db.ExecContext(ctx, query, userID, externalID); err != nil {
		return fmt.Errorf("failed to delete watchlist item: %w", err)
	}

	return nil
}
