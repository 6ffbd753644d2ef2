package infra_postgres_cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cinematch/core/internal/model"
	"github.com/jmoiron/sqlx"
)

var ErrCacheMiss = errors.New("cache miss")

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

// Load returns the cached entries for key in stored order, together with
// the refresh timestamp. Freshness is the caller's policy, not the store's.
func (r *Repository) Load(ctx context.Context, key string) ([]model.MediaSummary, time.Time, error) {
	query := `
		SELECT cache_key, external_id, title, poster_path, vote_average, overview, release_date, media_kind, position, refreshed_at
		FROM media_cache
		WHERE cache_key = $1
		ORDER BY position
	`

	var rows []CacheRowDB
	if err := r.db.SelectContext(ctx, &rows, query, key); err != nil {
		return nil, time.Time{}, fmt.Errorf("failed to query media cache: %w", err)
	}
	if len(rows) == 0 {
		return nil, time.Time{}, ErrCacheMiss
	}

	entries := make([]model.MediaSummary, len(rows))
	for i, row := range rows {
		entries[i] = row.ToDomain()
	}

	return entries, rows[0].RefreshedAt, nil
}

// Replace swaps out all rows for key: delete, then bulk insert with a fresh
// refresh stamp. The pair is deliberately not transactional; a failure in
// between leaves the key stale and it self-heals on the next miss.
func (r *Repository) Replace(ctx context.Context, key string, entries []model.MediaSummary) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM media_cache WHERE cache_key = $1`, key); err != nil {
		return fmt.Errorf("failed to invalidate cache key: %w", err)
	}
	if len(entries) == 0 {
		return nil
	}

	now := time.Now().UTC()
	rows := make([]CacheRowDB, len(entries))
	for i, entry := range entries {
		rows[i] = FromDomain(key, i, now, entry)
	}

	query := `
		INSERT INTO media_cache (cache_key, external_id, title, poster_path, vote_average, overview, release_date, media_kind, position, refreshed_at)
		VALUES (:cache_key, :external_id, :title, :poster_path, :vote_average, :overview, :release_date, :media_kind, :position, :refreshed_at)
	`

	if _, err := r.db.NamedExecContext(ctx, query, rows); err != nil {
		return fmt.Errorf("failed to store cache entries: %w", err)
	}

	return nil
}
