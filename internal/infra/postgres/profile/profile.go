package infra_postgres_profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/cinematch/core/internal/model"
	service_auth "github.com/cinematch/core/internal/service/auth"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
)

var ErrProfileNotFound = errors.New("profile not found")

// Unique-violation code from Postgres.
const pqUniqueViolation = "23505"

type ProfileDB struct {
	ID           uuid.UUID `db:"id"`
	Username     string    `db:"username"`
	PasswordHash []byte    `db:"password_hash"`
}

func (p *ProfileDB) ToDomain() model.User {
	return model.User{
		ID:           p.ID,
		Username:     p.Username,
		PasswordHash: p.PasswordHash,
	}
}

type Repository struct {
	db *sqlx.DB
}

func New(db *sqlx.DB) *Repository {
	return &Repository{db: db}
}

func (r *Repository) Create(ctx context.Context, user model.User) error {
	query := `INSERT INTO profiles (id, username, password_hash) VALUES ($1, $2, $3)`

	if _, err := r.db.ExecContext(ctx, query, user.ID, user.Username, user.PasswordHash); err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return service_auth.ErrUsernameTaken
		}
		return fmt.Errorf("failed to create profile: %w", err)
	}

	return nil
}

func (r *Repository) LoadByID(ctx context.Context, id uuid.UUID) (model.User, error) {
	query := `SELECT id, username, password_hash FROM profiles WHERE id = $1`

	var profileDB ProfileDB
	if err := r.db.GetContext(ctx, &profileDB, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrProfileNotFound
		}
		return model.User{}, fmt.Errorf("failed to load profile by id: %w", err)
	}

	return profileDB.ToDomain(), nil
}

func (r *Repository) LoadByUsername(ctx context.Context, username string) (model.User, error) {
	query := `SELECT id, username, password_hash FROM profiles WHERE lower(username) = lower($1)`

	var profileDB ProfileDB
	if err := r.db.GetContext(ctx, &profileDB, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return model.User{}, ErrProfileNotFound
		}
		return model.User{}, fmt.Errorf("failed to load profile by username: %w", err)
	}

	return profileDB.ToDomain(), nil
}

// SearchByPrefix finds usernames starting with prefix, case-insensitive,
// excluding the caller's own profile.
func (r *Repository) SearchByPrefix(ctx context.Context, prefix string, excludeID uuid.UUID, limit int) ([]model.User, error) {
	query := `
		SELECT id, username, password_hash
		FROM profiles
		WHERE username ILIKE $1 || '%' AND id <> $2
		ORDER BY lower(username)
		LIMIT $3
	`

	var profilesDB []ProfileDB
	if err := r.db.SelectContext(ctx, &profilesDB, query, prefix, excludeID, limit); err != nil {
		return nil, fmt.Errorf("failed to search profiles: %w", err)
	}

	users := make([]model.User, len(profilesDB))
	for i, profileDB := range profilesDB {
		users[i] = profileDB.ToDomain()
	}

	return users, nil
}
