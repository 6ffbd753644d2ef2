package infra_postgres_profile

import (
	"context"
	"database/sql"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/cinematch/core/internal/model"
	service_auth "github.com/cinematch/core/internal/service/auth"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"
)

type ProfileInfraUnitSuite struct {
	suite.Suite
}

type resources struct {
	db         *sqlx.DB
	mock       sqlmock.Sqlmock
	repository *Repository
	ctx        context.Context
}

func initResources(t provider.T) *resources {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	sqlxDB := sqlx.NewDb(db, "sqlmock")

	return &resources{
		db:         sqlxDB,
		mock:       mock,
		repository: New(sqlxDB),
		ctx:        context.Background(),
	}
}

func validUser() model.User {
	return model.User{
		ID:           uuid.New(),
		Username:     "alex",
		PasswordHash: []byte("$2a$10$hash"),
	}
}

func (s *ProfileInfraUnitSuite) TestCreate(t provider.T) {
	t.Run("Should insert a profile", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		r.mock.ExpectExec("INSERT INTO profiles").
			WithArgs(user.ID, user.Username, user.PasswordHash).
			WillReturnResult(sqlmock.NewResult(0, 1))

		err := r.repository.Create(r.ctx, user)

		assert.NoError(t, err)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should map a unique violation to a taken username", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		r.mock.ExpectExec("INSERT INTO profiles").
			WithArgs(user.ID, user.Username, user.PasswordHash).
			WillReturnError(&pq.Error{Code: "23505"})

		err := r.repository.Create(r.ctx, user)

		assert.ErrorIs(t, err, service_auth.ErrUsernameTaken)
	})
}

func (s *ProfileInfraUnitSuite) TestLoadByUsername(t provider.T) {
	t.Run("Should load a profile case-insensitively", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		user := validUser()

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(user.ID.String(), user.Username, user.PasswordHash)

		r.mock.ExpectQuery("SELECT (.+) FROM profiles").
			WithArgs("Alex").
			WillReturnRows(rows)

		got, err := r.repository.LoadByUsername(r.ctx, "Alex")

		assert.NoError(t, err)
		assert.Equal(t, user, got)
	})

	t.Run("Should report a missing profile", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()

		r.mock.ExpectQuery("SELECT (.+) FROM profiles").
			WithArgs("ghost").
			WillReturnError(sql.ErrNoRows)

		_, err := r.repository.LoadByUsername(r.ctx, "ghost")

		assert.ErrorIs(t, err, ErrProfileNotFound)
	})
}

func (s *ProfileInfraUnitSuite) TestSearchByPrefix(t provider.T) {
	t.Run("Should exclude the caller and honor the limit", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		callerID := uuid.New()
		other := validUser()

		rows := sqlmock.NewRows([]string{"id", "username", "password_hash"}).
			AddRow(other.ID.String(), other.Username, other.PasswordHash)

		r.mock.ExpectQuery("SELECT (.+) FROM profiles").
			WithArgs("al", callerID, 5).
			WillReturnRows(rows)

		users, err := r.repository.SearchByPrefix(r.ctx, "al", callerID, 5)

		assert.NoError(t, err)
		assert.Equal(t, []model.User{other}, users)
		assert.NoError(t, r.mock.ExpectationsWereMet())
	})

	t.Run("Should return an empty list when nothing matches", func(t provider.T) {
		r := initResources(t)
		defer r.db.Close()
		callerID := uuid.New()

		r.mock.ExpectQuery("SELECT (.+) FROM profiles").
			WithArgs("zz", callerID, 5).
			WillReturnRows(sqlmock.NewRows([]string{"id", "username", "password_hash"}))

		users, err := r.repository.SearchByPrefix(r.ctx, "zz", callerID, 5)

		assert.NoError(t, err)
		assert.Empty(t, users)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(ProfileInfraUnitSuite))
}
