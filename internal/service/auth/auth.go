package service_auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cinematch/core/internal/model"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type Token = string

var (
	ErrInternal           = errors.New("internal error")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUsernameTaken      = errors.New("username already taken")
	ErrInvalidInput       = errors.New("invalid input")
	ErrNotAuthenticated   = errors.New("not authenticated")
)

//go:generate mockery --name=ProfileRepository --output=./mocks/auth/profiles --filename=profiles.go
type ProfileRepository interface {
	Create(ctx context.Context, user model.User) error
	LoadByUsername(ctx context.Context, username string) (model.User, error)
	LoadByID(ctx context.Context, id uuid.UUID) (model.User, error)
}

//go:generate mockery --name=SessionCache --output=./mocks/auth/sessions --filename=sessions.go
type SessionCache interface {
	Set(key string, value string, ttl time.Duration) error
	Get(key string) (string, error)
	Delete(key string) error
}

// Service issues uuid session tokens backed by the session cache. The
// identity layer is deliberately thin; everything interesting happens in
// the stores.
type Service struct {
	profiles ProfileRepository
	sessions SessionCache
	ttl      time.Duration
}

func New(
	profiles ProfileRepository,
	sessions SessionCache,
	ttl time.Duration,
) *Service {
	if ttl <= 0 {
		ttl = 24 * time.Hour
	}

	return &Service{
		profiles: profiles,
		sessions: sessions,
		ttl:      ttl,
	}
}

func (s *Service) Register(ctx context.Context, username, password string) (model.User, error) {
	if username == "" || password == "" {
		return model.User{}, fmt.Errorf("%w: username and password required", ErrInvalidInput)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return model.User{}, errors.Join(ErrInternal, err)
	}

	user := model.User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: hash,
	}

	if err := s.profiles.Create(ctx, user); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return model.User{}, ErrUsernameTaken
		}
		return model.User{}, errors.Join(ErrInternal, err)
	}

	return user, nil
}

// Login verifies the password and issues a session token. Lookup misses and
// wrong passwords collapse into the same error on purpose.
func (s *Service) Login(ctx context.Context, username, password string) (Token, error) {
	user, err := s.profiles.LoadByUsername(ctx, username)
	if err != nil {
		return "", ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword(user.PasswordHash, []byte(password)); err != nil {
		return "", ErrInvalidCredentials
	}

	token := s.genToken()
	if err := s.sessions.Set(token, user.ID.String(), s.ttl); err != nil {
		return "", errors.Join(ErrInternal, err)
	}

	return token, nil
}

// Resolve maps a session token to the authenticated user.
func (s *Service) Resolve(ctx context.Context, token Token) (model.User, error) {
	if token == "" {
		return model.User{}, ErrNotAuthenticated
	}

	raw, err := s.sessions.Get(token)
	if err != nil {
		return model.User{}, errors.Join(ErrInternal, err)
	}
	if raw == "" {
		return model.User{}, ErrNotAuthenticated
	}

	userID, err := uuid.Parse(raw)
	if err != nil {
		return model.User{}, errors.Join(ErrInternal, err)
	}

	user, err := s.profiles.LoadByID(ctx, userID)
	if err != nil {
		return model.User{}, ErrNotAuthenticated
	}

	return user, nil
}

func (s *Service) Logout(token Token) error {
	if token == "" {
		return nil
	}
	return s.sessions.Delete(token)
}

func (s *Service) genToken() Token {
	return uuid.New().String()
}
