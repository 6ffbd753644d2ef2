package usecase_watchlist

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinematch/core/internal/model"
	"github.com/google/uuid"
)

var (
	// ErrAlreadyInWatchlist is a soft outcome, not a failure: the title is
	// already saved and no second row was created.
	ErrAlreadyInWatchlist = errors.New("already in watchlist")
	ErrInvalidInput       = errors.New("invalid input")
	ErrInternal           = errors.New("internal error")
)

//go:generate mockery --name=Repository --output=./mocks/watchlist/repository --filename=repository.go
type Repository interface {
	Add(ctx context.Context, item model.WatchlistItem) error
	LoadByUser(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error)
	Remove(ctx context.Context, userID uuid.UUID, externalID int64) error
}

type Usecase struct {
	repository Repository
}

func New(repository Repository) *Usecase {
	return &Usecase{repository: repository}
}

func (u *Usecase) Add(ctx context.Context, userID uuid.UUID, summary model.MediaSummary) error {
	if userID == uuid.Nil {
		return fmt.Errorf("%w: user id required", ErrInvalidInput)
	}
	if summary.ExternalID == 0 || summary.Title == "" {
		return fmt.Errorf("%w: external id and title required", ErrInvalidInput)
	}

	item := model.WatchlistItem{
		UserID:      userID,
		ExternalID:  summary.ExternalID,
		Title:       summary.Title,
		PosterPath:  summary.PosterPath,
		VoteAverage: summary.VoteAverage,
		Overview:    summary.Overview,
		ReleaseDate: summary.ReleaseDate,
	}

	if err := u.repository.Add(ctx, item); err != nil {
		if errors.Is(err, ErrAlreadyInWatchlist) {
			return ErrAlreadyInWatchlist
		}
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}

	return nil
}

func (u *Usecase) List(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error) {
	items, err := u.repository.LoadByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return items, nil
}

func (u *Usecase) Remove(ctx context.Context, userID uuid.UUID, externalID int64) error {
	if err := u.repository.Remove(ctx, userID, externalID); err != nil {
		return fmt.Errorf("%w: %w", ErrInternal, err)
	}
	return nil
}
