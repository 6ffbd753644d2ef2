package usecase_match

import (
	"context"
	"errors"
	"fmt"

	"github.com/cinematch/core/internal/model"
	"github.com/google/uuid"
)

var (
	ErrPartnerNotFound = errors.New("partner not found")
	ErrInvalidInput    = errors.New("invalid input")
	ErrInternal        = errors.New("internal error")
)

//go:generate mockery --name=WatchlistRepository --output=./mocks/match/watchlist --filename=watchlist.go
type WatchlistRepository interface {
	LoadByUser(ctx context.Context, userID uuid.UUID) ([]model.WatchlistItem, error)
}

//go:generate mockery --name=ProfileRepository --output=./mocks/match/profile --filename=profile.go
type ProfileRepository interface {
	LoadByUsername(ctx context.Context, username string) (model.User, error)
}

type Usecase struct {
	watchlists WatchlistRepository
	profiles   ProfileRepository
}

func New(watchlists WatchlistRepository, profiles ProfileRepository) *Usecase {
	return &Usecase{
		watchlists: watchlists,
		profiles:   profiles,
	}
}

// FindMatchesByUsername resolves the partner's profile and intersects both
// watchlists. The result carries the partner's stored row data.
func (u *Usecase) FindMatchesByUsername(ctx context.Context, callerID uuid.UUID, partnerUsername string) ([]model.WatchlistItem, error) {
	if partnerUsername == "" {
		return nil, fmt.Errorf("%w: partner username required", ErrInvalidInput)
	}

	partner, err := u.profiles.LoadByUsername(ctx, partnerUsername)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrPartnerNotFound, partnerUsername)
	}
	if partner.ID == callerID {
		return nil, fmt.Errorf("%w: cannot match against yourself", ErrInvalidInput)
	}

	return u.FindMatches(ctx, callerID, partner.ID)
}

// FindMatches returns the subset of the partner's watchlist whose external
// ids also appear in the caller's. Cardinality is bounded by the smaller of
// the two lists; disjoint lists yield an empty slice.
func (u *Usecase) FindMatches(ctx context.Context, callerID, partnerID uuid.UUID) ([]model.WatchlistItem, error) {
	callerItems, err := u.watchlists.LoadByUser(ctx, callerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	callerIDs := make(map[int64]struct{}, len(callerItems))
	for _, item := range callerItems {
		callerIDs[item.ExternalID] = struct{}{}
	}

	partnerItems, err := u.watchlists.LoadByUser(ctx, partnerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInternal, err)
	}

	matches := make([]model.WatchlistItem, 0, min(len(callerItems), len(partnerItems)))
	for _, item := range partnerItems {
		if _, ok := callerIDs[item.ExternalID]; ok {
			matches = append(matches, item)
		}
	}

	return matches, nil
}
