package usecase_proxy

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrInvalidRequest = errors.New("invalid proxy request")
	ErrUpstream       = errors.New("upstream request failed")
)

const ActionGetGenres = "get_genres"

// Vote-count floors. The literal values are empirical tuning against
// upstream catalog sparsity: regional catalogs carry far fewer votes, so a
// language-filtered top-rated query drops the floor from 500 to 10.
const (
	minVotesTopRated         = 500
	minVotesTopRatedLanguage = 10
	minVotesNewest           = 5
)

//go:generate mockery --name=Upstream --output=./mocks/proxy/upstream --filename=upstream.go
type Upstream interface {
	TopRated(ctx context.Context, kind model.MediaKind) ([]model.MediaSummary, error)
	Discover(ctx context.Context, q model.DiscoverQuery) ([]model.MediaSummary, error)
	Genres(ctx context.Context, kind model.MediaKind) ([]model.Genre, error)
}

// Request is the filter/intent description received from the client.
type Request struct {
	Action   string
	Kind     model.MediaKind
	Query    model.QueryType
	GenreID  *int64
	Decade   string
	Language string
}

func (r Request) filtered() bool {
	return r.GenreID != nil || r.Decade != "" || r.Language != ""
}

// Response carries either a result list or a genre list, depending on the
// requested action.
type Response struct {
	Results []model.MediaSummary
	Genres  []model.Genre
}

type Usecase struct {
	upstream Upstream
	now      func() time.Time
}

type UsecaseOption func(*Usecase)

// WithClock overrides the wall clock used for the future-release cutoff.
func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func New(upstream Upstream, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		upstream: upstream,
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Execute routes a request onto the upstream API:
//
//  1. action get_genres fetches the genre list for the media kind;
//  2. an unfiltered top-rated query uses the upstream's dedicated
//     pre-sorted top-rated listing;
//  3. everything else goes through the generic discovery endpoint with
//     explicit sort order, future-release cutoff, vote-count floor and the
//     optional genre/decade/language filters.
func (u *Usecase) Execute(ctx context.Context, req Request) (Response, error) {
	if !req.Kind.Valid() {
		return Response{}, fmt.Errorf("%w: unknown media kind %q", ErrInvalidRequest, req.Kind)
	}

	if req.Action == ActionGetGenres {
		genres, err := u.upstream.Genres(ctx, req.Kind)
		if err != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		return Response{Genres: genres}, nil
	}

	if req.Query == model.QueryTopRated && !req.filtered() {
		results, err := u.upstream.TopRated(ctx, req.Kind)
		if err != nil {
			return Response{}, fmt.Errorf("%w: %w", ErrUpstream, err)
		}
		return Response{Results: results}, nil
	}

	query, err := u.buildDiscoverQuery(req)
	if err != nil {
		return Response{}, err
	}

	results, err := u.upstream.Discover(ctx, query)
	if err != nil {
		return Response{}, fmt.Errorf("%w: %w", ErrUpstream, err)
	}
	return Response{Results: results}, nil
}

func (u *Usecase) buildDiscoverQuery(req Request) (model.DiscoverQuery, error) {
	query := model.DiscoverQuery{
		Kind:             req.Kind,
		GenreID:          req.GenreID,
		OriginalLanguage: req.Language,
		// No future releases.
		ReleasedOnOrBefore: u.now().Format("2006-01-02"),
	}

	if req.Query == model.QueryTopRated {
		query.SortBy = "vote_average.desc"
		if req.Language != "" {
			query.MinVoteCount = minVotesTopRatedLanguage
		} else {
			query.MinVoteCount = minVotesTopRated
		}
	} else {
		query.SortBy = req.Kind.DateField() + ".desc"
		query.MinVoteCount = minVotesNewest
	}

	if req.Decade != "" {
		start, err := strconv.Atoi(req.Decade)
		if err != nil {
			return model.DiscoverQuery{}, fmt.Errorf("%w: bad decade %q", ErrInvalidRequest, req.Decade)
		}
		query.ReleasedOnOrAfter = fmt.Sprintf("%d-01-01", start)
		query.ReleasedOnOrBefore = fmt.Sprintf("%d-12-31", start+9)
	}

	return query, nil
}

// Media resolves a filter state through the routing above and returns the
// normalized result list. This is the planner's entry point.
func (u *Usecase) Media(ctx context.Context, f model.FilterState) ([]model.MediaSummary, error) {
	resp, err := u.Execute(ctx, Request{
		Kind:     f.Kind,
		Query:    f.Query,
		GenreID:  f.GenreID,
		Decade:   f.Decade,
		Language: f.Language,
	})
	if err != nil {
		return nil, err
	}
	return resp.Results, nil
}

// Genres fetches the genre list for a media kind.
func (u *Usecase) Genres(ctx context.Context, kind model.MediaKind) ([]model.Genre, error) {
	resp, err := u.Execute(ctx, Request{Action: ActionGetGenres, Kind: kind})
	if err != nil {
		return nil, err
	}
	return resp.Genres, nil
}
