package usecase_discovery

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/cinematch/core/internal/model"
)

var (
	ErrFailedToDiscover   = errors.New("failed to discover media")
	ErrFailedToLoadGenres = errors.New("failed to load genres")
)

// FreshnessWindow is how long a cached result page stays usable. The whole
// key is fresh or stale; there is no partial expiry.
const FreshnessWindow = 24 * time.Hour

//go:generate mockery --name=Cache --output=./mocks/discovery/cache --filename=cache.go
type Cache interface {
	Load(ctx context.Context, key string) ([]model.MediaSummary, time.Time, error)
	Replace(ctx context.Context, key string, entries []model.MediaSummary) error
}

//go:generate mockery --name=Proxy --output=./mocks/discovery/proxy --filename=proxy.go
type Proxy interface {
	Media(ctx context.Context, f model.FilterState) ([]model.MediaSummary, error)
	Genres(ctx context.Context, kind model.MediaKind) ([]model.Genre, error)
}

//go:generate mockery --name=GenreCache --output=./mocks/discovery/genrecache --filename=genrecache.go
type GenreCache interface {
	Get(kind model.MediaKind) ([]model.Genre, error)
	Set(kind model.MediaKind, genres []model.Genre) error
}

// Usecase is the discovery query planner: it decides per filter state
// whether to serve from the cache or go through the proxy, and owns the
// cache key construction and refresh.
type Usecase struct {
	cache      Cache
	proxy      Proxy
	genreCache GenreCache

	now    func() time.Time
	logger *slog.Logger
}

type UsecaseOption func(*Usecase)

func WithClock(now func() time.Time) UsecaseOption {
	return func(u *Usecase) {
		u.now = now
	}
}

func WithLogger(logger *slog.Logger) UsecaseOption {
	return func(u *Usecase) {
		u.logger = logger
	}
}

func New(cache Cache, proxy Proxy, genreCache GenreCache, opts ...UsecaseOption) *Usecase {
	u := &Usecase{
		cache:      cache,
		proxy:      proxy,
		genreCache: genreCache,
		now:        time.Now,
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(u)
	}
	return u
}

// Discover serves the full result page for a filter state: a fresh cache
// entry as-is, otherwise the proxy result, which replaces the cached rows
// for the key. The cache is best effort; its failures degrade to an
// upstream fetch, never to a user-facing error.
func (u *Usecase) Discover(ctx context.Context, f model.FilterState) ([]model.MediaSummary, error) {
	key := f.CacheKey()

	entries, refreshedAt, err := u.cache.Load(ctx, key)
	if err == nil && u.now().Sub(refreshedAt) <= FreshnessWindow {
		return entries, nil
	}
	if err != nil {
		u.logger.Debug("cache lookup missed",
			slog.String("cache_key", key),
			slog.String("reason", err.Error()),
		)
	}

	results, err := u.proxy.Media(ctx, f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToDiscover, err)
	}

	if err := u.cache.Replace(ctx, key, results); err != nil {
		u.logger.Warn("failed to refresh cache",
			slog.String("cache_key", key),
			slog.String("error", err.Error()),
		)
	}

	return results, nil
}

// Genres returns the genre list for a kind, served from the short-lived
// genre cache when possible.
func (u *Usecase) Genres(ctx context.Context, kind model.MediaKind) ([]model.Genre, error) {
	cached, err := u.genreCache.Get(kind)
	if err != nil {
		u.logger.Warn("genre cache read failed", slog.String("error", err.Error()))
	}
	if len(cached) > 0 {
		return cached, nil
	}

	genres, err := u.proxy.Genres(ctx, kind)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrFailedToLoadGenres, err)
	}

	if err := u.genreCache.Set(kind, genres); err != nil {
		u.logger.Warn("genre cache write failed", slog.String("error", err.Error()))
	}

	return genres, nil
}
