package infra_tmdb

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/cinematch/core/internal/config"
	"github.com/cinematch/core/internal/model"
)

// Client talks to the upstream movie-metadata API. Upstream failures are
// surfaced to the caller as-is; there is no retry or backoff here.
type Client struct {
	baseURL    string
	apiKey     string
	language   string
	httpClient *http.Client
}

func New(cfg config.TMDB) *Client {
	return &Client{
		baseURL:  cfg.BaseURL,
		apiKey:   cfg.APIKey,
		language: cfg.Language,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// TopRated uses the upstream's dedicated pre-sorted top-rated listing.
func (c *Client) TopRated(ctx context.Context, kind model.MediaKind) ([]model.MediaSummary, error) {
	return c.fetchPage(ctx, fmt.Sprintf("%s/top_rated", kind), kind, nil)
}

// Discover queries the generic discovery endpoint with explicit parameters.
func (c *Client) Discover(ctx context.Context, q model.DiscoverQuery) ([]model.MediaSummary, error) {
	dateField := q.Kind.DateField()

	params := url.Values{}
	params.Set("sort_by", q.SortBy)
	params.Set("vote_count.gte", strconv.Itoa(q.MinVoteCount))
	if q.ReleasedOnOrBefore != "" {
		params.Set(dateField+".lte", q.ReleasedOnOrBefore)
	}
	if q.ReleasedOnOrAfter != "" {
		params.Set(dateField+".gte", q.ReleasedOnOrAfter)
	}
	if q.GenreID != nil {
		params.Set("with_genres", strconv.FormatInt(*q.GenreID, 10))
	}
	if q.OriginalLanguage != "" {
		params.Set("with_original_language", q.OriginalLanguage)
	}

	return c.fetchPage(ctx, fmt.Sprintf("discover/%s", q.Kind), q.Kind, params)
}

// Genres fetches the genre list for a media kind.
func (c *Client) Genres(ctx context.Context, kind model.MediaKind) ([]model.Genre, error) {
	var page genrePage
	if err := c.get(ctx, fmt.Sprintf("genre/%s/list", kind), nil, &page); err != nil {
		return nil, err
	}
	return page.Genres, nil
}

// Upstream shapes differ per kind: movies carry title/release_date, shows
// carry name/first_air_date. Each kind gets its own decode type and is
// normalized to MediaSummary here, exactly once.

type moviePage struct {
	Results []movieResult `json:"results"`
}

type movieResult struct {
	ID          int64   `json:"id"`
	Title       string  `json:"title"`
	PosterPath  string  `json:"poster_path"`
	VoteAverage float64 `json:"vote_average"`
	Overview    string  `json:"overview"`
	ReleaseDate string  `json:"release_date"`
}

func (m movieResult) toSummary() model.MediaSummary {
	return model.MediaSummary{
		ExternalID:  m.ID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
		Kind:        model.KindMovie,
	}
}

type showPage struct {
	Results []showResult `json:"results"`
}

type showResult struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	PosterPath   string  `json:"poster_path"`
	VoteAverage  float64 `json:"vote_average"`
	Overview     string  `json:"overview"`
	FirstAirDate string  `json:"first_air_date"`
}

func (s showResult) toSummary() model.MediaSummary {
	return model.MediaSummary{
		ExternalID:  s.ID,
		Title:       s.Name,
		PosterPath:  s.PosterPath,
		VoteAverage: s.VoteAverage,
		Overview:    s.Overview,
		ReleaseDate: s.FirstAirDate,
		Kind:        model.KindTV,
	}
}

type genrePage struct {
	Genres []model.Genre `json:"genres"`
}

func (c *Client) fetchPage(ctx context.Context, endpoint string, kind model.MediaKind, params url.Values) ([]model.MediaSummary, error) {
	if kind == model.KindTV {
		var page showPage
		if err := c.get(ctx, endpoint, params, &page); err != nil {
			return nil, err
		}
		summaries := make([]model.MediaSummary, len(page.Results))
		for i, result := range page.Results {
			summaries[i] = result.toSummary()
		}
		return summaries, nil
	}

	var page moviePage
	if err := c.get(ctx, endpoint, params, &page); err != nil {
		return nil, err
	}
	summaries := make([]model.MediaSummary, len(page.Results))
	for i, result := range page.Results {
		summaries[i] = result.toSummary()
	}
	return summaries, nil
}

func (c *Client) get(ctx context.Context, endpoint string, extra url.Values, v any) error {
	params := url.Values{}
	params.Set("api_key", c.apiKey)
	params.Set("language", c.language)
	params.Set("page", "1")
	for key, values := range extra {
		for _, value := range values {
			params.Set(key, value)
		}
	}

	fullURL := fmt.Sprintf("%s/%s?%s", c.baseURL, endpoint, params.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("failed to build upstream request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("upstream request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("upstream returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("failed to decode upstream response: %w", err)
	}

	return nil
}
