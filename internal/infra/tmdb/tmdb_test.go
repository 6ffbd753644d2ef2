package infra_tmdb

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/cinematch/core/internal/config"
	"github.com/cinematch/core/internal/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type capturedRequest struct {
	path   string
	params url.Values
}

func newTestClient(t *testing.T, payload string, captured *capturedRequest) *Client {
	t.Helper()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if captured != nil {
			captured.path = r.URL.Path
			captured.params = r.URL.Query()
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	t.Cleanup(server.Close)

	return New(config.TMDB{
		BaseURL:  server.URL,
		APIKey:   "test-key",
		Language: "de-DE",
	})
}

func TestTopRated(t *testing.T) {
	payload := `{"results": [
		{"id": 603, "title": "The Matrix", "poster_path": "/matrix.jpg", "vote_average": 8.2, "overview": "overview", "release_date": "1999-03-31"}
	]}`

	var captured capturedRequest
	client := newTestClient(t, payload, &captured)

	results, err := client.TopRated(context.Background(), model.KindMovie)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, model.MediaSummary{
		ExternalID:  603,
		Title:       "The Matrix",
		PosterPath:  "/matrix.jpg",
		VoteAverage: 8.2,
		Overview:    "overview",
		ReleaseDate: "1999-03-31",
		Kind:        model.KindMovie,
	}, results[0])

	assert.Equal(t, "/movie/top_rated", captured.path)
	assert.Equal(t, "test-key", captured.params.Get("api_key"))
	assert.Equal(t, "de-DE", captured.params.Get("language"))
	assert.Equal(t, "1", captured.params.Get("page"))
}

// Shows come back under name/first_air_date and must be normalized to the
// movie-shaped summary.
func TestTopRatedShows(t *testing.T) {
	payload := `{"results": [
		{"id": 1396, "name": "Breaking Bad", "poster_path": "/bb.jpg", "vote_average": 8.9, "overview": "overview", "first_air_date": "2008-01-20"}
	]}`

	client := newTestClient(t, payload, nil)

	results, err := client.TopRated(context.Background(), model.KindTV)

	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "Breaking Bad", results[0].Title)
	assert.Equal(t, "2008-01-20", results[0].ReleaseDate)
	assert.Equal(t, model.KindTV, results[0].Kind)
}

func TestDiscoverParams(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, `{"results": []}`, &captured)

	genre := int64(28)
	_, err := client.Discover(context.Background(), model.DiscoverQuery{
		Kind:               model.KindMovie,
		SortBy:             "vote_average.desc",
		ReleasedOnOrAfter:  "1990-01-01",
		ReleasedOnOrBefore: "1999-12-31",
		MinVoteCount:       10,
		GenreID:            &genre,
		OriginalLanguage:   "ta",
	})

	require.NoError(t, err)
	assert.Equal(t, "/discover/movie", captured.path)
	assert.Equal(t, "vote_average.desc", captured.params.Get("sort_by"))
	assert.Equal(t, "10", captured.params.Get("vote_count.gte"))
	assert.Equal(t, "1990-01-01", captured.params.Get("primary_release_date.gte"))
	assert.Equal(t, "1999-12-31", captured.params.Get("primary_release_date.lte"))
	assert.Equal(t, "28", captured.params.Get("with_genres"))
	assert.Equal(t, "ta", captured.params.Get("with_original_language"))
}

func TestDiscoverShowDateField(t *testing.T) {
	var captured capturedRequest
	client := newTestClient(t, `{"results": []}`, &captured)

	_, err := client.Discover(context.Background(), model.DiscoverQuery{
		Kind:               model.KindTV,
		SortBy:             "first_air_date.desc",
		ReleasedOnOrBefore: "2026-09-01",
		MinVoteCount:       5,
	})

	require.NoError(t, err)
	assert.Equal(t, "/discover/tv", captured.path)
	assert.Equal(t, "2026-09-01", captured.params.Get("first_air_date.lte"))
	assert.Empty(t, captured.params.Get("first_air_date.gte"))
}

func TestGenres(t *testing.T) {
	payload := `{"genres": [{"id": 28, "name": "Action"}, {"id": 18, "name": "Drama"}]}`

	var captured capturedRequest
	client := newTestClient(t, payload, &captured)

	genres, err := client.Genres(context.Background(), model.KindMovie)

	require.NoError(t, err)
	assert.Equal(t, "/genre/movie/list", captured.path)
	assert.Equal(t, []model.Genre{{ID: 28, Name: "Action"}, {ID: 18, Name: "Drama"}}, genres)
}

func TestUpstreamFailureStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	t.Cleanup(server.Close)

	client := New(config.TMDB{BaseURL: server.URL, APIKey: "test-key", Language: "de-DE"})

	_, err := client.TopRated(context.Background(), model.KindMovie)

	assert.ErrorContains(t, err, "429")
}
