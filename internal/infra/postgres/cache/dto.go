package infra_postgres_cache

import (
	"time"

	"github.com/cinematch/core/internal/model"
)

type CacheRowDB struct {
	CacheKey    string    `db:"cache_key"`
	ExternalID  int64     `db:"external_id"`
	Title       string    `db:"title"`
	PosterPath  string    `db:"poster_path"`
	VoteAverage float64   `db:"vote_average"`
	Overview    string    `db:"overview"`
	ReleaseDate string    `db:"release_date"`
	MediaKind   string    `db:"media_kind"`
	Position    int       `db:"position"`
	RefreshedAt time.Time `db:"refreshed_at"`
}

func (r *CacheRowDB) ToDomain() model.MediaSummary {
	return model.MediaSummary{
		ExternalID:  r.ExternalID,
		Title:       r.Title,
		PosterPath:  r.PosterPath,
		VoteAverage: r.VoteAverage,
		Overview:    r.Overview,
		ReleaseDate: r.ReleaseDate,
		Kind:        model.MediaKind(r.MediaKind),
	}
}

func FromDomain(key string, position int, refreshedAt time.Time, m model.MediaSummary) CacheRowDB {
	return CacheRowDB{
		CacheKey:    key,
		ExternalID:  m.ExternalID,
		Title:       m.Title,
		PosterPath:  m.PosterPath,
		VoteAverage: m.VoteAverage,
		Overview:    m.Overview,
		ReleaseDate: m.ReleaseDate,
		MediaKind:   string(m.Kind),
		Position:    position,
		RefreshedAt: refreshedAt,
	}
}
