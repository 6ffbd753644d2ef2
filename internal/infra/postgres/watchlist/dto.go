package infra_postgres_watchlist

import (
	"github.com/cinematch/core/internal/model"
	"github.com/google/uuid"
)

type WatchlistItemDB struct {
	UserID      uuid.UUID `db:"user_id"`
	ExternalID  int64     `db:"external_id"`
	Title       string    `db:"title"`
	PosterPath  string    `db:"poster_path"`
	VoteAverage float64   `db:"vote_average"`
	Overview    string    `db:"overview"`
	ReleaseDate string    `db:"release_date"`
}

func (i *WatchlistItemDB) ToDomain() model.WatchlistItem {
	return model.WatchlistItem{
		UserID:      i.UserID,
		ExternalID:  i.ExternalID,
		Title:       i.Title,
		PosterPath:  i.PosterPath,
		VoteAverage: i.VoteAverage,
		Overview:    i.Overview,
		ReleaseDate: i.ReleaseDate,
	}
}

func FromDomain(item model.WatchlistItem) WatchlistItemDB {
	return WatchlistItemDB{
		UserID:      item.UserID,
		ExternalID:  item.ExternalID,
		Title:       item.Title,
		PosterPath:  item.PosterPath,
		VoteAverage: item.VoteAverage,
		Overview:    item.Overview,
		ReleaseDate: item.ReleaseDate,
	}
}
