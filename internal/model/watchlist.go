package model

import "github.com/google/uuid"

// WatchlistItem is one saved title. (UserID, ExternalID) is unique; adding
// the same title twice is reported as "already present", never a second row.
type WatchlistItem struct {
	UserID      uuid.UUID
	ExternalID  int64
	Title       string
	PosterPath  string
	VoteAverage float64
	Overview    string
	ReleaseDate string
}
