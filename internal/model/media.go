package model

// MediaKind selects the upstream catalog and, with it, which date field
// the upstream uses for releases.
type MediaKind string

const (
	KindMovie MediaKind = "movie"
	KindTV    MediaKind = "tv"
)

func (k MediaKind) Valid() bool {
	return k == KindMovie || k == KindTV
}

// DateField is the upstream release-date field for this kind.
func (k MediaKind) DateField() string {
	if k == KindTV {
		return "first_air_date"
	}
	return "primary_release_date"
}

// MediaSummary is the normalized view of an upstream title. The upstream
// names title/date fields differently per kind; normalization happens once
// at the upstream client boundary and is never re-guessed downstream.
type MediaSummary struct {
	ExternalID  int64     `json:"external_id"`
	Title       string    `json:"title"`
	PosterPath  string    `json:"poster_path"`
	VoteAverage float64   `json:"vote_average"`
	Overview    string    `json:"overview"`
	ReleaseDate string    `json:"release_date,omitempty"`
	Kind        MediaKind `json:"media_kind"`
}

type Genre struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
