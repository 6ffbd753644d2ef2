package model

// DiscoverQuery carries the explicit parameters for the upstream's generic
// discovery endpoint. Empty / nil fields are omitted from the request.
type DiscoverQuery struct {
	Kind               MediaKind
	SortBy             string
	ReleasedOnOrAfter  string
	ReleasedOnOrBefore string
	MinVoteCount       int
	GenreID            *int64
	OriginalLanguage   string
}
