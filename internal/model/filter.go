package model

import (
	"strconv"
	"strings"
)

// QueryType is the discovery intent behind a filter state.
type QueryType string

const (
	QueryTopRated QueryType = "top_rated"
	QueryNewest   QueryType = "newest"
)

func (q QueryType) Valid() bool {
	return q == QueryTopRated || q == QueryNewest
}

// Sentinel for absent filter dimensions inside a cache key. Keeps distinct
// filter combinations from ever colliding on the same key.
const keyAll = "all"

// FilterState is an immutable snapshot of the discovery filters for one
// request. It is passed by value into the planner on every change; there is
// no shared mutable filter state.
type FilterState struct {
	Kind     MediaKind
	Query    QueryType
	GenreID  *int64
	Decade   string
	Language string
}

// CacheKey renders the deterministic composite key for this filter state.
// Every dimension is always present, absent ones as the "all" sentinel.
func (f FilterState) CacheKey() string {
	intent := "new"
	if f.Query == QueryTopRated {
		intent = "top"
	}

	genre := keyAll
	if f.GenreID != nil {
		genre = strconv.FormatInt(*f.GenreID, 10)
	}
	decade := f.Decade
	if decade == "" {
		decade = keyAll
	}
	language := f.Language
	if language == "" {
		language = keyAll
	}

	return strings.Join([]string{intent, string(f.Kind), genre, decade, language}, "-")
}
