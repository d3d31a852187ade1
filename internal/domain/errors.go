package domain

import "errors"

var (
	// ErrIndexNotLoaded signals that the document index never loaded.
	// Distinct from a loaded index with zero documents.
	ErrIndexNotLoaded = errors.New("index not loaded")
	// ErrIndexFetch signals a failed index download or read.
	ErrIndexFetch = errors.New("index fetch failed")
	// ErrIndexMalformed signals an index document that is not valid JSON.
	ErrIndexMalformed = errors.New("index malformed")
	// ErrInvalidViewMode signals an unknown view mode string.
	ErrInvalidViewMode = errors.New("invalid view mode")
	// ErrSearchFailed signals a ranked-search backend failure.
	ErrSearchFailed = errors.New("search failed")
)
