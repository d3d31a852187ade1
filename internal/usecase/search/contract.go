package search

import (
	"context"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Ranker is the external ranked-search capability. It is only consulted for
// non-empty query text and returns document payloads best-first, with all
// match metadata discarded.
type Ranker interface {
	Rank(ctx context.Context, text string) ([]domain.Document, error)
}

// DocumentSource provides the full document list in load order.
type DocumentSource interface {
	Documents() []domain.Document
}
