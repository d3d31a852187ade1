// Package search turns query text into a ranked document list. Filtering and
// pagination are downstream concerns; this service knows nothing of them.
package search

import (
	"context"
	"fmt"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Service ranks documents for a text query.
type Service struct {
	ranker Ranker
	source DocumentSource
}

// New creates a search service.
func New(ranker Ranker, source DocumentSource) *Service {
	return &Service{ranker: ranker, source: source}
}

// Rank returns the match list for text. Empty text is not a zero-length
// match: it falls back to every document in index order, unranked.
func (s *Service) Rank(ctx context.Context, text string) ([]domain.Document, error) {
	if text == "" {
		return s.source.Documents(), nil
	}

	docs, err := s.ranker.Rank(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("rank %q: %w", text, err)
	}
	return docs, nil
}
