package session

import (
	"context"

	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/domain/query"
	"github.com/kailas-cloud/sitesearch/internal/domain/view"
)

// Engine produces the ranked match list for query text.
type Engine interface {
	Rank(ctx context.Context, text string) ([]domain.Document, error)
}

// Suggester produces type-ahead suggestions for input text.
type Suggester interface {
	Suggest(text string, active []string) []string
}

// Renderer builds the full-page view model.
type Renderer interface {
	Build(
		state query.State,
		pageDocs []domain.Document,
		counts []domain.FacetCount,
		pagination view.Pagination,
	) view.Page
}
