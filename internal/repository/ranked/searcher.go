// Package ranked adapts the bleve full-text engine to the narrow ranking
// contract the search pipeline consumes. Only document payloads leave this
// package; scores, locations and other match metadata stay inside.
package ranked

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/keyword"
	"github.com/blevesearch/bleve/v2/analysis/analyzer/standard"
	"github.com/blevesearch/bleve/v2/mapping"
	"github.com/blevesearch/bleve/v2/search/query"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Weights is the per-field relevance boost scheme. Title must outrank facet
// values, which must outrank body text.
type Weights struct {
	Title float64
	Facet float64
	Body  float64
}

// DefaultWeights mirrors the field weighting the site build injects.
func DefaultWeights() Weights {
	return Weights{Title: 10, Facet: 5, Body: 1}
}

// Searcher ranks documents with an in-memory bleve index. It is built once
// over the immutable document list and is safe for concurrent readers.
type Searcher struct {
	idx     bleve.Index
	docs    []domain.Document
	weights Weights
}

// New builds the in-memory index over docs. Document identity inside bleve
// is the position in the load-ordered list.
func New(docs []domain.Document, weights Weights) (*Searcher, error) {
	idx, err := bleve.NewMemOnly(buildMapping())
	if err != nil {
		return nil, fmt.Errorf("create index: %w", err)
	}

	batch := idx.NewBatch()
	for i := range docs {
		err := batch.Index(strconv.Itoa(i), map[string]interface{}{
			"title":   docs[i].Title,
			"facets":  docs[i].FacetValues(),
			"content": docs[i].Content,
		})
		if err != nil {
			return nil, fmt.Errorf("index document %d: %w", i, err)
		}
	}
	if err := idx.Batch(batch); err != nil {
		return nil, fmt.Errorf("commit batch: %w", err)
	}

	return &Searcher{idx: idx, docs: docs, weights: weights}, nil
}

// Rank returns the documents matching text, best first. Callers handle the
// empty-text case; text here is always non-empty.
func (s *Searcher) Rank(ctx context.Context, text string) ([]domain.Document, error) {
	req := bleve.NewSearchRequestOptions(s.buildQuery(text), len(s.docs), 0, false)

	res, err := s.idx.SearchInContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrSearchFailed, err)
	}

	out := make([]domain.Document, 0, len(res.Hits))
	for _, hit := range res.Hits {
		i, err := strconv.Atoi(hit.ID)
		if err != nil || i < 0 || i >= len(s.docs) {
			continue
		}
		out = append(out, s.docs[i])
	}
	return out, nil
}

// HealthCheck probes the index with a document count.
func (s *Searcher) HealthCheck(_ context.Context) error {
	if _, err := s.idx.DocCount(); err != nil {
		return fmt.Errorf("index probe: %w", err)
	}
	return nil
}

// Close releases the index.
func (s *Searcher) Close() error {
	if err := s.idx.Close(); err != nil {
		return fmt.Errorf("close index: %w", err)
	}
	return nil
}

// buildQuery assembles the ranking query: a boost-weighted disjunction of
// exact (fuzziness 0) per-field matches, or bleve's query-string syntax when
// the text carries extended operators.
func (s *Searcher) buildQuery(text string) query.Query {
	if hasExtendedSyntax(text) {
		return bleve.NewQueryStringQuery(text)
	}

	title := bleve.NewMatchQuery(text)
	title.SetField("title")
	title.SetBoost(s.weights.Title)
	title.SetFuzziness(0)

	facets := bleve.NewMatchQuery(text)
	facets.SetField("facets")
	facets.SetBoost(s.weights.Facet)
	facets.SetFuzziness(0)

	body := bleve.NewMatchQuery(text)
	body.SetField("content")
	body.SetBoost(s.weights.Body)
	body.SetFuzziness(0)

	return bleve.NewDisjunctionQuery(title, facets, body)
}

func hasExtendedSyntax(text string) bool {
	return strings.ContainsAny(text, `+-"*:`)
}

func buildMapping() mapping.IndexMapping {
	docMapping := bleve.NewDocumentMapping()

	titleField := bleve.NewTextFieldMapping()
	titleField.Analyzer = standard.Name
	titleField.Store = false
	docMapping.AddFieldMappingsAt("title", titleField)

	// Facet values match whole, not per token.
	facetField := bleve.NewTextFieldMapping()
	facetField.Analyzer = keyword.Name
	facetField.Store = false
	docMapping.AddFieldMappingsAt("facets", facetField)

	contentField := bleve.NewTextFieldMapping()
	contentField.Analyzer = standard.Name
	contentField.Store = false
	docMapping.AddFieldMappingsAt("content", contentField)

	indexMapping := bleve.NewIndexMapping()
	indexMapping.AddDocumentMapping("document", docMapping)
	indexMapping.DefaultType = "document"
	return indexMapping
}
