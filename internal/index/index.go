// Package index loads and holds the precomputed document index. The index is
// fetched exactly once at startup and is immutable afterwards; every other
// component derives from it and caches nothing of its own.
package index

import (
	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Index is the loaded document list plus its derived facet vocabulary.
type Index struct {
	docs  []domain.Document
	vocab []string
}

// New creates an Index over docs. The facet vocabulary is the distinct facet
// values across all documents in order of first appearance; suggestions are
// computed against it globally, independent of any active filtering.
func New(docs []domain.Document) *Index {
	vocab := make([]string, 0)
	seen := make(map[string]struct{})
	for i := range docs {
		for _, v := range docs[i].FacetValues() {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			vocab = append(vocab, v)
		}
	}
	return &Index{docs: docs, vocab: vocab}
}

// Documents returns all documents in load order. Callers must not mutate.
func (i *Index) Documents() []domain.Document { return i.docs }

// Vocabulary returns the distinct facet values in first-seen order.
// Callers must not mutate.
func (i *Index) Vocabulary() []string { return i.vocab }

// Len returns the number of indexed documents.
func (i *Index) Len() int { return len(i.docs) }
