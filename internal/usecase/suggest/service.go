// Package suggest drives filter type-ahead: fuzzy ranked matching of input
// text against the global facet vocabulary, plus the keyboard cursor that
// walks the suggestion list.
package suggest

import (
	"strings"
	"unicode/utf8"

	"github.com/sahilm/fuzzy"
)

const (
	// DefaultLimit caps the suggestion list length.
	DefaultLimit = 8
	// minMatchLength guards against single-letter fan-out.
	minMatchLength = 2
)

// Service matches input text against the facet vocabulary. The vocabulary
// spans the full index, independent of the current filtering.
type Service struct {
	vocab []string
	limit int
}

// New creates a suggestion service over the given vocabulary.
func New(vocab []string, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{vocab: vocab, limit: limit}
}

// Suggest returns up to the configured limit of vocabulary values fuzzily
// matching text, best first. Inputs shorter than two characters yield
// nothing, and already-active filter values never reappear.
func (s *Service) Suggest(text string, active []string) []string {
	text = strings.TrimSpace(text)
	if utf8.RuneCountInString(text) < minMatchLength {
		return nil
	}

	activeSet := make(map[string]struct{}, len(active))
	for _, v := range active {
		activeSet[v] = struct{}{}
	}
	candidates := make([]string, 0, len(s.vocab))
	for _, v := range s.vocab {
		if _, ok := activeSet[v]; ok {
			continue
		}
		candidates = append(candidates, v)
	}

	matches := fuzzy.Find(text, candidates)
	out := make([]string, 0, min(len(matches), s.limit))
	for _, m := range matches {
		if len(out) == s.limit {
			break
		}
		out = append(out, m.Str)
	}
	return out
}
