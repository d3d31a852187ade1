// Package filter narrows a ranked match list by the active facet filters and
// derives the co-occurrence counts that drive the filter chips.
package filter

import (
	"sort"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Apply filters ranked by the active facet values (AND semantics: a document
// passes only if it carries every active value), sorts the survivors by
// weight descending with stable ties, and counts the facet values of the
// survivors that are not already active. Zero active filters means no
// filtering; counts are then computed over the whole ranked set.
func Apply(ranked []domain.Document, active []string) ([]domain.Document, []domain.FacetCount) {
	results := make([]domain.Document, 0, len(ranked))
	for i := range ranked {
		if passes(&ranked[i], active) {
			results = append(results, ranked[i])
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Weight > results[j].Weight
	})

	return results, facetCounts(results, active)
}

func passes(doc *domain.Document, active []string) bool {
	for _, value := range active {
		if !doc.HasFacet(value) {
			return false
		}
	}
	return true
}

// facetCounts flattens the facet values of results, skips active ones and
// returns the rest sorted by count descending, ties in first-seen order.
func facetCounts(results []domain.Document, active []string) []domain.FacetCount {
	activeSet := make(map[string]struct{}, len(active))
	for _, v := range active {
		activeSet[v] = struct{}{}
	}

	counts := make(map[string]int)
	order := make([]string, 0)
	for i := range results {
		for _, v := range results[i].FacetValues() {
			if _, ok := activeSet[v]; ok {
				continue
			}
			if _, seen := counts[v]; !seen {
				order = append(order, v)
			}
			counts[v]++
		}
	}

	out := make([]domain.FacetCount, 0, len(order))
	for _, v := range order {
		out = append(out, domain.FacetCount{Value: v, Count: counts[v]})
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Count > out[j].Count
	})
	return out
}
