package filter

import (
	"testing"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

func TestApplyNoFilters(t *testing.T) {
	ranked := []domain.Document{
		{Title: "a", Weight: 2, Categories: []string{"go"}},
		{Title: "b", Weight: 2, Categories: []string{"rust"}},
		{Title: "c", Weight: 5, Tags: []string{"go"}},
	}

	results, counts := Apply(ranked, nil)
	if len(results) != 3 {
		t.Fatalf("got %d results, want all 3", len(results))
	}
	if results[0].Title != "c" {
		t.Errorf("first result = %q, want weight-5 document first", results[0].Title)
	}
	// Equal weights keep ranked order (stable).
	if results[1].Title != "a" || results[2].Title != "b" {
		t.Errorf("tie order = [%s %s], want [a b]", results[1].Title, results[2].Title)
	}

	if len(counts) != 2 {
		t.Fatalf("counts = %+v, want go and rust", counts)
	}
	if counts[0].Value != "go" || counts[0].Count != 2 {
		t.Errorf("counts[0] = %+v, want {go 2}", counts[0])
	}
	if counts[1].Value != "rust" || counts[1].Count != 1 {
		t.Errorf("counts[1] = %+v, want {rust 1}", counts[1])
	}
}

func TestApplyANDSemantics(t *testing.T) {
	ranked := []domain.Document{
		{Title: "both", Categories: []string{"go"}, Tags: []string{"web"}},
		{Title: "only-go", Categories: []string{"go"}},
		{Title: "only-web", Tags: []string{"web"}},
		{Title: "neither"},
	}

	results, _ := Apply(ranked, []string{"go", "web"})
	if len(results) != 1 || results[0].Title != "both" {
		t.Fatalf("results = %+v, want only the document carrying both facets", results)
	}
}

func TestApplyMissingFacetFieldFailsDocument(t *testing.T) {
	ranked := []domain.Document{{Title: "bare"}}

	results, _ := Apply(ranked, []string{"go"})
	if len(results) != 0 {
		t.Fatalf("results = %+v, want none", results)
	}
}

func TestApplyWeightOrdering(t *testing.T) {
	ranked := []domain.Document{
		{Title: "w5", Weight: 5},
		{Title: "w1", Weight: 1},
		{Title: "w3", Weight: 3},
	}

	results, _ := Apply(ranked, nil)
	want := []string{"w5", "w3", "w1"}
	for i, title := range want {
		if results[i].Title != title {
			t.Errorf("results[%d] = %q, want %q", i, results[i].Title, title)
		}
	}
}

func TestApplyExcludesActiveFromCounts(t *testing.T) {
	ranked := make([]domain.Document, 0, 12)
	for i := 0; i < 12; i++ {
		ranked = append(ranked, domain.Document{Title: "doc", Tags: []string{"rust", "systems"}})
	}

	results, counts := Apply(ranked, []string{"rust"})
	if len(results) != 12 {
		t.Fatalf("got %d results, want 12", len(results))
	}
	for _, c := range counts {
		if c.Value == "rust" {
			t.Fatalf("active filter %q leaked into counts: %+v", "rust", counts)
		}
	}
	if len(counts) != 1 || counts[0].Value != "systems" || counts[0].Count != 12 {
		t.Errorf("counts = %+v, want [{systems 12}]", counts)
	}
}

func TestCountTiesKeepFirstSeenOrder(t *testing.T) {
	ranked := []domain.Document{
		{Title: "a", Tags: []string{"zeta", "alpha"}},
		{Title: "b", Tags: []string{"alpha", "zeta"}},
	}

	_, counts := Apply(ranked, nil)
	if len(counts) != 2 {
		t.Fatalf("counts = %+v", counts)
	}
	if counts[0].Value != "zeta" || counts[1].Value != "alpha" {
		t.Errorf("tie order = [%s %s], want first-seen [zeta alpha]", counts[0].Value, counts[1].Value)
	}
}

func TestFacetCountedOncePerDocument(t *testing.T) {
	ranked := []domain.Document{
		{Title: "dup", Categories: []string{"go"}, Tags: []string{"go"}},
	}

	_, counts := Apply(ranked, nil)
	if len(counts) != 1 || counts[0].Count != 1 {
		t.Errorf("counts = %+v, want go counted once for the document", counts)
	}
}
