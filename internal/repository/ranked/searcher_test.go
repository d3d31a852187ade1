package ranked

import (
	"context"
	"testing"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

func testDocs() []domain.Document {
	return []domain.Document{
		{Title: "Cache design", Content: "layered caching strategies", Categories: []string{"go"}, URL: "/cache"},
		{Title: "Databases", Content: "a note about cache invalidation", Categories: []string{"storage"}, URL: "/db"},
		{Title: "Message queues", Content: "brokers and delivery", Tags: []string{"rust"}, URL: "/queues"},
	}
}

func newTestSearcher(t *testing.T) *Searcher {
	t.Helper()
	s, err := New(testDocs(), DefaultWeights())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = s.Close() })
	return s
}

func TestRankMatchesAcrossFields(t *testing.T) {
	s := newTestSearcher(t)

	got, err := s.Rank(context.Background(), "cache")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("got %d results, want 2: %+v", len(got), got)
	}
	// Title boost puts the title match ahead of the body match.
	if got[0].URL != "/cache" {
		t.Errorf("first result = %q, want /cache", got[0].URL)
	}
	if got[1].URL != "/db" {
		t.Errorf("second result = %q, want /db", got[1].URL)
	}
}

func TestRankNoMatches(t *testing.T) {
	s := newTestSearcher(t)

	got, err := s.Rank(context.Background(), "kubernetes")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 0 {
		t.Fatalf("got %d results, want 0", len(got))
	}
}

func TestRankFacetMatch(t *testing.T) {
	s := newTestSearcher(t)

	got, err := s.Rank(context.Background(), "rust")
	if err != nil {
		t.Fatalf("Rank: %v", err)
	}
	if len(got) != 1 || got[0].URL != "/queues" {
		t.Fatalf("results = %+v, want the rust-tagged document", got)
	}
}

func TestHasExtendedSyntax(t *testing.T) {
	tests := []struct {
		in   string
		want bool
	}{
		{"cache", false},
		{"cache design", false},
		{"+cache -db", true},
		{`"exact phrase"`, true},
		{"title:cache", true},
	}
	for _, tt := range tests {
		if got := hasExtendedSyntax(tt.in); got != tt.want {
			t.Errorf("hasExtendedSyntax(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
