package sitesearch

import (
	"context"
	"strings"
	"testing"
)

func testDocuments() []Document {
	return []Document{
		{
			Title:      "Writing a cache",
			Content:    "Design notes for an in-process cache.",
			Tags:       []string{"go", "performance"},
			Categories: []string{"backend"},
			URL:        "/posts/cache",
			Weight:     3,
		},
		{
			Title:   "HTTP routing",
			Content: "Patterns for request routing.",
			Tags:    []string{"go", "web"},
			URL:     "/posts/routing",
			Weight:  1,
		},
		{
			Title:   "Rust ownership",
			Content: "Why the borrow checker exists.",
			Tags:    []string{"rust"},
			URL:     "/posts/ownership",
			Weight:  5,
		},
	}
}

func newTestClient(t *testing.T, opts ...Option) *Client {
	t.Helper()
	opts = append([]Option{WithDocuments(testDocuments())}, opts...)
	c, err := New(context.Background(), opts...)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	t.Cleanup(func() { _ = c.Close() })
	return c
}

func TestNew_NoIndex(t *testing.T) {
	if _, err := New(context.Background()); err == nil {
		t.Fatal("expected error when no index source is provided")
	}
}

func TestNew_InvalidViewMode(t *testing.T) {
	_, err := New(context.Background(),
		WithDocuments(testDocuments()), WithViewMode("masonry"))
	if err == nil {
		t.Fatal("expected error for invalid view mode")
	}
}

func TestSearch_EmptyQueryListsEverything(t *testing.T) {
	c := newTestClient(t)

	page, err := c.Search(context.Background(), "https://example.org/search")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Results) != 3 {
		t.Fatalf("results = %d, want all 3", len(page.Results))
	}
	// Weight descending even without query text: 5, 3, 1.
	want := []string{"Rust ownership", "Writing a cache", "HTTP routing"}
	for i, title := range want {
		if page.Results[i].Title != title {
			t.Errorf("results[%d] = %q, want %q (weight order)", i, page.Results[i].Title, title)
		}
	}
}

func TestSearch_TextQuery(t *testing.T) {
	c := newTestClient(t)

	page, err := c.Search(context.Background(), "https://example.org/search?q=cache")
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if len(page.Results) == 0 {
		t.Fatal("expected at least one match for q=cache")
	}
	if page.Results[0].Title != "Writing a cache" {
		t.Errorf("top result = %q, want the title match", page.Results[0].Title)
	}
}

func TestFilterFlow(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()

	next, page, err := c.AddFilter(ctx, "https://example.org/search?q=cache", "go")
	if err != nil {
		t.Fatalf("AddFilter: %v", err)
	}
	if strings.Contains(next, "q=") {
		t.Errorf("URL = %q, filter commit should clear the text query", next)
	}
	if len(page.Results) != 2 {
		t.Fatalf("results = %d, want the 2 go-tagged docs", len(page.Results))
	}
	for _, chip := range page.Chips.Inactive {
		if chip.Value == "go" {
			t.Error("active filter appeared in inactive chips")
		}
	}

	next, page, err = c.RemoveFilter(ctx, next, "go")
	if err != nil {
		t.Fatalf("RemoveFilter: %v", err)
	}
	if strings.Contains(next, "f=") {
		t.Errorf("URL = %q, want no filters left", next)
	}
	if len(page.Results) != 3 {
		t.Errorf("results = %d, want all 3 after removing the filter", len(page.Results))
	}
}

func TestPaginationFlow(t *testing.T) {
	docs := make([]Document, 0, 20)
	for i := 0; i < 20; i++ {
		docs = append(docs, Document{
			Title:   "doc",
			Content: "body",
			URL:     "/doc",
		})
	}
	c, err := New(context.Background(), WithDocuments(docs))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer c.Close()

	next, page, err := c.SetPage(context.Background(), "https://example.org/search", 2)
	if err != nil {
		t.Fatalf("SetPage: %v", err)
	}
	if !strings.Contains(next, "p=2") {
		t.Errorf("URL = %q, want p=2", next)
	}
	if len(page.Results) != 9 {
		t.Errorf("page 2 results = %d, want 9", len(page.Results))
	}
	if page.Pagination.TotalPages != 3 {
		t.Errorf("TotalPages = %d, want 3", page.Pagination.TotalPages)
	}
}

func TestSuggestionKeyboard(t *testing.T) {
	c := newTestClient(t)
	ctx := context.Background()
	base := "https://example.org/search"

	got := c.Input(base, "ru")
	if len(got) == 0 || got[0] != "rust" {
		t.Fatalf("suggestions = %v, want rust first", got)
	}

	res, err := c.Key(ctx, base, KeyArrowDown, "ru")
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if res.Selection != 0 {
		t.Fatalf("Selection = %d, want 0", res.Selection)
	}

	res, err = c.Key(ctx, base, KeyEnter, "ru")
	if err != nil {
		t.Fatalf("Key: %v", err)
	}
	if !strings.Contains(res.URL, "f=rust") {
		t.Errorf("commit URL = %q, want f=rust", res.URL)
	}
	if res.Page == nil || len(res.Page.Results) != 1 {
		t.Errorf("expected the single rust-tagged result, got %+v", res.Page)
	}
}

func TestVocabularyUnion(t *testing.T) {
	c := newTestClient(t)

	want := []string{"backend", "go", "performance", "web", "rust"}
	got := c.Vocabulary()
	if len(got) != len(want) {
		t.Fatalf("vocabulary = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("vocabulary[%d] = %q, want %q (first-seen order)", i, got[i], want[i])
		}
	}
}
