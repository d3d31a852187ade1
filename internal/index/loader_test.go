package index

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

const sampleIndex = `[
	{"title": "Caching layers", "content": "about caches", "categories": ["go"], "weight": 5, "url": "/caching"},
	{"title": "Databases", "content": "about storage", "categories": ["go"], "tags": ["rust", "go"], "weight": 1, "url": "/db"},
	{"title": "Queues", "content": "about brokers", "tags": ["rust"], "url": "/queues"}
]`

func TestLoadFromHTTP(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(sampleIndex))
	}))
	defer srv.Close()

	idx, err := NewLoader().Load(context.Background(), srv.URL+"/index.json")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}
	if idx.Documents()[0].Title != "Caching layers" {
		t.Errorf("first title = %q", idx.Documents()[0].Title)
	}
}

func TestLoadFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.json")
	if err := os.WriteFile(path, []byte(sampleIndex), 0o600); err != nil {
		t.Fatal(err)
	}

	idx, err := NewLoader().Load(context.Background(), path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if idx.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", idx.Len())
	}
}

func TestLoadHTTPFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	_, err := NewLoader().Load(context.Background(), srv.URL+"/index.json")
	if !errors.Is(err, domain.ErrIndexFetch) {
		t.Fatalf("error = %v, want ErrIndexFetch", err)
	}
}

func TestLoadMissingFile(t *testing.T) {
	_, err := NewLoader().Load(context.Background(), filepath.Join(t.TempDir(), "absent.json"))
	if !errors.Is(err, domain.ErrIndexFetch) {
		t.Fatalf("error = %v, want ErrIndexFetch", err)
	}
}

func TestLoadMalformed(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"not": "an array"}`))
	}))
	defer srv.Close()

	_, err := NewLoader().Load(context.Background(), srv.URL)
	if !errors.Is(err, domain.ErrIndexMalformed) {
		t.Fatalf("error = %v, want ErrIndexMalformed", err)
	}
}

func TestVocabularyFirstSeenOrder(t *testing.T) {
	docs := []domain.Document{
		{Title: "a", Categories: []string{"go", "web"}},
		{Title: "b", Categories: []string{"rust"}, Tags: []string{"go"}},
		{Title: "c", Tags: []string{"cpp", "web"}},
	}
	idx := New(docs)

	want := []string{"go", "web", "rust", "cpp"}
	got := idx.Vocabulary()
	if len(got) != len(want) {
		t.Fatalf("Vocabulary() = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Vocabulary()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}
