// Package sitesearch embeds the faceted site search engine in-process: load
// the precomputed document index once, then drive a search session whose
// entire state lives in a URL query string.
package sitesearch

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/index"
	"github.com/kailas-cloud/sitesearch/internal/repository/ranked"
	"github.com/kailas-cloud/sitesearch/internal/usecase/render"
	searchuc "github.com/kailas-cloud/sitesearch/internal/usecase/search"
	sessionuc "github.com/kailas-cloud/sitesearch/internal/usecase/session"
	suggestuc "github.com/kailas-cloud/sitesearch/internal/usecase/suggest"
)

const defaultFetchTimeout = 10 * time.Second

// Keyboard keys understood by Key.
const (
	KeyArrowDown = sessionuc.KeyArrowDown
	KeyArrowUp   = sessionuc.KeyArrowUp
	KeyEnter     = sessionuc.KeyEnter
)

// Client is the sitesearch SDK entry point: one loaded index plus one search
// session over it. Like the session it wraps, a Client is owned by a single
// interaction context and is not safe for concurrent use.
type Client struct {
	idx      *index.Index
	searcher *ranked.Searcher
	session  *sessionuc.Service
}

// New creates a Client. The index comes from WithDocuments or is loaded from
// the WithIndexSource location; a failed load is an error, never an empty
// index.
func New(ctx context.Context, opts ...Option) (*Client, error) {
	cfg := &clientConfig{viewMode: "grid"}
	for _, o := range opts {
		o(cfg)
	}

	idx, err := buildIndex(ctx, cfg)
	if err != nil {
		return nil, err
	}

	weights := ranked.DefaultWeights()
	if cfg.titleWeight > 0 {
		weights = ranked.Weights{
			Title: cfg.titleWeight,
			Facet: cfg.facetWeight,
			Body:  cfg.bodyWeight,
		}
	}
	searcher, err := ranked.New(idx.Documents(), weights)
	if err != nil {
		return nil, fmt.Errorf("sitesearch: build search index: %w", err)
	}

	renderer, err := render.New(cfg.viewMode)
	if err != nil {
		_ = searcher.Close()
		return nil, fmt.Errorf("sitesearch: %w", err)
	}

	searchSvc := searchuc.New(searcher, idx)
	suggestSvc := suggestuc.New(idx.Vocabulary(), cfg.suggestionLimit)

	var sessionOpts []sessionuc.Option
	if cfg.pageSize > 0 {
		sessionOpts = append(sessionOpts, sessionuc.WithPageSize(cfg.pageSize))
	}
	session := sessionuc.New(searchSvc, suggestSvc, renderer, sessionOpts...)

	return &Client{
		idx:      idx,
		searcher: searcher,
		session:  session,
	}, nil
}

func buildIndex(ctx context.Context, cfg *clientConfig) (*index.Index, error) {
	if cfg.documents != nil {
		docs := make([]domain.Document, len(cfg.documents))
		for i, d := range cfg.documents {
			docs[i] = docToInternal(d)
		}
		return index.New(docs), nil
	}

	if cfg.source == "" {
		return nil, errors.New(
			"sitesearch: index required (use WithIndexSource or WithDocuments)")
	}

	loaderOpts := []index.LoaderOption{index.WithTimeout(defaultFetchTimeout)}
	if cfg.httpClient != nil {
		loaderOpts = append(loaderOpts, index.WithHTTPClient(cfg.httpClient))
	}

	idx, err := index.NewLoader(loaderOpts...).Load(ctx, cfg.source)
	if err != nil {
		return nil, fmt.Errorf("sitesearch: %w", err)
	}
	return idx, nil
}

// Close releases the search index.
func (c *Client) Close() error {
	if err := c.searcher.Close(); err != nil {
		return fmt.Errorf("sitesearch: %w", err)
	}
	return nil
}

// Len returns the number of indexed documents.
func (c *Client) Len() int { return c.idx.Len() }

// Vocabulary returns the distinct facet values in first-seen order.
func (c *Client) Vocabulary() []string { return c.idx.Vocabulary() }

// Search derives the full render model from rawURL: its q, f and p query
// parameters are the complete session state.
func (c *Client) Search(ctx context.Context, rawURL string) (Page, error) {
	p, err := c.session.Recompute(ctx, rawURL)
	if err != nil {
		return Page{}, err
	}
	return pageFromInternal(p), nil
}

// SetText commits a text query. Returns the next URL and its render model.
func (c *Client) SetText(ctx context.Context, rawURL, text string) (string, Page, error) {
	next, p, err := c.session.SetText(ctx, rawURL, text)
	if err != nil {
		return "", Page{}, err
	}
	return next, pageFromInternal(p), nil
}

// AddFilter commits a filter value, superseding any text query.
func (c *Client) AddFilter(ctx context.Context, rawURL, value string) (string, Page, error) {
	next, p, err := c.session.AddFilter(ctx, rawURL, value)
	if err != nil {
		return "", Page{}, err
	}
	return next, pageFromInternal(p), nil
}

// RemoveFilter retracts a filter value.
func (c *Client) RemoveFilter(ctx context.Context, rawURL, value string) (string, Page, error) {
	next, p, err := c.session.RemoveFilter(ctx, rawURL, value)
	if err != nil {
		return "", Page{}, err
	}
	return next, pageFromInternal(p), nil
}

// SetPage navigates to page n.
func (c *Client) SetPage(ctx context.Context, rawURL string, n int) (string, Page, error) {
	next, p, err := c.session.SetPage(ctx, rawURL, n)
	if err != nil {
		return "", Page{}, err
	}
	return next, pageFromInternal(p), nil
}

// Input reacts to a text-input change and returns the new suggestion list.
func (c *Client) Input(rawURL, text string) []string {
	return c.session.Input(rawURL, text)
}

// Selection returns the keyboard cursor position over the suggestion list,
// or -1 when nothing is selected.
func (c *Client) Selection() int { return c.session.Selection() }

// Key handles a keystroke over the suggestion list.
func (c *Client) Key(ctx context.Context, rawURL, key, input string) (KeyResult, error) {
	res, err := c.session.Key(ctx, rawURL, key, input)
	if err != nil {
		return KeyResult{}, err
	}
	out := KeyResult{
		URL:         res.URL,
		Selection:   res.Selection,
		Suggestions: res.Suggestions,
	}
	if res.Page != nil {
		p := pageFromInternal(*res.Page)
		out.Page = &p
	}
	return out, nil
}
