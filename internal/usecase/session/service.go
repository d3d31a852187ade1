// Package session is the query-state/result synchronization engine. Every
// interaction funnels through the same loop: mutate the URL, re-parse the
// query state from it, re-run rank → filter → paginate, rebuild the render
// model. The URL is always re-parsed rather than trusted from memory, so the
// shareable representation and the rendered output can never drift apart.
//
// A Service is owned by a single interaction context and is not safe for
// concurrent use; the only mutable state it carries is the keyboard cursor
// over the current suggestion list.
package session

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/kailas-cloud/sitesearch/internal/domain/query"
	"github.com/kailas-cloud/sitesearch/internal/domain/view"
	"github.com/kailas-cloud/sitesearch/internal/usecase/filter"
	"github.com/kailas-cloud/sitesearch/internal/usecase/paginate"
	"github.com/kailas-cloud/sitesearch/internal/usecase/suggest"
)

// Keyboard keys the session understands.
const (
	KeyArrowDown = "ArrowDown"
	KeyArrowUp   = "ArrowUp"
	KeyEnter     = "Enter"
)

// Service threads one user's search interaction through the pipeline.
type Service struct {
	engine   Engine
	suggster Suggester
	renderer Renderer
	pageSize int

	cursor      suggest.Cursor
	suggestions []string
}

// Option configures a Service.
type Option func(*Service)

// WithPageSize overrides the default page size.
func WithPageSize(n int) Option {
	return func(s *Service) {
		if n > 0 {
			s.pageSize = n
		}
	}
}

// New creates a session service.
func New(engine Engine, suggester Suggester, renderer Renderer, opts ...Option) *Service {
	s := &Service{
		engine:   engine,
		suggster: suggester,
		renderer: renderer,
		pageSize: paginate.DefaultPageSize,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// Recompute derives the render model from rawURL alone: parse the query
// state, rank, filter, paginate, build. Called after every mutation and for
// every history navigation.
func (s *Service) Recompute(ctx context.Context, rawURL string) (view.Page, error) {
	state := query.Parse(rawURL)

	ranked, err := s.engine.Rank(ctx, state.Text())
	if err != nil {
		return view.Page{}, fmt.Errorf("recompute: %w", err)
	}

	results, counts := filter.Apply(ranked, state.Filters())
	pageDocs := paginate.Page(results, s.pageSize, state.Page())
	controls := paginate.Controls(len(results), s.pageSize, state.Page())

	return s.renderer.Build(state, pageDocs, counts, controls), nil
}

// SetText commits a text query: new URL, recomputed page.
func (s *Service) SetText(ctx context.Context, rawURL, text string) (string, view.Page, error) {
	return s.mutate(ctx, rawURL, func(st query.State) query.State {
		return st.SetText(text)
	})
}

// AddFilter commits a filter value: new URL, recomputed page.
func (s *Service) AddFilter(ctx context.Context, rawURL, value string) (string, view.Page, error) {
	return s.mutate(ctx, rawURL, func(st query.State) query.State {
		return st.AddFilter(value)
	})
}

// RemoveFilter retracts a filter value: new URL, recomputed page.
func (s *Service) RemoveFilter(ctx context.Context, rawURL, value string) (string, view.Page, error) {
	return s.mutate(ctx, rawURL, func(st query.State) query.State {
		return st.RemoveFilter(value)
	})
}

// SetPage navigates to page n: new URL, recomputed page.
func (s *Service) SetPage(ctx context.Context, rawURL string, n int) (string, view.Page, error) {
	return s.mutate(ctx, rawURL, func(st query.State) query.State {
		return st.SetPage(n)
	})
}

// mutate applies one state transition through the URL: parse the current
// state out of rawURL, transform it, serialize the result back onto the URL
// and recompute from that new URL from scratch.
func (s *Service) mutate(
	ctx context.Context, rawURL string, transition func(query.State) query.State,
) (string, view.Page, error) {
	base, err := url.Parse(rawURL)
	if err != nil {
		base = &url.URL{}
	}

	next := transition(query.FromURL(base)).URL(base)

	s.resetSuggestions()

	page, err := s.Recompute(ctx, next.String())
	if err != nil {
		return "", view.Page{}, err
	}
	return next.String(), page, nil
}

// Input reacts to a text-input change: the selection resets and the
// suggestion list is recomputed against the currently active filters.
func (s *Service) Input(rawURL, text string) []string {
	state := query.Parse(rawURL)
	s.cursor.Reset()
	s.suggestions = s.suggster.Suggest(text, state.Filters())
	return s.suggestions
}

// Suggestions returns the current suggestion list.
func (s *Service) Suggestions() []string { return s.suggestions }

// Selection returns the cursor position, or suggest.NoSelection.
func (s *Service) Selection() int { return s.cursor.Selection() }

// KeyResult is the outcome of a keystroke. URL is non-empty only when the
// key committed a navigation, in which case Page holds the recomputed model.
type KeyResult struct {
	URL         string
	Page        *view.Page
	Selection   int
	Suggestions []string
}

// Key handles keyboard interaction over the suggestion list. Arrow keys move
// the selection with wraparound. Enter with a selection commits that value as
// a filter, superseding the text query; Enter without a selection commits the
// trimmed input as the text query. Unknown keys do nothing.
func (s *Service) Key(ctx context.Context, rawURL, key, input string) (KeyResult, error) {
	switch key {
	case KeyArrowDown:
		s.cursor.Down(len(s.suggestions))
	case KeyArrowUp:
		s.cursor.Up(len(s.suggestions))
	case KeyEnter:
		return s.commit(ctx, rawURL, input)
	}
	return KeyResult{Selection: s.cursor.Selection(), Suggestions: s.suggestions}, nil
}

func (s *Service) commit(ctx context.Context, rawURL, input string) (KeyResult, error) {
	var (
		nextURL string
		page    view.Page
		err     error
	)
	if i, ok := s.cursor.Selected(); ok && i < len(s.suggestions) {
		nextURL, page, err = s.AddFilter(ctx, rawURL, s.suggestions[i])
	} else {
		nextURL, page, err = s.SetText(ctx, rawURL, strings.TrimSpace(input))
	}
	if err != nil {
		return KeyResult{}, err
	}
	return KeyResult{URL: nextURL, Page: &page, Selection: suggest.NoSelection}, nil
}

func (s *Service) resetSuggestions() {
	s.cursor.Reset()
	s.suggestions = nil
}
