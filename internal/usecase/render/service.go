// Package render builds the full-page view model consumed by the presentation
// layer. It owns no state beyond the view mode chosen at construction and
// rebuilds its entire output on every call; nothing is diffed or reused.
package render

import (
	"strings"

	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/domain/query"
	"github.com/kailas-cloud/sitesearch/internal/domain/view"
)

// snippetLength caps card body text, cut at a word boundary.
const snippetLength = 160

// Service builds view models for one configured view mode.
type Service struct {
	mode view.Mode
}

// New creates a renderer for the given mode string. Unknown modes are
// rejected here rather than surfacing as silent blank output later.
func New(mode string) (*Service, error) {
	m, err := view.ParseMode(mode)
	if err != nil {
		return nil, err
	}
	return &Service{mode: m}, nil
}

// Build assembles the complete render model for one recomputation.
func (s *Service) Build(
	state query.State,
	pageDocs []domain.Document,
	counts []domain.FacetCount,
	pagination view.Pagination,
) view.Page {
	cards := make([]view.Card, 0, len(pageDocs))
	for i := range pageDocs {
		cards = append(cards, s.card(&pageDocs[i]))
	}

	return view.Page{
		Query: view.QueryEcho{
			Text:    state.Text(),
			Filters: state.Filters(),
			Page:    state.Page(),
		},
		Mode:       s.mode,
		Results:    cards,
		Chips:      chips(state.Filters(), counts),
		Pagination: pagination,
		Empty:      len(cards) == 0,
	}
}

// card shapes one result for the configured mode: grid cards lead with the
// image, list rows with date and project metadata.
func (s *Service) card(doc *domain.Document) view.Card {
	c := view.Card{
		Title: doc.Title,
		Text:  snippet(doc.Content),
		URL:   doc.URL,
	}
	switch s.mode {
	case view.Grid:
		c.Image = doc.Image
		c.Project = doc.Project
	case view.List:
		c.Project = doc.Project
		c.Date = doc.Date
	}
	return c
}

func chips(active []string, counts []domain.FacetCount) view.ChipSet {
	set := view.ChipSet{
		Active:   make([]view.ActiveChip, 0, len(active)),
		Inactive: make([]view.CountChip, 0, len(counts)),
	}
	for _, v := range active {
		set.Active = append(set.Active, view.ActiveChip{Value: v})
	}
	for _, c := range counts {
		set.Inactive = append(set.Inactive, view.CountChip{Value: c.Value, Count: c.Count})
	}
	return set
}

func snippet(text string) string {
	if len(text) <= snippetLength {
		return text
	}
	cut := text[:snippetLength]
	if i := strings.LastIndexByte(cut, ' '); i > 0 {
		cut = cut[:i]
	}
	return cut + "…"
}
