package sitesearch

import (
	"github.com/kailas-cloud/sitesearch/internal/domain"
	"github.com/kailas-cloud/sitesearch/internal/domain/view"
)

// Document is one indexable page record, matching the search-index.json
// schema the site build emits.
type Document struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories,omitempty"`
	Tags       []string `json:"tags,omitempty"`
	Weight     float64  `json:"weight,omitempty"`
	URL        string   `json:"url"`
	Image      string   `json:"image,omitempty"`
	Project    string   `json:"project,omitempty"`
	Date       string   `json:"date,omitempty"`
}

// Card is the view model for a single result.
type Card struct {
	Title   string
	Text    string
	URL     string
	Image   string
	Project string
	Date    string
}

// ActiveChip is an applied filter, rendered as removable.
type ActiveChip struct {
	Value string
}

// CountChip is an available filter with its co-occurrence count.
type CountChip struct {
	Value string
	Count int
}

// ChipSet is the filter-bar view model.
type ChipSet struct {
	Active   []ActiveChip
	Inactive []CountChip
}

// Button is one pagination control.
type Button struct {
	Label  string
	Page   int
	Active bool
}

// Pagination is the page-control view model.
type Pagination struct {
	Buttons      []Button
	TotalPages   int
	TotalResults int
}

// QueryEcho reflects the parsed query state.
type QueryEcho struct {
	Text    string
	Filters []string
	Page    int
}

// Page is the full render model for one recomputation.
type Page struct {
	Query      QueryEcho
	Mode       string
	Results    []Card
	Chips      ChipSet
	Pagination Pagination
	Empty      bool
}

// KeyResult is the outcome of a keystroke. URL is non-empty only when the
// key committed a navigation, in which case Page holds the recomputed model.
type KeyResult struct {
	URL         string
	Page        *Page
	Selection   int
	Suggestions []string
}

func docToInternal(d Document) domain.Document {
	return domain.Document{
		Title:      d.Title,
		Content:    d.Content,
		Categories: d.Categories,
		Tags:       d.Tags,
		Weight:     d.Weight,
		URL:        d.URL,
		Image:      d.Image,
		Project:    d.Project,
		Date:       d.Date,
	}
}

func pageFromInternal(p view.Page) Page {
	cards := make([]Card, len(p.Results))
	for i, c := range p.Results {
		cards[i] = Card{
			Title:   c.Title,
			Text:    c.Text,
			URL:     c.URL,
			Image:   c.Image,
			Project: c.Project,
			Date:    c.Date,
		}
	}

	active := make([]ActiveChip, len(p.Chips.Active))
	for i, c := range p.Chips.Active {
		active[i] = ActiveChip{Value: c.Value}
	}
	inactive := make([]CountChip, len(p.Chips.Inactive))
	for i, c := range p.Chips.Inactive {
		inactive[i] = CountChip{Value: c.Value, Count: c.Count}
	}

	buttons := make([]Button, len(p.Pagination.Buttons))
	for i, b := range p.Pagination.Buttons {
		buttons[i] = Button{Label: b.Label, Page: b.Page, Active: b.Active}
	}

	return Page{
		Query: QueryEcho{
			Text:    p.Query.Text,
			Filters: p.Query.Filters,
			Page:    p.Query.Page,
		},
		Mode:    string(p.Mode),
		Results: cards,
		Chips:   ChipSet{Active: active, Inactive: inactive},
		Pagination: Pagination{
			Buttons:      buttons,
			TotalPages:   p.Pagination.TotalPages,
			TotalResults: p.Pagination.TotalResults,
		},
		Empty: p.Empty,
	}
}
