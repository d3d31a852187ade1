// Package view holds the render-boundary data contract: card and chip view
// models plus the result view mode. Markup generation stays outside.
package view

import (
	"fmt"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

// Mode selects the result card shape.
type Mode string

// View mode constants.
const (
	Grid Mode = "grid"
	List Mode = "list"
)

// ParseMode validates a view mode string. Unknown modes are rejected here,
// at configuration time, never at render time.
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case Grid, List:
		return Mode(s), nil
	default:
		return "", fmt.Errorf("%w: %q", domain.ErrInvalidViewMode, s)
	}
}

// Card is the view model for a single result.
type Card struct {
	Title   string `json:"title"`
	Text    string `json:"text"`
	URL     string `json:"url"`
	Image   string `json:"image,omitempty"`
	Project string `json:"project,omitempty"`
	Date    string `json:"date,omitempty"`
}

// ActiveChip is an applied filter, rendered as removable.
type ActiveChip struct {
	Value string `json:"value"`
}

// CountChip is an available filter with its co-occurrence count.
type CountChip struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// ChipSet is the filter-bar view model.
type ChipSet struct {
	Active   []ActiveChip `json:"active"`
	Inactive []CountChip  `json:"inactive"`
}

// Button is one pagination control.
type Button struct {
	Label  string `json:"label"`
	Page   int    `json:"page"`
	Active bool   `json:"active"`
}

// Pagination is the page-control view model.
type Pagination struct {
	Buttons      []Button `json:"buttons"`
	TotalPages   int      `json:"totalPages"`
	TotalResults int      `json:"totalResults"`
}

// Page is the full render model for one recomputation. Renderers replace
// their output wholesale from it; nothing is diffed or retained.
type Page struct {
	Query      QueryEcho  `json:"query"`
	Mode       Mode       `json:"mode"`
	Results    []Card     `json:"results"`
	Chips      ChipSet    `json:"chips"`
	Pagination Pagination `json:"pagination"`
	Empty      bool       `json:"empty"`
}

// QueryEcho reflects the parsed query state back to the renderer.
type QueryEcho struct {
	Text    string   `json:"text"`
	Filters []string `json:"filters"`
	Page    int      `json:"page"`
}
