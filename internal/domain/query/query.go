// Package query holds the authoritative user query state: free text, active
// facet filters and page number, bidirectionally synchronized with a URL
// query string. The URL is the single source of truth; State is only ever a
// parse of it, never a cache.
package query

import (
	"net/url"
	"strconv"
)

// Query string parameter names.
const (
	ParamText   = "q"
	ParamFilter = "f"
	ParamPage   = "p"
)

// State is a parsed query state. The zero value is the empty query on page 1
// in spirit, but construct through New or FromURL so the page invariant holds.
type State struct {
	text    string
	filters []string
	page    int
}

// New creates a State, normalizing page to at least 1 and dropping duplicate
// filter values (first appearance wins).
func New(text string, filters []string, page int) State {
	if page < 1 {
		page = 1
	}
	return State{text: text, filters: dedupe(filters), page: page}
}

// FromURL parses query state from a URL. Absent or empty q means no text
// query; every f occurrence becomes a filter in order of first appearance;
// a missing, malformed or non-positive p defaults to page 1.
func FromURL(u *url.URL) State {
	values := u.Query()

	page := 1
	if raw := values.Get(ParamPage); raw != "" {
		if n, err := strconv.Atoi(raw); err == nil && n >= 1 {
			page = n
		}
	}

	return State{
		text:    values.Get(ParamText),
		filters: dedupe(values[ParamFilter]),
		page:    page,
	}
}

// Parse parses query state from a raw URL string. An unparseable URL yields
// the empty state, matching a bare page load.
func Parse(rawURL string) State {
	u, err := url.Parse(rawURL)
	if err != nil {
		return New("", nil, 1)
	}
	return FromURL(u)
}

// Text returns the free-text query, possibly empty.
func (s State) Text() string { return s.text }

// Filters returns the active filter values in selection order.
func (s State) Filters() []string { return s.filters }

// Page returns the 1-based page number.
func (s State) Page() int {
	if s.page < 1 {
		return 1
	}
	return s.page
}

// HasFilter reports whether value is an active filter.
func (s State) HasFilter(value string) bool {
	for _, f := range s.filters {
		if f == value {
			return true
		}
	}
	return false
}

// Values serializes the state to its canonical query-string representation:
// q only when non-empty, one f per filter in order, p only past page 1.
func (s State) Values() url.Values {
	values := url.Values{}
	if s.text != "" {
		values.Set(ParamText, s.text)
	}
	for _, f := range s.filters {
		values.Add(ParamFilter, f)
	}
	if s.Page() > 1 {
		values.Set(ParamPage, strconv.Itoa(s.page))
	}
	return values
}

// URL serializes the state onto a copy of base, replacing its query string.
func (s State) URL(base *url.URL) *url.URL {
	u := *base
	u.RawQuery = s.Values().Encode()
	return &u
}

// Equal reports whether two states are identical field by field.
func (s State) Equal(o State) bool {
	if s.text != o.text || s.Page() != o.Page() || len(s.filters) != len(o.filters) {
		return false
	}
	for i, f := range s.filters {
		if o.filters[i] != f {
			return false
		}
	}
	return true
}

// SetText returns a state with the text query replaced and the page reset.
// Active filters are kept.
func (s State) SetText(text string) State {
	return State{text: text, filters: s.filters, page: 1}
}

// AddFilter returns a state with value appended to the filters. Committing a
// filter abandons the free-text query and resets the page. Adding an already
// active value is a no-op.
func (s State) AddFilter(value string) State {
	if s.HasFilter(value) {
		return State{text: "", filters: s.filters, page: 1}
	}
	filters := make([]string, 0, len(s.filters)+1)
	filters = append(filters, s.filters...)
	filters = append(filters, value)
	return State{text: "", filters: filters, page: 1}
}

// RemoveFilter returns a state with one occurrence of value removed and the
// page reset. Removing an inactive value changes nothing but the page.
func (s State) RemoveFilter(value string) State {
	filters := make([]string, 0, len(s.filters))
	removed := false
	for _, f := range s.filters {
		if !removed && f == value {
			removed = true
			continue
		}
		filters = append(filters, f)
	}
	return State{text: s.text, filters: filters, page: 1}
}

// SetPage returns a state on page n, leaving text and filters untouched.
func (s State) SetPage(n int) State {
	if n < 1 {
		n = 1
	}
	return State{text: s.text, filters: s.filters, page: n}
}

func dedupe(values []string) []string {
	if len(values) == 0 {
		return nil
	}
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
