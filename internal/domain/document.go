package domain

// Document is one indexed content item, immutable once loaded.
// The shape mirrors the site build's index.json entries.
type Document struct {
	Title      string   `json:"title"`
	Content    string   `json:"content"`
	Categories []string `json:"categories"`
	Tags       []string `json:"tags"`
	Weight     float64  `json:"weight"`
	URL        string   `json:"url"`
	Image      string   `json:"image,omitempty"`
	Project    string   `json:"project,omitempty"`
	Date       string   `json:"date,omitempty"`
}

// FacetValues returns the document's facet set: categories followed by tags,
// order preserved, duplicates dropped on first appearance.
func (d *Document) FacetValues() []string {
	values := make([]string, 0, len(d.Categories)+len(d.Tags))
	seen := make(map[string]struct{}, len(d.Categories)+len(d.Tags))
	for _, group := range [][]string{d.Categories, d.Tags} {
		for _, v := range group {
			if _, ok := seen[v]; ok {
				continue
			}
			seen[v] = struct{}{}
			values = append(values, v)
		}
	}
	return values
}

// HasFacet reports whether the document carries the given facet value.
func (d *Document) HasFacet(value string) bool {
	for _, v := range d.Categories {
		if v == value {
			return true
		}
	}
	for _, v := range d.Tags {
		if v == value {
			return true
		}
	}
	return false
}

// FacetCount is the aggregate occurrence count of a facet value within a
// result set. Derived, never stored.
type FacetCount struct {
	Value string
	Count int
}
