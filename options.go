package sitesearch

import "net/http"

type clientConfig struct {
	source          string
	documents       []Document
	httpClient      *http.Client
	viewMode        string
	pageSize        int
	suggestionLimit int
	titleWeight     float64
	facetWeight     float64
	bodyWeight      float64
}

// Option configures the Client.
type Option func(*clientConfig)

// WithIndexSource loads the index from an http(s) URL or a local file path.
func WithIndexSource(source string) Option {
	return func(c *clientConfig) { c.source = source }
}

// WithDocuments builds the index from in-memory documents instead of a source.
func WithDocuments(docs []Document) Option {
	return func(c *clientConfig) { c.documents = docs }
}

// WithHTTPClient overrides the HTTP client used for URL index sources.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *clientConfig) { c.httpClient = hc }
}

// WithViewMode selects the result card shape: "grid" or "list".
func WithViewMode(mode string) Option {
	return func(c *clientConfig) { c.viewMode = mode }
}

// WithPageSize overrides the default page size of 9.
func WithPageSize(n int) Option {
	return func(c *clientConfig) { c.pageSize = n }
}

// WithSuggestionLimit overrides the default suggestion list cap of 8.
func WithSuggestionLimit(n int) Option {
	return func(c *clientConfig) { c.suggestionLimit = n }
}

// WithWeights overrides the per-field ranking boosts.
func WithWeights(title, facet, body float64) Option {
	return func(c *clientConfig) {
		c.titleWeight = title
		c.facetWeight = facet
		c.bodyWeight = body
	}
}
