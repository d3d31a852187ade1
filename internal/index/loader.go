package index

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/kailas-cloud/sitesearch/internal/domain"
)

const defaultFetchTimeout = 30 * time.Second

// Loader fetches the index document from its well-known location. The site
// build publishes index.json both on disk and over HTTP, so both source
// forms are accepted.
type Loader struct {
	client  *http.Client
	timeout time.Duration
}

// LoaderOption configures a Loader.
type LoaderOption func(*Loader)

// WithHTTPClient overrides the HTTP client used for URL sources.
func WithHTTPClient(c *http.Client) LoaderOption {
	return func(l *Loader) { l.client = c }
}

// WithTimeout overrides the fetch timeout for URL sources.
func WithTimeout(d time.Duration) LoaderOption {
	return func(l *Loader) { l.timeout = d }
}

// NewLoader creates a Loader.
func NewLoader(opts ...LoaderOption) *Loader {
	l := &Loader{client: http.DefaultClient, timeout: defaultFetchTimeout}
	for _, o := range opts {
		o(l)
	}
	return l
}

// Load fetches and parses the index from source, which is either an
// http(s) URL or a local file path. Any fetch or parse failure is fatal for
// the caller: a failed load must never be mistaken for an empty index.
func (l *Loader) Load(ctx context.Context, source string) (*Index, error) {
	var (
		data []byte
		err  error
	)
	if strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://") {
		data, err = l.fetch(ctx, source)
	} else {
		data, err = os.ReadFile(source)
		if err != nil {
			err = fmt.Errorf("%w: read %s: %w", domain.ErrIndexFetch, source, err)
		}
	}
	if err != nil {
		return nil, err
	}

	var docs []domain.Document
	if err := json.Unmarshal(data, &docs); err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrIndexMalformed, err)
	}
	return New(docs), nil
}

func (l *Loader) fetch(ctx context.Context, url string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, l.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: build request: %w", domain.ErrIndexFetch, err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: get %s: %w", domain.ErrIndexFetch, url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: get %s: status %d", domain.ErrIndexFetch, url, resp.StatusCode)
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: read body: %w", domain.ErrIndexFetch, err)
	}
	return data, nil
}
