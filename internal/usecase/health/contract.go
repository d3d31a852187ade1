package health

import "context"

// IndexReader reports on the loaded document index.
type IndexReader interface {
	Len() int
}

// SearchChecker checks search backend availability.
type SearchChecker interface {
	HealthCheck(ctx context.Context) error
}
