package health

import "context"

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates partial failure.
	Degraded Status = "degraded"
	// Unhealthy indicates total failure.
	Unhealthy Status = "error"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results. Documents is the loaded index
// size, zero when the index check fails.
type Report struct {
	Status    Status
	Checks    map[string]CheckResult
	Documents int
}

// Service coordinates health checks.
type Service struct {
	index  IndexReader
	search SearchChecker
}

// New creates a Service. search can be nil.
func New(index IndexReader, search SearchChecker) *Service {
	return &Service{index: index, search: search}
}

// Check runs health checks against all components. An empty index is still a
// loaded index; only a missing one fails the check.
func (s *Service) Check(ctx context.Context) Report {
	checks := make(map[string]CheckResult)

	documents := 0
	if s.index == nil {
		checks["index"] = CheckError
	} else {
		checks["index"] = CheckOK
		documents = s.index.Len()
	}

	if s.search != nil {
		if err := s.search.HealthCheck(ctx); err != nil {
			checks["search"] = CheckError
		} else {
			checks["search"] = CheckOK
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks, Documents: documents}
}
