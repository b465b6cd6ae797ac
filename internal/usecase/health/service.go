package health

// Status represents the aggregated health status.
type Status string

const (
	// Healthy indicates all components are operational.
	Healthy Status = "ok"
	// Degraded indicates the service runs but some feature is unavailable.
	Degraded Status = "degraded"
)

// CheckResult represents an individual component health check outcome.
type CheckResult string

const (
	// CheckOK indicates a passing health check.
	CheckOK CheckResult = "ok"
	// CheckError indicates a failing health check.
	CheckError CheckResult = "error"
)

// Report aggregates health check results.
type Report struct {
	Status Status
	Checks map[string]CheckResult
}

// Service coordinates health checks. Generators are pure and always available,
// so only the advisor is checked.
type Service struct {
	advisor AdvisorChecker
}

// New creates a Service. advisor can be nil.
func New(advisor AdvisorChecker) *Service {
	return &Service{advisor: advisor}
}

// Check runs the health checks. A missing credential degrades the service but
// never fails it: artifact generation keeps working.
func (s *Service) Check() Report {
	checks := map[string]CheckResult{"generator": CheckOK}

	if s.advisor != nil {
		if s.advisor.Configured() {
			checks["advisor"] = CheckOK
		} else {
			checks["advisor"] = CheckError
		}
	}

	status := Healthy
	for _, v := range checks {
		if v == CheckError {
			status = Degraded
			break
		}
	}

	return Report{Status: status, Checks: checks}
}
