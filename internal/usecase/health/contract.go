package health

// AdvisorChecker reports whether the advisory credential is available.
type AdvisorChecker interface {
	Configured() bool
}
