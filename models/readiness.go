package models

import "time"

// CheckStatus is the outcome of a single readiness check.
type CheckStatus string

const (
	CheckStatusOK      CheckStatus = "ok"
	CheckStatusFailed  CheckStatus = "failed"
	CheckStatusSkipped CheckStatus = "skipped"
)

// CheckResult describes one dependency check run.
type CheckResult struct {
	Name     string      `json:"name"`
	Status   CheckStatus `json:"status"`
	Error    string      `json:"error,omitempty"`
	Attempts int         `json:"attempts"`
	// DurationMS is the wall time spent on the check including retries.
	DurationMS int64 `json:"duration_ms"`
}

// ReadinessReport is the aggregate result of a readiness run. Ready is true
// only when no check failed; skipped checks do not count as failures.
type ReadinessReport struct {
	Ready     bool          `json:"ready"`
	CheckedAt time.Time     `json:"checked_at"`
	Checks    []CheckResult `json:"checks"`
}

// Failed returns the names of failed checks in report order.
func (r ReadinessReport) Failed() []string {
	var failed []string
	for _, c := range r.Checks {
		if c.Status == CheckStatusFailed {
			failed = append(failed, c.Name)
		}
	}
	return failed
}
