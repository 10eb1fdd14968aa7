// Package readiness confirms that every external dependency of the
// application is reachable before dependent code runs.
//
// A [Gate] runs a set of [Checker] values concurrently, retrying retryable
// failures with exponential backoff inside an overall timeout. Errors
// wrapped with [Permanent] are not retried. When any check fails, Run
// returns [ErrNotReady] wrapping one [CheckError] per failed check.
//
// A [Monitor] keeps re-running the gate after startup and holds the latest
// report for the readiness endpoint.
package readiness
