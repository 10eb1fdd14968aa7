// Package http implements the HTTP surface of the pickup application.
//
// It exposes the browser-facing configuration, the app version and the
// liveness and readiness probes. Request tracing, access logging, panic
// recovery and per-request timeouts are applied as chi middleware before
// requests reach the service layer.
package http
