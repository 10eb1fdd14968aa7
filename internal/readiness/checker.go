package readiness

import "context"

//go:generate mockgen -source=checker.go -destination=../mock/checker_mock.go -package=mock

// Checker probes one external dependency.
type Checker interface {
	// Name identifies the check in reports and in READINESS_DISABLED.
	Name() string

	// Check returns nil when the dependency is usable. Errors wrapped with
	// Permanent are not retried.
	Check(ctx context.Context) error
}

type checkFunc struct {
	name string
	fn   func(ctx context.Context) error
}

// NewCheck adapts a function to the [Checker] interface.
func NewCheck(name string, fn func(ctx context.Context) error) Checker {
	return &checkFunc{name: name, fn: fn}
}

func (c *checkFunc) Name() string {
	return c.name
}

func (c *checkFunc) Check(ctx context.Context) error {
	return c.fn(ctx)
}
