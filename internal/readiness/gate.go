package readiness

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sethvargo/go-retry"
	"golang.org/x/sync/errgroup"

	"github.com/MKhiriev/go-pickup-config/internal/config"
	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/models"
)

// Gate runs dependency checks and decides whether the application may
// proceed.
type Gate struct {
	checks   []Checker
	disabled map[string]bool

	timeout    time.Duration
	maxRetries uint64
	backoff    time.Duration

	now    func() time.Time
	logger *logger.Logger
}

// NewGate builds a gate over checks using the timeouts and retry policy of
// cfg. Checks listed in cfg.Disabled are reported as skipped.
func NewGate(checks []Checker, cfg config.Readiness, logger *logger.Logger) *Gate {
	return &Gate{
		checks:     checks,
		disabled:   cfg.DisabledChecks(),
		timeout:    cfg.Timeout,
		maxRetries: cfg.MaxRetries,
		backoff:    cfg.RetryBackoff,
		now:        time.Now,
		logger:     logger,
	}
}

// Names returns the names of all checks known to the gate.
func (g *Gate) Names() []string {
	names := make([]string, 0, len(g.checks))
	for _, c := range g.checks {
		names = append(names, c.Name())
	}
	return names
}

// Run executes every enabled check concurrently and returns the report.
// The error is nil when all checks pass; otherwise it wraps [ErrNotReady]
// and one [CheckError] per failure, in check order.
func (g *Gate) Run(ctx context.Context) (models.ReadinessReport, error) {
	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	report := models.ReadinessReport{
		CheckedAt: g.now(),
		Checks:    make([]models.CheckResult, len(g.checks)),
	}
	errs := make([]error, len(g.checks))

	var eg errgroup.Group
	for i, c := range g.checks {
		if g.disabled[c.Name()] {
			report.Checks[i] = models.CheckResult{Name: c.Name(), Status: models.CheckStatusSkipped}
			continue
		}

		i, c := i, c
		eg.Go(func() error {
			report.Checks[i], errs[i] = g.runCheck(ctx, c)
			return nil
		})
	}
	_ = eg.Wait()

	var failed []error
	for i, err := range errs {
		if err != nil {
			failed = append(failed, &CheckError{Name: g.checks[i].Name(), Err: err})
		}
	}

	report.Ready = len(failed) == 0
	if !report.Ready {
		return report, fmt.Errorf("%w: %w", ErrNotReady, errors.Join(failed...))
	}

	return report, nil
}

func (g *Gate) runCheck(ctx context.Context, c Checker) (models.CheckResult, error) {
	log := g.logger.With().Str("check", c.Name()).Logger()

	start := time.Now()
	attempts := 0

	backoff := retry.NewExponential(g.backoff)
	backoff = retry.WithMaxRetries(g.maxRetries, backoff)

	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		attempts++
		err := c.Check(ctx)
		if err == nil || IsPermanent(err) {
			return err
		}

		log.Debug().Err(err).Int("attempt", attempts).Msg("check failed, retrying")
		return retry.RetryableError(err)
	})

	result := models.CheckResult{
		Name:       c.Name(),
		Status:     models.CheckStatusOK,
		Attempts:   attempts,
		DurationMS: time.Since(start).Milliseconds(),
	}

	if err != nil {
		result.Status = models.CheckStatusFailed
		result.Error = err.Error()
		log.Warn().Err(err).Int("attempts", attempts).Msg("check failed")
		return result, err
	}

	log.Debug().Int("attempts", attempts).Msg("check passed")
	return result, nil
}
