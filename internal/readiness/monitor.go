package readiness

import (
	"context"
	"sync"
	"time"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/models"
)

// Runner is implemented by [Gate].
type Runner interface {
	Run(ctx context.Context) (models.ReadinessReport, error)
}

// Monitor re-runs a gate on a ticker after startup and keeps the latest
// report. Later failures are logged and reported, never fatal.
type Monitor struct {
	gate Runner

	reportMu sync.RWMutex
	report   models.ReadinessReport

	mu     sync.Mutex
	cancel context.CancelFunc
	wg     sync.WaitGroup

	logger *logger.Logger
}

// NewMonitor creates an idle monitor over gate.
func NewMonitor(gate Runner, logger *logger.Logger) *Monitor {
	return &Monitor{gate: gate, logger: logger}
}

// Report returns the most recent readiness report.
func (m *Monitor) Report() models.ReadinessReport {
	m.reportMu.RLock()
	defer m.reportMu.RUnlock()
	return m.report
}

// Record stores report as the latest one, e.g. the result of the startup
// gate.
func (m *Monitor) Record(report models.ReadinessReport) {
	m.reportMu.Lock()
	defer m.reportMu.Unlock()
	m.report = report
}

// Refresh runs the gate once and records the result.
func (m *Monitor) Refresh(ctx context.Context) error {
	report, err := m.gate.Run(ctx)
	if ctx.Err() != nil {
		// shutting down; keep the last complete report
		return ctx.Err()
	}
	m.Record(report)

	if err != nil {
		m.logger.Warn().Err(err).Strs("failed", report.Failed()).Msg("dependencies degraded")
	}
	return err
}

// Start stops any previously running loop, then refreshes the report every
// interval until ctx is cancelled or Stop is called. If interval is zero or
// negative it defaults to one minute.
func (m *Monitor) Start(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	m.Stop()

	m.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	m.cancel = cancel
	m.wg.Add(1)
	m.mu.Unlock()

	go func() {
		defer m.wg.Done()
		t := time.NewTicker(interval)
		defer t.Stop()

		for {
			select {
			case <-jobCtx.Done():
				return
			case <-t.C:
				_ = m.Refresh(jobCtx)
			}
		}
	}()
}

// Stop cancels the refresh loop and waits for it to exit. Safe to call when
// the monitor is not running.
func (m *Monitor) Stop() {
	m.mu.Lock()
	cancel := m.cancel
	m.cancel = nil
	m.mu.Unlock()

	if cancel != nil {
		cancel()
	}
	m.wg.Wait()
}
