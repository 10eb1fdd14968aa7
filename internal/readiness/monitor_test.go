package readiness

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-pickup-config/internal/logger"
	"github.com/MKhiriev/go-pickup-config/models"
)

// spyRunner считает вызовы Run и возвращает заданный результат.
type spyRunner struct {
	calls  atomic.Int64
	report models.ReadinessReport
	err    error
}

func (s *spyRunner) Run(_ context.Context) (models.ReadinessReport, error) {
	s.calls.Add(1)
	return s.report, s.err
}

func TestMonitor_RecordAndReport(t *testing.T) {
	m := NewMonitor(&spyRunner{}, logger.Nop())
	assert.False(t, m.Report().Ready)

	m.Record(models.ReadinessReport{Ready: true})

	assert.True(t, m.Report().Ready)
}

func TestMonitor_Refresh_StoresFailedReport(t *testing.T) {
	failed := models.ReadinessReport{Checks: []models.CheckResult{{Name: "sms", Status: models.CheckStatusFailed}}}
	spy := &spyRunner{report: failed, err: errors.New("not ready")}
	m := NewMonitor(spy, logger.Nop())
	m.Record(models.ReadinessReport{Ready: true})

	err := m.Refresh(context.Background())

	require.Error(t, err)
	assert.Equal(t, failed, m.Report())
}

func TestMonitor_Refresh_CancelledKeepsLastReport(t *testing.T) {
	spy := &spyRunner{report: models.ReadinessReport{Ready: false}}
	m := NewMonitor(spy, logger.Nop())
	m.Record(models.ReadinessReport{Ready: true})

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := m.Refresh(ctx)

	assert.ErrorIs(t, err, context.Canceled)
	assert.True(t, m.Report().Ready)
}

func TestMonitor_Start_RefreshesPeriodically(t *testing.T) {
	spy := &spyRunner{report: models.ReadinessReport{Ready: true}}
	m := NewMonitor(spy, logger.Nop())

	// при интервале 10ms за 55ms успевает пройти несколько тиков
	m.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(55 * time.Millisecond)
	m.Stop()

	assert.GreaterOrEqual(t, spy.calls.Load(), int64(3))
	assert.True(t, m.Report().Ready)
}

func TestMonitor_Stop_StopsGoroutine(t *testing.T) {
	spy := &spyRunner{}
	m := NewMonitor(spy, logger.Nop())

	m.Start(context.Background(), 10*time.Millisecond)
	time.Sleep(30 * time.Millisecond)
	m.Stop()

	callsAfterStop := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)

	assert.Equal(t, callsAfterStop, spy.calls.Load(), "после Stop новых вызовов быть не должно")
}

func TestMonitor_Stop_BeforeStart_NoPanic(t *testing.T) {
	m := NewMonitor(&spyRunner{}, logger.Nop())
	assert.NotPanics(t, func() { m.Stop() })
}

func TestMonitor_Start_CancelledByContext(t *testing.T) {
	spy := &spyRunner{}
	m := NewMonitor(spy, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	m.Start(ctx, 10*time.Millisecond)
	cancel()
	time.Sleep(30 * time.Millisecond)

	calls := spy.calls.Load()
	time.Sleep(30 * time.Millisecond)
	assert.Equal(t, calls, spy.calls.Load())
	m.Stop()
}
