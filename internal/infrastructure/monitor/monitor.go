package monitor

import (
	"context"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/fastygo/bookingservice/domain"
)

// Counter reports how many bookings are stored.
type Counter interface {
	Count() int
}

// CurrencySource reports the distinct currencies in use.
type CurrencySource interface {
	FindCurrenciesUsed(ctx context.Context) map[domain.Currency]struct{}
}

// Monitor keeps a periodically refreshed snapshot of store statistics.
type Monitor struct {
	counter    Counter
	currencies CurrencySource
	cron       *cron.Cron
	logger     *zap.Logger

	mu     sync.RWMutex
	status Status
}

func New(counter Counter, currencies CurrencySource, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval < time.Second {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	m := &Monitor{
		counter:    counter,
		currencies: currencies,
		cron:       cron.New(cron.WithSeconds()),
		logger:     logger,
		status:     Status{StartedAt: time.Now()},
	}

	schedule := scheduleSpec(interval)
	if _, err := m.cron.AddFunc(schedule, m.Refresh); err != nil {
		logger.Error("monitor schedule rejected", zap.String("schedule", schedule), zap.Error(err))
	}
	return m
}

func scheduleSpec(interval time.Duration) string {
	return "@every " + interval.String()
}

// Start takes a first snapshot and launches the scheduler.
func (m *Monitor) Start() {
	m.Refresh()
	m.cron.Start()
	m.logger.Info("monitor started")
}

// Stop waits for a running refresh to finish or ctx to expire.
func (m *Monitor) Stop(ctx context.Context) {
	stopCtx := m.cron.Stop()
	select {
	case <-stopCtx.Done():
	case <-ctx.Done():
	}
	m.logger.Info("monitor stopped")
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

func (m *Monitor) Refresh() {
	records := 0
	if m.counter != nil {
		records = m.counter.Count()
	}
	currencies := 0
	if m.currencies != nil {
		currencies = len(m.currencies.FindCurrenciesUsed(context.Background()))
	}

	m.mu.Lock()
	m.status.RecordCount = records
	m.status.Currencies = currencies
	m.status.LastCheck = time.Now()
	m.mu.Unlock()

	m.logger.Debug("store statistics refreshed",
		zap.Int("records", records),
		zap.Int("currencies", currencies))
}
