package dashboard

import (
	"sync"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// AlertMonitor re-evaluates partner usage alerts on a schedule and keeps the
// latest result for the dashboard to serve.
type AlertMonitor struct {
	service  *Service
	logger   *zap.Logger
	cron     *cron.Cron
	schedule string
	warning  float64
	critical float64

	mu     sync.RWMutex
	alerts []UsageAlert
}

// NewAlertMonitor creates a monitor using a cron schedule expression such as
// "@every 15m".
func NewAlertMonitor(service *Service, logger *zap.Logger, schedule string, warning, critical float64) *AlertMonitor {
	return &AlertMonitor{
		service:  service,
		logger:   logger,
		cron:     cron.New(),
		schedule: schedule,
		warning:  warning,
		critical: critical,
	}
}

// Start evaluates once immediately and then on every schedule tick.
func (m *AlertMonitor) Start() error {
	m.evaluate()

	if _, err := m.cron.AddFunc(m.schedule, m.evaluate); err != nil {
		return err
	}
	m.cron.Start()
	return nil
}

// Stop halts the scheduler. Running evaluations finish.
func (m *AlertMonitor) Stop() {
	m.cron.Stop()
}

// Alerts returns the most recent evaluation result.
func (m *AlertMonitor) Alerts() []UsageAlert {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.alerts
}

func (m *AlertMonitor) evaluate() {
	alerts := m.service.EvaluateAlerts(m.warning, m.critical)

	m.mu.Lock()
	m.alerts = alerts
	m.mu.Unlock()

	m.logger.Info("usage alerts evaluated", zap.Int("count", len(alerts)))
}
