package watchdog

import (
	"context"
	"time"

	"github.com/diwise/service-chassis/pkg/infrastructure/o11y/logging"
)

// StaleCloser force-closes alerts that have not been re-observed for the
// configured number of cycles.
type StaleCloser interface {
	CloseStale(ctx context.Context, cutoff time.Time) error
}

type Config struct {
	// CycleInterval is the acquisition cadence of the reading source.
	CycleInterval time.Duration `yaml:"-"`
	// StaleAfterCycles force-closes an alert after this many missed
	// cycles. Zero disables the watchdog: absence of data never closes
	// an alert unless an operator opted in.
	StaleAfterCycles int `yaml:"stale_after_cycles"`
}

type Watchdog interface {
	Start(ctx context.Context)
	Stop(ctx context.Context)
}

type watchdog struct {
	alerts StaleCloser
	cfg    Config
	done   chan struct{}
}

func New(alerts StaleCloser, cfg Config) Watchdog {
	if cfg.CycleInterval <= 0 {
		cfg.CycleInterval = time.Minute
	}

	return &watchdog{
		alerts: alerts,
		cfg:    cfg,
		done:   make(chan struct{}),
	}
}

func (w *watchdog) Start(ctx context.Context) {
	if w.cfg.StaleAfterCycles <= 0 {
		logging.GetFromContext(ctx).Debug("stale alert watchdog disabled")
		return
	}

	go w.run(ctx)
}

func (w *watchdog) Stop(ctx context.Context) {
	close(w.done)
}

func (w *watchdog) run(ctx context.Context) {
	log := logging.GetFromContext(ctx)

	ticker := time.NewTicker(w.cfg.CycleInterval)
	defer ticker.Stop()

	maxAge := time.Duration(w.cfg.StaleAfterCycles) * w.cfg.CycleInterval

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.done:
			return
		case <-ticker.C:
			err := w.alerts.CloseStale(ctx, time.Now().UTC().Add(-maxAge))
			if err != nil {
				log.Error("failed to close stale alerts", "err", err.Error())
			}
		}
	}
}
