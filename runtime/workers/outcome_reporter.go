package workers

import (
	"context"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"sync"
	"time"
)

var _ contract.Worker = (*OutcomeReporter)(nil)

const defaultReportInterval = 30 * time.Second

type OutcomeStats struct {
	Delivered int
	Failed    int
	Canceled  int
}

func (s OutcomeStats) Total() int {
	return s.Delivered + s.Failed + s.Canceled
}

// OutcomeReporter counts terminal outcomes and logs them at a fixed interval.
type OutcomeReporter struct {
	mu       sync.Mutex
	log      *slog.Logger
	interval time.Duration
	outcomes <-chan selection.Outcome
	stats    OutcomeStats
	reported OutcomeStats
}

func NewOutcomeReporter(log *slog.Logger, interval time.Duration, outcomes <-chan selection.Outcome) *OutcomeReporter {
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return &OutcomeReporter{log: log, interval: interval, outcomes: outcomes}
}

func (w *OutcomeReporter) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			w.flush()
			return ctx.Err()
		case outcome, ok := <-w.outcomes:
			if !ok {
				w.flush()
				return nil
			}
			w.record(outcome)
		case <-ticker.C:
			w.flush()
		}
	}
}

func (w *OutcomeReporter) Stats() OutcomeStats {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.stats
}

func (w *OutcomeReporter) record(outcome selection.Outcome) {
	w.mu.Lock()
	defer w.mu.Unlock()
	switch {
	case outcome.Delivered:
		w.stats.Delivered++
	case outcome.Failed:
		w.stats.Failed++
	case outcome.Status == selection.Canceled:
		w.stats.Canceled++
	}
}

// flush logs only when something changed since the last report.
func (w *OutcomeReporter) flush() {
	w.mu.Lock()
	stats := w.stats
	changed := stats != w.reported
	w.reported = stats
	w.mu.Unlock()

	if !changed {
		return
	}
	w.log.Info("Classification outcomes",
		"delivered", stats.Delivered,
		"failed", stats.Failed,
		"canceled", stats.Canceled,
		"total", stats.Total())
}
