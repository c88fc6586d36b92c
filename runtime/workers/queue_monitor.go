package workers

import (
	"context"
	"log/slog"
	"time"
)

const highWatermark = 0.8

// QueueMonitor samples the depth of a buffered channel. len and cap are
// non-blocking reads, so the queue itself is never disturbed.
type QueueMonitor[T any] struct {
	log      *slog.Logger
	name     string
	queue    chan T
	interval time.Duration
	onSample func(length, capacity int)
}

func NewQueueMonitor[T any](log *slog.Logger, name string, queue chan T, interval time.Duration) *QueueMonitor[T] {
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return &QueueMonitor[T]{log: log, name: name, queue: queue, interval: interval}
}

func (w *QueueMonitor[T]) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping queue sampling", "queue", w.name)
			return nil
		case <-ticker.C:
			w.sample()
		}
	}
}

func (w *QueueMonitor[T]) sample() {
	length, capacity := len(w.queue), cap(w.queue)
	if w.onSample != nil {
		w.onSample(length, capacity)
	}
	if capacity > 0 && float64(length) >= highWatermark*float64(capacity) {
		w.log.Warn("Queue close to saturation", "queue", w.name, "length", length, "capacity", capacity)
		return
	}
	w.log.Debug("Queue depth", "queue", w.name, "length", length, "capacity", capacity)
}
