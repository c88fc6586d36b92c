package workers

import (
	"context"
	"log/slog"
	"time"

	"github.com/shirou/gopsutil/v3/process"
)

type ProcessSample struct {
	CPU float64
	RAM float32
}

// ProcessMonitor tracks the CPU and memory usage of a sidecar process.
// It returns nil once the process is gone, there is nothing left to restart.
type ProcessMonitor struct {
	log      *slog.Logger
	name     string
	pid      int32
	interval time.Duration
	onSample func(ProcessSample)
}

func NewProcessMonitor(log *slog.Logger, name string, pid int, interval time.Duration) *ProcessMonitor {
	if interval <= 0 {
		interval = defaultReportInterval
	}
	return &ProcessMonitor{log: log, name: name, pid: int32(pid), interval: interval}
}

func (w *ProcessMonitor) Run(ctx context.Context) error {
	ticker := time.NewTicker(w.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Context done, stopping process sampling", "name", w.name)
			return nil
		case <-ticker.C:
			sample, alive := w.sample(ctx)
			if !alive {
				w.log.Warn("Process has left the party", "name", w.name, "pid", w.pid)
				return nil
			}
			if w.onSample != nil {
				w.onSample(sample)
			}
		}
	}
}

func (w *ProcessMonitor) sample(ctx context.Context) (ProcessSample, bool) {
	p, err := process.NewProcessWithContext(ctx, w.pid)
	if err != nil {
		w.log.Debug("Error while retrieving process", "pid", w.pid, "error", err)
		return ProcessSample{}, false
	}
	running, err := p.IsRunningWithContext(ctx)
	if err != nil || !running {
		return ProcessSample{}, false
	}

	var sample ProcessSample
	if sample.CPU, err = p.CPUPercentWithContext(ctx); err != nil {
		w.log.Debug("Error while finding process cpu usage", "pid", w.pid, "error", err)
	}
	if sample.RAM, err = p.MemoryPercentWithContext(ctx); err != nil {
		w.log.Debug("Error while finding process ram usage", "pid", w.pid, "error", err)
	}
	w.log.Debug("Process usage", "name", w.name, "pid", w.pid, "cpu", sample.CPU, "ram", sample.RAM)
	return sample, true
}
