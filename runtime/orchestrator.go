// Package runtime wires the request dispatcher, the result router and the
// classifier workers together. It holds no classification logic itself.
package runtime

import (
	"context"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/runtime/workers"
	"sync"
	"time"
)

type Orchestrator struct {
	mu                sync.Mutex
	log               *slog.Logger
	supervisor        contract.ISupervisor
	classifier        contract.Classifier
	epoch             *Epoch
	dispatcher        *Dispatcher
	router            *Router
	reporter          *workers.OutcomeReporter
	queueMonitor      *workers.QueueMonitor[selection.Job]
	jobs              chan selection.Job
	outcomes          chan selection.Outcome
	numWorkers        int
	classifierTimeout time.Duration
	started           bool
}

func NewOrchestrator(log *slog.Logger, supervisor contract.ISupervisor,
	classifier contract.Classifier, sink contract.ResultSink,
	numWorkers, bufferSize int, classifierTimeout, reportInterval time.Duration) *Orchestrator {
	if numWorkers < 1 {
		numWorkers = 1
	}
	jobs := make(chan selection.Job, bufferSize)
	outcomes := make(chan selection.Outcome, bufferSize)
	epoch := NewEpoch(context.Background())
	dispatcher := NewDispatcher(log, epoch, jobs)

	return &Orchestrator{
		log:               log,
		supervisor:        supervisor,
		classifier:        classifier,
		epoch:             epoch,
		dispatcher:        dispatcher,
		router:            NewRouter(log, dispatcher, sink, outcomes),
		reporter:          workers.NewOutcomeReporter(log, reportInterval, outcomes),
		queueMonitor:      workers.NewQueueMonitor(log, "jobs", jobs, reportInterval),
		jobs:              jobs,
		outcomes:          outcomes,
		numWorkers:        numWorkers,
		classifierTimeout: classifierTimeout,
	}
}

// Dispatcher is the caller-facing entry point.
func (o *Orchestrator) Dispatcher() contract.IDispatcher {
	return o.dispatcher
}

func (o *Orchestrator) Stats() workers.OutcomeStats {
	return o.reporter.Stats()
}

// Start registers the classifier pool and the monitoring workers, then runs the
// supervisor. It blocks until ctx is canceled or Stop is called.
func (o *Orchestrator) Start(ctx context.Context) error {
	poolWorkers := o.preparePoolWorkers()

	o.mu.Lock()
	if o.started {
		o.mu.Unlock()
		return nil
	}
	o.started = true
	o.supervisor.Add(poolWorkers...)
	o.supervisor.Add(o.reporter, o.queueMonitor)
	o.mu.Unlock()

	o.log.Info("Starting orchestrator", "classify_workers", o.numWorkers)
	o.supervisor.Run(ctx)
	return nil
}

func (o *Orchestrator) preparePoolWorkers() []contract.Worker {
	res := make([]contract.Worker, 0, o.numWorkers)
	for i := 0; i < o.numWorkers; i++ {
		res = append(res, workers.NewClassifyWorker(o.classifier, o.router, o.jobs, o.classifierTimeout, o.log))
	}
	return res
}

// Stop cancels the hint of in-flight requests and stops the workers.
// It does not wait for the classifier to drain.
func (o *Orchestrator) Stop() {
	o.log.Info("Requesting orchestrator shutdown")
	o.epoch.Close()
	o.supervisor.Stop()
}
