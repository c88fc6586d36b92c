package workers

import (
	"context"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"time"
)

var _ contract.Worker = (*ClassifyWorker)(nil)

// ClassifyWorker takes dispatched jobs off the queue, runs the classifier
// and hands every completion to the router, stale or not.
type ClassifyWorker struct {
	classifier contract.Classifier
	router     contract.ICompletionRouter
	jobs       <-chan selection.Job
	timeout    time.Duration
	log        *slog.Logger
}

func NewClassifyWorker(
	classifier contract.Classifier,
	router contract.ICompletionRouter,
	jobs <-chan selection.Job,
	timeout time.Duration,
	log *slog.Logger) *ClassifyWorker {
	return &ClassifyWorker{
		classifier: classifier,
		router:     router,
		jobs:       jobs,
		timeout:    timeout,
		log:        log,
	}
}

func (w *ClassifyWorker) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			w.log.Debug("Stopping worker")
			return ctx.Err()
		case job, ok := <-w.jobs:
			if !ok {
				w.log.Debug("Channel is closed")
				return nil
			}
			w.router.OnCompletion(w.classify(job))
		}
	}
}

func (w *ClassifyWorker) classify(job selection.Job) selection.Completion {
	completion := selection.Completion{
		ID:         job.Request.ID,
		Generation: job.Request.Generation,
		Kind:       job.Request.Kind,
	}

	// Already canceled: skip the classifier, the router drops it anyway.
	if err := job.Hint.Err(); err != nil {
		completion.Err = err
		return completion
	}

	ctx := job.Hint
	if w.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(job.Hint, w.timeout)
		defer cancel()
	}

	start := time.Now()
	completion.Result, completion.Err = w.classifier.Classify(ctx, job.Request)
	w.log.Debug("Classifier answered",
		"id", job.Request.ID,
		"kind", job.Request.Kind,
		"latency_us", time.Since(start).Microseconds())
	return completion
}
