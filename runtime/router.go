package runtime

import (
	stderrors "errors"
	"fmt"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/errors"
)

var _ contract.ICompletionRouter = (*Router)(nil)

// Router is the single gate between classifier completions and the result sink.
type Router struct {
	log         *slog.Logger
	generations contract.GenerationSource
	sink        contract.ResultSink
	outcomes    chan<- selection.Outcome
}

// NewRouter creates a router delivering to sink. outcomes may be nil.
func NewRouter(log *slog.Logger, generations contract.GenerationSource,
	sink contract.ResultSink, outcomes chan<- selection.Outcome) *Router {
	return &Router{log: log, generations: generations, sink: sink, outcomes: outcomes}
}

// OnCompletion delivers the result if the completion's generation is still
// the current one, and returns the terminal status of the request.
// The check and the delivery run inside the generation source's WithCurrent,
// so a cancel either lands before the check or waits for the delivery to end.
func (r *Router) OnCompletion(completion selection.Completion) selection.Status {
	outcome := selection.Outcome{
		ID:         completion.ID,
		Generation: completion.Generation,
		Kind:       completion.Kind,
	}

	r.generations.WithCurrent(func(current selection.Generation) {
		switch {
		case completion.Generation != current:
			outcome.Status = selection.Canceled
			r.log.Debug("Completion dropped", "id", completion.ID,
				"error", fmt.Errorf("%w: generation %d, current %d", errors.ErrStaleCompletion, completion.Generation, current))
		case completion.Err != nil:
			outcome.Status = selection.Completed
			outcome.Failed = true
			r.logFailure(completion)
		default:
			r.sink.OnClassified(completion.Result)
			outcome.Status = selection.Completed
			outcome.Delivered = true
		}
	})

	r.report(outcome)
	return outcome.Status
}

func (r *Router) logFailure(completion selection.Completion) {
	err := fmt.Errorf("%w: %w", errors.ErrClassificationFailure, completion.Err)
	if stderrors.Is(completion.Err, errors.ErrNoClassification) {
		r.log.Debug("Nothing to suggest", "id", completion.ID)
		return
	}
	r.log.Warn("Classifier failed, nothing delivered", "id", completion.ID, "error", err)
}

func (r *Router) report(outcome selection.Outcome) {
	if r.outcomes == nil {
		return
	}
	select {
	case r.outcomes <- outcome:
	default:
		r.log.Debug("Outcome telemetry lost", "id", outcome.ID)
	}
}
