//go:generate go run go.uber.org/mock/mockgen -source=contract.go -destination=../mocks/mock_contract.go -package=mocks
package contract

import (
	"context"
	"reflect"
	"selection-lab/domain/selection"
)

type ISupervisor interface {
	Add(worker ...Worker) ISupervisor
	Run(ctx context.Context)
	Start(ctx context.Context, worker Worker)
	Stop()
}

type WorkerName string

// Worker doesn't protect itself
// Can be silly, focused
type Worker interface {
	Run(ctx context.Context) error
}

// GetWorkerName uses reflection to retrieve the type name of the worker.
// This is used for logging and supervision purposes during worker initialization
// or lifecycle events, avoiding the need for manual naming in the Worker interface.
func GetWorkerName(w Worker) string {
	if w == nil {
		return "NilWorker"
	}
	t := reflect.TypeOf(w)
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t.Name()
}

// Classifier performs the actual text analysis.
// The context is a best-effort cancellation hint, nothing relies on it being honored.
type Classifier interface {
	Classify(ctx context.Context, request selection.Request) (selection.Result, error)
}

// ResultSink is the single consumer of delivered results.
// OnClassified runs while generation changes are held off, so it must not
// call CancelAllRequests itself; hand the cancel to another goroutine instead.
type ResultSink interface {
	OnClassified(result selection.Result)
}

// ResultSinkFunc adapts a plain function to a ResultSink.
type ResultSinkFunc func(result selection.Result)

func (f ResultSinkFunc) OnClassified(result selection.Result) { f(result) }

// GenerationSource owns the current generation.
// WithCurrent runs deliver with the current generation and holds off any
// generation change until deliver returns. Calls to WithCurrent never overlap.
type GenerationSource interface {
	Generation() selection.Generation
	WithCurrent(deliver func(current selection.Generation))
}

type IDispatcher interface {
	SendSuggestAndClassifyRequest(text string, start, end int) (selection.RequestID, error)
	SendClassifyRequest(text string, start, end int) (selection.RequestID, error)
	CancelAllRequests()
	Generation() selection.Generation
}

type ICompletionRouter interface {
	OnCompletion(completion selection.Completion) selection.Status
}
