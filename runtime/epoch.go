package runtime

import (
	"context"
	"selection-lab/domain/selection"
	"sync"
	"sync/atomic"
)

// Epoch holds the generation counter together with the cancellation hint
// handed to every request of the current generation.
// Advancing the epoch cancels the previous hint and waits for at most one
// delivery in progress, never for classifier work.
type Epoch struct {
	delivery   sync.Mutex
	mu         sync.Mutex
	generation atomic.Uint64
	parent     context.Context
	hint       context.Context
	cancel     context.CancelFunc
}

func NewEpoch(parent context.Context) *Epoch {
	hint, cancel := context.WithCancel(parent)
	return &Epoch{parent: parent, hint: hint, cancel: cancel}
}

// Current is lock-free, it is read on every delivery.
func (e *Epoch) Current() selection.Generation {
	return selection.Generation(e.generation.Load())
}

// Stamp returns the current generation and its cancellation hint as one pair.
func (e *Epoch) Stamp() (selection.Generation, context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return selection.Generation(e.generation.Load()), e.hint
}

// WithCurrent runs deliver with the current generation. The generation cannot
// advance before deliver returns, and two deliveries never overlap.
func (e *Epoch) WithCurrent(deliver func(current selection.Generation)) {
	e.delivery.Lock()
	defer e.delivery.Unlock()
	deliver(e.Current())
}

// Advance moves to the next generation and cancels the hint of the previous one.
// Once it returns, no completion of an earlier generation can be delivered.
func (e *Epoch) Advance() selection.Generation {
	e.delivery.Lock()
	defer e.delivery.Unlock()
	e.mu.Lock()
	defer e.mu.Unlock()

	next := e.generation.Add(1)
	e.cancel()
	e.hint, e.cancel = context.WithCancel(e.parent)
	return selection.Generation(next)
}

// Close cancels the current hint without advancing the generation.
func (e *Epoch) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.cancel()
}
