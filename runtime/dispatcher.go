package runtime

import (
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"sync/atomic"
)

var (
	_ contract.IDispatcher      = (*Dispatcher)(nil)
	_ contract.GenerationSource = (*Dispatcher)(nil)
)

// Dispatcher accepts classification requests from a single logical caller.
// It owns the request-id sequence and, through its Epoch, the generation counter.
// None of its methods block on classification.
type Dispatcher struct {
	log         *slog.Logger
	epoch       *Epoch
	lastID      atomic.Uint64
	jobs        chan<- selection.Job
	deferred    atomic.Int64
	maxDeferred int64
}

// Hand-offs waiting for queue room beyond this are dropped.
const defaultMaxDeferred = 256

func NewDispatcher(log *slog.Logger, epoch *Epoch, jobs chan<- selection.Job) *Dispatcher {
	return &Dispatcher{log: log, epoch: epoch, jobs: jobs, maxDeferred: defaultMaxDeferred}
}

// SendSuggestAndClassifyRequest asks for better selection boundaries and the type of the selection.
func (d *Dispatcher) SendSuggestAndClassifyRequest(text string, start, end int) (selection.RequestID, error) {
	return d.send(selection.SuggestAndClassify, text, start, end)
}

// SendClassifyRequest asks for the type of the selection only.
func (d *Dispatcher) SendClassifyRequest(text string, start, end int) (selection.RequestID, error) {
	return d.send(selection.ClassifyOnly, text, start, end)
}

// CancelAllRequests advances the generation. Completions of earlier
// generations are dropped by the router whenever they arrive.
func (d *Dispatcher) CancelAllRequests() {
	generation := d.epoch.Advance()
	d.log.Debug("All requests canceled", "generation", generation)
}

func (d *Dispatcher) Generation() selection.Generation {
	return d.epoch.Current()
}

func (d *Dispatcher) WithCurrent(deliver func(current selection.Generation)) {
	d.epoch.WithCurrent(deliver)
}

func (d *Dispatcher) send(kind selection.Kind, text string, start, end int) (selection.RequestID, error) {
	if err := selection.ValidateSpan(text, start, end); err != nil {
		d.log.Debug("Selection rejected", "kind", kind, "error", err)
		return 0, err
	}

	generation, hint := d.epoch.Stamp()
	request := selection.Request{
		ID:         selection.RequestID(d.lastID.Add(1)),
		Generation: generation,
		Kind:       kind,
		Text:       text,
		Start:      start,
		End:        end,
		Status:     selection.Dispatched,
	}
	d.handOff(selection.Job{Request: request, Hint: hint})
	return request.ID, nil
}

// handOff never blocks the caller. When the queue is full the job waits in
// its own goroutine until a worker frees room or its generation is canceled.
// At most maxDeferred jobs wait that way; past it the job is dropped and
// the request never completes, like a classifier that never answers.
func (d *Dispatcher) handOff(job selection.Job) {
	select {
	case d.jobs <- job:
		return
	default:
	}

	if d.deferred.Add(1) > d.maxDeferred {
		d.deferred.Add(-1)
		d.log.Warn("Classification queue saturated, request dropped",
			"id", job.Request.ID, "max_deferred", d.maxDeferred)
		return
	}

	d.log.Debug("Classification queue full, deferring hand-off", "id", job.Request.ID)
	go func() {
		defer d.deferred.Add(-1)
		select {
		case d.jobs <- job:
		case <-job.Hint.Done():
			d.log.Debug("Request canceled before reaching a classifier", "id", job.Request.ID)
		}
	}()
}
