package selection

import "context"

// Job pairs a dispatched request with the cancellation hint of its generation.
// The hint is advisory, the router's generation check stays authoritative.
type Job struct {
	Request Request
	Hint    context.Context
}
