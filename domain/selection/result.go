package selection

// Result is the outcome of a successful classification.
// StartAdjust and EndAdjust move the original selection boundaries,
// a negative number moving left.
type Result struct {
	StartAdjust int
	EndAdjust   int
	Label       string
	Action      Action
}

// Action is an opaque handle on the suggested menu item.
// Only the UI-facing collaborator interprets it.
type Action struct {
	ID     string
	Intent string
	Extras map[string]string
}

// Completion is what a classifier worker hands back for a dispatched request.
type Completion struct {
	ID         RequestID
	Generation Generation
	Kind       Kind
	Result     Result
	Err        error
}

// Outcome records how a request ended.
type Outcome struct {
	ID         RequestID
	Generation Generation
	Kind       Kind
	Status     Status
	Delivered  bool
	Failed     bool
}
