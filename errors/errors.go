package errors

import "fmt"

var (
	ErrInvalidRange          = fmt.Errorf("invalid selection range")
	ErrClassificationFailure = fmt.Errorf("classification failed")
	ErrStaleCompletion       = fmt.Errorf("stale completion")
	ErrNoClassification      = fmt.Errorf("no classification for selection")
	ErrWorkerPanic           = fmt.Errorf("worker panic")
	ErrEmptyWords            = fmt.Errorf("no words have been found")
	ErrSpecialistNotFound    = fmt.Errorf("specialist binary not found")
	ErrSpecialistStartFailed = fmt.Errorf("specialist failed to start")
	ErrSpecialistUnavailable = fmt.Errorf("specialist unavailable")
	ErrMalformedPayload      = fmt.Errorf("malformed classifier payload")
)
