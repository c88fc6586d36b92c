package selection

import (
	"fmt"
	"selection-lab/errors"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type RequestID uint64

// Generation is the epoch a request was issued in.
// Completions are only honored while their generation is still current.
type Generation uint64

type Kind string

const (
	SuggestAndClassify Kind = "SUGGEST_AND_CLASSIFY"
	ClassifyOnly       Kind = "CLASSIFY_ONLY"
)

type Status string

const (
	Pending    Status = "PENDING"
	Dispatched Status = "DISPATCHED"
	Completed  Status = "COMPLETED"
	Canceled   Status = "CANCELED"
	// Superseded is reserved for callers capping one outstanding request.
	// Requests of the same generation run concurrently, so the router never produces it.
	Superseded Status = "SUPERSEDED"
)

// Request is one classification attempt over a span of Text.
// Start and End are rune offsets, End being exclusive.
type Request struct {
	ID         RequestID
	Generation Generation
	Kind       Kind
	Text       string
	Start      int
	End        int
	Status     Status
}

func (r Request) IsTerminal() bool {
	switch r.Status {
	case Completed, Canceled, Superseded:
		return true
	default:
		return false
	}
}

// Selected returns the selected runes of the textual context.
func (r Request) Selected() string {
	runes := []rune(r.Text)
	return string(runes[r.Start:r.End])
}

type span struct {
	Start  int `validate:"gte=0"`
	End    int `validate:"gtefield=Start,ltefield=Length"`
	Length int
}

// ValidateSpan checks 0 <= start <= end <= number of runes in text.
func ValidateSpan(text string, start, end int) error {
	s := span{Start: start, End: end, Length: utf8.RuneCountInString(text)}
	if err := validate.Struct(s); err != nil {
		return fmt.Errorf("%w: start=%d end=%d length=%d", errors.ErrInvalidRange, start, end, s.Length)
	}
	return nil
}
