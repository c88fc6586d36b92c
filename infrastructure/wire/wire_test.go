package wire

import (
	"math"
	"selection-lab/domain/selection"
	"selection-lab/errors"
	"testing"

	"github.com/stretchr/testify/require"
	"google.golang.org/protobuf/types/known/structpb"
)

func TestRequest_Conversion(t *testing.T) {
	req := require.New(t)
	request := selection.Request{
		ID:         12,
		Generation: 3,
		Kind:       selection.SuggestAndClassify,
		Text:       "Un été à Paris",
		Start:      9,
		End:        14,
		Status:     selection.Dispatched,
	}

	s, err := FromRequest(request)
	req.NoError(err)
	decoded, err := ToRequest(s)

	req.NoError(err)
	req.Equal(request, decoded)
}

func TestResult_Conversion(t *testing.T) {
	req := require.New(t)
	result := selection.Result{
		StartAdjust: -4,
		EndAdjust:   2,
		Label:       "City",
		Action: selection.Action{
			ID:     "b7b8a2de-5ad4-4f8e-9d2c-0c5a2b1f4a11",
			Intent: "lookup:city",
			Extras: map[string]string{"lang": "en", "match": "New York"},
		},
	}

	s, err := FromResult(result)
	req.NoError(err)
	decoded, err := ToResult(s)

	req.NoError(err)
	req.Equal(result, decoded)
}

func TestToRequest_Malformed(t *testing.T) {
	tests := []struct {
		description string
		fields      map[string]any
	}{
		{"Missing text", map[string]any{"id": 1, "generation": 0, "kind": "CLASSIFY_ONLY", "start": 0, "end": 0}},
		{"Start is a string", map[string]any{"id": 1, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "a", "start": "0", "end": 1}},
		{"Unknown kind", map[string]any{"id": 1, "generation": 0, "kind": "TRANSLATE", "text": "a", "start": 0, "end": 1}},
		{"Fractional start", map[string]any{"id": 1, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "abc", "start": 0.5, "end": 1}},
		{"Fractional id", map[string]any{"id": 1.9, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "a", "start": 0, "end": 1}},
		{"Negative id", map[string]any{"id": -1, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "a", "start": 0, "end": 1}},
		{"Negative generation", map[string]any{"id": 1, "generation": -3, "kind": "CLASSIFY_ONLY", "text": "a", "start": 0, "end": 1}},
		{"End beyond exact integers", map[string]any{"id": 1, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "a", "start": 0, "end": 1e300}},
		{"Infinite end", map[string]any{"id": 1, "generation": 0, "kind": "CLASSIFY_ONLY", "text": "a", "start": 0, "end": math.Inf(1)}},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			s, err := structpb.NewStruct(tt.fields)
			req.NoError(err)

			_, err = ToRequest(s)

			req.ErrorIs(err, errors.ErrMalformedPayload)
		})
	}
}
