package lexicon

import (
	"context"
	stderrors "errors"
	"log/slog"
	"selection-lab/domain/selection"
	"selection-lab/errors"
	"testing"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
)

var entries = map[string][]string{
	"city":     {"paris", "new york"},
	"greeting": {"hello", "hi"},
	"animal":   {"badger"},
}

func newClassifier(t *testing.T) *Classifier {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	c, err := New(entries, log)
	require.NoError(t, err)
	return c
}

func TestClassifier_Classify(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name        string
		kind        selection.Kind
		text        string
		start       int
		end         int
		label       string
		startAdjust int
		endAdjust   int
		match       string
	}{
		{
			name:  "Classify a greeting as selected",
			kind:  selection.ClassifyOnly,
			text:  "hello world",
			start: 0, end: 5,
			label: "Greeting",
			match: "hello",
		},
		{
			name:  "Suggest the whole entity around a partial selection",
			kind:  selection.SuggestAndClassify,
			text:  "I love New York",
			start: 11, end: 15,
			label:       "City",
			startAdjust: -4,
			match:       "New York",
		},
		{
			name:  "Suggest the entity around a caret",
			kind:  selection.SuggestAndClassify,
			text:  "meet in paris today",
			start: 10, end: 10,
			label:       "City",
			startAdjust: -2,
			endAdjust:   3,
			match:       "paris",
		},
		{
			name:  "Leet speak and internal punctuation",
			kind:  selection.ClassifyOnly,
			text:  "The B.4.d.g.e.r is here",
			start: 4, end: 15,
			label: "Animal",
			match: "B.4.d.g.e.r",
		},
		{
			name:  "Repeated spaces inside an entity",
			kind:  selection.ClassifyOnly,
			text:  "from new   york",
			start: 5, end: 15,
			label: "City",
			match: "new   york",
		},
		{
			name:  "Longest match wins inside a wide selection",
			kind:  selection.ClassifyOnly,
			text:  "hi from new york",
			start: 0, end: 16,
			label: "City",
			match: "new york",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			request := selection.Request{ID: 1, Kind: tt.kind, Text: tt.text, Start: tt.start, End: tt.end}

			result, err := c.Classify(context.Background(), request)

			req.NoError(err)
			req.Equal(tt.label, result.Label)
			req.Equal(tt.startAdjust, result.StartAdjust)
			req.Equal(tt.endAdjust, result.EndAdjust)
			req.Equal(tt.match, result.Action.Extras["match"])
			req.NotEmpty(result.Action.ID)
		})
	}
}

func TestClassifier_Classify_NoClassification(t *testing.T) {
	c := newClassifier(t)

	tests := []struct {
		name  string
		kind  selection.Kind
		text  string
		start int
		end   int
	}{
		{"Pattern inside another word is ignored", selection.ClassifyOnly, "this is fine", 0, 4},
		{"Hyphen joins a compound word", selection.ClassifyOnly, "hi-fi set", 0, 5},
		{"Apostrophe belongs to the word", selection.ClassifyOnly, "paris's museums", 0, 7},
		{"Pattern split by a space", selection.ClassifyOnly, "pa ris", 0, 6},
		{"Letters spread over separate words", selection.ClassifyOnly, "say h i there", 4, 7},
		{"Entity words glued together", selection.ClassifyOnly, "newyork", 0, 7},
		{"Entity only partially selected", selection.ClassifyOnly, "I love New York", 11, 15},
		{"Unknown word", selection.SuggestAndClassify, "hello world", 7, 9},
		{"Empty text", selection.SuggestAndClassify, "", 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := require.New(t)
			request := selection.Request{Kind: tt.kind, Text: tt.text, Start: tt.start, End: tt.end}

			_, err := c.Classify(context.Background(), request)

			req.True(stderrors.Is(err, errors.ErrNoClassification))
		})
	}
}

func TestClassifier_Classify_CanceledHint(t *testing.T) {
	req := require.New(t)
	c := newClassifier(t)
	ctx, cancel := context.WithCancel(context.Background())

	// Given the generation has been canceled
	cancel()

	// When classifying
	_, err := c.Classify(ctx, selection.Request{Kind: selection.ClassifyOnly, Text: "hello", End: 5})

	// Then the classifier gives up
	req.ErrorIs(err, context.Canceled)
}

func TestNew_EmptyEntries(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)

	_, err := New(map[string][]string{"noise": {"...", " "}}, log)

	req.ErrorIs(err, errors.ErrEmptyWords)
}
