package workers

import (
	"context"
	"fmt"
	"log/slog"
	"selection-lab/domain/selection"
	"selection-lab/mocks"
	"testing"
	"time"

	"github.com/mama165/sdk-go/logs"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestClassifyWorker_Run(t *testing.T) {
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	request := selection.Request{ID: 42, Generation: 3, Kind: selection.ClassifyOnly, Text: "hello world", End: 5}
	result := selection.Result{Label: "Greeting"}

	tests := []struct {
		description string
		canceled    bool
		setup       func(c *mocks.MockClassifier)
		expected    selection.Completion
	}{
		{
			description: "Should forward the classifier result",
			setup: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), request).Return(result, nil)
			},
			expected: selection.Completion{ID: 42, Generation: 3, Kind: selection.ClassifyOnly, Result: result},
		},
		{
			description: "Should forward the classifier failure",
			setup: func(c *mocks.MockClassifier) {
				c.EXPECT().Classify(gomock.Any(), request).Return(selection.Result{}, fmt.Errorf("boom"))
			},
			expected: selection.Completion{ID: 42, Generation: 3, Kind: selection.ClassifyOnly, Err: fmt.Errorf("boom")},
		},
		{
			description: "Should skip the classifier when the hint is already canceled",
			canceled:    true,
			setup:       func(c *mocks.MockClassifier) {},
			expected:    selection.Completion{ID: 42, Generation: 3, Kind: selection.ClassifyOnly, Err: context.Canceled},
		},
	}

	for _, tt := range tests {
		t.Run(tt.description, func(t *testing.T) {
			req := require.New(t)
			ctrl := gomock.NewController(t)
			classifier := mocks.NewMockClassifier(ctrl)
			router := mocks.NewMockICompletionRouter(ctrl)
			jobs := make(chan selection.Job, 1)
			tt.setup(classifier)

			hint, cancelHint := context.WithCancel(context.Background())
			defer cancelHint()
			if tt.canceled {
				cancelHint()
			}

			completions := make(chan selection.Completion, 1)
			router.EXPECT().
				OnCompletion(gomock.Any()).
				DoAndReturn(func(c selection.Completion) selection.Status {
					completions <- c
					return selection.Completed
				})

			ctx, cancel := context.WithCancel(context.Background())
			defer cancel()
			worker := NewClassifyWorker(classifier, router, jobs, time.Second, log)
			go func() { _ = worker.Run(ctx) }()

			jobs <- selection.Job{Request: request, Hint: hint}

			select {
			case completion := <-completions:
				req.Equal(tt.expected.ID, completion.ID)
				req.Equal(tt.expected.Generation, completion.Generation)
				req.Equal(tt.expected.Kind, completion.Kind)
				req.Equal(tt.expected.Result, completion.Result)
				if tt.expected.Err == nil {
					req.NoError(completion.Err)
				} else {
					req.EqualError(completion.Err, tt.expected.Err.Error())
				}
			case <-time.After(time.Second):
				req.Fail("completion never reached the router")
			}
		})
	}
}

func TestClassifyWorker_AppliesTimeout(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	classifier := mocks.NewMockClassifier(ctrl)
	router := mocks.NewMockICompletionRouter(ctrl)
	jobs := make(chan selection.Job, 1)

	// Given a classifier that waits for its context
	classifier.EXPECT().
		Classify(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, _ selection.Request) (selection.Result, error) {
			<-ctx.Done()
			return selection.Result{}, ctx.Err()
		})

	completions := make(chan selection.Completion, 1)
	router.EXPECT().
		OnCompletion(gomock.Any()).
		DoAndReturn(func(c selection.Completion) selection.Status {
			completions <- c
			return selection.Completed
		})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	worker := NewClassifyWorker(classifier, router, jobs, 20*time.Millisecond, log)
	go func() { _ = worker.Run(ctx) }()

	jobs <- selection.Job{Request: selection.Request{ID: 1}, Hint: context.Background()}

	// Then the classifier is bounded by the worker timeout
	select {
	case completion := <-completions:
		req.ErrorIs(completion.Err, context.DeadlineExceeded)
	case <-time.After(time.Second):
		req.Fail("timeout never applied")
	}
}

func TestClassifyWorker_StopsOnClosedQueue(t *testing.T) {
	req := require.New(t)
	log := logs.GetLoggerFromLevel(slog.LevelDebug)
	ctrl := gomock.NewController(t)
	jobs := make(chan selection.Job)
	close(jobs)

	worker := NewClassifyWorker(mocks.NewMockClassifier(ctrl), mocks.NewMockICompletionRouter(ctrl), jobs, time.Second, log)

	req.NoError(worker.Run(context.Background()))
}
