package client

import (
	"context"
	"fmt"
	"os"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/errors"
	"selection-lab/infrastructure/wire"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var _ contract.Classifier = (*SpecialistClient)(nil)

// SpecialistClient classifies selections through a specialist sidecar.
type SpecialistClient struct {
	ID        string
	Client    wire.ClassifierServiceClient
	Process   *os.Process
	Port      int
	StartedAt time.Time
}

func NewSpecialistClient(id string, conn grpc.ClientConnInterface,
	process *os.Process, port int, startedAt time.Time) *SpecialistClient {
	return &SpecialistClient{
		ID:        id,
		Client:    wire.NewClassifierServiceClient(conn),
		Process:   process,
		Port:      port,
		StartedAt: startedAt,
	}
}

// Classify sends the request over gRPC. The ctx deadline and cancellation
// travel with the call, so the sidecar sees the cancellation hint too.
func (s *SpecialistClient) Classify(ctx context.Context, request selection.Request) (selection.Result, error) {
	in, err := wire.FromRequest(request)
	if err != nil {
		return selection.Result{}, err
	}

	out, err := s.Client.Classify(ctx, in)
	if err != nil {
		return selection.Result{}, fromStatus(err)
	}
	return wire.ToResult(out)
}

// Kill stops the sidecar process if this client launched it.
func (s *SpecialistClient) Kill() error {
	if s.Process == nil {
		return nil
	}
	return s.Process.Kill()
}

func fromStatus(err error) error {
	st, ok := status.FromError(err)
	if !ok {
		return err
	}
	switch st.Code() {
	case codes.NotFound:
		return fmt.Errorf("%w: %s", errors.ErrNoClassification, st.Message())
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", errors.ErrInvalidRange, st.Message())
	case codes.Canceled:
		return fmt.Errorf("%w: %s", context.Canceled, st.Message())
	case codes.DeadlineExceeded:
		return fmt.Errorf("%w: %s", context.DeadlineExceeded, st.Message())
	case codes.Unavailable:
		return fmt.Errorf("%w: %s", errors.ErrSpecialistUnavailable, st.Message())
	default:
		return err
	}
}
