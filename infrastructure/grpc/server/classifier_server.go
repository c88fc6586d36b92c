package server

import (
	"context"
	stderrors "errors"
	"log/slog"
	"selection-lab/contract"
	"selection-lab/domain/selection"
	"selection-lab/errors"
	"selection-lab/infrastructure/wire"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

var _ wire.ClassifierServiceServer = (*ClassifierServer)(nil)

// ClassifierServer exposes any Classifier as a specialist sidecar.
type ClassifierServer struct {
	ID         string
	classifier contract.Classifier
	log        *slog.Logger
}

func NewClassifierServer(id string, classifier contract.Classifier, log *slog.Logger) *ClassifierServer {
	return &ClassifierServer{ID: id, classifier: classifier, log: log}
}

func (s *ClassifierServer) Classify(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error) {
	start := time.Now()

	request, err := wire.ToRequest(in)
	if err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}
	if err := selection.ValidateSpan(request.Text, request.Start, request.End); err != nil {
		return nil, status.Error(codes.InvalidArgument, err.Error())
	}

	result, err := s.classifier.Classify(ctx, request)
	if err != nil {
		return nil, toStatus(err)
	}

	s.log.Debug("Specialist called",
		"specialist", s.ID,
		"id", request.ID,
		"label", result.Label,
		"process_time_ms", time.Since(start).Milliseconds())
	return wire.FromResult(result)
}

func toStatus(err error) error {
	switch {
	case stderrors.Is(err, errors.ErrNoClassification):
		return status.Error(codes.NotFound, err.Error())
	case stderrors.Is(err, errors.ErrInvalidRange):
		return status.Error(codes.InvalidArgument, err.Error())
	case stderrors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case stderrors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
