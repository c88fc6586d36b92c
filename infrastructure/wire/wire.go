// Package wire describes the classifier service spoken between the dispatcher
// and a specialist sidecar. Messages are google.protobuf.Struct values, so the
// service needs no generated code.
package wire

import (
	"context"
	"fmt"
	"math"
	"selection-lab/domain/selection"
	"selection-lab/errors"

	"github.com/samber/lo"
	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// Largest integer a float64 represents without rounding.
const maxExactInteger = 1 << 53

const (
	ServiceName    = "selection.v1.ClassifierService"
	ClassifyMethod = "/selection.v1.ClassifierService/Classify"
)

type ClassifierServiceServer interface {
	Classify(ctx context.Context, in *structpb.Struct) (*structpb.Struct, error)
}

type ClassifierServiceClient interface {
	Classify(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error)
}

var ClassifierServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*ClassifierServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Classify",
			Handler:    classifyHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "selection/v1/classifier.proto",
}

func RegisterClassifierServiceServer(s grpc.ServiceRegistrar, srv ClassifierServiceServer) {
	s.RegisterService(&ClassifierServiceDesc, srv)
}

func classifyHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(structpb.Struct)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ClassifierServiceServer).Classify(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ClassifyMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(ClassifierServiceServer).Classify(ctx, req.(*structpb.Struct))
	}
	return interceptor(ctx, in, info, handler)
}

type classifierServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewClassifierServiceClient(cc grpc.ClientConnInterface) ClassifierServiceClient {
	return &classifierServiceClient{cc: cc}
}

func (c *classifierServiceClient) Classify(ctx context.Context, in *structpb.Struct, opts ...grpc.CallOption) (*structpb.Struct, error) {
	out := new(structpb.Struct)
	if err := c.cc.Invoke(ctx, ClassifyMethod, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func FromRequest(r selection.Request) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"id":         uint64(r.ID),
		"generation": uint64(r.Generation),
		"kind":       string(r.Kind),
		"text":       r.Text,
		"start":      r.Start,
		"end":        r.End,
	})
}

func ToRequest(s *structpb.Struct) (selection.Request, error) {
	fields := s.GetFields()
	id, err := unsigned(fields, "id")
	if err != nil {
		return selection.Request{}, err
	}
	generation, err := unsigned(fields, "generation")
	if err != nil {
		return selection.Request{}, err
	}
	kind, err := text(fields, "kind")
	if err != nil {
		return selection.Request{}, err
	}
	content, err := text(fields, "text")
	if err != nil {
		return selection.Request{}, err
	}
	start, err := integer(fields, "start")
	if err != nil {
		return selection.Request{}, err
	}
	end, err := integer(fields, "end")
	if err != nil {
		return selection.Request{}, err
	}

	switch selection.Kind(kind) {
	case selection.SuggestAndClassify, selection.ClassifyOnly:
	default:
		return selection.Request{}, fmt.Errorf("%w: unknown kind %q", errors.ErrMalformedPayload, kind)
	}

	return selection.Request{
		ID:         selection.RequestID(id),
		Generation: selection.Generation(generation),
		Kind:       selection.Kind(kind),
		Text:       content,
		Start:      start,
		End:        end,
		Status:     selection.Dispatched,
	}, nil
}

func FromResult(r selection.Result) (*structpb.Struct, error) {
	return structpb.NewStruct(map[string]any{
		"start_adjust": r.StartAdjust,
		"end_adjust":   r.EndAdjust,
		"label":        r.Label,
		"action": map[string]any{
			"id":     r.Action.ID,
			"intent": r.Action.Intent,
			"extras": lo.MapValues(r.Action.Extras, func(v string, _ string) any { return v }),
		},
	})
}

func ToResult(s *structpb.Struct) (selection.Result, error) {
	fields := s.GetFields()
	startAdjust, err := integer(fields, "start_adjust")
	if err != nil {
		return selection.Result{}, err
	}
	endAdjust, err := integer(fields, "end_adjust")
	if err != nil {
		return selection.Result{}, err
	}
	label, err := text(fields, "label")
	if err != nil {
		return selection.Result{}, err
	}

	result := selection.Result{
		StartAdjust: startAdjust,
		EndAdjust:   endAdjust,
		Label:       label,
	}

	action := fields["action"].GetStructValue().GetFields()
	result.Action.ID = action["id"].GetStringValue()
	result.Action.Intent = action["intent"].GetStringValue()
	if extras := action["extras"].GetStructValue().GetFields(); len(extras) > 0 {
		result.Action.Extras = lo.MapValues(extras, func(v *structpb.Value, _ string) string { return v.GetStringValue() })
	}
	return result, nil
}

func number(fields map[string]*structpb.Value, key string) (float64, error) {
	v, ok := fields[key]
	if !ok {
		return 0, fmt.Errorf("%w: missing %s", errors.ErrMalformedPayload, key)
	}
	n, ok := v.GetKind().(*structpb.Value_NumberValue)
	if !ok {
		return 0, fmt.Errorf("%w: %s is not a number", errors.ErrMalformedPayload, key)
	}
	return n.NumberValue, nil
}

// integer accepts only whole numbers a float64 holds exactly and an int can carry.
func integer(fields map[string]*structpb.Value, key string) (int, error) {
	f, err := number(fields, key)
	if err != nil {
		return 0, err
	}
	if f != math.Trunc(f) || math.IsInf(f, 0) {
		return 0, fmt.Errorf("%w: %s is not an integer: %v", errors.ErrMalformedPayload, key, f)
	}
	if f < -maxExactInteger || f > maxExactInteger || f < math.MinInt || f > math.MaxInt {
		return 0, fmt.Errorf("%w: %s out of range: %v", errors.ErrMalformedPayload, key, f)
	}
	return int(f), nil
}

func unsigned(fields map[string]*structpb.Value, key string) (uint64, error) {
	i, err := integer(fields, key)
	if err != nil {
		return 0, err
	}
	if i < 0 {
		return 0, fmt.Errorf("%w: %s is negative: %d", errors.ErrMalformedPayload, key, i)
	}
	return uint64(i), nil
}

func text(fields map[string]*structpb.Value, key string) (string, error) {
	v, ok := fields[key]
	if !ok {
		return "", fmt.Errorf("%w: missing %s", errors.ErrMalformedPayload, key)
	}
	s, ok := v.GetKind().(*structpb.Value_StringValue)
	if !ok {
		return "", fmt.Errorf("%w: %s is not a string", errors.ErrMalformedPayload, key)
	}
	return s.StringValue, nil
}
