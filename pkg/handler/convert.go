package handler

import (
	"encoding/json"
	"fmt"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"
)

// toStruct converts a JSON-tagged value into a Struct.
func toStruct(v any) (*structpb.Struct, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	out, err := structpb.NewStruct(m)
	if err != nil {
		return nil, status.Errorf(codes.Internal, "failed to encode response: %v", err)
	}
	return out, nil
}

func field(req *structpb.Struct, name string) (*structpb.Value, bool) {
	v, ok := req.GetFields()[name]
	if !ok {
		return nil, false
	}
	if _, null := v.GetKind().(*structpb.Value_NullValue); null {
		return nil, false
	}
	return v, true
}

func requiredString(req *structpb.Struct, name string) (string, error) {
	v, ok := field(req, name)
	if !ok {
		return "", status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString || s.StringValue == "" {
		return "", status.Errorf(codes.InvalidArgument, "%s must be a non-empty string", name)
	}
	return s.StringValue, nil
}

func optionalBool(req *structpb.Struct, name string) (*bool, error) {
	v, ok := field(req, name)
	if !ok {
		return nil, nil
	}
	b, isBool := v.GetKind().(*structpb.Value_BoolValue)
	if !isBool {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a boolean", name)
	}
	return &b.BoolValue, nil
}

func optionalString(req *structpb.Struct, name string) (*string, error) {
	v, ok := field(req, name)
	if !ok {
		return nil, nil
	}
	s, isString := v.GetKind().(*structpb.Value_StringValue)
	if !isString {
		return nil, status.Errorf(codes.InvalidArgument, "%s must be a string", name)
	}
	return &s.StringValue, nil
}

func requiredNumber(req *structpb.Struct, name string) (float64, error) {
	v, ok := field(req, name)
	if !ok {
		return 0, status.Errorf(codes.InvalidArgument, "%s is required", name)
	}
	n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
	if !isNumber {
		return 0, status.Errorf(codes.InvalidArgument, "%s must be a number", name)
	}
	return n.NumberValue, nil
}

// pointer reads the gesture fields shared by Begin/Move/EndGesture.
// pointerId defaults to the primary pointer.
func pointer(req *structpb.Struct, needPosition bool) (id int, x, y float64, err error) {
	if v, ok := field(req, "pointerId"); ok {
		n, isNumber := v.GetKind().(*structpb.Value_NumberValue)
		if !isNumber || n.NumberValue != float64(int(n.NumberValue)) {
			return 0, 0, 0, status.Error(codes.InvalidArgument, "pointerId must be an integer")
		}
		id = int(n.NumberValue)
	}
	if !needPosition {
		return id, 0, 0, nil
	}
	if x, err = requiredNumber(req, "x"); err != nil {
		return 0, 0, 0, err
	}
	if y, err = requiredNumber(req, "y"); err != nil {
		return 0, 0, 0, err
	}
	return id, x, y, nil
}

func internalError(op string, err error) error {
	return status.Error(codes.Internal, fmt.Sprintf("%s failed: %v", op, err))
}
