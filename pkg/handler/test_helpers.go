package handler

import (
	"context"
	"math"
	"testing"
	"time"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/AccelByte/extend-macaroni-spin/pkg/catalog"
	"github.com/AccelByte/extend-macaroni-spin/pkg/game"
	"github.com/AccelByte/extend-macaroni-spin/pkg/rotation"
	"github.com/AccelByte/extend-macaroni-spin/pkg/session"
	"github.com/AccelByte/extend-macaroni-spin/pkg/state"
)

var testCenter = rotation.Point{X: 150, Y: 150}

// setupTestSession opens a session over store with the default catalog.
func setupTestSession(t *testing.T, store state.Store) *session.Session {
	t.Helper()
	reducer := game.NewReducer(catalog.Default(), nil, game.Config{})
	s, err := session.Open(context.Background(), reducer, store,
		session.Config{Center: testCenter, PopupTTL: time.Hour},
		session.Dependencies{})
	if err != nil {
		t.Fatalf("session.Open() error = %v", err)
	}
	t.Cleanup(func() { _ = s.Close(context.Background()) })
	return s
}

// request builds a Struct request, failing the test on unsupported values.
func request(t *testing.T, fields map[string]any) *structpb.Struct {
	t.Helper()
	req, err := structpb.NewStruct(fields)
	if err != nil {
		t.Fatalf("structpb.NewStruct() error = %v", err)
	}
	return req
}

func stateField(resp *structpb.Struct) map[string]*structpb.Value {
	return resp.GetFields()["state"].GetStructValue().GetFields()
}

func number(fields map[string]*structpb.Value, name string) float64 {
	return fields[name].GetNumberValue()
}

func wantCode(t *testing.T, err error, code codes.Code) {
	t.Helper()
	if status.Code(err) != code {
		t.Fatalf("error = %v, want code %s", err, code)
	}
}

// platePoint returns a point on the plate at deg degrees.
func platePoint(deg float64) (float64, float64) {
	rad := deg * math.Pi / 180
	return testCenter.X + 80*math.Cos(rad), testCenter.Y + 80*math.Sin(rad)
}
