// Copyright (c) 2025 AccelByte Inc. All Rights Reserved.
// This is licensed software from AccelByte Inc, for limitations
// and restrictions contact your company contract manager.

package handler

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/structpb"
)

// SessionServiceName is the fully qualified gRPC service name.
const SessionServiceName = "spinmania.v1.SessionService"

// SessionServiceServer is the gRPC surface over one game session.
// Requests and responses are JSON-shaped google.protobuf.Struct messages.
type SessionServiceServer interface {
	GetState(context.Context, *structpb.Struct) (*structpb.Struct, error)
	GetShop(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Spin(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Purchase(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClaimDailyReward(context.Context, *structpb.Struct) (*structpb.Struct, error)
	ClaimMissionReward(context.Context, *structpb.Struct) (*structpb.Struct, error)
	UpdateSettings(context.Context, *structpb.Struct) (*structpb.Struct, error)
	Reset(context.Context, *structpb.Struct) (*structpb.Struct, error)
	SetCenter(context.Context, *structpb.Struct) (*structpb.Struct, error)
	BeginGesture(context.Context, *structpb.Struct) (*structpb.Struct, error)
	MoveGesture(context.Context, *structpb.Struct) (*structpb.Struct, error)
	EndGesture(context.Context, *structpb.Struct) (*structpb.Struct, error)
	DismissPopup(context.Context, *structpb.Struct) (*structpb.Struct, error)
}

type unaryCall func(SessionServiceServer, context.Context, *structpb.Struct) (*structpb.Struct, error)

func unaryMethod(name string, call unaryCall) grpc.MethodDesc {
	return grpc.MethodDesc{
		MethodName: name,
		Handler: func(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
			in := new(structpb.Struct)
			if err := dec(in); err != nil {
				return nil, err
			}
			if interceptor == nil {
				return call(srv.(SessionServiceServer), ctx, in)
			}
			info := &grpc.UnaryServerInfo{
				Server:     srv,
				FullMethod: "/" + SessionServiceName + "/" + name,
			}
			handler := func(ctx context.Context, req any) (any, error) {
				return call(srv.(SessionServiceServer), ctx, req.(*structpb.Struct))
			}
			return interceptor(ctx, in, info, handler)
		},
	}
}

// SessionServiceDesc describes SessionService for grpc.Server registration.
var SessionServiceDesc = grpc.ServiceDesc{
	ServiceName: SessionServiceName,
	HandlerType: (*SessionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		unaryMethod("GetState", SessionServiceServer.GetState),
		unaryMethod("GetShop", SessionServiceServer.GetShop),
		unaryMethod("Spin", SessionServiceServer.Spin),
		unaryMethod("Purchase", SessionServiceServer.Purchase),
		unaryMethod("ClaimDailyReward", SessionServiceServer.ClaimDailyReward),
		unaryMethod("ClaimMissionReward", SessionServiceServer.ClaimMissionReward),
		unaryMethod("UpdateSettings", SessionServiceServer.UpdateSettings),
		unaryMethod("Reset", SessionServiceServer.Reset),
		unaryMethod("SetCenter", SessionServiceServer.SetCenter),
		unaryMethod("BeginGesture", SessionServiceServer.BeginGesture),
		unaryMethod("MoveGesture", SessionServiceServer.MoveGesture),
		unaryMethod("EndGesture", SessionServiceServer.EndGesture),
		unaryMethod("DismissPopup", SessionServiceServer.DismissPopup),
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "spinmania/v1/session.proto",
}

// RegisterSessionServiceServer registers srv on s.
func RegisterSessionServiceServer(s grpc.ServiceRegistrar, srv SessionServiceServer) {
	s.RegisterService(&SessionServiceDesc, srv)
}
