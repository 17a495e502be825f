package fprpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

// FingerprintServer is the server API for the Fingerprint gRPC service.
//
// We intentionally use protobuf well-known wrapper types so this package does
// not require a protoc/codegen toolchain. Each Derive method takes the raw
// key or script material and returns the encoded fingerprint text.
//
// Proto definition: fingerprint.proto.
type FingerprintServer interface {
	DeriveCompressed(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	DeriveUncompressed(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	DeriveXOnly(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	DeriveScript(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
	KeyCID(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)
}

// UnimplementedFingerprintServer can be embedded to have forward compatible implementations.
type UnimplementedFingerprintServer struct{}

func (UnimplementedFingerprintServer) DeriveCompressed(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeriveCompressed not implemented")
}
func (UnimplementedFingerprintServer) DeriveUncompressed(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeriveUncompressed not implemented")
}
func (UnimplementedFingerprintServer) DeriveXOnly(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeriveXOnly not implemented")
}
func (UnimplementedFingerprintServer) DeriveScript(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method DeriveScript not implemented")
}
func (UnimplementedFingerprintServer) KeyCID(context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	return nil, status.Error(codes.Unimplemented, "method KeyCID not implemented")
}

// RegisterFingerprintServer registers the Fingerprint service on a gRPC server.
func RegisterFingerprintServer(s grpc.ServiceRegistrar, srv FingerprintServer) {
	s.RegisterService(&Fingerprint_ServiceDesc, srv)
}

// FingerprintClient is the client API for the Fingerprint gRPC service.
type FingerprintClient interface {
	DeriveCompressed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DeriveUncompressed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DeriveXOnly(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	DeriveScript(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
	KeyCID(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error)
}

type fingerprintClient struct{ cc grpc.ClientConnInterface }

func NewFingerprintClient(cc grpc.ClientConnInterface) FingerprintClient {
	return &fingerprintClient{cc: cc}
}

func (c *fingerprintClient) invoke(ctx context.Context, method string, in *wrapperspb.BytesValue, opts []grpc.CallOption) (*wrapperspb.StringValue, error) {
	out := new(wrapperspb.StringValue)
	if err := c.cc.Invoke(ctx, method, in, out, opts...); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *fingerprintClient) DeriveCompressed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invoke(ctx, "/walletfp.rpc.fprpc.v1.Fingerprint/DeriveCompressed", in, opts)
}

func (c *fingerprintClient) DeriveUncompressed(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invoke(ctx, "/walletfp.rpc.fprpc.v1.Fingerprint/DeriveUncompressed", in, opts)
}

func (c *fingerprintClient) DeriveXOnly(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invoke(ctx, "/walletfp.rpc.fprpc.v1.Fingerprint/DeriveXOnly", in, opts)
}

func (c *fingerprintClient) DeriveScript(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invoke(ctx, "/walletfp.rpc.fprpc.v1.Fingerprint/DeriveScript", in, opts)
}

func (c *fingerprintClient) KeyCID(ctx context.Context, in *wrapperspb.BytesValue, opts ...grpc.CallOption) (*wrapperspb.StringValue, error) {
	return c.invoke(ctx, "/walletfp.rpc.fprpc.v1.Fingerprint/KeyCID", in, opts)
}

type deriveMethod func(FingerprintServer, context.Context, *wrapperspb.BytesValue) (*wrapperspb.StringValue, error)

func unaryHandler(method string, call deriveMethod) func(interface{}, context.Context, func(interface{}) error, grpc.UnaryServerInterceptor) (interface{}, error) {
	return func(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
		in := new(wrapperspb.BytesValue)
		if err := dec(in); err != nil {
			return nil, err
		}
		if interceptor == nil {
			return call(srv.(FingerprintServer), ctx, in)
		}
		info := &grpc.UnaryServerInfo{Server: srv, FullMethod: method}
		handler := func(ctx context.Context, req interface{}) (interface{}, error) {
			return call(srv.(FingerprintServer), ctx, req.(*wrapperspb.BytesValue))
		}
		return interceptor(ctx, in, info, handler)
	}
}

// Fingerprint_ServiceDesc is the grpc.ServiceDesc for the Fingerprint service.
var Fingerprint_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "walletfp.rpc.fprpc.v1.Fingerprint",
	HandlerType: (*FingerprintServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "DeriveCompressed",
			Handler: unaryHandler("/walletfp.rpc.fprpc.v1.Fingerprint/DeriveCompressed",
				FingerprintServer.DeriveCompressed),
		},
		{
			MethodName: "DeriveUncompressed",
			Handler: unaryHandler("/walletfp.rpc.fprpc.v1.Fingerprint/DeriveUncompressed",
				FingerprintServer.DeriveUncompressed),
		},
		{
			MethodName: "DeriveXOnly",
			Handler: unaryHandler("/walletfp.rpc.fprpc.v1.Fingerprint/DeriveXOnly",
				FingerprintServer.DeriveXOnly),
		},
		{
			MethodName: "DeriveScript",
			Handler: unaryHandler("/walletfp.rpc.fprpc.v1.Fingerprint/DeriveScript",
				FingerprintServer.DeriveScript),
		},
		{
			MethodName: "KeyCID",
			Handler: unaryHandler("/walletfp.rpc.fprpc.v1.Fingerprint/KeyCID",
				FingerprintServer.KeyCID),
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "fingerprint.proto",
}
