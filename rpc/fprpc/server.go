package fprpc

import (
	"context"

	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
)

// Server exposes fingerprint derivation over the Fingerprint gRPC service.
// The configuration is fixed at construction; clients choose the variant by
// method.
type Server struct {
	UnimplementedFingerprintServer
	Config fingerprint.Config
}

// NewServer validates cfg eagerly so a misconfigured daemon fails at startup
// rather than on the first RPC.
func NewServer(cfg fingerprint.Config) (*Server, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Server{Config: cfg}, nil
}

func (s *Server) derive(in *wrapperspb.BytesValue, v fingerprint.Variant) (*wrapperspb.StringValue, error) {
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing server")
	}
	fp, err := fingerprint.Derive(in.GetValue(), v, s.Config)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(fp.String()), nil
}

func (s *Server) DeriveCompressed(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	return s.derive(in, fingerprint.VariantCompressedPoint)
}

func (s *Server) DeriveUncompressed(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	return s.derive(in, fingerprint.VariantUncompressedPoint)
}

func (s *Server) DeriveXOnly(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	return s.derive(in, fingerprint.VariantXOnlyPoint)
}

func (s *Server) DeriveScript(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	return s.derive(in, fingerprint.VariantScript)
}

func (s *Server) KeyCID(ctx context.Context, in *wrapperspb.BytesValue) (*wrapperspb.StringValue, error) {
	_ = ctx
	if s == nil {
		return nil, status.Error(codes.FailedPrecondition, "missing server")
	}
	id, err := fingerprint.KeyCID(in.GetValue(), fingerprint.VariantCompressedPoint)
	if err != nil {
		return nil, mapErr(err)
	}
	return wrapperspb.String(id.String()), nil
}

func mapErr(err error) error {
	if err == nil {
		return nil
	}
	switch {
	case fingerprint.IsKind(err, fingerprint.KindInput),
		fingerprint.IsKind(err, fingerprint.KindVariant):
		return status.Error(codes.InvalidArgument, err.Error())
	case fingerprint.IsKind(err, fingerprint.KindConfig):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}
