package fprpc

import (
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
)

// mapRPC translates a gRPC status back into the structured error taxonomy so
// remote and in-process callers can branch on the same kinds. The wire cannot
// carry the input/variant distinction, so InvalidArgument folds into
// KindInput.
func mapRPC(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return err
	}

	switch st.Code() {
	case codes.InvalidArgument:
		return &fingerprint.Error{Kind: fingerprint.KindInput, Message: st.Message()}
	case codes.FailedPrecondition:
		return &fingerprint.Error{Kind: fingerprint.KindConfig, Message: st.Message()}
	case codes.Internal:
		return &fingerprint.Error{Kind: fingerprint.KindInternal, Message: st.Message()}
	default:
		return err
	}
}
