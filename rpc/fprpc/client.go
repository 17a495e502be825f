package fprpc

import (
	"context"
	"time"

	"github.com/ipfs/go-cid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/types/known/wrapperspb"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
)

// Client calls a remote Fingerprint service.
type Client struct {
	cc     *grpc.ClientConn
	client FingerprintClient

	// Timeout applies per RPC when non-zero.
	Timeout time.Duration
}

type DialOptions struct {
	// Timeout applies to the initial dial when non-zero.
	Timeout time.Duration

	// MaxMsgBytes sets both send/recv max sizes when non-zero.
	MaxMsgBytes int
}

func Dial(target string, opts DialOptions) (*Client, error) {
	dialOpts := []grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	}
	if opts.MaxMsgBytes > 0 {
		dialOpts = append(dialOpts,
			grpc.WithDefaultCallOptions(
				grpc.MaxCallRecvMsgSize(opts.MaxMsgBytes),
				grpc.MaxCallSendMsgSize(opts.MaxMsgBytes),
			),
		)
	}

	ctx := context.Background()
	if opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.Timeout)
		defer cancel()
	}

	cc, err := grpc.DialContext(ctx, target, dialOpts...)
	if err != nil {
		return nil, err
	}
	return &Client{cc: cc, client: NewFingerprintClient(cc), Timeout: 0}, nil
}

// NewClient wraps an existing connection, e.g. a bufconn dial in tests.
func NewClient(cc *grpc.ClientConn) *Client {
	return &Client{cc: cc, client: NewFingerprintClient(cc)}
}

func (c *Client) Close() error {
	if c == nil || c.cc == nil {
		return nil
	}
	return c.cc.Close()
}

// Derive computes the fingerprint of material under the server's fixed
// configuration, dispatching on the variant.
func (c *Client) Derive(material []byte, v fingerprint.Variant) (string, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	in := wrapperspb.Bytes(material)
	var (
		reply *wrapperspb.StringValue
		err   error
	)
	switch v {
	case fingerprint.VariantCompressedPoint:
		reply, err = c.client.DeriveCompressed(ctx, in)
	case fingerprint.VariantUncompressedPoint:
		reply, err = c.client.DeriveUncompressed(ctx, in)
	case fingerprint.VariantXOnlyPoint:
		reply, err = c.client.DeriveXOnly(ctx, in)
	case fingerprint.VariantScript:
		reply, err = c.client.DeriveScript(ctx, in)
	default:
		return "", &fingerprint.Error{Kind: fingerprint.KindVariant, Message: "unknown material variant " + string(v)}
	}
	if err != nil {
		return "", mapRPC(err)
	}
	return reply.GetValue(), nil
}

// KeyCID asks the server for the CIDv1 identity of compressed-point material.
func (c *Client) KeyCID(material []byte) (cid.Cid, error) {
	ctx, cancel := c.ctx()
	defer cancel()

	reply, err := c.client.KeyCID(ctx, wrapperspb.Bytes(material))
	if err != nil {
		return cid.Undef, mapRPC(err)
	}
	id, err := cid.Decode(reply.GetValue())
	if err != nil || !id.Defined() {
		return cid.Undef, &fingerprint.Error{Kind: fingerprint.KindInternal, Message: "server returned an undecodable cid", Cause: err}
	}
	return id, nil
}

func (c *Client) ctx() (context.Context, context.CancelFunc) {
	if c.Timeout <= 0 {
		return context.WithCancel(context.Background())
	}
	return context.WithTimeout(context.Background(), c.Timeout)
}
