package main

import (
	"flag"
	"fmt"
	"net"
	"os"

	"google.golang.org/grpc"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
	"github.com/arminsabouri/wallet-fingerprint/rpc/fprpc"
)

func main() {
	fs := flag.NewFlagSet("walletfp-grpcd", flag.ExitOnError)
	listen := fs.String("listen", "127.0.0.1:7788", "listen address")
	alg := fs.String("alg", fingerprint.DefaultHashAlg, "Digest algorithm")
	width := fs.Int("width", fingerprint.DefaultWidth, "Fingerprint width in bytes")
	format := fs.String("format", fingerprint.FormatHex, "Output format")

	_ = fs.Parse(os.Args[1:])

	srv, err := fprpc.NewServer(fingerprint.Config{
		HashAlg: *alg,
		Width:   *width,
		Format:  *format,
	})
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	lis, err := net.Listen("tcp", *listen)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer lis.Close()

	s := grpc.NewServer()
	fprpc.RegisterFingerprintServer(s, srv)

	fmt.Fprintf(os.Stderr, "walletfp-grpcd listening on %s (alg=%s width=%d format=%s)\n",
		lis.Addr().String(), *alg, *width, *format)
	if err := s.Serve(lis); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
