// fpvector_gen prints conformance vectors for the fingerprint pipeline:
// fixed material, every variant and algorithm, default width and format.
// Paste the output into docs or cross-implementation test suites.
package main

import (
	"encoding/hex"
	"fmt"

	"github.com/arminsabouri/wallet-fingerprint/fingerprint"
)

func mustHex(s string) []byte {
	b, err := hex.DecodeString(s)
	if err != nil {
		panic(err)
	}
	return b
}

func main() {
	// secp256k1 generator point in its three encodings, plus a zero-x
	// compressed point and a small op_return script.
	vectors := []struct {
		name    string
		variant fingerprint.Variant
		hex     string
	}{
		{"generator-compressed", fingerprint.VariantCompressedPoint,
			"0279be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
		{"generator-uncompressed", fingerprint.VariantUncompressedPoint,
			"0479be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8"},
		{"generator-xonly", fingerprint.VariantXOnlyPoint,
			"79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798"},
		{"zero-x-compressed", fingerprint.VariantCompressedPoint,
			"020000000000000000000000000000000000000000000000000000000000000000"},
		{"op-return-hello", fingerprint.VariantScript,
			"6a0b68656c6c6f20776f726c64"},
	}
	algs := []string{
		fingerprint.HashSHA2_256,
		fingerprint.HashSHA2_512,
		fingerprint.HashSHA3_256,
		fingerprint.HashBLAKE3,
	}

	for _, v := range vectors {
		material := mustHex(v.hex)
		fmt.Printf("%s (%s)\n", v.name, v.variant)
		for _, alg := range algs {
			cfg := fingerprint.DefaultConfig()
			cfg.HashAlg = alg
			fp, err := fingerprint.Derive(material, v.variant, cfg)
			if err != nil {
				panic(err)
			}
			fmt.Printf("  %-9s %s\n", alg, fp)
		}
		if id, err := fingerprint.KeyCID(material, v.variant); err == nil {
			fmt.Printf("  cid       %s\n", id)
		}
		fmt.Println()
	}
}
