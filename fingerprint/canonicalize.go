package fingerprint

import (
	"fmt"

	"github.com/btcsuite/btcd/btcec/v2"
)

const (
	compressedPointLen   = 33
	uncompressedPointLen = 65
	xonlyPointLen        = 32

	// maxScriptLen matches the consensus MAX_SCRIPT_SIZE.
	maxScriptLen = 10000
)

// Canonicalize is the mandatory canonicalization choke point.
//
// Material MUST be canonical before digesting or CID derivation. Validation is
// eager and variant-specific; the first violated precondition fails the whole
// call. Elliptic-curve points always collapse to the 33-byte compressed SEC
// encoding, so compressed, uncompressed and x-only encodings of the same key
// produce identical canonical bytes.
//
// Compressed points are checked structurally (length, 02/03 prefix) but not
// for curve membership: material recorded on-chain is indexable whether or
// not it is a valid point. Uncompressed points must parse, since an invalid
// point has no canonical compressed form.
func Canonicalize(material []byte, v Variant) ([]byte, error) {
	switch v {
	case VariantCompressedPoint:
		if len(material) != compressedPointLen {
			return nil, newError(KindInput, "WFP-IN-001",
				fmt.Sprintf("compressed point must be %d bytes, got %d", compressedPointLen, len(material)))
		}
		if material[0] != 0x02 && material[0] != 0x03 {
			return nil, newError(KindInput, "WFP-IN-002",
				fmt.Sprintf("compressed point must start with 02 or 03, got %02x", material[0]))
		}
		return append([]byte(nil), material...), nil

	case VariantUncompressedPoint:
		if len(material) != uncompressedPointLen {
			return nil, newError(KindInput, "WFP-IN-003",
				fmt.Sprintf("uncompressed point must be %d bytes, got %d", uncompressedPointLen, len(material)))
		}
		if material[0] != 0x04 {
			return nil, newError(KindInput, "WFP-IN-004",
				fmt.Sprintf("uncompressed point must start with 04, got %02x", material[0]))
		}
		pub, err := btcec.ParsePubKey(material)
		if err != nil {
			return nil, wrapError(KindInput, "WFP-IN-005", "uncompressed point is not on the curve", err)
		}
		return pub.SerializeCompressed(), nil

	case VariantXOnlyPoint:
		if len(material) != xonlyPointLen {
			return nil, newError(KindInput, "WFP-IN-006",
				fmt.Sprintf("x-only point must be %d bytes, got %d", xonlyPointLen, len(material)))
		}
		// BIP-340 keys imply the even-Y point; lift to the 02-prefixed SEC form.
		out := make([]byte, 0, compressedPointLen)
		out = append(out, 0x02)
		return append(out, material...), nil

	case VariantScript:
		if len(material) == 0 {
			return nil, newError(KindInput, "WFP-IN-007", "script must not be empty")
		}
		if len(material) > maxScriptLen {
			return nil, newError(KindInput, "WFP-IN-008",
				fmt.Sprintf("script exceeds %d bytes", maxScriptLen))
		}
		return append([]byte(nil), material...), nil

	default:
		return nil, newError(KindVariant, "WFP-VAR-001", fmt.Sprintf("unsupported variant tag %q", string(v)))
	}
}
