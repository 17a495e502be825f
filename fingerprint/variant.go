package fingerprint

import "fmt"

// Variant declares how input material is encoded. The canonicalization rule
// applied is variant-specific; tagging the wrong variant is an input error,
// not a silent reinterpretation.
type Variant string

const (
	// VariantCompressedPoint is a 33-byte SEC compressed secp256k1 point (02/03 prefix).
	VariantCompressedPoint Variant = "compressed-point"
	// VariantUncompressedPoint is a 65-byte SEC uncompressed secp256k1 point (04 prefix).
	VariantUncompressedPoint Variant = "uncompressed-point"
	// VariantXOnlyPoint is a 32-byte BIP-340 x-only public key.
	VariantXOnlyPoint Variant = "xonly-point"
	// VariantScript is a raw script byte sequence (scriptPubKey, redeem script, witness script).
	VariantScript Variant = "script"
)

// Variants lists every supported variant tag in declaration order.
var Variants = []Variant{
	VariantCompressedPoint,
	VariantUncompressedPoint,
	VariantXOnlyPoint,
	VariantScript,
}

// ParseVariant maps a tag string to a Variant.
func ParseVariant(s string) (Variant, error) {
	for _, v := range Variants {
		if s == string(v) {
			return v, nil
		}
	}
	return "", newError(KindVariant, "WFP-VAR-001", fmt.Sprintf("unsupported variant tag %q", s))
}
