package fingerprint

import (
	"crypto/sha256"
	"crypto/sha512"
	"fmt"

	"golang.org/x/crypto/sha3"
	"lukechampine.com/blake3"
)

// Hash algorithm names accepted by Config.HashAlg. The set is fixed at build
// time; the algorithm is a configuration constant, not a runtime extension
// point.
const (
	HashSHA2_256 = "sha2-256"
	HashSHA2_512 = "sha2-512"
	HashSHA3_256 = "sha3-256"
	HashBLAKE3   = "blake3"
)

// DefaultHashAlg is the digest primitive used unless configured otherwise.
const DefaultHashAlg = HashSHA2_256

// Digest hashes canonical bytes with the named algorithm.
//
// Hash functions are total over byte sequences, so the only failure mode is
// an unknown algorithm name.
func Digest(canonical []byte, alg string) ([]byte, error) {
	switch alg {
	case HashSHA2_256:
		s := sha256.Sum256(canonical)
		return s[:], nil
	case HashSHA2_512:
		s := sha512.Sum512(canonical)
		return s[:], nil
	case HashSHA3_256:
		s := sha3.Sum256(canonical)
		return s[:], nil
	case HashBLAKE3:
		s := blake3.Sum256(canonical)
		return s[:], nil
	default:
		return nil, newError(KindConfig, "WFP-CFG-001", fmt.Sprintf("unknown hash algorithm %q", alg))
	}
}

// DigestSize returns the digest width in bytes for the named algorithm.
func DigestSize(alg string) (int, error) {
	switch alg {
	case HashSHA2_256, HashSHA3_256, HashBLAKE3:
		return 32, nil
	case HashSHA2_512:
		return 64, nil
	default:
		return 0, newError(KindConfig, "WFP-CFG-001", fmt.Sprintf("unknown hash algorithm %q", alg))
	}
}
