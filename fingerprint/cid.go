package fingerprint

import (
	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// KeyCID returns an IPFS-compatible CIDv1 (raw + sha2-256) for key material,
// suitable as a content-addressed index key for the full, untruncated digest.
//
// Material must canonicalize for the declared variant; the CID is always
// derived from canonical bytes so equivalent encodings share one CID.
func KeyCID(material []byte, v Variant) (cid.Cid, error) {
	canonical, err := Canonicalize(material, v)
	if err != nil {
		return cid.Undef, err
	}
	sum, err := multihash.Sum(canonical, multihash.SHA2_256, -1)
	if err != nil {
		// multihash.Sum with SHA2_256 and default length does not fail on any input.
		return cid.Undef, wrapError(KindInternal, "WFP-INT-002", "multihash failed", err)
	}
	return cid.NewCidV1(cid.Raw, sum), nil
}
