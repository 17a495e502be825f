// Package fingerprint derives short, stable identifiers from wallet key
// material and scripts.
//
// The pipeline is Canonicalize -> Digest -> Encode. Canonicalization is the
// mandatory choke point: semantically equivalent encodings of the same key
// (compressed, uncompressed, x-only) collapse to one canonical byte form
// before hashing, so the same logical key always yields the same fingerprint
// regardless of how it was observed.
//
// Fingerprints are for deduplication and indexing, not authentication.
package fingerprint
