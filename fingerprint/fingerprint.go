package fingerprint

// Derive runs the full pipeline: canonicalize material for the declared
// variant, digest the canonical bytes, truncate and encode per cfg.
//
// Derive is pure and stateless; it validates eagerly and short-circuits, so
// callers receive either a complete fingerprint or a structured error naming
// the violated precondition, never a partial value. Safe for concurrent use.
func Derive(material []byte, v Variant, cfg Config) (Fingerprint, error) {
	if err := cfg.Validate(); err != nil {
		return Fingerprint{}, err
	}
	canonical, err := Canonicalize(material, v)
	if err != nil {
		return Fingerprint{}, err
	}
	digest, err := Digest(canonical, cfg.HashAlg)
	if err != nil {
		return Fingerprint{}, err
	}
	return Encode(digest, cfg)
}
