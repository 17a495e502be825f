package fingerprint

import (
	"encoding/hex"

	"github.com/mr-tron/base58"
)

// Fingerprint is the public output of the pipeline: Width leading digest
// bytes plus the configured textual encoding. Values are self-contained;
// the engine retains no reference after returning one.
type Fingerprint struct {
	bytes  []byte
	text   string
	format string
}

// Bytes returns a copy of the truncated digest bytes.
func (f Fingerprint) Bytes() []byte {
	return append([]byte(nil), f.bytes...)
}

// Format returns the output format the fingerprint was encoded with.
func (f Fingerprint) Format() string { return f.format }

// String returns the textual encoding. Raw-format fingerprints render as hex
// for display; use Bytes for the raw value.
func (f Fingerprint) String() string { return f.text }

// Encode truncates a digest to cfg.Width leading bytes and applies the output
// format. Truncation is a plain prefix, never a hash of a hash, so the
// relationship between digest and fingerprint stays auditable.
func Encode(digest []byte, cfg Config) (Fingerprint, error) {
	if err := cfg.Validate(); err != nil {
		return Fingerprint{}, err
	}
	if cfg.Width > len(digest) {
		return Fingerprint{}, newError(KindConfig, "WFP-CFG-003", "width exceeds digest length")
	}
	b := append([]byte(nil), digest[:cfg.Width]...)

	var text string
	switch cfg.Format {
	case FormatRaw, FormatHex:
		text = hex.EncodeToString(b)
	case FormatBase58:
		text = base58.Encode(b)
	default:
		// Validate rejected unknown formats already.
		return Fingerprint{}, newError(KindInternal, "WFP-INT-001", "unreachable format branch")
	}
	return Fingerprint{bytes: b, text: text, format: cfg.Format}, nil
}
