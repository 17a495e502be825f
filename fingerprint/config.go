package fingerprint

import "fmt"

// Output formats accepted by Config.Format.
const (
	FormatRaw    = "raw"
	FormatHex    = "hex"
	FormatBase58 = "base58"
)

// DefaultWidth is the fingerprint width in bytes unless configured otherwise.
// Four bytes matches the key fingerprint width the wallet ecosystem already
// uses (BIP-32).
const DefaultWidth = 4

// Config selects the digest primitive, the truncation width and the output
// format for one derivation. The zero value is not valid; start from
// DefaultConfig.
type Config struct {
	// HashAlg names the digest primitive (HashSHA2_256 unless overridden).
	HashAlg string
	// Width is the number of leading digest bytes retained.
	Width int
	// Format is the output encoding: FormatRaw, FormatHex or FormatBase58.
	Format string
}

// DefaultConfig returns the documented defaults: sha2-256, 4 bytes, hex.
func DefaultConfig() Config {
	return Config{HashAlg: DefaultHashAlg, Width: DefaultWidth, Format: FormatHex}
}

// Validate checks the configuration eagerly so derivation can never return a
// partial fingerprint.
func (c Config) Validate() error {
	size, err := DigestSize(c.HashAlg)
	if err != nil {
		return err
	}
	if c.Width <= 0 {
		return newError(KindConfig, "WFP-CFG-002", fmt.Sprintf("width must be positive, got %d", c.Width))
	}
	if c.Width > size {
		return newError(KindConfig, "WFP-CFG-003",
			fmt.Sprintf("width %d exceeds %s digest length %d", c.Width, c.HashAlg, size))
	}
	switch c.Format {
	case FormatRaw, FormatHex, FormatBase58:
		return nil
	default:
		return newError(KindConfig, "WFP-CFG-004", fmt.Sprintf("unknown output format %q", c.Format))
	}
}
