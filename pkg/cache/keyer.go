package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"
)

// keyVersion is bumped whenever the cached result format changes.
const keyVersion = "v1"

// Keyer generates cache keys.
type Keyer interface {
	// ResultKey returns the key of the result for the seed input with the
	// given hash, saturated as variant.
	ResultKey(inputHash, variant string) string
}

// DefaultKeyer hashes key components with SHA-256.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// ResultKey implements Keyer.
func (DefaultKeyer) ResultKey(inputHash, variant string) string {
	return hashKey("result", keyVersion, inputHash, variant)
}

// ScopedKeyer prefixes every key of another keyer, so results of different
// builds can share a directory without colliding.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), buildinfo.Version+":")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer wraps inner (DefaultKeyer if nil) with prefix.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{inner: inner, prefix: prefix}
}

// ResultKey implements Keyer.
func (k *ScopedKeyer) ResultKey(inputHash, variant string) string {
	return k.prefix + k.inner.ResultKey(inputHash, variant)
}

// hashKey returns "prefix:" followed by the hex SHA-256 of parts. Parts are
// NUL-separated, so ("ab", "c") and ("a", "bc") hash differently.
func hashKey(prefix string, parts ...string) string {
	return prefix + ":" + Hash([]byte(strings.Join(parts, "\x00")))
}

// Hash returns the hex SHA-256 of data.
func Hash(data []byte) string {
	sum := sha256.Sum256(data)
	return hex.EncodeToString(sum[:])
}
