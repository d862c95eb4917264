package crypto

import (
	"crypto/sha256"
	"encoding/hex"
)

// HashContent normalises raw application content to a fixed-size
// representation before it is bound into a fragment. Binding the digest
// instead of the raw bytes keeps fragment computation cost flat for large
// payloads; identity binding is equally valid and callers that need it can
// pass raw content straight to a builder.
func HashContent(raw []byte) []byte {
	sum := sha256.Sum256(raw)
	return sum[:]
}

// Fingerprint returns a short hex fingerprint of public session material.
//
// It hashes with SHA-256 and truncates to 10 bytes (20 hex chars). Intended
// for display only, never for comparison logic.
func Fingerprint(b []byte) string {
	sum := sha256.Sum256(b)
	return hex.EncodeToString(sum[:10])
}
