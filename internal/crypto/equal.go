package crypto

import "crypto/subtle"

// Equal compares two byte strings in time independent of where they first
// differ. A length mismatch returns false after the length check alone;
// fragment lengths are fixed per session and not secret.
func Equal(a, b []byte) bool {
	return subtle.ConstantTimeCompare(a, b) == 1
}
