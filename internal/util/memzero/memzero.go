// Package memzero provides best-effort wiping of sensitive byte slices.
package memzero

import "runtime"

// Zero overwrites b with zeros. The write is best-effort: it aims to reduce
// the lifetime of secrets in memory and to keep the compiler from eliding
// the loop.
//
//go:noinline
func Zero(b []byte) {
	for i := range b {
		b[i] = 0
	}
	runtime.KeepAlive(&b)
}
