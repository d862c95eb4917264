// Package validate implements the receiver side of the protocol.
//
// ReceiverState is the whole of the receiver's memory: the anchor (lowest
// index not yet consumed) and the seed aligned with it. No list of accepted
// fragments is kept. The Validator recomputes candidate fragments for the
// window of indices starting at the anchor, compares each against the
// received bytes in constant time, and on the first match advances the
// anchor past the matched index. A failed scan leaves the state untouched,
// which is all the anti-replay the protocol needs: once an index is behind
// the anchor its fragment can never match again.
//
// Concurrency: the scan-then-advance sequence runs under the state's lock,
// so concurrent validations against one ReceiverState serialise. Independent
// states need no coordination.
package validate
