// Package fragment implements the emitter side of the protocol.
//
// A Builder holds the evolving secret seed, the implicit index and the
// session domain tag. Build derives one fragment from that state without
// consuming it; Advance evolves the seed one-way and steps the index. The
// fragment is the only thing that travels: no index, timestamp or header
// accompanies it, and the receiver recovers the position by windowed
// recomputation.
//
// Concurrency: a Builder is NOT safe for concurrent use. The expected shape
// is one builder per logical channel, owned by a single goroutine.
package fragment
