// Package emitter drives the sending side of a channel: it loads the sealed
// builder state, builds and pushes the next fragment, then evolves and
// persists the state. The persist happens after the advance, so a state file
// on disk never points at a seed that has already produced a transmitted
// fragment.
package emitter
