// Package relay provides a store-and-forward channel for opaque fragments.
//
// The protocol core assumes only that the transport delivers byte strings of
// unchanged length with no accompanying structure; this package is the demo
// host for that contract. The server keeps a FIFO queue of raw fragments per
// named channel and exposes it over HTTP; the client pushes and pulls single
// fragments. Bodies are the fragment bytes themselves — no framing, headers
// or metadata beyond the channel name in the path.
//
// Non-2xx statuses are returned as errors with the HTTP method, full URL and
// status text to aid diagnostics.
package relay
