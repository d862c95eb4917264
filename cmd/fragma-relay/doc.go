// Command fragma-relay runs the demo store-and-forward relay.
//
// It queues opaque fragments per named channel in memory and serves them
// FIFO over HTTP. The relay sees and stores nothing but raw fragment bytes;
// there is no index, timestamp or header for it to leak.
package main
