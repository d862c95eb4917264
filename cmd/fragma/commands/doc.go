// Package commands defines the fragma CLI.
//
// A session is provisioned once with init, which generates the domain tag and
// initial seed and seals matching emitter and receiver state under a
// passphrase. emit and recv then drive the two sides of a channel through a
// relay; status inspects local state without touching the network.
package commands
