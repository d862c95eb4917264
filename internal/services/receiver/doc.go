// Package receiver drives the receiving side of a channel: it drains queued
// fragments, validates each against the sealed receiver state, and persists
// the state when it moved. Rejected fragments are reported, never retried;
// rejection is a routine protocol outcome.
package receiver
