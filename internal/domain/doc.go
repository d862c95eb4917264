// Package domain defines the core data models and interfaces shared across
// fragma. It contains plain types (protocol state, snapshots) and contracts
// (interfaces) only.
package domain
