// Package store provides file-based persistence for session state.
//
// Emitter and receiver snapshots are serialised as JSON and sealed in a
// passphrase envelope (scrypt key derivation + ChaCha20-Poly1305) before they
// touch disk, keeping seed material under confidentiality equal to the seed
// itself. Writes go through a temp file and an atomic rename.
//
// Loading a receiver snapshot whose anchor is lower than one already seen by
// this store is refused: a rolled-back anchor would reopen consumed indices
// to replay.
package store
