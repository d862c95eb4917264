package domain

import "context"

// StateStore persists emitter and receiver state at rest. Implementations
// must keep seed material under confidentiality equal to the seed itself;
// plaintext seeds on disk are not acceptable.
type StateStore interface {
	SaveEmitter(passphrase string, snap EmitterSnapshot) error
	LoadEmitter(passphrase string) (EmitterSnapshot, bool, error)
	SaveReceiver(passphrase string, snap ReceiverSnapshot) error
	LoadReceiver(passphrase string) (ReceiverSnapshot, bool, error)

	// Provisioned reports whether any state exists, without a passphrase.
	Provisioned() (bool, error)
}

// Channel moves opaque fragments between emitter and receiver. The transport
// contract is deliberately thin: fragments are delivered without length
// change and with no accompanying structure, and may be reordered, duplicated
// or dropped.
type Channel interface {
	Push(ctx context.Context, channel string, frag Fragment) error
	Pull(ctx context.Context, channel string) (Fragment, bool, error)
}
