package emitter

import (
	"context"
	"errors"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/protocol/fragment"
	"fragma/internal/util/memzero"
)

// ErrNotProvisioned is returned when no emitter state exists yet.
var ErrNotProvisioned = errors.New("no emitter state; run provisioning first")

// Service emits fragments for one logical channel.
type Service struct {
	store   domain.StateStore
	channel domain.Channel
	id      string
}

// New constructs an emitter service over a state store and a channel.
func New(store domain.StateStore, channel domain.Channel, channelID string) *Service {
	return &Service{store: store, channel: channel, id: channelID}
}

// Emit builds the fragment for the current index, pushes it, then advances
// and persists the builder. Non-empty content is bound as its SHA-256 digest,
// so fragment cost stays flat for large payloads; the receiver side applies
// the same normalisation. Returns the index the fragment was emitted at.
func (s *Service) Emit(ctx context.Context, passphrase string, content []byte) (uint64, error) {
	snap, ok, err := s.store.LoadEmitter(passphrase)
	if err != nil {
		return 0, err
	}
	if !ok {
		return 0, ErrNotProvisioned
	}

	b, err := fragment.Restore(snap)
	memzero.Zero(snap.Seed)
	if err != nil {
		return 0, err
	}
	index := b.Index()

	if len(content) > 0 {
		content = crypto.HashContent(content)
	}
	frag, err := b.Build(content)
	if err != nil {
		return 0, err
	}
	if err := s.channel.Push(ctx, s.id, frag); err != nil {
		return 0, err
	}

	if err := b.Advance(); err != nil {
		return 0, err
	}
	next := b.Snapshot()
	err = s.store.SaveEmitter(passphrase, next)
	memzero.Zero(next.Seed)
	if err != nil {
		return 0, err
	}
	return index, nil
}
