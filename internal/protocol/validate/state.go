package validate

import (
	"sync"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/util/memzero"
)

// ReceiverState is the receiver's view of the session: the anchor t and the
// current seed K_t. The anchor is non-decreasing for the lifetime of the
// state; no rollback path exists.
type ReceiverState struct {
	mu     sync.Mutex
	anchor uint64
	seed   domain.Seed
}

// NewReceiverState builds a state anchored at 0 over a copy of K0.
func NewReceiverState(seed domain.Seed) (*ReceiverState, error) {
	if len(seed) < crypto.MinSeedSize {
		return nil, domain.ErrSeedTooShort
	}
	return &ReceiverState{seed: seed.Clone()}, nil
}

// Anchor returns the lowest index not yet consumed.
func (s *ReceiverState) Anchor() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.anchor
}

// AdvanceTo consumes the chain up to and including index j: the seed becomes
// K_{j+1} and the anchor j+1. j below the current anchor is refused.
func (s *ReceiverState) AdvanceTo(j uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.advanceLocked(j)
}

// advanceLocked is the only mutation path. Callers hold s.mu.
func (s *ReceiverState) advanceLocked(j uint64) error {
	if j < s.anchor {
		return domain.ErrAnchorRegression
	}
	cur := s.seed.Clone()
	for i := s.anchor; i <= j; i++ {
		next, err := crypto.DeriveSeed(cur)
		memzero.Zero(cur)
		if err != nil {
			return err
		}
		cur = next
	}
	memzero.Zero(s.seed)
	s.seed = cur
	s.anchor = j + 1
	return nil
}

// seedClone returns a working copy of the current seed. Callers hold s.mu and
// own wiping the copy.
func (s *ReceiverState) seedClone() domain.Seed { return s.seed.Clone() }

// Snapshot returns a persistable copy of the state. Session parameters the
// snapshot carries beyond (anchor, seed) are filled in by the caller that
// owns them.
func (s *ReceiverState) Snapshot() domain.ReceiverSnapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return domain.ReceiverSnapshot{
		Seed:   s.seed.Clone(),
		Anchor: s.anchor,
	}
}

// Restore rebuilds a receiver state from a snapshot.
func Restore(snap domain.ReceiverSnapshot) (*ReceiverState, error) {
	st, err := NewReceiverState(snap.Seed)
	if err != nil {
		return nil, err
	}
	st.anchor = snap.Anchor
	return st, nil
}
