package receiver

import (
	"context"
	"errors"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/protocol/validate"
	"fragma/internal/util/memzero"
)

// ErrNotProvisioned is returned when no receiver state exists yet.
var ErrNotProvisioned = errors.New("no receiver state; run provisioning first")

// Outcome reports the validation of one pulled fragment.
type Outcome struct {
	Result domain.Result
	Index  uint64 // matched index, meaningful on Accept only
	Anchor uint64 // anchor after this validation
}

// Service validates fragments for one logical channel.
type Service struct {
	store   domain.StateStore
	channel domain.Channel
	id      string
	window  int
}

// New constructs a receiver service. window bounds the validator search per
// fragment.
func New(store domain.StateStore, channel domain.Channel, channelID string, window int) *Service {
	return &Service{store: store, channel: channel, id: channelID, window: window}
}

// Drain pulls fragments until the channel is empty, validating each against
// the receiver state in arrival order. content is the application payload the
// fragments are expected to bind (nil for content-free sessions); non-empty
// content is bound as its SHA-256 digest, matching the emitter side. The
// state is persisted after every accepted fragment, so a crash mid-drain
// cannot resurrect an index that was already consumed on disk.
func (s *Service) Drain(ctx context.Context, passphrase string, content []byte) ([]Outcome, error) {
	snap, ok, err := s.store.LoadReceiver(passphrase)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, ErrNotProvisioned
	}

	st, err := validate.Restore(snap)
	memzero.Zero(snap.Seed)
	if err != nil {
		return nil, err
	}
	v, err := s.newValidator(snap)
	if err != nil {
		return nil, err
	}

	if len(content) > 0 {
		content = crypto.HashContent(content)
	}

	var outcomes []Outcome
	for {
		frag, ok, err := s.channel.Pull(ctx, s.id)
		if err != nil {
			return outcomes, err
		}
		if !ok {
			break
		}
		res, idx, err := v.ValidateAndCommit(frag, st, content)
		if err != nil {
			return outcomes, err
		}
		outcomes = append(outcomes, Outcome{Result: res, Index: idx, Anchor: st.Anchor()})
		if res == domain.Accept {
			if err := s.persist(passphrase, st, snap); err != nil {
				return outcomes, err
			}
		}
	}
	return outcomes, nil
}

// persist seals the current state to disk, carrying over the session
// parameters from the loaded snapshot.
func (s *Service) persist(passphrase string, st *validate.ReceiverState, session domain.ReceiverSnapshot) error {
	next := st.Snapshot()
	next.DomainTag = session.DomainTag
	next.FragmentLength = session.FragmentLength
	next.ContentFree = session.ContentFree
	err := s.store.SaveReceiver(passphrase, next)
	memzero.Zero(next.Seed)
	return err
}

func (s *Service) newValidator(snap domain.ReceiverSnapshot) (*validate.Validator, error) {
	opts := []validate.ValidatorOption{validate.WithValidatorFragmentLength(snap.FragmentLength)}
	if snap.ContentFree {
		return validate.NewContentFreeValidator(snap.DomainTag, s.window, opts...)
	}
	return validate.NewValidator(snap.DomainTag, s.window, opts...)
}
