package fragment

import (
	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/util/memzero"
)

// Builder emits authenticated fragments from an evolving seed chain.
type Builder struct {
	tag         domain.DomainTag
	seed        domain.Seed
	index       uint64
	fragLen     int
	contentFree bool
}

// Option adjusts builder construction.
type Option func(*Builder)

// WithFragmentLength sets the fragment length in bytes. The default is
// crypto.FragmentSize; values below crypto.MinFragmentSize fail construction.
func WithFragmentLength(n int) Option {
	return func(b *Builder) { b.fragLen = n }
}

// New returns a content-binding builder over the given session tag and
// initial seed K0. The builder keeps its own copies of both.
func New(tag domain.DomainTag, seed domain.Seed, opts ...Option) (*Builder, error) {
	return newBuilder(tag, seed, false, opts)
}

// NewContentFree returns a builder whose fragments bind only index and domain
// tag. It authenticates that a valid step occurred, with no payload
// semantics, and shares the seed-evolution discipline of New.
func NewContentFree(tag domain.DomainTag, seed domain.Seed, opts ...Option) (*Builder, error) {
	return newBuilder(tag, seed, true, opts)
}

func newBuilder(tag domain.DomainTag, seed domain.Seed, contentFree bool, opts []Option) (*Builder, error) {
	b := &Builder{
		tag:         tag.Clone(),
		seed:        seed.Clone(),
		fragLen:     crypto.FragmentSize,
		contentFree: contentFree,
	}
	for _, opt := range opts {
		opt(b)
	}
	if len(b.seed) < crypto.MinSeedSize {
		return nil, domain.ErrSeedTooShort
	}
	if len(b.tag) < crypto.MinDomainTagSize {
		return nil, domain.ErrDomainTagTooShort
	}
	if b.fragLen < crypto.MinFragmentSize {
		return nil, domain.ErrFragmentLength
	}
	return b, nil
}

// Build computes the fragment for the current position. It does not mutate
// the builder, so a caller may build without committing; normal use calls
// Advance immediately after the fragment is sent.
func (b *Builder) Build(content []byte) (domain.Fragment, error) {
	if b.contentFree && len(content) > 0 {
		return nil, domain.ErrContentNotAllowed
	}
	return crypto.ComputeFragment(b.seed, content, b.index, b.tag, b.fragLen)
}

// Advance evolves the seed one-way and increments the index. The retired seed
// is wiped. Calling Advance twice without an intervening Build skips a
// fragment value; the receiver window tolerates bounded skips, but keeping
// Build and Advance paired is the caller's responsibility.
func (b *Builder) Advance() error {
	next, err := crypto.DeriveSeed(b.seed)
	if err != nil {
		return err
	}
	memzero.Zero(b.seed)
	b.seed = next
	b.index++
	return nil
}

// Index returns the implicit index of the next fragment. It is never
// transmitted.
func (b *Builder) Index() uint64 { return b.index }

// Snapshot returns a persistable copy of the builder state.
func (b *Builder) Snapshot() domain.EmitterSnapshot {
	return domain.EmitterSnapshot{
		DomainTag:      b.tag.Clone(),
		Seed:           b.seed.Clone(),
		Index:          b.index,
		FragmentLength: b.fragLen,
		ContentFree:    b.contentFree,
	}
}

// Restore rebuilds a builder from a snapshot.
func Restore(snap domain.EmitterSnapshot) (*Builder, error) {
	b, err := newBuilder(snap.DomainTag, snap.Seed, snap.ContentFree,
		[]Option{WithFragmentLength(snap.FragmentLength)})
	if err != nil {
		return nil, err
	}
	b.index = snap.Index
	return b, nil
}
