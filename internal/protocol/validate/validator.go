package validate

import (
	"sync/atomic"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/util/memzero"
)

// DefaultWindowSize bounds how many future indices a validation attempt will
// search. Larger windows tolerate more loss and reordering at the price of
// more recomputation per attempt and a wider anchor-hijack surface.
const DefaultWindowSize = 7

// Validator recomputes and compares fragments for a window of candidate
// indices. It holds only session configuration; all mutable state lives in
// the ReceiverState passed to each call, so one validator may serve many
// states.
type Validator struct {
	tag         domain.DomainTag
	window      uint64
	fragLen     int
	contentFree bool
	exhaustive  bool

	stats stats
}

type stats struct {
	validations atomic.Uint64
	accepts     atomic.Uint64
	rejects     atomic.Uint64
	comparisons atomic.Uint64
}

// Stats is a point-in-time copy of the validator's counters.
type Stats struct {
	Validations uint64
	Accepts     uint64
	Rejects     uint64
	Comparisons uint64
}

// ValidatorOption adjusts validator construction.
type ValidatorOption func(*Validator)

// WithValidatorFragmentLength sets the expected fragment length in bytes.
func WithValidatorFragmentLength(n int) ValidatorOption {
	return func(v *Validator) { v.fragLen = n }
}

// WithExhaustiveScan makes every validation walk the full window even after
// a match, keeping the first match found. Use when the cost of an attempt
// must not depend on the matched position at all.
func WithExhaustiveScan() ValidatorOption {
	return func(v *Validator) { v.exhaustive = true }
}

// NewValidator builds a content-binding validator for the session tag and
// window size.
func NewValidator(tag domain.DomainTag, window int, opts ...ValidatorOption) (*Validator, error) {
	return newValidator(tag, window, false, opts)
}

// NewContentFreeValidator builds the validator counterpart of a content-free
// builder.
func NewContentFreeValidator(tag domain.DomainTag, window int, opts ...ValidatorOption) (*Validator, error) {
	return newValidator(tag, window, true, opts)
}

func newValidator(tag domain.DomainTag, window int, contentFree bool, opts []ValidatorOption) (*Validator, error) {
	if window < 1 {
		return nil, domain.ErrWindowTooSmall
	}
	v := &Validator{
		tag:         tag.Clone(),
		window:      uint64(window),
		fragLen:     crypto.FragmentSize,
		contentFree: contentFree,
	}
	for _, opt := range opts {
		opt(v)
	}
	if len(v.tag) < crypto.MinDomainTagSize {
		return nil, domain.ErrDomainTagTooShort
	}
	if v.fragLen < crypto.MinFragmentSize {
		return nil, domain.ErrFragmentLength
	}
	return v, nil
}

// ValidateAndCommit checks a received fragment against the window
// [anchor, anchor+window) of st and commits the advance on a match.
//
// The scan recomputes the candidate for each index in increasing order and
// compares in constant time. The first match wins and moves the anchor past
// it; if the window is exhausted the state is left completely untouched and
// the result is Reject. Reject carries no information about how close the
// fragment came to matching.
//
// The whole read-scan-commit sequence holds the state's lock, so a second
// submission of an accepted fragment always sees the advanced anchor and
// rejects.
func (v *Validator) ValidateAndCommit(frag domain.Fragment, st *ReceiverState, content []byte) (domain.Result, uint64, error) {
	if v.contentFree && len(content) > 0 {
		return domain.Reject, 0, domain.ErrContentNotAllowed
	}
	v.stats.validations.Add(1)
	if len(frag) != v.fragLen {
		// Wrong length cannot match any candidate; the transport contract
		// says lengths are preserved, so skip the scan.
		v.stats.rejects.Add(1)
		return domain.Reject, 0, nil
	}

	st.mu.Lock()
	defer st.mu.Unlock()

	seed := st.seedClone()
	defer func() { memzero.Zero(seed) }()

	matched := false
	var matchedIndex uint64
	for off := uint64(0); off < v.window; off++ {
		j := st.anchor + off
		candidate, err := crypto.ComputeFragment(seed, content, j, v.tag, v.fragLen)
		if err != nil {
			return domain.Reject, 0, err
		}
		v.stats.comparisons.Add(1)
		if crypto.Equal(candidate, frag) && !matched {
			matched = true
			matchedIndex = j
			if !v.exhaustive {
				break
			}
		}
		next, err := crypto.DeriveSeed(seed)
		if err != nil {
			return domain.Reject, 0, err
		}
		memzero.Zero(seed)
		seed = next
	}

	if !matched {
		v.stats.rejects.Add(1)
		return domain.Reject, 0, nil
	}
	if err := st.advanceLocked(matchedIndex); err != nil {
		return domain.Reject, 0, err
	}
	v.stats.accepts.Add(1)
	return domain.Accept, matchedIndex, nil
}

// Stats returns a copy of the validator's counters.
func (v *Validator) Stats() Stats {
	return Stats{
		Validations: v.stats.validations.Load(),
		Accepts:     v.stats.accepts.Load(),
		Rejects:     v.stats.rejects.Load(),
		Comparisons: v.stats.comparisons.Load(),
	}
}
