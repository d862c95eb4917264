package domain

// Seed is one link of the secret key chain K0, K1, ... shared out-of-band
// between emitter and receiver. Each party holds exactly one current seed;
// evolution overwrites it, never appends to a history.
type Seed []byte

// Clone returns an independent copy of the seed.
func (s Seed) Clone() Seed { return append(Seed(nil), s...) }

// DomainTag is the session-scoped separation constant. It is provisioned
// once, shared out-of-band, and immutable for the session lifetime.
type DomainTag []byte

// Clone returns an independent copy of the tag.
func (d DomainTag) Clone() DomainTag { return append(DomainTag(nil), d...) }

// Fragment is one authenticated unit as it travels on the channel: an opaque
// fixed-length byte string carrying no index, timestamp or header.
type Fragment []byte

// Result is the outcome of a validation attempt. Reject is a normal protocol
// result, not an error: it covers replay, corruption, out-of-window delay and
// wrong-key inputs alike.
type Result int

const (
	Reject Result = iota
	Accept
)

// String returns the textual form of the result.
func (r Result) String() string {
	if r == Accept {
		return "accept"
	}
	return "reject"
}

// EmitterSnapshot is the persistable view of a fragment builder.
type EmitterSnapshot struct {
	DomainTag      DomainTag `json:"domain_tag"`
	Seed           Seed      `json:"seed"`
	Index          uint64    `json:"index"`
	FragmentLength int       `json:"fragment_length"`
	ContentFree    bool      `json:"content_free"`
}

// ReceiverSnapshot is the persistable view of a receiver state, plus the
// session parameters the validator needs to be rebuilt around it.
type ReceiverSnapshot struct {
	DomainTag      DomainTag `json:"domain_tag"`
	Seed           Seed      `json:"seed"`
	Anchor         uint64    `json:"anchor"`
	FragmentLength int       `json:"fragment_length"`
	ContentFree    bool      `json:"content_free"`
}
