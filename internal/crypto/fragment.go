package crypto

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/binary"

	"fragma/internal/domain"
)

const (
	// FragmentSize is the default fragment length on the wire (256 bits).
	FragmentSize = 32

	// MinFragmentSize is the smallest acceptable fragment length.
	MinFragmentSize = 32

	// indexSize is the fixed-width encoding of the implicit index.
	indexSize = 8
)

// ComputeFragment derives the fragment for one position of the chain:
//
//	F_i = PRF(K_i, content ‖ encode(i) ‖ tag)
//
// The PRF is HMAC-SHA256 keyed by the seed. Each input part is length-prefixed
// and the index is encoded as 8 bytes big-endian, so the concatenation is
// injective: no choice of content can masquerade as a different index or tag.
// Outputs longer than one digest are produced by counter extension and the
// result is truncated to fragLen.
func ComputeFragment(seed domain.Seed, content []byte, index uint64, tag domain.DomainTag, fragLen int) (domain.Fragment, error) {
	if len(seed) < MinSeedSize {
		return nil, domain.ErrSeedTooShort
	}
	if len(tag) < MinDomainTagSize {
		return nil, domain.ErrDomainTagTooShort
	}
	if fragLen < MinFragmentSize {
		return nil, domain.ErrFragmentLength
	}

	var idx [indexSize]byte
	binary.BigEndian.PutUint64(idx[:], index)

	enc := make([]byte, 0, 12+len(content)+indexSize+len(tag))
	enc = appendPrefixed(enc, content)
	enc = appendPrefixed(enc, idx[:])
	enc = appendPrefixed(enc, tag)

	mac := hmac.New(sha256.New, seed)
	mac.Write(enc)
	out := mac.Sum(nil)

	// Counter extension for fragment lengths beyond one digest.
	for len(out) < fragLen {
		var ctr [4]byte
		binary.BigEndian.PutUint32(ctr[:], uint32(len(out)))
		mac = hmac.New(sha256.New, seed)
		mac.Write(enc)
		mac.Write(ctr[:])
		out = mac.Sum(out)
	}
	return domain.Fragment(out[:fragLen]), nil
}

// appendPrefixed appends a 4-byte big-endian length followed by the data.
func appendPrefixed(dst, part []byte) []byte {
	var n [4]byte
	binary.BigEndian.PutUint32(n[:], uint32(len(part)))
	dst = append(dst, n[:]...)
	return append(dst, part...)
}
