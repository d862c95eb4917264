package crypto

import (
	"crypto/sha256"
	"io"

	"golang.org/x/crypto/hkdf"

	"fragma/internal/domain"
)

const (
	// SeedSize is the length of every derived seed in the chain. Provisioned
	// seeds may be longer; one evolution step normalises the chain to this.
	SeedSize = 32

	// MinSeedSize is the smallest acceptable seed (256 bits).
	MinSeedSize = 32

	// MinDomainTagSize is the smallest acceptable domain tag (128 bits).
	MinDomainTagSize = 16
)

// kdfLabel domain-separates seed evolution from every other HKDF use.
var kdfLabel = []byte("fragma/kdf/v1")

// DeriveSeed computes the next link of the key chain, K_{i+1} = KDF(K_i).
//
// The step is deterministic and one-way: recovering K_i from K_{i+1} requires
// inverting HKDF-SHA256. The caller owns wiping the old seed once the new one
// is in place; that erasure is what turns one-wayness into forward secrecy.
func DeriveSeed(seed domain.Seed) (domain.Seed, error) {
	if len(seed) < MinSeedSize {
		return nil, domain.ErrSeedTooShort
	}
	next := make(domain.Seed, SeedSize)
	r := hkdf.New(sha256.New, seed, nil, kdfLabel)
	if _, err := io.ReadFull(r, next); err != nil {
		return nil, err
	}
	return next, nil
}
