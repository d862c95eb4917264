package crypto

import (
	"crypto/rand"

	"fragma/internal/domain"
)

// GenerateSeed returns n cryptographically random bytes for use as K0.
// n must be at least MinSeedSize.
func GenerateSeed(n int) (domain.Seed, error) {
	if n < MinSeedSize {
		return nil, domain.ErrSeedTooShort
	}
	s := make(domain.Seed, n)
	if _, err := rand.Read(s); err != nil {
		return nil, err
	}
	return s, nil
}

// GenerateDomainTag returns n cryptographically random bytes for use as the
// session separation tag. n must be at least MinDomainTagSize.
func GenerateDomainTag(n int) (domain.DomainTag, error) {
	if n < MinDomainTagSize {
		return nil, domain.ErrDomainTagTooShort
	}
	t := make(domain.DomainTag, n)
	if _, err := rand.Read(t); err != nil {
		return nil, err
	}
	return t, nil
}
