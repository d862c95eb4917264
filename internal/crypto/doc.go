// Package crypto exposes the primitives of the fragment authentication
// scheme.
//
// Contents
//
//   - One-way seed evolution for the key chain K0, K1, ... (DeriveSeed)
//   - Keyed fragment construction over content, index and domain tag
//     (ComputeFragment)
//   - Constant-time byte equality (Equal)
//   - Provisioning helpers for seeds and domain tags (GenerateSeed,
//     GenerateDomainTag)
//   - Deterministic content preparation and short fingerprints for display
//     (HashContent, Fingerprint)
//
// # Notes
//
// All functions are deterministic except the generators. Callers should treat
// seeds as sensitive and wipe retired copies with memzero.Zero; fragments are
// public by construction and indistinguishable from random bytes.
package crypto
