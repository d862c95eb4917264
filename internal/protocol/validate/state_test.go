package validate_test

import (
	"bytes"
	"testing"

	"fragma/internal/crypto"
	"fragma/internal/protocol/validate"
)

func TestSnapshotRestore_PreservesChainPosition(t *testing.T) {
	st, err := validate.NewReceiverState(testSeed)
	if err != nil {
		t.Fatalf("NewReceiverState: %v", err)
	}
	if err := st.AdvanceTo(2); err != nil {
		t.Fatalf("AdvanceTo: %v", err)
	}

	snap := st.Snapshot()
	if snap.Anchor != 3 {
		t.Fatalf("snapshot anchor = %d, want 3", snap.Anchor)
	}

	// The snapshot seed must be K3 of the reference chain.
	want := testSeed.Clone()
	for i := 0; i < 3; i++ {
		next, err := crypto.DeriveSeed(want)
		if err != nil {
			t.Fatalf("DeriveSeed: %v", err)
		}
		want = next
	}
	if !bytes.Equal(snap.Seed, want) {
		t.Fatal("snapshot seed diverged from the reference chain")
	}

	restored, err := validate.Restore(snap)
	if err != nil {
		t.Fatalf("Restore: %v", err)
	}
	if restored.Anchor() != 3 {
		t.Fatalf("restored anchor = %d, want 3", restored.Anchor())
	}
}

func TestSnapshot_IndependentCopy(t *testing.T) {
	st, err := validate.NewReceiverState(testSeed)
	if err != nil {
		t.Fatalf("NewReceiverState: %v", err)
	}
	snap := st.Snapshot()
	snap.Seed[0] ^= 0xff

	if !bytes.Equal(st.Snapshot().Seed, testSeed) {
		t.Fatal("mutating a snapshot changed live state")
	}
}
