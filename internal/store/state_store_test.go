package store_test

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"fragma/internal/domain"
	"fragma/internal/store"
)

func testReceiverSnap(anchor uint64) domain.ReceiverSnapshot {
	return domain.ReceiverSnapshot{
		DomainTag:      bytes.Repeat([]byte{0x01}, 16),
		Seed:           bytes.Repeat([]byte{0x02}, 32),
		Anchor:         anchor,
		FragmentLength: 32,
	}
}

func TestEmitter_SaveLoad(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	snap := domain.EmitterSnapshot{
		DomainTag:      bytes.Repeat([]byte{0x01}, 16),
		Seed:           bytes.Repeat([]byte{0x02}, 32),
		Index:          9,
		FragmentLength: 32,
		ContentFree:    true,
	}
	require.NoError(t, s.SaveEmitter("pass", snap))

	got, ok, err := s.LoadEmitter("pass")
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, snap, got)
}

func TestProvisioned(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	ok, err := s.Provisioned()
	require.NoError(t, err)
	require.False(t, ok)

	require.NoError(t, s.SaveEmitter("pass", domain.EmitterSnapshot{
		DomainTag:      bytes.Repeat([]byte{0x01}, 16),
		Seed:           bytes.Repeat([]byte{0x02}, 32),
		FragmentLength: 32,
	}))

	ok, err = s.Provisioned()
	require.NoError(t, err)
	require.True(t, ok)
}

func TestLoad_MissingFile(t *testing.T) {
	s := store.NewFileStore(t.TempDir())

	_, ok, err := s.LoadEmitter("pass")
	require.NoError(t, err)
	require.False(t, ok)

	_, ok, err = s.LoadReceiver("pass")
	require.NoError(t, err)
	require.False(t, ok)
}

func TestWrongPassphrase(t *testing.T) {
	s := store.NewFileStore(t.TempDir())
	require.NoError(t, s.SaveReceiver("correct", testReceiverSnap(3)))

	_, _, err := s.LoadReceiver("wrong")
	require.ErrorIs(t, err, store.ErrWrongPassphrase)
}

func TestReceiver_AnchorRollbackRefused(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	require.NoError(t, s.SaveReceiver("pass", testReceiverSnap(5)))

	// Capture the sealed file at anchor 5, advance, then put the stale file
	// back — simulating a restored backup.
	path := filepath.Join(dir, "receiver.enc")
	stale, err := os.ReadFile(path)
	require.NoError(t, err)

	require.NoError(t, s.SaveReceiver("pass", testReceiverSnap(8)))
	require.NoError(t, os.WriteFile(path, stale, 0o600))

	_, _, err = s.LoadReceiver("pass")
	require.ErrorIs(t, err, store.ErrAnchorRollback)
}

func TestSeedNeverPlaintextOnDisk(t *testing.T) {
	dir := t.TempDir()
	s := store.NewFileStore(dir)

	snap := testReceiverSnap(0)
	require.NoError(t, s.SaveReceiver("pass", snap))

	raw, err := os.ReadFile(filepath.Join(dir, "receiver.enc"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), string(snap.Seed))
}
