package receiver_test

import (
	"bytes"
	"context"
	"errors"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"fragma/internal/crypto"
	"fragma/internal/domain"
	"fragma/internal/relay"
	"fragma/internal/services/emitter"
	"fragma/internal/services/receiver"
	"fragma/internal/store"
)

const passphrase = "pass"

// provision seals a matching emitter/receiver pair into a fresh store and
// returns both services wired over an in-process relay.
func provision(t *testing.T, contentFree bool) (*emitter.Service, *receiver.Service) {
	t.Helper()

	srv := httptest.NewServer(relay.NewServer(zerolog.Nop()).Router())
	t.Cleanup(srv.Close)
	ch := relay.NewHTTP(srv.URL)

	tag := domain.DomainTag(bytes.Repeat([]byte{0x0d}, 16))
	seed := domain.Seed(bytes.Repeat([]byte{0x0e}, 32))

	fs := store.NewFileStore(t.TempDir())
	require.NoError(t, fs.SaveEmitter(passphrase, domain.EmitterSnapshot{
		DomainTag:      tag,
		Seed:           seed,
		FragmentLength: crypto.FragmentSize,
		ContentFree:    contentFree,
	}))
	require.NoError(t, fs.SaveReceiver(passphrase, domain.ReceiverSnapshot{
		DomainTag:      tag,
		Seed:           seed,
		FragmentLength: crypto.FragmentSize,
		ContentFree:    contentFree,
	}))

	const channelID = "alerts"
	return emitter.New(fs, ch, channelID), receiver.New(fs, ch, channelID, 7)
}

func TestEmitDrain_EndToEnd(t *testing.T) {
	em, rc := provision(t, false)
	ctx := context.Background()
	content := []byte("ALARM_LEVEL_3")

	for i := 0; i < 3; i++ {
		idx, err := em.Emit(ctx, passphrase, content)
		require.NoError(t, err)
		require.Equal(t, uint64(i), idx)
	}

	outcomes, err := rc.Drain(ctx, passphrase, content)
	require.NoError(t, err)
	require.Len(t, outcomes, 3)
	for i, o := range outcomes {
		require.Equal(t, domain.Accept, o.Result)
		require.Equal(t, uint64(i), o.Index)
		require.Equal(t, uint64(i)+1, o.Anchor)
	}

	// The drained state was persisted: a second drain starts past index 2.
	outcomes, err = rc.Drain(ctx, passphrase, content)
	require.NoError(t, err)
	require.Empty(t, outcomes)
}

func TestDrain_RejectsForeignFragment(t *testing.T) {
	em, rc := provision(t, false)
	ctx := context.Background()
	content := []byte("ALARM_LEVEL_3")

	_, err := em.Emit(ctx, passphrase, content)
	require.NoError(t, err)

	outcomes, err := rc.Drain(ctx, passphrase, []byte("other content"))
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, domain.Reject, outcomes[0].Result)
	require.Equal(t, uint64(0), outcomes[0].Anchor)
}

func TestEmitDrain_ContentFree(t *testing.T) {
	em, rc := provision(t, true)
	ctx := context.Background()

	idx, err := em.Emit(ctx, passphrase, nil)
	require.NoError(t, err)
	require.Equal(t, uint64(0), idx)

	outcomes, err := rc.Drain(ctx, passphrase, nil)
	require.NoError(t, err)
	require.Len(t, outcomes, 1)
	require.Equal(t, domain.Accept, outcomes[0].Result)
}

// stubChannel serves queued fragments, then reports fail (nil fail means an
// empty channel).
type stubChannel struct {
	frags []domain.Fragment
	fail  error
}

func (c *stubChannel) Push(context.Context, string, domain.Fragment) error { return nil }

func (c *stubChannel) Pull(context.Context, string) (domain.Fragment, bool, error) {
	if len(c.frags) == 0 {
		return nil, false, c.fail
	}
	f := c.frags[0]
	c.frags = c.frags[1:]
	return f, true, nil
}

func TestDrain_BindsContentDigest(t *testing.T) {
	srv := httptest.NewServer(relay.NewServer(zerolog.Nop()).Router())
	t.Cleanup(srv.Close)
	ch := relay.NewHTTP(srv.URL)

	tag := domain.DomainTag(bytes.Repeat([]byte{0x0d}, 16))
	seed := domain.Seed(bytes.Repeat([]byte{0x0e}, 32))
	fs := store.NewFileStore(t.TempDir())
	require.NoError(t, fs.SaveReceiver(passphrase, domain.ReceiverSnapshot{
		DomainTag:      tag,
		Seed:           seed.Clone(),
		FragmentLength: crypto.FragmentSize,
	}))

	ctx := context.Background()
	content := []byte("ALARM_LEVEL_3")

	// A fragment bound to the raw bytes must not pass: both ends bind the
	// content digest, not the payload itself.
	raw, err := crypto.ComputeFragment(seed, content, 0, tag, crypto.FragmentSize)
	require.NoError(t, err)
	require.NoError(t, ch.Push(ctx, "alerts", raw))

	digest, err := crypto.ComputeFragment(seed, crypto.HashContent(content), 0, tag, crypto.FragmentSize)
	require.NoError(t, err)
	require.NoError(t, ch.Push(ctx, "alerts", digest))

	outcomes, err := receiver.New(fs, ch, "alerts", 7).Drain(ctx, passphrase, content)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	require.Equal(t, domain.Reject, outcomes[0].Result)
	require.Equal(t, domain.Accept, outcomes[1].Result)
}

func TestDrain_PersistsEachAcceptedFragment(t *testing.T) {
	tag := domain.DomainTag(bytes.Repeat([]byte{0x0d}, 16))
	seed := domain.Seed(bytes.Repeat([]byte{0x0e}, 32))
	content := []byte("ALARM_LEVEL_3")

	dir := t.TempDir()
	fs := store.NewFileStore(dir)
	require.NoError(t, fs.SaveReceiver(passphrase, domain.ReceiverSnapshot{
		DomainTag:      tag,
		Seed:           seed.Clone(),
		FragmentLength: crypto.FragmentSize,
	}))

	frag, err := crypto.ComputeFragment(seed, crypto.HashContent(content), 0, tag, crypto.FragmentSize)
	require.NoError(t, err)
	chErr := errors.New("relay gone")
	ch := &stubChannel{frags: []domain.Fragment{frag}, fail: chErr}

	outcomes, err := receiver.New(fs, ch, "alerts", 7).Drain(context.Background(), passphrase, content)
	require.ErrorIs(t, err, chErr)
	require.Len(t, outcomes, 1)
	require.Equal(t, domain.Accept, outcomes[0].Result)

	// A fresh store over the same directory sees the advanced anchor: the
	// accept hit disk before the failing pull, not at the end of the batch.
	snap, ok, err := store.NewFileStore(dir).LoadReceiver(passphrase)
	require.NoError(t, err)
	require.True(t, ok)
	require.Equal(t, uint64(1), snap.Anchor)
}

// captureStore hands out snapshots whose seed slices it retains, so tests can
// observe what the services leave behind in them.
type captureStore struct {
	em domain.EmitterSnapshot
	rc domain.ReceiverSnapshot
}

func (c *captureStore) SaveEmitter(string, domain.EmitterSnapshot) error { return nil }
func (c *captureStore) LoadEmitter(string) (domain.EmitterSnapshot, bool, error) {
	return c.em, true, nil
}
func (c *captureStore) SaveReceiver(string, domain.ReceiverSnapshot) error { return nil }
func (c *captureStore) LoadReceiver(string) (domain.ReceiverSnapshot, bool, error) {
	return c.rc, true, nil
}
func (c *captureStore) Provisioned() (bool, error) { return true, nil }

func TestServices_WipeLoadedSeeds(t *testing.T) {
	tag := domain.DomainTag(bytes.Repeat([]byte{0x0d}, 16))
	cs := &captureStore{
		em: domain.EmitterSnapshot{
			DomainTag:      tag,
			Seed:           domain.Seed(bytes.Repeat([]byte{0x0e}, 32)),
			FragmentLength: crypto.FragmentSize,
		},
		rc: domain.ReceiverSnapshot{
			DomainTag:      tag,
			Seed:           domain.Seed(bytes.Repeat([]byte{0x0e}, 32)),
			FragmentLength: crypto.FragmentSize,
		},
	}
	ch := &stubChannel{}
	zeros := make([]byte, 32)

	_, err := emitter.New(cs, ch, "alerts").Emit(context.Background(), passphrase, []byte("x"))
	require.NoError(t, err)
	require.Equal(t, zeros, []byte(cs.em.Seed))

	_, err = receiver.New(cs, ch, "alerts", 7).Drain(context.Background(), passphrase, nil)
	require.NoError(t, err)
	require.Equal(t, zeros, []byte(cs.rc.Seed))
}

func TestEmit_NotProvisioned(t *testing.T) {
	srv := httptest.NewServer(relay.NewServer(zerolog.Nop()).Router())
	t.Cleanup(srv.Close)

	em := emitter.New(store.NewFileStore(t.TempDir()), relay.NewHTTP(srv.URL), "alerts")
	_, err := em.Emit(context.Background(), passphrase, nil)
	require.ErrorIs(t, err, emitter.ErrNotProvisioned)
}
