package store

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"sync"

	"fragma/internal/domain"
	"fragma/internal/util/memzero"
)

const (
	emitterFile  = "emitter.enc"
	receiverFile = "receiver.enc"
)

// ErrAnchorRollback is returned when a loaded receiver snapshot carries an
// anchor lower than one this store has already handed out or persisted.
var ErrAnchorRollback = errors.New("state file anchor is behind the live anchor")

// FileStore persists sealed emitter and receiver state under a directory.
type FileStore struct {
	dir string

	mu sync.Mutex
	// Highest receiver anchor seen this process; catches a stale or replaced
	// state file within the process lifetime. Cross-restart freshness relies
	// on the receiver persisting every accepted advance.
	anchorFloor uint64
}

// NewFileStore creates a store rooted at dir. The directory must exist.
func NewFileStore(dir string) *FileStore { return &FileStore{dir: dir} }

// Provisioned reports whether any sealed state file exists under the store
// directory.
func (s *FileStore) Provisioned() (bool, error) {
	for _, f := range []string{emitterFile, receiverFile} {
		_, err := os.Stat(filepath.Join(s.dir, f))
		if err == nil {
			return true, nil
		}
		if !errors.Is(err, os.ErrNotExist) {
			return false, err
		}
	}
	return false, nil
}

// SaveEmitter seals and writes the emitter snapshot.
func (s *FileStore) SaveEmitter(passphrase string, snap domain.EmitterSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.saveLocked(passphrase, emitterFile, snap)
}

// LoadEmitter reads and unseals the emitter snapshot. The second return is
// false when no state file exists yet.
func (s *FileStore) LoadEmitter(passphrase string) (domain.EmitterSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap domain.EmitterSnapshot
	ok, err := s.loadLocked(passphrase, emitterFile, &snap)
	return snap, ok, err
}

// SaveReceiver seals and writes the receiver snapshot, raising the rollback
// floor to its anchor.
func (s *FileStore) SaveReceiver(passphrase string, snap domain.ReceiverSnapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveLocked(passphrase, receiverFile, snap); err != nil {
		return err
	}
	if snap.Anchor > s.anchorFloor {
		s.anchorFloor = snap.Anchor
	}
	return nil
}

// LoadReceiver reads and unseals the receiver snapshot. A snapshot behind the
// rollback floor is refused.
func (s *FileStore) LoadReceiver(passphrase string) (domain.ReceiverSnapshot, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	var snap domain.ReceiverSnapshot
	ok, err := s.loadLocked(passphrase, receiverFile, &snap)
	if err != nil || !ok {
		return domain.ReceiverSnapshot{}, ok, err
	}
	if snap.Anchor < s.anchorFloor {
		memzero.Zero(snap.Seed)
		return domain.ReceiverSnapshot{}, false, ErrAnchorRollback
	}
	s.anchorFloor = snap.Anchor
	return snap, true, nil
}

func (s *FileStore) saveLocked(passphrase, file string, v any) error {
	raw, err := json.Marshal(v)
	if err != nil {
		return err
	}
	defer memzero.Zero(raw)

	sealed, err := seal(passphrase, raw)
	if err != nil {
		return err
	}
	return writeFile(filepath.Join(s.dir, file), sealed, 0o600)
}

func (s *FileStore) loadLocked(passphrase, file string, v any) (bool, error) {
	sealed, err := readFile(filepath.Join(s.dir, file))
	if err != nil {
		return false, err
	}
	if sealed == nil {
		return false, nil
	}
	raw, err := open(passphrase, sealed)
	if err != nil {
		return false, err
	}
	defer memzero.Zero(raw)
	if err := json.Unmarshal(raw, v); err != nil {
		return false, err
	}
	return true, nil
}

var _ domain.StateStore = (*FileStore)(nil)
