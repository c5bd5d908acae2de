package persistence

import (
	"encoding/base64"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"

	"github.com/sirupsen/logrus"

	"github.com/hoopsim/hoopsim/sim"
)

// ErrNoSave is returned when a slot holds no save. Callers start a default
// league instead.
var ErrNoSave = errors.New("no save in slot")

var slotPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

func checkSlot(slot string) error {
	if !slotPattern.MatchString(slot) {
		return fmt.Errorf("invalid slot name %q", slot)
	}
	return nil
}

// FileStore keeps one sealed, base64-encoded file per slot in a directory.
// Plain JSON saves from older versions ("save_{slot}.json") are still read;
// the next Save replaces them with a sealed file.
type FileStore struct {
	Dir        string
	Passphrase string
}

// NewFileStore returns a store rooted at dir. An empty passphrase uses
// DefaultPassphrase.
func NewFileStore(dir, passphrase string) *FileStore {
	if passphrase == "" {
		passphrase = DefaultPassphrase
	}
	return &FileStore{Dir: dir, Passphrase: passphrase}
}

// Path is the sealed file of a slot.
func (st *FileStore) Path(slot string) string {
	return filepath.Join(st.Dir, fmt.Sprintf("save_%s.enc", slot))
}

func (st *FileStore) legacyPath(slot string) string {
	return filepath.Join(st.Dir, fmt.Sprintf("save_%s.json", slot))
}

// Save seals s into the slot file, replacing it atomically.
func (st *FileStore) Save(slot string, s *sim.LeagueState) error {
	if err := checkSlot(slot); err != nil {
		return err
	}
	data, err := Encode(s)
	if err != nil {
		return err
	}
	blob, err := Seal(data, st.Passphrase)
	if err != nil {
		return fmt.Errorf("sealing slot %s: %w", slot, err)
	}
	if err := os.MkdirAll(st.Dir, 0o755); err != nil {
		return fmt.Errorf("creating save dir: %w", err)
	}
	tmp, err := os.CreateTemp(st.Dir, "save_*.tmp")
	if err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(base64.StdEncoding.EncodeToString(blob)); err != nil {
		tmp.Close()
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	if err := os.Rename(tmp.Name(), st.Path(slot)); err != nil {
		return fmt.Errorf("writing slot %s: %w", slot, err)
	}
	logrus.Debugf("saved slot %s to %s", slot, st.Path(slot))
	return nil
}

// Load reads and decodes a slot. A slot with neither a sealed nor a legacy
// file yields ErrNoSave.
func (st *FileStore) Load(slot string, cfg *sim.Config) (*sim.LeagueState, []string, error) {
	if err := checkSlot(slot); err != nil {
		return nil, nil, err
	}
	data, err := st.read(slot)
	if err != nil {
		return nil, nil, err
	}
	return Decode(data, cfg)
}

func (st *FileStore) read(slot string) ([]byte, error) {
	encoded, err := os.ReadFile(st.Path(slot))
	if err == nil {
		blob, err := base64.StdEncoding.DecodeString(string(encoded))
		if err != nil {
			return nil, fmt.Errorf("%w: slot %s is not base64", ErrDecrypt, slot)
		}
		return Unseal(blob, st.Passphrase)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("reading slot %s: %w", slot, err)
	}
	plain, err := os.ReadFile(st.legacyPath(slot))
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w %s", ErrNoSave, slot)
	}
	if err != nil {
		return nil, fmt.Errorf("reading slot %s: %w", slot, err)
	}
	logrus.Warnf("slot %s: loading legacy plain save, it will be sealed on the next save", slot)
	return plain, nil
}
