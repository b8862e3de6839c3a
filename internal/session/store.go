package session

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/forgelabs/forgectl/internal/errors"
)

// Store persists the session record at a fixed path. Each successful login
// overwrites the previous record wholesale; records are never merged.
type Store struct {
	path string
}

// NewStore creates a store for the given session file path
func NewStore(path string) *Store {
	return &Store{path: path}
}

// Path returns the session file path
func (s *Store) Path() string {
	return s.path
}

// Save writes the record. The write is atomic: the record is written to a
// temporary file in the same directory and renamed over the target, so a
// partial record can never be observed at the session path.
func (s *Store) Save(rec Record) error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}

	data, err := json.Marshal(rec)
	if err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}

	tmp, err := os.CreateTemp(dir, ".session-*.json")
	if err != nil {
		return errors.NewSessionWriteError(s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewSessionWriteError(s.path, err)
	}
	if err := tmp.Chmod(0o600); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return errors.NewSessionWriteError(s.path, err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return errors.NewSessionWriteError(s.path, err)
	}

	if err := os.Rename(tmpName, s.path); err != nil {
		os.Remove(tmpName)
		return errors.NewSessionWriteError(s.path, err)
	}
	return nil
}

// Load reads the persisted record. ok reports whether a record exists.
func (s *Store) Load() (Record, bool, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return Record{}, false, nil
		}
		return Record{}, false, errors.Wrap(errors.ErrCodeSessionRead,
			fmt.Sprintf("failed to read session record: %s", s.path), err)
	}

	var rec Record
	if err := json.Unmarshal(data, &rec); err != nil {
		return Record{}, false, errors.Wrap(errors.ErrCodeSessionRead,
			fmt.Sprintf("malformed session record: %s", s.path), err)
	}
	return rec, true, nil
}

// Remove deletes the session record. Removing a record that does not exist
// is not an error.
func (s *Store) Remove() error {
	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeSessionWrite,
			fmt.Sprintf("failed to remove session record: %s", s.path), err)
	}
	return nil
}
