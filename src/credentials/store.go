package credentials

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/oauth2"

	"github.com/pashonic/ytconsole/src/utils/debug"
)

// Store persists the OAuth2 credential between runs.
type Store interface {
	// Load returns nil, nil when no credential is stored.
	Load() (*oauth2.Token, error)
	Save(token *oauth2.Token) error
	// Delete succeeds when no credential is stored.
	Delete() error
}

type FileStore struct {
	path string
}

var _ Store = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

func (s *FileStore) Path() string {
	return s.path
}

func (s *FileStore) Load() (*oauth2.Token, error) {
	file, err := os.Open(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("unable to read stored credential: %w", err)
	}
	defer file.Close()

	token := &oauth2.Token{}
	if err := json.NewDecoder(file).Decode(token); err != nil {
		return nil, fmt.Errorf("unable to decode stored credential: %w", err)
	}
	return token, nil
}

func (s *FileStore) Save(token *oauth2.Token) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0755); err != nil {
		return err
	}

	file, err := os.OpenFile(s.path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to store credential: %w", err)
	}
	defer file.Close()

	if err := json.NewEncoder(file).Encode(token); err != nil {
		return fmt.Errorf("unable to write credential: %w", err)
	}
	debug.Log("Saved credential to: %s", s.path)
	return nil
}

func (s *FileStore) Delete() error {
	err := os.Remove(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("unable to delete stored credential: %w", err)
	}
	debug.Log("Deleted credential: %s", s.path)
	return nil
}
