package settings

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

const (
	placeholder_prefix = "Enter "

	KeyProject      = "defaultproject"
	KeyPrefix       = "defaultprefix"
	KeyEmail        = "defaultemail"
	KeyDomain       = "defaultdomain"
	KeyCurrentScope = "currentscope"
	KeyDefaultScope = "defaultscope"
)

var ErrPlaceholder = errors.New("settings still hold placeholder values")

type Settings struct {
	Project      string `json:"defaultproject,omitempty"`
	Prefix       string `json:"defaultprefix,omitempty"`
	Email        string `json:"defaultemail,omitempty"`
	Domain       string `json:"defaultdomain,omitempty"`
	CurrentScope string `json:"currentscope,omitempty"`
	DefaultScope string `json:"defaultscope,omitempty"`
}

// Get returns the value of a known key, or false for an unknown one.
func (s *Settings) Get(key string) (string, bool) {
	field := s.field(key)
	if field == nil {
		return "", false
	}
	return *field, true
}

// Set updates the in-memory value of a known key. Unknown keys are ignored.
func (s *Settings) Set(key string, value string) bool {
	field := s.field(key)
	if field == nil {
		return false
	}
	*field = value
	return true
}

func (s *Settings) field(key string) *string {
	switch key {
	case KeyProject:
		return &s.Project
	case KeyPrefix:
		return &s.Prefix
	case KeyEmail:
		return &s.Email
	case KeyDomain:
		return &s.Domain
	case KeyCurrentScope:
		return &s.CurrentScope
	case KeyDefaultScope:
		return &s.DefaultScope
	}
	return nil
}

func (s *Settings) String() string {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return fmt.Sprintf("%+v", *s)
	}
	return string(data)
}

// Store reads and rewrites the client defaults file. It holds no lock,
// the last writer wins.
type Store struct {
	path string
}

func NewStore(path string) *Store {
	return &Store{path: path}
}

func (st *Store) Path() string {
	return st.path
}

func (st *Store) Load() (*Settings, error) {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return nil, fmt.Errorf("unable to read settings: %w", err)
	}
	var s Settings
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("unable to parse settings %s: %w", st.path, err)
	}
	if strings.HasPrefix(s.Project, placeholder_prefix) {
		return nil, fmt.Errorf("%w: enter sample settings info in %s", ErrPlaceholder, st.path)
	}
	return &s, nil
}

// Update re-reads the file, sets key to value and rewrites the whole document.
// Keys the record does not know about are carried over untouched.
func (st *Store) Update(key string, value string) error {
	data, err := os.ReadFile(st.path)
	if err != nil {
		return fmt.Errorf("unable to read settings: %w", err)
	}
	doc := map[string]interface{}{}
	if err := json.Unmarshal(data, &doc); err != nil {
		return fmt.Errorf("unable to parse settings %s: %w", st.path, err)
	}
	doc[key] = value

	out, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return err
	}
	return writeFileAtomic(st.path, append(out, '\n'))
}
