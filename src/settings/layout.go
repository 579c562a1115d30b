package settings

import (
	"os"
	"path/filepath"
)

const (
	services_dir         = ".googleservices"
	data_dir             = "youtube"
	client_secrets_file  = "client_secrets.json"
	client_defaults_file = "client_defaults.json"
	client_samples_file  = "client_samples.toml"

	// Name is fixed by convention, do not rename.
	stored_credential_file = "StoredCredential"
)

// Layout locates the files of the YouTube service directory under a home dir.
type Layout struct {
	Home string
}

func NewLayout(home string) Layout {
	return Layout{Home: home}
}

func DefaultLayout() (Layout, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Layout{}, err
	}
	return NewLayout(home), nil
}

func (l Layout) Dir() string {
	return filepath.Join(l.Home, services_dir, data_dir)
}

func (l Layout) SecretsPath() string {
	return filepath.Join(l.Dir(), client_secrets_file)
}

func (l Layout) DefaultsPath() string {
	return filepath.Join(l.Dir(), client_defaults_file)
}

func (l Layout) CredentialPath() string {
	return filepath.Join(l.Dir(), stored_credential_file)
}

func (l Layout) SamplesPath() string {
	return filepath.Join(l.Dir(), client_samples_file)
}

// Resolve returns path unchanged when absolute, otherwise relative to Dir.
func (l Layout) Resolve(path string) string {
	if path == "" || filepath.IsAbs(path) {
		return path
	}
	return filepath.Join(l.Dir(), path)
}
