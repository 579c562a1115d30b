package settings

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleDefaults = `{
  "defaultproject": "my-project",
  "defaultprefix": "alias",
  "defaultemail": "me@example.com",
  "defaultdomain": "example.com",
  "currentscope": "https://www.googleapis.com/auth/youtube.readonly",
  "defaultscope": "https://www.googleapis.com/auth/youtube",
  "extra": "keep me"
}`

func writeDefaults(t *testing.T, content string) *Store {
	t.Helper()
	layout := NewLayout(t.TempDir())
	require.NoError(t, os.MkdirAll(layout.Dir(), 0755))
	require.NoError(t, os.WriteFile(layout.DefaultsPath(), []byte(content), 0644))
	return NewStore(layout.DefaultsPath())
}

func TestLayout(t *testing.T) {
	layout := NewLayout("/home/me")
	assert.Equal(t, filepath.Join("/home/me", ".googleservices", "youtube"), layout.Dir())
	assert.Equal(t, filepath.Join(layout.Dir(), "client_secrets.json"), layout.SecretsPath())
	assert.Equal(t, filepath.Join(layout.Dir(), "client_defaults.json"), layout.DefaultsPath())
	assert.Equal(t, filepath.Join(layout.Dir(), "StoredCredential"), layout.CredentialPath())
	assert.Equal(t, filepath.Join(layout.Dir(), "client_samples.toml"), layout.SamplesPath())

	assert.Equal(t, "/abs/video.mp4", layout.Resolve("/abs/video.mp4"))
	assert.Equal(t, filepath.Join(layout.Dir(), "video.mp4"), layout.Resolve("video.mp4"))
	assert.Equal(t, "", layout.Resolve(""))
}

func TestLoad(t *testing.T) {
	store := writeDefaults(t, sampleDefaults)

	s, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "my-project", s.Project)
	assert.Equal(t, "alias", s.Prefix)
	assert.Equal(t, "me@example.com", s.Email)
	assert.Equal(t, "example.com", s.Domain)
	assert.Equal(t, "https://www.googleapis.com/auth/youtube.readonly", s.CurrentScope)
	assert.Equal(t, "https://www.googleapis.com/auth/youtube", s.DefaultScope)
}

func TestLoadPlaceholder(t *testing.T) {
	store := writeDefaults(t, `{"defaultproject": "Enter your project ID"}`)

	s, err := store.Load()
	assert.Nil(t, s)
	assert.True(t, errors.Is(err, ErrPlaceholder))
}

func TestLoadErrors(t *testing.T) {
	// Missing file
	s, err := NewStore(filepath.Join(t.TempDir(), "missing.json")).Load()
	assert.Nil(t, s)
	assert.NotNil(t, err)
	assert.False(t, errors.Is(err, ErrPlaceholder))

	// Malformed file
	s, err = writeDefaults(t, `{"defaultproject": `).Load()
	assert.Nil(t, s)
	assert.NotNil(t, err)
}

func TestUpdateRoundTrip(t *testing.T) {
	store := writeDefaults(t, sampleDefaults)
	before, err := store.Load()
	require.NoError(t, err)

	require.NoError(t, store.Update(KeyCurrentScope, "https://www.googleapis.com/auth/youtube.upload"))

	after, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, "https://www.googleapis.com/auth/youtube.upload", after.CurrentScope)

	// Everything else is unchanged
	after.CurrentScope = before.CurrentScope
	assert.Equal(t, before, after)

	// Unknown keys survive the rewrite
	data, err := os.ReadFile(store.Path())
	require.NoError(t, err)
	doc := map[string]interface{}{}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "keep me", doc["extra"])

	// No temp files left behind
	entries, err := os.ReadDir(filepath.Dir(store.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1)
}

func TestUpdateMissingFile(t *testing.T) {
	store := NewStore(filepath.Join(t.TempDir(), "missing.json"))
	assert.NotNil(t, store.Update(KeyCurrentScope, "scope"))
}

func TestSetGet(t *testing.T) {
	s := &Settings{}
	assert.True(t, s.Set(KeyDefaultScope, "a"))
	assert.True(t, s.Set(KeyCurrentScope, "b"))
	assert.False(t, s.Set("unknown", "c"))

	value, ok := s.Get(KeyDefaultScope)
	assert.True(t, ok)
	assert.Equal(t, "a", value)
	assert.Equal(t, "b", s.CurrentScope)

	_, ok = s.Get("unknown")
	assert.False(t, ok)
}
