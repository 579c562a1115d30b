package credentials

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/option"
	"google.golang.org/api/youtube/v3"

	"github.com/pashonic/ytconsole/src/utils/debug"
)

// Manager turns the client secrets and the stored credential into an
// authenticated YouTube service.
type Manager struct {
	config        *oauth2.Config
	store         Store
	authorizer    Authorizer
	clientOptions []option.ClientOption
}

type Option func(*Manager)

// WithClientOptions appends options passed to youtube.NewService.
func WithClientOptions(opts ...option.ClientOption) Option {
	return func(m *Manager) {
		m.clientOptions = append(m.clientOptions, opts...)
	}
}

func New(secretsPath string, store Store, authorizer Authorizer, opts ...Option) (*Manager, error) {
	debug.Log("Reading client secrets from: %s", secretsPath)
	byteData, err := os.ReadFile(secretsPath)
	if err != nil {
		return nil, fmt.Errorf("unable to read client secrets: %w", err)
	}
	config, err := google.ConfigFromJSON(byteData)
	if err != nil {
		return nil, fmt.Errorf("unable to parse client secrets: %w", err)
	}

	m := &Manager{
		config:     config,
		store:      store,
		authorizer: authorizer,
	}
	for _, opt := range opts {
		opt(m)
	}
	return m, nil
}

// Authenticate returns a YouTube service bound to scope. Unless reuse is set
// the stored credential is deleted first, forcing a new consent.
func (m *Manager) Authenticate(ctx context.Context, scope string, reuse bool) (*youtube.Service, error) {
	if scope == "" {
		return nil, errors.New("no scope selected")
	}

	if !reuse {
		debug.Log("Scope changed to %s, dropping stored credential", scope)
		if err := m.store.Delete(); err != nil {
			return nil, err
		}
	}

	config := *m.config
	config.Scopes = []string{scope}

	token, err := m.store.Load()
	if err != nil {
		return nil, err
	}
	if token == nil {
		debug.Log("No stored credential, starting OAuth flow")
		token, err = m.authorizer.Authorize(ctx, &config)
		if err != nil {
			return nil, err
		}
		if err := m.store.Save(token); err != nil {
			return nil, err
		}
	} else {
		debug.Log("Using stored credential")
	}

	tokenSource := &savingTokenSource{
		base:  config.TokenSource(ctx, token),
		store: m.store,
		last:  token.AccessToken,
	}

	opts := append([]option.ClientOption{option.WithTokenSource(tokenSource)}, m.clientOptions...)
	service, err := youtube.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to create YouTube service: %w", err)
	}
	return service, nil
}

// savingTokenSource writes refreshed tokens back to the store.
type savingTokenSource struct {
	base  oauth2.TokenSource
	store Store

	mu   sync.Mutex
	last string
}

func (s *savingTokenSource) Token() (*oauth2.Token, error) {
	token, err := s.base.Token()
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if token.AccessToken == s.last {
		return token, nil
	}
	debug.Log("The access token has been refreshed")
	if err := s.store.Save(token); err != nil {
		log.Printf("Unable to store the refreshed credential: %v\n", err)
		return token, nil
	}
	s.last = token.AccessToken
	return token, nil
}
