// Package configstore holds the loaded site configuration on the client and
// saves changes through the store API.
package configstore

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"go.uber.org/zap"

	"storefront-app/internal/domain/site"
)

// Remote is the part of the store API the configuration store talks to.
type Remote interface {
	GetSiteConfig(ctx context.Context) (*site.SiteConfig, error)
	ReplaceSiteConfig(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error)
	PatchSiteConfig(ctx context.Context, u site.Update) (*site.SiteConfig, error)
}

type State int

const (
	StateUnloaded State = iota
	StateReady
	StateFailed
)

func (s State) String() string {
	switch s {
	case StateReady:
		return "ready"
	case StateFailed:
		return "error"
	default:
		return "unloaded"
	}
}

var ErrNotLoaded = errors.New("site config not loaded")

// StateError is returned by Current after a failed Load. No default
// configuration is ever substituted for a failed load.
type StateError struct {
	Err error
}

func (e *StateError) Error() string { return "site config unavailable: " + e.Err.Error() }
func (e *StateError) Unwrap() error { return e.Err }

type Store struct {
	remote Remote
	logger *zap.Logger

	mu          sync.Mutex
	state       State
	current     *site.SiteConfig
	loadErr     error
	subscribers []func(*site.SiteConfig)
}

func New(remote Remote, logger *zap.Logger) *Store {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{remote: remote, logger: logger}
}

// OnChange registers fn to run with a copy of every newly accepted document.
func (s *Store) OnChange(fn func(*site.SiteConfig)) {
	s.mu.Lock()
	s.subscribers = append(s.subscribers, fn)
	s.mu.Unlock()
}

// Load fetches the canonical document and makes it current. On failure the
// store enters StateFailed and Current reports the error until a later Load or
// Save succeeds.
func (s *Store) Load(ctx context.Context) (*site.SiteConfig, error) {
	cfg, err := s.remote.GetSiteConfig(ctx)
	if err != nil {
		s.mu.Lock()
		s.state = StateFailed
		s.loadErr = err
		s.current = nil
		s.mu.Unlock()
		s.logger.Error("Site config load failed", zap.Error(err))
		return nil, &StateError{Err: err}
	}
	return s.accept(cfg), nil
}

// Save replaces the whole document. Local state becomes the server's response,
// never the request. On failure local state is left as it was.
func (s *Store) Save(ctx context.Context, cfg *site.SiteConfig) (*site.SiteConfig, error) {
	saved, err := s.remote.ReplaceSiteConfig(ctx, site.Normalize(cfg.Clone()))
	if err != nil {
		return nil, fmt.Errorf("save site config: %w", err)
	}
	return s.accept(saved), nil
}

// SaveUpdate sends a partial save of the mergeable fields in u.
func (s *Store) SaveUpdate(ctx context.Context, u site.Update) (*site.SiteConfig, error) {
	if u.IsEmpty() {
		return s.Current()
	}
	saved, err := s.remote.PatchSiteConfig(ctx, u)
	if err != nil {
		return nil, fmt.Errorf("save site config: %w", err)
	}
	return s.accept(saved), nil
}

// Current returns a copy of the current document.
func (s *Store) Current() (*site.SiteConfig, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	switch s.state {
	case StateFailed:
		return nil, &StateError{Err: s.loadErr}
	case StateUnloaded:
		return nil, ErrNotLoaded
	}
	return s.current.Clone(), nil
}

func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *Store) accept(cfg *site.SiteConfig) *site.SiteConfig {
	cfg = site.Normalize(cfg)

	s.mu.Lock()
	s.current = cfg
	s.state = StateReady
	s.loadErr = nil
	subs := append([]func(*site.SiteConfig){}, s.subscribers...)
	s.mu.Unlock()

	for _, fn := range subs {
		fn(cfg.Clone())
	}
	return cfg.Clone()
}
