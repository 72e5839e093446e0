// Package session holds the signed-in administrator's state for the console.
//
// A Store is created once at startup and injected into the API client (as its
// token source), the route guard and the console. Authentication is derived
// from the token alone: IsAuthenticated is true whenever a token is held in
// memory. The cached profile is a convenience mirror and never decides
// whether the session is valid.
package session

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/notify"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

// MsgSignedIn and MsgSignedOut are shown after a successful login and logout.
const (
	MsgSignedIn  = "signed in"
	MsgSignedOut = "signed out"
)

// AuthAPI is the part of the admin API the session needs.
type AuthAPI interface {
	Login(ctx context.Context, creds models.LoginRequest) (models.LoginResult, error)
	Logout(ctx context.Context) error
}

// TokenStore persists the session; *tokenstore.Store implements it.
type TokenStore interface {
	GetValidToken(ctx context.Context) (string, error)
	PersistToken(ctx context.Context, token string) error
	ReadUser(ctx context.Context) (*models.AdminProfile, error)
	PersistUser(ctx context.Context, user models.AdminProfile) error
	ClearAll(ctx context.Context) error
}

type Store struct {
	tokens   TokenStore
	auth     AuthAPI
	notifier notify.Notifier
	log      logging.Logger

	resolve  singleflight.Group
	checking atomic.Bool

	// writeMu orders persisted and in-memory writes together so the last
	// writer wins in both places.
	writeMu sync.Mutex

	mu      sync.RWMutex
	token   string
	profile *models.AdminProfile
	loading int
}

type Option func(*Store)

func WithNotifier(n notify.Notifier) Option {
	return func(s *Store) { s.notifier = n }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

func New(tokens TokenStore, auth AuthAPI, opts ...Option) *Store {
	s := &Store{
		tokens:   tokens,
		auth:     auth,
		notifier: notify.Nop{},
		log:      logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// EnsureSession loads the session from storage. Concurrent callers share one
// resolution and all return once it has finished. Storage and decode
// problems end in a cleared session and are only logged. No network call is
// made, so a token revoked on the server is noticed on the next API call.
func (s *Store) EnsureSession(ctx context.Context) {
	_, _, _ = s.resolve.Do("ensure", func() (any, error) {
		s.checking.Store(true)
		defer s.checking.Store(false)

		s.load(ctx)
		return nil, nil
	})
}

func (s *Store) load(ctx context.Context) {
	token, err := s.tokens.GetValidToken(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read stored token", "error", err)
	}
	if err != nil || token == "" {
		if err := s.ClearSession(ctx); err != nil {
			s.log.Warn(ctx, "failed to clear session", "error", err)
		}
		return
	}

	user, err := s.tokens.ReadUser(ctx)
	if err != nil {
		s.log.Warn(ctx, "failed to read cached profile", "error", err)
		user = nil
	}

	s.mu.Lock()
	s.token = token
	s.profile = user
	s.mu.Unlock()
}

// Checking reports whether an EnsureSession resolution is in flight.
func (s *Store) Checking() bool {
	return s.checking.Load()
}

// Login signs in with creds. The token and profile from the response are
// kept when present. API errors are returned unchanged. Logins are not
// serialised against each other: when two overlap, the one that finishes
// last wins.
func (s *Store) Login(ctx context.Context, creds models.LoginRequest) error {
	s.setLoading(1)
	defer s.setLoading(-1)

	res, err := s.auth.Login(ctx, creds)
	if err != nil {
		return err
	}

	if err := s.adopt(ctx, res); err != nil {
		return err
	}

	s.log.Info(ctx, "admin signed in", "username", creds.Username)
	s.notifier.Success(ctx, MsgSignedIn)
	return nil
}

func (s *Store) adopt(ctx context.Context, res models.LoginResult) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	if res.Token != "" {
		s.mu.Lock()
		s.token = res.Token
		s.mu.Unlock()
		if err := s.tokens.PersistToken(ctx, res.Token); err != nil {
			return fmt.Errorf("persist token: %w", err)
		}
	}

	if res.User != nil {
		u := *res.User
		s.mu.Lock()
		s.profile = &u
		s.mu.Unlock()
		if err := s.tokens.PersistUser(ctx, u); err != nil {
			return fmt.Errorf("persist profile: %w", err)
		}
	}
	return nil
}

// Loading reports whether a Login call is in progress.
func (s *Store) Loading() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loading > 0
}

func (s *Store) setLoading(delta int) {
	s.mu.Lock()
	s.loading += delta
	s.mu.Unlock()
}

// Logout calls the logout endpoint and then clears the session whatever the
// outcome. The endpoint's error, if any, is returned after clearing.
func (s *Store) Logout(ctx context.Context) error {
	apiErr := s.auth.Logout(ctx)
	clearErr := s.ClearSession(ctx)

	if apiErr != nil {
		s.log.Warn(ctx, "logout request failed, local session cleared", "error", apiErr)
		return apiErr
	}
	if clearErr != nil {
		return clearErr
	}
	s.notifier.Success(ctx, MsgSignedOut)
	return nil
}

// ClearSession forgets the token and profile in memory and in storage. It
// is idempotent.
func (s *Store) ClearSession(ctx context.Context) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.token = ""
	s.profile = nil
	s.mu.Unlock()

	if err := s.tokens.ClearAll(ctx); err != nil {
		return fmt.Errorf("clear stored session: %w", err)
	}
	return nil
}

func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Token returns the in-memory token; it makes Store an api.TokenSource.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// Profile returns a copy of the cached profile, or nil.
func (s *Store) Profile() *models.AdminProfile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	return &p
}
