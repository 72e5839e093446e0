// Package tokenstore keeps the admin JWT and the cached admin profile in the
// local store and answers whether the stored token is still usable.
//
// Expiry is read from the token's own "exp" claim without verifying the
// signature: the server remains the authority, this package only avoids
// presenting a token that is already known to be stale. A token that carries
// no usable "exp" is treated as never expiring.
package tokenstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/dmitrijs2005/pointquest-admin/internal/client/models"
	"github.com/dmitrijs2005/pointquest-admin/internal/client/repositories/localstore"
	"github.com/dmitrijs2005/pointquest-admin/internal/dbx"
	"github.com/dmitrijs2005/pointquest-admin/internal/logging"
)

const (
	TokenKey = "pointquest_admin_jwt"
	UserKey  = "pointquest_admin_user"
)

type Store struct {
	db   *sql.DB
	repo localstore.Repository
	now  func() time.Time
	log  logging.Logger
}

type Option func(*Store)

// WithClock replaces time.Now for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

func WithLogger(l logging.Logger) Option {
	return func(s *Store) { s.log = l }
}

// New returns a Store over a migrated local database (see localstore.Open).
func New(db *sql.DB, opts ...Option) *Store {
	s := &Store{
		db:   db,
		repo: localstore.NewSQLiteRepository(db),
		now:  time.Now,
		log:  logging.Discard(),
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// PersistToken stores token, replacing any previous value. No validation is
// done here.
func (s *Store) PersistToken(ctx context.Context, token string) error {
	return s.repo.Set(ctx, TokenKey, []byte(token))
}

// ReadToken returns the stored token or "" when there is none.
func (s *Store) ReadToken(ctx context.Context) (string, error) {
	v, err := s.repo.Get(ctx, TokenKey)
	if err != nil {
		return "", err
	}
	return string(v), nil
}

func (s *Store) ClearToken(ctx context.Context) error {
	return s.repo.Delete(ctx, TokenKey)
}

func (s *Store) PersistUser(ctx context.Context, user models.AdminProfile) error {
	b, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode cached user: %w", err)
	}
	return s.repo.Set(ctx, UserKey, b)
}

// ReadUser returns the cached profile, or nil when none is stored. A cached
// value that no longer parses is reported as absent.
func (s *Store) ReadUser(ctx context.Context) (*models.AdminProfile, error) {
	raw, err := s.repo.Get(ctx, UserKey)
	if err != nil {
		return nil, err
	}
	if len(raw) == 0 {
		return nil, nil
	}

	var user models.AdminProfile
	if err := json.Unmarshal(raw, &user); err != nil {
		s.log.Warn(ctx, "failed to parse cached user", "error", err)
		return nil, nil
	}
	return &user, nil
}

func (s *Store) ClearUser(ctx context.Context) error {
	return s.repo.Delete(ctx, UserKey)
}

// ClearAll removes the token and the cached user in one transaction.
func (s *Store) ClearAll(ctx context.Context) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := localstore.NewSQLiteRepository(tx)
		if err := repo.Delete(ctx, TokenKey); err != nil {
			return err
		}
		return repo.Delete(ctx, UserKey)
	})
}

// IsExpired reports whether token's "exp" is at or before the current time.
func (s *Store) IsExpired(token string) bool {
	return IsExpiredAt(token, s.now())
}

// GetValidToken returns the stored token if it is present and not expired.
// An expired token is removed from storage before "" is returned.
func (s *Store) GetValidToken(ctx context.Context) (string, error) {
	token, err := s.ReadToken(ctx)
	if err != nil {
		return "", err
	}
	if token == "" {
		return "", nil
	}
	if s.IsExpired(token) {
		s.log.Debug(ctx, "stored token expired, clearing")
		if err := s.ClearToken(ctx); err != nil {
			return "", err
		}
		return "", nil
	}
	return token, nil
}
