// Package banner tracks whether a visitor has dismissed the site's
// emergency banner. Dismissal is keyed by an opaque per-visitor token
// carried in a cookie and expires with the visit, mirroring
// session-scoped state: a returning visitor sees the banner again.
//
// The default store keeps state in memory; a Redis-backed store is
// available for deployments with more than one instance.
package banner

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

// ErrInvalidToken is returned when an empty visitor token is supplied.
var ErrInvalidToken = errors.New("banner: invalid visitor token")

// CookieName carries the visitor token between requests.
const CookieName = "sa_visitor"

// DefaultTTL bounds how long a dismissal is remembered.
const DefaultTTL = 12 * time.Hour

// Store persists dismissal state per visitor token.
type Store interface {
	// Dismissed reports whether the token has an active dismissal.
	Dismissed(ctx context.Context, token string) (bool, error)
	// Dismiss records a dismissal that expires after ttl.
	Dismiss(ctx context.Context, token string, ttl time.Duration) error
	// Restore removes a dismissal so the banner shows again.
	Restore(ctx context.Context, token string) error
}

// Service is the engine behind the dismissible banner endpoints.
type Service struct {
	store Store
	ttl   time.Duration
}

// Option configures a Service.
type Option func(*Service)

// WithTTL overrides how long dismissals are remembered.
func WithTTL(ttl time.Duration) Option {
	return func(s *Service) {
		if ttl > 0 {
			s.ttl = ttl
		}
	}
}

// NewService returns a Service over the given store.
func NewService(store Store, opts ...Option) *Service {
	s := &Service{store: store, ttl: DefaultTTL}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewToken mints a fresh visitor token.
func (s *Service) NewToken() string {
	return uuid.NewString()
}

// Dismissed reports whether the visitor has dismissed the banner. Unknown
// or empty tokens report false: the banner shows by default.
func (s *Service) Dismissed(ctx context.Context, token string) (bool, error) {
	if token == "" {
		return false, nil
	}
	return s.store.Dismissed(ctx, token)
}

// Dismiss records the visitor's dismissal.
func (s *Service) Dismiss(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	return s.store.Dismiss(ctx, token, s.ttl)
}

// Restore clears the visitor's dismissal.
func (s *Service) Restore(ctx context.Context, token string) error {
	if token == "" {
		return ErrInvalidToken
	}
	return s.store.Restore(ctx, token)
}
