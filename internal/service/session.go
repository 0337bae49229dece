package service

import (
	"context"
	"errors"
	"log/slog"
	"slices"
	"sync"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// SessionContextOptions groups dependencies for SessionContext.
type SessionContextOptions struct {
	Tokens   ports.TokenStore // Required: token persistence
	ClientID string           // Required: client ID for resource_access role lookup
	Logger   *slog.Logger     // Optional: structured logger
}

// SessionContext is the single holder of the signed-in identity. All writes
// go through it; readers see a consistent snapshot. Auth state is derived
// once per token, at login or restoration, never re-derived per read.
type SessionContext struct {
	tokens   ports.TokenStore
	clientID string
	logger   *slog.Logger

	mu        sync.RWMutex
	user      *domainauth.AuthUserInfo
	profile   *model.User
	observers []func(authenticated bool)
}

// NewSessionContext constructs a SessionContext and silently restores the
// session from a previously stored token. A missing, expired, or undecodable
// token leaves the context signed out without error.
func NewSessionContext(ctx context.Context, opts SessionContextOptions) (*SessionContext, error) {
	if opts.Tokens == nil {
		return nil, errors.New("TokenStore is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "session_context")
	}

	s := &SessionContext{
		tokens:   opts.Tokens,
		clientID: opts.ClientID,
		logger:   logger,
	}
	s.restore(ctx)
	return s, nil
}

// restore rebuilds the auth snapshot from the stored token, if any.
func (s *SessionContext) restore(ctx context.Context) {
	token, err := s.tokens.Get(ctx)
	if err != nil {
		if !errors.Is(err, ports.ErrNoToken) && s.logger != nil {
			s.logger.WarnContext(ctx, "token restore failed", "error", err)
		}
		return
	}
	if domainauth.IsTokenExpired(token) {
		if s.logger != nil {
			s.logger.InfoContext(ctx, "stored token expired, staying signed out")
		}
		return
	}

	info, err := domainauth.UserInfoFromToken(token, s.clientID)
	if err != nil {
		if s.logger != nil {
			s.logger.WarnContext(ctx, "stored token undecodable, staying signed out", "error", err)
		}
		return
	}

	s.mu.Lock()
	s.user = &info
	s.mu.Unlock()

	if s.logger != nil {
		s.logger.InfoContext(ctx, "session restored", "subject", info.Subject, "roles", info.Roles)
	}
}

// SetAuthUserInfo replaces the auth snapshot and notifies observers when the
// authenticated state flips.
func (s *SessionContext) SetAuthUserInfo(info domainauth.AuthUserInfo) {
	s.mu.Lock()
	was := s.user != nil
	s.user = &info
	observers := s.snapshotObserversLocked()
	s.mu.Unlock()

	if !was {
		notify(observers, true)
	}
}

// AuthUser returns the current auth snapshot, ok=false when signed out.
func (s *SessionContext) AuthUser() (domainauth.AuthUserInfo, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return domainauth.AuthUserInfo{}, false
	}
	return *s.user, true
}

// SetCurrentUser attaches the full profile fetched from the player service.
func (s *SessionContext) SetCurrentUser(user *model.User) {
	s.mu.Lock()
	s.profile = user
	s.mu.Unlock()
}

// UpdateCurrentUser applies a partial update to the stored profile. A nil
// stored profile is left untouched.
func (s *SessionContext) UpdateCurrentUser(patch func(*model.User)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.profile == nil {
		return
	}
	patch(s.profile)
}

// CurrentUser returns the attached profile, nil when none was fetched.
func (s *SessionContext) CurrentUser() *model.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	copied := *s.profile
	return &copied
}

// Clear signs the session out: the stored token is removed, the snapshot and
// profile are dropped, and observers are notified of the transition. Token
// removal failure is logged, never surfaced; the in-memory state always
// clears.
func (s *SessionContext) Clear(ctx context.Context) {
	if err := s.tokens.Remove(ctx); err != nil && s.logger != nil {
		s.logger.WarnContext(ctx, "token removal failed during sign-out", "error", err)
	}

	s.mu.Lock()
	was := s.user != nil
	s.user = nil
	s.profile = nil
	observers := s.snapshotObserversLocked()
	s.mu.Unlock()

	if was {
		notify(observers, false)
	}
}

// IsAuthenticated reports whether an auth snapshot is present.
func (s *SessionContext) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil
}

// HasRole reports whether the signed-in user carries the given role.
func (s *SessionContext) HasRole(role domainauth.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.HasRole(role)
}

// HasAnyRole reports whether the signed-in user carries any of the given
// roles. An empty list matches nothing.
func (s *SessionContext) HasAnyRole(roles ...domainauth.Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return false
	}
	for _, role := range roles {
		if s.user.HasRole(role) {
			return true
		}
	}
	return false
}

// PrimaryRole returns the first recognized role, ok=false when signed out or
// when the token carried no recognized role.
func (s *SessionContext) PrimaryRole() (domainauth.Role, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return "", false
	}
	return s.user.PrimaryRole()
}

func (s *SessionContext) IsPlayer() bool { return s.HasRole(domainauth.RolePlayer) }
func (s *SessionContext) IsOwner() bool  { return s.HasRole(domainauth.RoleOwner) }
func (s *SessionContext) IsAdmin() bool  { return s.HasRole(domainauth.RoleAdmin) }

// OnAuthChange registers an observer invoked on sign-in and sign-out
// transitions. Observers fire outside the lock and only when the state
// actually flips.
func (s *SessionContext) OnAuthChange(fn func(authenticated bool)) {
	s.mu.Lock()
	s.observers = append(s.observers, fn)
	s.mu.Unlock()
}

func (s *SessionContext) snapshotObserversLocked() []func(bool) {
	return slices.Clone(s.observers)
}

func notify(observers []func(bool), authenticated bool) {
	for _, fn := range observers {
		fn(authenticated)
	}
}
