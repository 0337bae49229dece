package ports

// Package ports defines interfaces (hexagonal ports) for the client core.
// Implementations live in internal/adapters; orchestration in internal/service.

import (
	"context"
	"net/url"
)

// TokenStore persists the opaque bearer credential under a single well-known
// key. The storage medium (durable, session-scoped, or shared) is selected
// once at construction. The token is trusted as opaque: no encryption, no
// integrity check.
type TokenStore interface {
	Save(ctx context.Context, token string) error
	// Get returns the stored token, or ErrNoToken when none is present.
	Get(ctx context.Context) (string, error)
	Remove(ctx context.Context) error
	Has(ctx context.Context) bool
}

// CredentialExchanger trades a username/password pair for a bearer token.
// Implementations exist for the gateway login endpoint and for direct-grant
// exchange against the IdP.
type CredentialExchanger interface {
	Exchange(ctx context.Context, username, password string) (string, error)
}

// Navigator consumes navigation decisions. The real router lives outside
// this module; adapters record or log the target.
type Navigator interface {
	NavigateTo(path string, query url.Values)
}

// ErrNoToken is returned by TokenStore.Get when no token is stored.
type noTokenError struct{}

func (noTokenError) Error() string { return "no token stored" }

var ErrNoToken error = noTokenError{}
