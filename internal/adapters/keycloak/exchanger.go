package keycloak

// Package keycloak provides a CredentialExchanger that talks directly to the
// IdP token endpoint using the resource-owner password grant. Endpoint
// locations come from OIDC discovery, so only the issuer URL is configured.

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/coreos/go-oidc/v3/oidc"
	"golang.org/x/oauth2"

	"github.com/AbdelhakNemri/sports-arena-client/internal/adapters/gateway"
)

// Config controls the direct-grant exchanger.
type Config struct {
	IssuerURL    string
	ClientID     string
	ClientSecret string
	Scopes       []string
	Logger       *slog.Logger
}

// Exchanger implements ports.CredentialExchanger against the IdP.
type Exchanger struct {
	oauth  oauth2.Config
	logger *slog.Logger
}

// NewExchanger discovers the IdP endpoints and constructs an exchanger.
func NewExchanger(ctx context.Context, cfg Config) (*Exchanger, error) {
	if cfg.IssuerURL == "" {
		return nil, errors.New("keycloak: issuer URL is required")
	}
	if cfg.ClientID == "" {
		return nil, errors.New("keycloak: client ID is required")
	}

	provider, err := oidc.NewProvider(ctx, cfg.IssuerURL)
	if err != nil {
		return nil, fmt.Errorf("discover issuer %s: %w", cfg.IssuerURL, err)
	}

	logger := cfg.Logger
	if logger != nil {
		logger = logger.With("component", "keycloak_exchanger")
	}

	return &Exchanger{
		oauth: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			Scopes:       cfg.Scopes,
		},
		logger: logger,
	}, nil
}

// Exchange performs the password grant and returns the access token. IdP
// rejections are mapped into the gateway error shape so callers interpret
// the status uniformly across auth modes.
func (e *Exchanger) Exchange(ctx context.Context, username, password string) (string, error) {
	token, err := e.oauth.PasswordCredentialsToken(ctx, username, password)
	if err != nil {
		var retrieveErr *oauth2.RetrieveError
		if errors.As(err, &retrieveErr) {
			apiErr := &gateway.APIError{
				Status:  retrieveErr.Response.StatusCode,
				Code:    retrieveErr.ErrorCode,
				Message: retrieveErr.ErrorDescription,
			}
			if apiErr.Message == "" {
				apiErr.Message = retrieveErr.ErrorCode
			}
			return "", gateway.ClassifyError(apiErr)
		}
		return "", gateway.ClassifyError(&gateway.APIError{Status: 0, Message: err.Error()})
	}

	if e.logger != nil {
		e.logger.DebugContext(ctx, "password grant succeeded", "expires", token.Expiry)
	}
	return token.AccessToken, nil
}
