package config

import (
	"fmt"
	"strings"
)

// AuthMode represents the credential-exchange mode for login.
type AuthMode string

const (
	// AuthModeGateway exchanges credentials at the gateway login endpoint.
	AuthModeGateway AuthMode = "gateway"
	// AuthModeKeycloak exchanges credentials directly against the IdP
	// token endpoint (resource-owner password grant).
	AuthModeKeycloak AuthMode = "keycloak"
)

// UnmarshalText implements encoding.TextUnmarshaler for AuthMode.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "gateway", "keycloak":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: gateway, keycloak)", v)
	}
}

// KeycloakConfig contains IdP configuration for direct-grant login.
type KeycloakConfig struct {
	IssuerURL    string   `env:"ISSUER_URL"    envDefault:"http://localhost:8180/realms/sports-arena"`
	ClientID     string   `env:"CLIENT_ID"     envDefault:"web-frontend"`
	ClientSecret string   `env:"CLIENT_SECRET"`
	Scopes       []string `env:"SCOPES"        envDefault:"openid;profile;email" envSeparator:";"`
}

// AuthConfig groups all authentication-related configuration.
type AuthConfig struct {
	// Mode determines which credential exchanger performs login.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"gateway"`

	// ClientID selects the resource_access entry inspected for role claims.
	ClientID string `env:"AUTH_CLIENT_ID" envDefault:"web-frontend"`

	// Keycloak configuration (used when Mode=keycloak).
	Keycloak KeycloakConfig `envPrefix:"KEYCLOAK_"`
}
