package gateway

import (
	"context"
	"fmt"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// AuthAPI talks to the auth service through the gateway.
type AuthAPI struct {
	c *Client
}

// Login exchanges credentials for a token envelope. Failures are returned
// verbatim as APIError so the caller can interpret the status (401/400
// invalid credentials, 0 network unreachable, 5xx server error).
func (a *AuthAPI) Login(ctx context.Context, username, password string) (model.LoginResponse, error) {
	var resp model.LoginResponse
	req := model.LoginRequest{Username: username, Password: password}
	if err := a.c.post(ctx, "/auth/login", req, &resp); err != nil {
		return model.LoginResponse{}, err
	}
	return resp, nil
}

// Exchange implements ports.CredentialExchanger on top of Login.
func (a *AuthAPI) Exchange(ctx context.Context, username, password string) (string, error) {
	resp, err := a.Login(ctx, username, password)
	if err != nil {
		return "", err
	}
	if resp.AccessToken == "" {
		return "", fmt.Errorf("login response carried no access token")
	}
	return resp.AccessToken, nil
}

// Me fetches the authenticated identity as the auth service sees it.
func (a *AuthAPI) Me(ctx context.Context) (map[string]any, error) {
	var out map[string]any
	if err := a.c.get(ctx, "/auth/me", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// RegisterURL fetches the IdP self-registration URL.
func (a *AuthAPI) RegisterURL(ctx context.Context) (string, error) {
	var out struct {
		URL string `json:"url"`
	}
	if err := a.c.get(ctx, "/auth/register-url", nil, &out); err != nil {
		return "", err
	}
	return out.URL, nil
}

// Health probes the auth service health endpoint.
func (a *AuthAPI) Health(ctx context.Context) error {
	return a.c.get(ctx, "/auth/health", nil, nil)
}
