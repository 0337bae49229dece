package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// Well-known navigation targets.
const (
	PathLogin           = "/login"
	PathHome            = "/"
	PathPlayerDashboard = "/player/dashboard"
	PathOwnerDashboard  = "/owner/dashboard"
	PathAdminDashboard  = "/admin/dashboard"
)

// ErrNoPrimaryRole is returned when an authenticated user carries no
// recognized role and therefore has no dashboard to land on.
var ErrNoPrimaryRole error = noPrimaryRoleError{}

type noPrimaryRoleError struct{}

func (noPrimaryRoleError) Error() string { return "authenticated user has no recognized role" }

// DashboardPath maps a role to its dashboard route.
func DashboardPath(role domainauth.Role) (string, bool) {
	switch role {
	case domainauth.RolePlayer:
		return PathPlayerDashboard, true
	case domainauth.RoleOwner:
		return PathOwnerDashboard, true
	case domainauth.RoleAdmin:
		return PathAdminDashboard, true
	default:
		return "", false
	}
}

// AuthWorkflowOptions groups dependencies for AuthWorkflow.
type AuthWorkflowOptions struct {
	Exchanger ports.CredentialExchanger // Required: credential-for-token exchange
	Tokens    ports.TokenStore          // Required: token persistence
	Session   *SessionContext           // Required: session holder
	Navigator ports.Navigator           // Required: navigation sink
	ClientID  string                    // Required: client ID for role extraction
	Logger    *slog.Logger              // Optional: structured logger
}

// AuthWorkflow orchestrates login, logout, and post-login routing on top of
// the token store and session context.
type AuthWorkflow struct {
	exchanger ports.CredentialExchanger
	tokens    ports.TokenStore
	session   *SessionContext
	navigator ports.Navigator
	clientID  string
	logger    *slog.Logger
}

// NewAuthWorkflow constructs a new AuthWorkflow.
func NewAuthWorkflow(opts AuthWorkflowOptions) (*AuthWorkflow, error) {
	if opts.Exchanger == nil {
		return nil, errors.New("CredentialExchanger is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("TokenStore is required")
	}
	if opts.Session == nil {
		return nil, errors.New("SessionContext is required")
	}
	if opts.Navigator == nil {
		return nil, errors.New("Navigator is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "auth_workflow")
	}

	return &AuthWorkflow{
		exchanger: opts.Exchanger,
		tokens:    opts.Tokens,
		session:   opts.Session,
		navigator: opts.Navigator,
		clientID:  opts.ClientID,
		logger:    logger,
	}, nil
}

// Login exchanges credentials for a token, persists it, and populates the
// session from the token payload. Exchange failures are returned verbatim
// with the session untouched. A token that persists but fails to decode
// leaves the session unpopulated; the error is logged, not returned, since
// the credential itself was accepted.
func (w *AuthWorkflow) Login(ctx context.Context, username, password string) error {
	token, err := w.exchanger.Exchange(ctx, username, password)
	if err != nil {
		return err
	}

	if err := w.tokens.Save(ctx, token); err != nil {
		return fmt.Errorf("save token: %w", err)
	}

	info, err := domainauth.UserInfoFromToken(token, w.clientID)
	if err != nil {
		if w.logger != nil {
			w.logger.WarnContext(ctx, "accepted token failed to decode, session left unpopulated", "error", err)
		}
		return nil
	}
	w.session.SetAuthUserInfo(info)

	if w.logger != nil {
		w.logger.InfoContext(ctx, "login succeeded", "subject", info.Subject, "roles", info.Roles)
	}
	return nil
}

// Logout clears the session and routes to the login page. It never fails:
// token removal problems are logged inside Clear and the local state always
// resets.
func (w *AuthWorkflow) Logout(ctx context.Context) {
	w.session.Clear(ctx)
	w.navigator.NavigateTo(PathLogin, nil)

	if w.logger != nil {
		w.logger.InfoContext(ctx, "logged out")
	}
}

// RedirectToDashboard routes the signed-in user to the dashboard of their
// primary role. A user with no recognized role is a hard error, not a
// fallback route.
func (w *AuthWorkflow) RedirectToDashboard(ctx context.Context) error {
	role, ok := w.session.PrimaryRole()
	if !ok {
		return ErrNoPrimaryRole
	}

	path, ok := DashboardPath(role)
	if !ok {
		return apperrors.Internalf("no dashboard for role %s", role)
	}

	if w.logger != nil {
		w.logger.InfoContext(ctx, "redirecting to dashboard", "role", role, "path", path)
	}
	w.navigator.NavigateTo(path, nil)
	return nil
}
