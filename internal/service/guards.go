package service

import (
	"context"
	"errors"
	"log/slog"
	"net/url"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// Decision is the outcome of a guard check: either the navigation proceeds
// or the caller is redirected elsewhere.
type Decision struct {
	Allow      bool
	RedirectTo string
	Query      url.Values
}

// Allowed is the pass decision.
func Allowed() Decision {
	return Decision{Allow: true}
}

// RedirectDecision builds a deny decision pointing at another route.
func RedirectDecision(path string, query url.Values) Decision {
	return Decision{RedirectTo: path, Query: query}
}

// GuardsOptions groups dependencies for Guards.
type GuardsOptions struct {
	Session *SessionContext  // Required: session holder
	Tokens  ports.TokenStore // Required: token persistence
	Logger  *slog.Logger     // Optional: structured logger
}

// Guards evaluates route access. Guards are pure decision makers: they
// never navigate themselves, the caller acts on the Decision.
type Guards struct {
	session *SessionContext
	tokens  ports.TokenStore
	logger  *slog.Logger
}

// NewGuards constructs route guards.
func NewGuards(opts GuardsOptions) (*Guards, error) {
	if opts.Session == nil {
		return nil, errors.New("SessionContext is required")
	}
	if opts.Tokens == nil {
		return nil, errors.New("TokenStore is required")
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "guards")
	}

	return &Guards{
		session: opts.Session,
		tokens:  opts.Tokens,
		logger:  logger,
	}, nil
}

// CheckAuth admits only callers holding a live token. Missing or expired
// tokens redirect to the login page.
func (g *Guards) CheckAuth(ctx context.Context) Decision {
	token, err := g.tokens.Get(ctx)
	if err != nil || domainauth.IsTokenExpired(token) {
		return RedirectDecision(PathLogin, nil)
	}
	return Allowed()
}

// CheckRoles admits callers carrying at least one of the required roles.
// An empty requirement admits everyone. Unauthenticated callers go to the
// login page with the attempted target as returnUrl; authenticated callers
// lacking the role go home.
func (g *Guards) CheckRoles(targetPath string, required ...domainauth.Role) Decision {
	if len(required) == 0 {
		return Allowed()
	}

	if !g.session.IsAuthenticated() {
		query := url.Values{}
		query.Set("returnUrl", targetPath)
		return RedirectDecision(PathLogin, query)
	}

	if g.session.HasAnyRole(required...) {
		return Allowed()
	}

	if g.logger != nil {
		g.logger.Info("role check denied", "path", targetPath, "required", required)
	}
	return RedirectDecision(PathHome, nil)
}

// CheckGuest admits only signed-out callers. A signed-in caller is sent to
// the dashboard of their primary role; a signed-in caller without one is the
// invariant violation ErrNoPrimaryRole.
func (g *Guards) CheckGuest() (Decision, error) {
	if !g.session.IsAuthenticated() {
		return Allowed(), nil
	}

	role, ok := g.session.PrimaryRole()
	if !ok {
		return Decision{}, ErrNoPrimaryRole
	}

	path, ok := DashboardPath(role)
	if !ok {
		return Decision{}, ErrNoPrimaryRole
	}
	return RedirectDecision(path, nil), nil
}

// Route describes one guarded route of the application shell.
type Route struct {
	Path      string
	Roles     []domainauth.Role
	AuthOnly  bool
	GuestOnly bool
}

// Routes is the application route table. Role lists mirror who each surface
// is built for; paths without constraints are open.
func Routes() []Route {
	return []Route{
		{Path: PathHome},
		{Path: PathLogin, GuestOnly: true},
		{Path: "/register", GuestOnly: true},
		{Path: PathPlayerDashboard, AuthOnly: true, Roles: []domainauth.Role{domainauth.RolePlayer}},
		{Path: "/player/bookings", AuthOnly: true, Roles: []domainauth.Role{domainauth.RolePlayer}},
		{Path: "/player/events", AuthOnly: true, Roles: []domainauth.Role{domainauth.RolePlayer}},
		{Path: PathOwnerDashboard, AuthOnly: true, Roles: []domainauth.Role{domainauth.RoleOwner}},
		{Path: "/owner/fields", AuthOnly: true, Roles: []domainauth.Role{domainauth.RoleOwner}},
		{Path: "/owner/bookings", AuthOnly: true, Roles: []domainauth.Role{domainauth.RoleOwner}},
		{Path: PathAdminDashboard, AuthOnly: true, Roles: []domainauth.Role{domainauth.RoleAdmin}},
		{Path: "/fields", AuthOnly: true},
		{Path: "/notifications", AuthOnly: true},
		{Path: "/profile", AuthOnly: true},
	}
}

// CheckRoute runs the guards a route declares, in the order the application
// shell applies them: guest first, then auth, then roles.
func (g *Guards) CheckRoute(ctx context.Context, route Route) (Decision, error) {
	if route.GuestOnly {
		return g.CheckGuest()
	}
	if route.AuthOnly {
		if d := g.CheckAuth(ctx); !d.Allow {
			return d, nil
		}
	}
	return g.CheckRoles(route.Path, route.Roles...), nil
}
