package service

import (
	"context"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	"github.com/AbdelhakNemri/sports-arena-client/internal/mocks"
	"github.com/AbdelhakNemri/sports-arena-client/internal/testutil"
)

func newGuards(t *testing.T, tokens *mocks.TokenStore) (*Guards, *SessionContext) {
	t.Helper()

	session := newSession(t, tokens)
	guards, err := NewGuards(GuardsOptions{Session: session, Tokens: tokens})
	require.NoError(t, err)
	return guards, session
}

func TestGuards_CheckAuth_LiveTokenAllowed(t *testing.T) {
	tokens := &mocks.TokenStore{}
	require.NoError(t, tokens.Save(context.Background(), testutil.ValidToken(t, nil)))
	guards, _ := newGuards(t, tokens)

	decision := guards.CheckAuth(context.Background())
	assert.True(t, decision.Allow)
}

func TestGuards_CheckAuth_MissingTokenRedirectsToLogin(t *testing.T) {
	guards, _ := newGuards(t, &mocks.TokenStore{})

	decision := guards.CheckAuth(context.Background())
	assert.False(t, decision.Allow)
	assert.Equal(t, PathLogin, decision.RedirectTo)
}

func TestGuards_CheckAuth_ExpiredTokenRedirectsToLogin(t *testing.T) {
	tokens := &mocks.TokenStore{}
	expired := testutil.SignedToken(t, jwt.MapClaims{"exp": 1000})
	require.NoError(t, tokens.Save(context.Background(), expired))
	guards, _ := newGuards(t, tokens)

	decision := guards.CheckAuth(context.Background())
	assert.False(t, decision.Allow)
	assert.Equal(t, PathLogin, decision.RedirectTo)
}

func TestGuards_CheckRoles_EmptyRequirementAdmitsEveryone(t *testing.T) {
	guards, _ := newGuards(t, &mocks.TokenStore{})

	decision := guards.CheckRoles("/fields")
	assert.True(t, decision.Allow)
}

func TestGuards_CheckRoles_UnauthenticatedGetsReturnURL(t *testing.T) {
	guards, _ := newGuards(t, &mocks.TokenStore{})

	decision := guards.CheckRoles("/owner/fields", domainauth.RoleOwner)
	assert.False(t, decision.Allow)
	assert.Equal(t, PathLogin, decision.RedirectTo)
	assert.Equal(t, "/owner/fields", decision.Query.Get("returnUrl"))
}

func TestGuards_CheckRoles_MatchingRoleAllowed(t *testing.T) {
	guards, session := newGuards(t, &mocks.TokenStore{})
	session.SetAuthUserInfo(domainauth.AuthUserInfo{Roles: []domainauth.Role{domainauth.RoleOwner}})

	decision := guards.CheckRoles("/owner/fields", domainauth.RolePlayer, domainauth.RoleOwner)
	assert.True(t, decision.Allow)
}

func TestGuards_CheckRoles_WrongRoleGoesHome(t *testing.T) {
	guards, session := newGuards(t, &mocks.TokenStore{})
	session.SetAuthUserInfo(domainauth.AuthUserInfo{Roles: []domainauth.Role{domainauth.RolePlayer}})

	decision := guards.CheckRoles(PathAdminDashboard, domainauth.RoleAdmin)
	assert.False(t, decision.Allow)
	assert.Equal(t, PathHome, decision.RedirectTo)
	assert.Empty(t, decision.Query)
}

func TestGuards_CheckGuest_SignedOutAllowed(t *testing.T) {
	guards, _ := newGuards(t, &mocks.TokenStore{})

	decision, err := guards.CheckGuest()
	require.NoError(t, err)
	assert.True(t, decision.Allow)
}

func TestGuards_CheckGuest_SignedInGoesToDashboard(t *testing.T) {
	guards, session := newGuards(t, &mocks.TokenStore{})
	session.SetAuthUserInfo(domainauth.AuthUserInfo{Roles: []domainauth.Role{domainauth.RoleOwner}})

	decision, err := guards.CheckGuest()
	require.NoError(t, err)
	assert.False(t, decision.Allow)
	assert.Equal(t, PathOwnerDashboard, decision.RedirectTo)
}

func TestGuards_CheckGuest_SignedInWithoutRoleIsError(t *testing.T) {
	guards, session := newGuards(t, &mocks.TokenStore{})
	session.SetAuthUserInfo(domainauth.AuthUserInfo{Subject: "user-1"})

	_, err := guards.CheckGuest()
	require.ErrorIs(t, err, ErrNoPrimaryRole)
}

func TestGuards_CheckRoute(t *testing.T) {
	tokens := &mocks.TokenStore{}
	require.NoError(t, tokens.Save(context.Background(), testutil.ValidToken(t, jwt.MapClaims{"roles": []string{"PLAYER"}})))
	guards, _ := newGuards(t, tokens)

	var playerDashboard, ownerDashboard, login Route
	for _, route := range Routes() {
		switch route.Path {
		case PathPlayerDashboard:
			playerDashboard = route
		case PathOwnerDashboard:
			ownerDashboard = route
		case PathLogin:
			login = route
		}
	}
	require.NotEmpty(t, playerDashboard.Path)
	require.NotEmpty(t, ownerDashboard.Path)
	require.NotEmpty(t, login.Path)

	decision, err := guards.CheckRoute(context.Background(), playerDashboard)
	require.NoError(t, err)
	assert.True(t, decision.Allow)

	decision, err = guards.CheckRoute(context.Background(), ownerDashboard)
	require.NoError(t, err)
	assert.False(t, decision.Allow)
	assert.Equal(t, PathHome, decision.RedirectTo)

	decision, err = guards.CheckRoute(context.Background(), login)
	require.NoError(t, err)
	assert.False(t, decision.Allow)
	assert.Equal(t, PathPlayerDashboard, decision.RedirectTo)
}
