package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRole_Valid(t *testing.T) {
	assert.True(t, RolePlayer.Valid())
	assert.True(t, RoleOwner.Valid())
	assert.True(t, RoleAdmin.Valid())
	assert.False(t, Role("GUEST").Valid())
	assert.False(t, Role("admin").Valid())
	assert.False(t, Role("").Valid())
}

func TestAuthUserInfo_PrimaryRole(t *testing.T) {
	info := AuthUserInfo{Roles: []Role{RoleOwner, RolePlayer}}
	role, ok := info.PrimaryRole()
	assert.True(t, ok)
	assert.Equal(t, RoleOwner, role)
}

func TestAuthUserInfo_PrimaryRole_Empty(t *testing.T) {
	info := AuthUserInfo{Subject: "user-1"}
	_, ok := info.PrimaryRole()
	assert.False(t, ok)
}

func TestAuthUserInfo_HasRole(t *testing.T) {
	info := AuthUserInfo{Roles: []Role{RolePlayer}}
	assert.True(t, info.HasRole(RolePlayer))
	assert.False(t, info.HasRole(RoleAdmin))
}
