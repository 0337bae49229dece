package auth

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
	"github.com/jmespath-community/go-jmespath"
)

// The IdP emits role claims in one of three shapes depending on client
// scope mapping. Checked in fixed priority order: the first shape present
// in the payload wins, even if it filters down to zero recognized roles.
var roleClaimExpressions = []string{
	"roles",
	"realm_access.roles",
	// resource_access is client-scoped; the expression is completed with
	// the configured client ID in ExtractRoles.
}

// ExtractRoles derives the ordered recognized-role list from a decoded token
// payload. clientID selects the resource_access entry to inspect.
// Unrecognized claims are silently dropped; claim-array order is preserved.
func ExtractRoles(claims jwt.MapClaims, clientID string) []Role {
	expressions := append([]string{}, roleClaimExpressions...)
	if clientID != "" {
		expressions = append(expressions, fmt.Sprintf("resource_access.%q.roles", clientID))
	}

	data := map[string]any(claims)
	for _, expr := range expressions {
		raw, err := jmespath.Search(expr, data)
		if err != nil || raw == nil {
			continue
		}
		return filterRecognized(rawRoleList(raw))
	}
	return nil
}

// UserInfoFromToken decodes a token payload and builds the identity snapshot
// from it: subject, email, and the ordered recognized-role list. Login and
// session restoration both derive identity through here.
func UserInfoFromToken(token, clientID string) (AuthUserInfo, error) {
	claims, err := DecodeToken(token)
	if err != nil {
		return AuthUserInfo{}, err
	}

	info := AuthUserInfo{
		Roles: ExtractRoles(claims, clientID),
	}
	if sub, ok := claims["sub"].(string); ok {
		info.Subject = sub
	}
	if email, ok := claims["email"].(string); ok {
		info.Email = email
	}
	return info, nil
}

// rawRoleList normalizes a claim value into a list of role name strings.
// A bare string claim is treated as a single-element list.
func rawRoleList(raw any) []string {
	switch v := raw.(type) {
	case []any:
		names := make([]string, 0, len(v))
		for _, item := range v {
			if s, ok := item.(string); ok {
				names = append(names, s)
			}
		}
		return names
	case string:
		return []string{v}
	}
	return nil
}

func filterRecognized(names []string) []Role {
	var roles []Role
	for _, name := range names {
		if r := Role(name); r.Valid() {
			roles = append(roles, r)
		}
	}
	return roles
}
