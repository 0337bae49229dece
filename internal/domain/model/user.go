//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// User is the richer player profile fetched from the player service. It is
// distinct from the token-derived identity and loosely typed: the shape is
// owned by the backend contract, not by this client.
type User struct {
	ID         int64  `json:"id,omitempty"`
	KeycloakID string `json:"keycloakId"`
	Email      string `json:"email"`
	LastName   string `json:"nom,omitempty"`
	FirstName  string `json:"prenom,omitempty"`
	Position   string `json:"poste,omitempty"`
	Photo      string `json:"photo,omitempty"`
	Phone      string `json:"tel,omitempty"`
	Bio        string `json:"bio,omitempty"`
	Enabled    bool   `json:"enabled,omitempty"`
	CreatedAt  string `json:"createdAt,omitempty"`
	UpdatedAt  string `json:"updatedAt,omitempty"`
}

// UserPatch carries partial profile updates. Nil fields are left untouched.
type UserPatch struct {
	LastName  *string `json:"nom,omitempty"`
	FirstName *string `json:"prenom,omitempty"`
	Position  *string `json:"poste,omitempty"`
	Photo     *string `json:"photo,omitempty"`
	Phone     *string `json:"tel,omitempty"`
	Bio       *string `json:"bio,omitempty"`
}

// LoginRequest is the credential payload for the gateway login endpoint.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// LoginResponse is the token envelope returned by the gateway. Only
// AccessToken is required; the rest is passed through as issued.
type LoginResponse struct {
	AccessToken  string `json:"access_token"`
	TokenType    string `json:"token_type,omitempty"`
	ExpiresIn    int64  `json:"expires_in,omitempty"`
	RefreshToken string `json:"refresh_token,omitempty"`
}
