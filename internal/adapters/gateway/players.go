package gateway

import (
	"context"
	"fmt"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// PlayersAPI talks to the player service through the gateway.
type PlayersAPI struct {
	c *Client
}

// Me fetches the authenticated user's player profile.
func (p *PlayersAPI) Me(ctx context.Context) (model.User, error) {
	var out model.User
	if err := p.c.get(ctx, "/players/me", nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// Update applies a partial profile update.
func (p *PlayersAPI) Update(ctx context.Context, id int64, patch model.UserPatch) (model.User, error) {
	var out model.User
	if err := p.c.put(ctx, fmt.Sprintf("/players/%d", id), patch, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}

// ByEmail looks up a player profile by email.
func (p *PlayersAPI) ByEmail(ctx context.Context, email string) (model.User, error) {
	var out model.User
	if err := p.c.get(ctx, "/players/email/"+email, nil, &out); err != nil {
		return model.User{}, err
	}
	return out, nil
}
