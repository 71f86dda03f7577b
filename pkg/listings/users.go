package listings

import (
	"context"
	"fmt"
)

// UserGateway exposes account listing and creation. Privileged operations
// (AdminRegister, ResetPassword) are enforced server-side; the client-side
// role check is a UI affordance only.
type UserGateway struct {
	c *Client
}

// List returns all user accounts.
func (g *UserGateway) List(ctx context.Context) ([]User, error) {
	var out []User
	if err := g.c.get(ctx, "/users", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one user by id.
func (g *UserGateway) Get(ctx context.Context, id int64) (*User, error) {
	var out User
	if err := g.c.get(ctx, fmt.Sprintf("/users/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Register self-registers a new account.
func (g *UserGateway) Register(ctx context.Context, req RegisterRequest) (*User, error) {
	var out User
	if err := g.c.post(ctx, "/users/register", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// AdminRegister creates an account with explicit roles.
func (g *UserGateway) AdminRegister(ctx context.Context, req AdminRegisterRequest) (*User, error) {
	var out User
	if err := g.c.post(ctx, "/users/adminregistration", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

type resetPasswordRequest struct {
	NewPassword string `json:"newPassword"`
}

// ResetPassword sets a new password for the given account.
func (g *UserGateway) ResetPassword(ctx context.Context, id int64, newPassword string) error {
	return g.c.post(ctx, fmt.Sprintf("/users/%d/reset-password", id), resetPasswordRequest{NewPassword: newPassword}, nil)
}
