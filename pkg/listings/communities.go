package listings

import (
	"context"
	"fmt"
)

// CommunityGateway exposes CRUD operations for communities. Each call is a
// single round trip; errors are the normalized client shapes, unchanged.
type CommunityGateway struct {
	c *Client
}

// List returns all communities.
func (g *CommunityGateway) List(ctx context.Context) ([]Community, error) {
	var out []Community
	if err := g.c.get(ctx, "/communities", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one community by id.
func (g *CommunityGateway) Get(ctx context.Context, id int64) (*Community, error) {
	var out Community
	if err := g.c.get(ctx, fmt.Sprintf("/communities/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CommunityPayload is the create/update body for a community.
type CommunityPayload struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Create creates a community. Admin-only on the backend; the client does
// not pre-check roles.
func (g *CommunityGateway) Create(ctx context.Context, payload CommunityPayload) (*Community, error) {
	var out Community
	if err := g.c.post(ctx, "/communities", payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces a community's editable fields.
func (g *CommunityGateway) Update(ctx context.Context, id int64, payload CommunityPayload) (*Community, error) {
	var out Community
	if err := g.c.put(ctx, fmt.Sprintf("/communities/%d", id), payload, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes a community.
func (g *CommunityGateway) Remove(ctx context.Context, id int64) error {
	return g.c.delete(ctx, fmt.Sprintf("/communities/%d", id))
}
