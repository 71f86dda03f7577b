package listings

import (
	"context"
	"fmt"
)

// ApartmentGateway exposes CRUD plus the two batch operations used by the
// bulk import pipeline. No retries happen at this layer; the pipeline owns
// its own fallback strategy.
type ApartmentGateway struct {
	c *Client
}

// List returns all apartments.
func (g *ApartmentGateway) List(ctx context.Context) ([]Apartment, error) {
	var out []Apartment
	if err := g.c.get(ctx, "/apartments", &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get returns one apartment by id.
func (g *ApartmentGateway) Get(ctx context.Context, id int64) (*Apartment, error) {
	var out Apartment
	if err := g.c.get(ctx, fmt.Sprintf("/apartments/%d", id), &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListByCommunity returns the apartments belonging to one community.
func (g *ApartmentGateway) ListByCommunity(ctx context.Context, communityID int64) ([]Apartment, error) {
	var out []Apartment
	if err := g.c.get(ctx, fmt.Sprintf("/apartments/community/%d", communityID), &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create creates a single apartment from an upload record.
func (g *ApartmentGateway) Create(ctx context.Context, record ApartmentUpload) (*Apartment, error) {
	var out Apartment
	if err := g.c.post(ctx, "/apartments", record, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Update replaces an apartment. The payload carries the full merged record,
// not a sparse patch.
func (g *ApartmentGateway) Update(ctx context.Context, id int64, apartment Apartment) (*Apartment, error) {
	var out Apartment
	if err := g.c.put(ctx, fmt.Sprintf("/apartments/%d", id), apartment, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Remove deletes an apartment.
func (g *ApartmentGateway) Remove(ctx context.Context, id int64) error {
	return g.c.delete(ctx, fmt.Sprintf("/apartments/%d", id))
}

// BatchByCommunity creates or updates a group of records that all belong
// to one community. communityID is formatted into the path as-is so a
// non-numeric passthrough value reaches the backend unmodified.
func (g *ApartmentGateway) BatchByCommunity(ctx context.Context, communityID any, records []ApartmentUpload) error {
	return g.c.post(ctx, fmt.Sprintf("/apartments/batch/%v", communityID), records, nil)
}

type batchCreateRequest struct {
	Apartments []ApartmentUpload `json:"apartments"`
}

// BatchCreateWithCommunity creates records spanning multiple communities
// in one call.
func (g *ApartmentGateway) BatchCreateWithCommunity(ctx context.Context, records []ApartmentUpload) error {
	return g.c.post(ctx, "/apartments/batch/create-with-community", batchCreateRequest{Apartments: records}, nil)
}
