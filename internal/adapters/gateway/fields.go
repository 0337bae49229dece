package gateway

import (
	"context"
	"fmt"
	"net/url"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// FieldsAPI talks to the field service through the gateway.
type FieldsAPI struct {
	c *Client
}

// All lists every registered field.
func (f *FieldsAPI) All(ctx context.Context) ([]model.Field, error) {
	var out []model.Field
	if err := f.c.get(ctx, "/fields", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mine lists the authenticated owner's fields.
func (f *FieldsAPI) Mine(ctx context.Context) ([]model.Field, error) {
	var out []model.Field
	if err := f.c.get(ctx, "/fields/my-fields", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single field.
func (f *FieldsAPI) Get(ctx context.Context, id int64) (model.Field, error) {
	var out model.Field
	if err := f.c.get(ctx, fmt.Sprintf("/fields/%d", id), nil, &out); err != nil {
		return model.Field{}, err
	}
	return out, nil
}

// Search queries fields by optional city and type filters.
func (f *FieldsAPI) Search(ctx context.Context, city, fieldType string) ([]model.Field, error) {
	query := url.Values{}
	if city != "" {
		query.Set("city", city)
	}
	if fieldType != "" {
		query.Set("type", fieldType)
	}

	var out []model.Field
	if err := f.c.get(ctx, "/fields/search", query, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create registers a new field (owner side).
func (f *FieldsAPI) Create(ctx context.Context, req model.CreateFieldRequest) (model.Field, error) {
	var out model.Field
	if err := f.c.post(ctx, "/fields", req, &out); err != nil {
		return model.Field{}, err
	}
	return out, nil
}

// Delete removes a field (owner side).
func (f *FieldsAPI) Delete(ctx context.Context, id int64) error {
	return f.c.delete(ctx, fmt.Sprintf("/fields/%d", id))
}

// Availability lists a field's weekly availability slots.
func (f *FieldsAPI) Availability(ctx context.Context, fieldID int64) ([]model.Availability, error) {
	var out []model.Availability
	if err := f.c.get(ctx, fmt.Sprintf("/fields/%d/availability", fieldID), nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}
