package gateway

import (
	"context"
	"fmt"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// BookingsAPI talks to the booking service through the gateway.
type BookingsAPI struct {
	c *Client
}

// Mine lists the authenticated player's bookings.
func (b *BookingsAPI) Mine(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := b.c.get(ctx, "/bookings/my-bookings", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Get fetches a single booking.
func (b *BookingsAPI) Get(ctx context.Context, id int64) (model.Booking, error) {
	var out model.Booking
	if err := b.c.get(ctx, fmt.Sprintf("/bookings/%d", id), nil, &out); err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// Create books a field slot.
func (b *BookingsAPI) Create(ctx context.Context, req model.CreateBookingRequest) (model.Booking, error) {
	var out model.Booking
	if err := b.c.post(ctx, "/bookings", req, &out); err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// UpdateStatus transitions a booking's lifecycle state (owner side).
func (b *BookingsAPI) UpdateStatus(ctx context.Context, id int64, status model.BookingStatus) (model.Booking, error) {
	var out model.Booking
	body := struct {
		Status model.BookingStatus `json:"status"`
	}{Status: status}
	if err := b.c.put(ctx, fmt.Sprintf("/bookings/%d/status", id), body, &out); err != nil {
		return model.Booking{}, err
	}
	return out, nil
}

// OwnerAll lists all bookings across the owner's fields.
func (b *BookingsAPI) OwnerAll(ctx context.Context) ([]model.Booking, error) {
	var out []model.Booking
	if err := b.c.get(ctx, "/bookings/owner/all", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// OwnerStats fetches the owner-side booking aggregates.
func (b *BookingsAPI) OwnerStats(ctx context.Context) (model.BookingStats, error) {
	var out model.BookingStats
	if err := b.c.get(ctx, "/bookings/owner/stats", nil, &out); err != nil {
		return model.BookingStats{}, err
	}
	return out, nil
}
