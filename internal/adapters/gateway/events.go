package gateway

import (
	"context"
	"fmt"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// EventsAPI talks to the event service through the gateway.
type EventsAPI struct {
	c *Client
}

// Available lists joinable events.
func (e *EventsAPI) Available(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := e.c.get(ctx, "/events/available", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Mine lists events organized by the authenticated player.
func (e *EventsAPI) Mine(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := e.c.get(ctx, "/events/my-events", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// MyParticipations lists events the authenticated player takes part in.
func (e *EventsAPI) MyParticipations(ctx context.Context) ([]model.Event, error) {
	var out []model.Event
	if err := e.c.get(ctx, "/events/my-participations", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// Create publishes a new event.
func (e *EventsAPI) Create(ctx context.Context, req model.CreateEventRequest) (model.Event, error) {
	var out model.Event
	if err := e.c.post(ctx, "/events", req, &out); err != nil {
		return model.Event{}, err
	}
	return out, nil
}

// Join registers the authenticated player as a participant.
func (e *EventsAPI) Join(ctx context.Context, id int64) error {
	return e.c.post(ctx, fmt.Sprintf("/events/%d/join", id), struct{}{}, nil)
}

// Respond accepts or declines an invitation.
func (e *EventsAPI) Respond(ctx context.Context, id int64, resp model.EventResponse) error {
	return e.c.post(ctx, fmt.Sprintf("/events/%d/respond", id), resp, nil)
}
