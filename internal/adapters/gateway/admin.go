package gateway

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// AdminAPI backs the admin dashboard: per-service health probes and the
// aggregate system statistics assembled from the service listings.
type AdminAPI struct {
	c *Client
}

// healthProbes lists every service health endpoint behind the gateway.
var healthProbes = []struct {
	service string
	path    string
}{
	{"auth-service", "/auth/health"},
	{"player-service", "/players/health"},
	{"field-service", "/fields/health"},
	{"event-service", "/events/health"},
	{"notification-service", "/notifications/health"},
}

// serviceHealth probes one endpoint. A failed probe is a DOWN result, never
// an error; the dashboard shows outages, it does not fail on them.
func (a *AdminAPI) serviceHealth(ctx context.Context, service, path string) model.ServiceHealth {
	health := model.ServiceHealth{
		Service:   service,
		Status:    model.ServiceUp,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	if err := a.c.get(ctx, path, nil, nil); err != nil {
		health.Status = model.ServiceDown
		health.Message = err.Error()
	}
	return health
}

// AllServicesHealth probes every service concurrently and reports each
// result in probe order.
func (a *AdminAPI) AllServicesHealth(ctx context.Context) []model.ServiceHealth {
	results := make([]model.ServiceHealth, len(healthProbes))

	g, gctx := errgroup.WithContext(ctx)
	for i, probe := range healthProbes {
		i, probe := i, probe
		g.Go(func() error {
			results[i] = a.serviceHealth(gctx, probe.service, probe.path)
			return nil
		})
	}
	_ = g.Wait() // probes report outages as results, never as errors
	return results
}

// SystemStats aggregates counts across the service listings. A listing that
// fails contributes zero, the aggregate always comes back.
// TODO: count bookings once the booking service exposes an admin-wide endpoint.
func (a *AdminAPI) SystemStats(ctx context.Context) model.SystemStats {
	var (
		players []model.User
		fields  []model.Field
		events  []model.Event
		health  []model.ServiceHealth
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		_ = a.c.get(gctx, "/players", nil, &players)
		return nil
	})
	g.Go(func() error {
		_ = a.c.get(gctx, "/fields", nil, &fields)
		return nil
	})
	g.Go(func() error {
		_ = a.c.get(gctx, "/events/available", nil, &events)
		return nil
	})
	g.Go(func() error {
		health = a.AllServicesHealth(gctx)
		return nil
	})
	_ = g.Wait()

	stats := model.SystemStats{
		TotalUsers:    len(players),
		TotalFields:   len(fields),
		TotalEvents:   len(events),
		TotalServices: len(health),
	}
	for _, h := range health {
		if h.Status == model.ServiceUp {
			stats.ActiveServices++
		}
	}
	return stats
}

// AllUsers lists every registered user from the player service.
func (a *AdminAPI) AllUsers(ctx context.Context) ([]model.User, error) {
	var users []model.User
	if err := a.c.get(ctx, "/players", nil, &users); err != nil {
		return nil, err
	}
	return users, nil
}
