package service

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
	"github.com/AbdelhakNemri/sports-arena-client/internal/ports"
)

// NotificationPollerOptions groups dependencies for NotificationPoller.
type NotificationPollerOptions struct {
	API      ports.NotificationAPI // Required: notification endpoints
	Session  *SessionContext       // Required: drives start/stop on auth transitions
	Interval time.Duration         // Optional: poll interval, defaults to 30s
	Logger   *slog.Logger          // Optional: structured logger
}

const defaultPollInterval = 30 * time.Second

// NotificationPoller keeps a local snapshot of the user's notification feed
// and unread count, refreshed on a fixed interval while a user is signed in.
// It is a two-state machine, idle and polling, driven by auth transitions.
// A failed cycle empties the snapshot and the loop carries on; the next
// cycle repopulates it.
type NotificationPoller struct {
	api      ports.NotificationAPI
	interval time.Duration
	logger   *slog.Logger

	mu     sync.Mutex
	feed   []model.Notification
	unread int
	cancel context.CancelFunc
	done   chan struct{}
}

// NewNotificationPoller constructs a poller and subscribes it to the
// session's auth transitions: sign-in starts polling, sign-out stops it and
// clears the snapshot.
func NewNotificationPoller(opts NotificationPollerOptions) (*NotificationPoller, error) {
	if opts.API == nil {
		return nil, errors.New("NotificationAPI is required")
	}
	if opts.Session == nil {
		return nil, errors.New("SessionContext is required")
	}

	interval := opts.Interval
	if interval <= 0 {
		interval = defaultPollInterval
	}

	var logger *slog.Logger
	if opts.Logger != nil {
		logger = opts.Logger.With("component", "notification_poller")
	}

	p := &NotificationPoller{
		api:      opts.API,
		interval: interval,
		logger:   logger,
	}

	opts.Session.OnAuthChange(func(authenticated bool) {
		if authenticated {
			p.Start()
		} else {
			p.Stop()
		}
	})

	if opts.Session.IsAuthenticated() {
		p.Start()
	}

	return p, nil
}

// Start begins the polling loop. Idempotent: a running poller stays as is,
// no second loop is spawned.
func (p *NotificationPoller) Start() {
	p.mu.Lock()
	if p.cancel != nil {
		p.mu.Unlock()
		return
	}
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	p.cancel = cancel
	p.done = done
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("polling started", "interval", p.interval)
	}
	go p.run(ctx, done)
}

// Stop halts the loop and clears the snapshot. It blocks until the loop has
// exited, so no cycle writes after Stop returns. Safe to call when idle.
func (p *NotificationPoller) Stop() {
	p.mu.Lock()
	cancel := p.cancel
	done := p.done
	p.cancel = nil
	p.done = nil
	p.mu.Unlock()

	if cancel == nil {
		return
	}
	cancel()
	<-done

	p.mu.Lock()
	p.feed = nil
	p.unread = 0
	p.mu.Unlock()

	if p.logger != nil {
		p.logger.Info("polling stopped")
	}
}

// run executes an immediate first cycle, then one per tick.
func (p *NotificationPoller) run(ctx context.Context, done chan struct{}) {
	defer close(done)

	p.cycle(ctx)

	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			p.cycle(ctx)
		}
	}
}

// cycle fetches the feed and unread count concurrently and replaces the
// snapshot wholesale. On any failure the snapshot empties and the error is
// swallowed; polling outlives transient backend trouble.
func (p *NotificationPoller) cycle(ctx context.Context) {
	var (
		feed  []model.Notification
		count int
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		feed, err = p.api.List(gctx)
		return err
	})
	g.Go(func() error {
		var err error
		count, err = p.api.UnreadCount(gctx)
		return err
	})

	if err := g.Wait(); err != nil {
		if p.logger != nil && !errors.Is(err, context.Canceled) {
			if apperrors.IsUnauthorized(err) {
				p.logger.WarnContext(ctx, "poll cycle rejected, credential likely expired", "error", err)
			} else {
				p.logger.DebugContext(ctx, "poll cycle failed", "code", apperrors.GetCode(err), "error", err)
			}
		}
		p.mu.Lock()
		p.feed = nil
		p.unread = 0
		p.mu.Unlock()
		return
	}

	p.mu.Lock()
	p.feed = feed
	p.unread = count
	p.mu.Unlock()
}

// Refresh runs one fetch cycle immediately, outside the tick schedule.
func (p *NotificationPoller) Refresh(ctx context.Context) {
	p.cycle(ctx)
}

// MarkAsRead marks one notification read on the backend, then patches the
// local snapshot optimistically instead of waiting for the next cycle.
func (p *NotificationPoller) MarkAsRead(ctx context.Context, id int64) error {
	if err := p.api.MarkRead(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.feed {
		if p.feed[i].ID == id {
			if !p.feed[i].IsRead {
				p.feed[i].IsRead = true
				p.unread = floorZero(p.unread - 1)
			}
			break
		}
	}
	return nil
}

// MarkAllAsRead marks every notification read and zeroes the unread count.
func (p *NotificationPoller) MarkAllAsRead(ctx context.Context) error {
	if err := p.api.MarkAllRead(ctx); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.feed {
		p.feed[i].IsRead = true
	}
	p.unread = 0
	return nil
}

// DeleteNotification deletes one notification and drops it from the
// snapshot. The unread count only moves when the deleted item was unread,
// judged from its state before removal.
func (p *NotificationPoller) DeleteNotification(ctx context.Context, id int64) error {
	if err := p.api.Delete(ctx, id); err != nil {
		return err
	}

	p.mu.Lock()
	defer p.mu.Unlock()
	for i := range p.feed {
		if p.feed[i].ID == id {
			wasUnread := !p.feed[i].IsRead
			p.feed = append(p.feed[:i], p.feed[i+1:]...)
			if wasUnread {
				p.unread = floorZero(p.unread - 1)
			}
			break
		}
	}
	return nil
}

// Notifications returns a copy of the current feed snapshot.
func (p *NotificationPoller) Notifications() []model.Notification {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]model.Notification(nil), p.feed...)
}

// UnreadCount returns the current unread counter.
func (p *NotificationPoller) UnreadCount() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.unread
}

// HasUnread reports whether anything is unread.
func (p *NotificationPoller) HasUnread() bool {
	return p.UnreadCount() > 0
}

// Running reports whether the polling loop is active.
func (p *NotificationPoller) Running() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.cancel != nil
}

func floorZero(n int) int {
	if n < 0 {
		return 0
	}
	return n
}
