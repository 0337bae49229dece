package gateway

import (
	"context"
	"fmt"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// NotificationsAPI talks to the notification service through the gateway.
// It satisfies ports.NotificationAPI for the poller.
type NotificationsAPI struct {
	c *Client
}

// List fetches all notifications for the authenticated user.
func (n *NotificationsAPI) List(ctx context.Context) ([]model.Notification, error) {
	var out []model.Notification
	if err := n.c.get(ctx, "/notifications", nil, &out); err != nil {
		return nil, err
	}
	return out, nil
}

// UnreadCount fetches the number of unread notifications.
func (n *NotificationsAPI) UnreadCount(ctx context.Context) (int, error) {
	var out model.UnreadCount
	if err := n.c.get(ctx, "/notifications/unread-count", nil, &out); err != nil {
		return 0, err
	}
	return out.Count, nil
}

// MarkRead marks a single notification as read.
func (n *NotificationsAPI) MarkRead(ctx context.Context, id int64) error {
	return n.c.put(ctx, fmt.Sprintf("/notifications/%d/read", id), struct{}{}, nil)
}

// MarkAllRead marks every notification as read.
func (n *NotificationsAPI) MarkAllRead(ctx context.Context) error {
	return n.c.put(ctx, "/notifications/read-all", struct{}{}, nil)
}

// Delete removes a notification.
func (n *NotificationsAPI) Delete(ctx context.Context, id int64) error {
	return n.c.delete(ctx, fmt.Sprintf("/notifications/%d", id))
}
