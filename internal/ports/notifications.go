package ports

import (
	"context"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
)

// NotificationAPI is the notification service surface the poller drives.
// The list/count shapes are the backend's contract, not owned here.
type NotificationAPI interface {
	List(ctx context.Context) ([]model.Notification, error)
	UnreadCount(ctx context.Context) (int, error)
	MarkRead(ctx context.Context, id int64) error
	MarkAllRead(ctx context.Context) error
	Delete(ctx context.Context, id int64) error
}
