package service

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	domainauth "github.com/AbdelhakNemri/sports-arena-client/internal/domain/auth"
	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	"github.com/AbdelhakNemri/sports-arena-client/internal/mocks"
)

func testFeed() []model.Notification {
	return []model.Notification{
		{ID: 1, Title: "Booking confirmed", IsRead: false},
		{ID: 2, Title: "Welcome", IsRead: true},
		{ID: 3, Title: "Event invite", IsRead: false},
	}
}

func newPoller(t *testing.T, api *mocks.NotificationAPI) (*NotificationPoller, *SessionContext) {
	t.Helper()

	session := newSession(t, &mocks.TokenStore{})
	poller, err := NewNotificationPoller(NotificationPollerOptions{
		API:      api,
		Session:  session,
		Interval: 10 * time.Millisecond,
	})
	require.NoError(t, err)
	t.Cleanup(poller.Stop)
	return poller, session
}

func TestNewNotificationPoller_RequiresDependencies(t *testing.T) {
	_, err := NewNotificationPoller(NotificationPollerOptions{})
	require.Error(t, err)
}

func TestNotificationPoller_StartsOnSignIn(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
	}
	poller, session := newPoller(t, api)
	assert.False(t, poller.Running())

	session.SetAuthUserInfo(domainauth.AuthUserInfo{Roles: []domainauth.Role{domainauth.RolePlayer}})

	require.Eventually(t, func() bool {
		return len(poller.Notifications()) == 3 && poller.UnreadCount() == 2
	}, time.Second, 5*time.Millisecond)
	assert.True(t, poller.Running())
	assert.True(t, poller.HasUnread())
}

func TestNotificationPoller_StopsAndClearsOnSignOut(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
	}
	poller, session := newPoller(t, api)

	session.SetAuthUserInfo(domainauth.AuthUserInfo{Roles: []domainauth.Role{domainauth.RolePlayer}})
	require.Eventually(t, func() bool {
		return poller.UnreadCount() == 2
	}, time.Second, 5*time.Millisecond)

	session.Clear(context.Background())

	assert.False(t, poller.Running())
	assert.Empty(t, poller.Notifications())
	assert.Zero(t, poller.UnreadCount())
	assert.False(t, poller.HasUnread())
}

func TestNotificationPoller_StartIsIdempotent(t *testing.T) {
	var listCalls atomic.Int64
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			listCalls.Add(1)
			return nil, nil
		},
	}
	poller, _ := newPoller(t, api)

	poller.Start()
	poller.Start()
	poller.Start()

	// One immediate cycle per loop; three Starts share a single loop.
	require.Eventually(t, func() bool {
		return listCalls.Load() >= 1
	}, time.Second, 5*time.Millisecond)
	assert.True(t, poller.Running())

	poller.Stop()
	assert.False(t, poller.Running())
}

func TestNotificationPoller_FailedCycleEmptiesSnapshotAndContinues(t *testing.T) {
	var failing atomic.Bool
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			if failing.Load() {
				return nil, errors.New("gateway unavailable")
			}
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			if failing.Load() {
				return 0, errors.New("gateway unavailable")
			}
			return 2, nil
		},
	}
	poller, _ := newPoller(t, api)
	poller.Start()

	require.Eventually(t, func() bool {
		return poller.UnreadCount() == 2
	}, time.Second, 5*time.Millisecond)

	failing.Store(true)
	require.Eventually(t, func() bool {
		return poller.UnreadCount() == 0 && len(poller.Notifications()) == 0
	}, time.Second, 5*time.Millisecond)
	assert.True(t, poller.Running())

	// Backend recovers, next cycle repopulates.
	failing.Store(false)
	require.Eventually(t, func() bool {
		return poller.UnreadCount() == 2
	}, time.Second, 5*time.Millisecond)
}

func TestNotificationPoller_Refresh(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
	}
	poller, _ := newPoller(t, api)

	poller.Refresh(context.Background())
	assert.Len(t, poller.Notifications(), 3)
	assert.Equal(t, 2, poller.UnreadCount())
}

func TestNotificationPoller_MarkAsRead(t *testing.T) {
	var marked []int64
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
		MarkReadFunc: func(_ context.Context, id int64) error {
			marked = append(marked, id)
			return nil
		},
	}
	poller, _ := newPoller(t, api)
	poller.Refresh(context.Background())

	require.NoError(t, poller.MarkAsRead(context.Background(), 1))
	assert.Equal(t, []int64{1}, marked)
	assert.Equal(t, 1, poller.UnreadCount())

	feed := poller.Notifications()
	assert.True(t, feed[0].IsRead)

	// Marking an already-read item leaves the counter alone.
	require.NoError(t, poller.MarkAsRead(context.Background(), 1))
	assert.Equal(t, 1, poller.UnreadCount())
}

func TestNotificationPoller_MarkAsRead_BackendFailureLeavesSnapshot(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
		MarkReadFunc: func(context.Context, int64) error {
			return errors.New("gateway unavailable")
		},
	}
	poller, _ := newPoller(t, api)
	poller.Refresh(context.Background())

	require.Error(t, poller.MarkAsRead(context.Background(), 1))
	assert.Equal(t, 2, poller.UnreadCount())
	assert.False(t, poller.Notifications()[0].IsRead)
}

func TestNotificationPoller_MarkAsRead_CounterFloorsAtZero(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			// Unread item but a count already at zero, as after a stale fetch.
			return []model.Notification{{ID: 9, IsRead: false}}, nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 0, nil
		},
	}
	poller, _ := newPoller(t, api)
	poller.Refresh(context.Background())

	require.NoError(t, poller.MarkAsRead(context.Background(), 9))
	assert.Equal(t, 0, poller.UnreadCount())
}

func TestNotificationPoller_MarkAllAsRead(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
	}
	poller, _ := newPoller(t, api)
	poller.Refresh(context.Background())

	require.NoError(t, poller.MarkAllAsRead(context.Background()))
	assert.Zero(t, poller.UnreadCount())
	for _, n := range poller.Notifications() {
		assert.True(t, n.IsRead)
	}
}

func TestNotificationPoller_DeleteNotification(t *testing.T) {
	api := &mocks.NotificationAPI{
		ListFunc: func(context.Context) ([]model.Notification, error) {
			return testFeed(), nil
		},
		UnreadCountFunc: func(context.Context) (int, error) {
			return 2, nil
		},
	}
	poller, _ := newPoller(t, api)
	poller.Refresh(context.Background())

	// Deleting an unread item decrements.
	require.NoError(t, poller.DeleteNotification(context.Background(), 1))
	assert.Equal(t, 1, poller.UnreadCount())
	assert.Len(t, poller.Notifications(), 2)

	// Deleting a read item does not.
	require.NoError(t, poller.DeleteNotification(context.Background(), 2))
	assert.Equal(t, 1, poller.UnreadCount())
	assert.Len(t, poller.Notifications(), 1)

	// Deleting an unknown ID is a no-op locally.
	require.NoError(t, poller.DeleteNotification(context.Background(), 99))
	assert.Len(t, poller.Notifications(), 1)
}

func TestNotificationPoller_StopIsSafeWhenIdle(t *testing.T) {
	poller, _ := newPoller(t, &mocks.NotificationAPI{})
	poller.Stop()
	poller.Stop()
	assert.False(t, poller.Running())
}
