package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotificationsAPI_List(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/notifications", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`[
			{"id": 1, "title": "Booking confirmed", "type": "BOOKING", "isRead": false},
			{"id": 2, "title": "Welcome", "type": "INFO", "isRead": true}
		]`))
	}))

	list, err := client.Notifications().List(context.Background())
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, int64(1), list[0].ID)
	assert.Equal(t, "Booking confirmed", list[0].Title)
	assert.False(t, list[0].IsRead)
	assert.True(t, list[1].IsRead)
}

func TestNotificationsAPI_UnreadCount(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/notifications/unread-count", r.URL.Path)
		_ = json.NewEncoder(w).Encode(map[string]int{"count": 4})
	}))

	count, err := client.Notifications().UnreadCount(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, count)
}

func TestNotificationsAPI_MarkRead(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Notifications().MarkRead(context.Background(), 7))
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/notifications/7/read", gotPath)
}

func TestNotificationsAPI_MarkAllRead(t *testing.T) {
	var gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Notifications().MarkAllRead(context.Background()))
	assert.Equal(t, "/notifications/read-all", gotPath)
}

func TestNotificationsAPI_Delete(t *testing.T) {
	var gotMethod, gotPath string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		w.WriteHeader(http.StatusNoContent)
	}))

	require.NoError(t, client.Notifications().Delete(context.Background(), 3))
	assert.Equal(t, http.MethodDelete, gotMethod)
	assert.Equal(t, "/notifications/3", gotPath)
}

func TestNotificationsAPI_ListError(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))

	_, err := client.Notifications().List(context.Background())
	require.Error(t, err)
	status, ok := StatusOf(err)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, status)
}

func TestNotificationsAPI_ImplementsPort(t *testing.T) {
	server := httptest.NewServer(http.NotFoundHandler())
	defer server.Close()

	client, err := New(ClientOptions{BaseURL: server.URL})
	require.NoError(t, err)
	assert.NotNil(t, client.Notifications())
}
