package gateway

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AbdelhakNemri/sports-arena-client/internal/domain/model"
	apperrors "github.com/AbdelhakNemri/sports-arena-client/internal/errors"
)

func TestBookingsAPI_Get(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodGet, r.Method)
		require.Equal(t, "/bookings/12", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.Booking{ID: 12, Status: model.BookingPending})
	}))

	booking, err := client.Bookings().Get(context.Background(), 12)
	require.NoError(t, err)
	assert.Equal(t, int64(12), booking.ID)
	assert.Equal(t, model.BookingPending, booking.Status)
}

func TestBookingsAPI_Get_NotFound(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))

	_, err := client.Bookings().Get(context.Background(), 999)
	require.Error(t, err)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestBookingsAPI_Create(t *testing.T) {
	var gotBody model.CreateBookingRequest
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/bookings", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		w.WriteHeader(http.StatusCreated)
		_ = json.NewEncoder(w).Encode(model.Booking{ID: 30, FieldID: gotBody.FieldID, Status: model.BookingPending})
	}))

	req := model.CreateBookingRequest{FieldID: 4, Date: "2026-09-12", StartTime: "18:00", EndTime: "19:00"}
	booking, err := client.Bookings().Create(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, int64(30), booking.ID)
	assert.Equal(t, req, gotBody)
}

func TestBookingsAPI_UpdateStatus(t *testing.T) {
	var gotMethod, gotPath string
	var gotBody map[string]string
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod = r.Method
		gotPath = r.URL.Path
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))
		_ = json.NewEncoder(w).Encode(model.Booking{ID: 12, Status: model.BookingConfirmed})
	}))

	booking, err := client.Bookings().UpdateStatus(context.Background(), 12, model.BookingConfirmed)
	require.NoError(t, err)
	assert.Equal(t, http.MethodPut, gotMethod)
	assert.Equal(t, "/bookings/12/status", gotPath)
	assert.Equal(t, map[string]string{"status": "CONFIRMED"}, gotBody)
	assert.Equal(t, model.BookingConfirmed, booking.Status)
}

func TestBookingsAPI_OwnerStats(t *testing.T) {
	client, _ := newTestClient(t, http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/bookings/owner/stats", r.URL.Path)
		_ = json.NewEncoder(w).Encode(model.BookingStats{Total: 8, Confirmed: 5, Revenue: 420})
	}))

	stats, err := client.Bookings().OwnerStats(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 8, stats.Total)
	assert.Equal(t, 5, stats.Confirmed)
	assert.Equal(t, float64(420), stats.Revenue)
}
