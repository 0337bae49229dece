//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// BookingStatus is the lifecycle state of a booking, owned by the booking
// service.
type BookingStatus string

const (
	BookingPending   BookingStatus = "PENDING"
	BookingConfirmed BookingStatus = "CONFIRMED"
	BookingCancelled BookingStatus = "CANCELLED"
	BookingCompleted BookingStatus = "COMPLETED"
)

// Booking represents a field reservation.
type Booking struct {
	ID               int64         `json:"id"`
	FieldID          int64         `json:"fieldId"`
	FieldName        string        `json:"fieldName,omitempty"`
	PlayerKeycloakID string        `json:"playerKeycloakId,omitempty"`
	PlayerEmail      string        `json:"playerEmail,omitempty"`
	Date             string        `json:"date"`
	StartTime        string        `json:"startTime"`
	EndTime          string        `json:"endTime"`
	Status           BookingStatus `json:"status"`
	TotalPrice       float64       `json:"totalPrice,omitempty"`
	CreatedAt        string        `json:"createdAt,omitempty"`
}

// CreateBookingRequest is the payload for creating a booking.
type CreateBookingRequest struct {
	FieldID   int64  `json:"fieldId"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// BookingStats is the owner-side aggregate returned by the booking service.
type BookingStats struct {
	Total     int     `json:"total"`
	Pending   int     `json:"pending"`
	Confirmed int     `json:"confirmed"`
	Cancelled int     `json:"cancelled"`
	Revenue   float64 `json:"revenue,omitempty"`
}
