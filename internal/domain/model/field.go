//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Field is a bookable sports facility owned by an OWNER user.
type Field struct {
	ID              int64   `json:"id"`
	Name            string  `json:"name"`
	Type            string  `json:"type,omitempty"`
	City            string  `json:"city,omitempty"`
	Address         string  `json:"address,omitempty"`
	Description     string  `json:"description,omitempty"`
	PricePerHour    float64 `json:"pricePerHour,omitempty"`
	Capacity        int     `json:"capacity,omitempty"`
	OwnerKeycloakID string  `json:"ownerKeycloakId,omitempty"`
	CreatedAt       string  `json:"createdAt,omitempty"`
}

// CreateFieldRequest is the payload for registering a new field.
type CreateFieldRequest struct {
	Name         string  `json:"name"`
	Type         string  `json:"type,omitempty"`
	City         string  `json:"city,omitempty"`
	Address      string  `json:"address,omitempty"`
	Description  string  `json:"description,omitempty"`
	PricePerHour float64 `json:"pricePerHour,omitempty"`
	Capacity     int     `json:"capacity,omitempty"`
}

// Availability is a recurring weekly availability slot for a field.
type Availability struct {
	ID        int64  `json:"id"`
	FieldID   int64  `json:"fieldId"`
	DayOfWeek string `json:"dayOfWeek"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}
