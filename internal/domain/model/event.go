//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// Event is a player-organized match or tournament.
type Event struct {
	ID                  int64  `json:"id"`
	Title               string `json:"title"`
	Description         string `json:"description,omitempty"`
	FieldID             int64  `json:"fieldId,omitempty"`
	OrganizerKeycloakID string `json:"organizerKeycloakId,omitempty"`
	Date                string `json:"date"`
	StartTime           string `json:"startTime,omitempty"`
	MaxParticipants     int    `json:"maxParticipants,omitempty"`
	ParticipantCount    int    `json:"participantCount,omitempty"`
	Status              string `json:"status,omitempty"`
	CreatedAt           string `json:"createdAt,omitempty"`
}

// CreateEventRequest is the payload for creating an event.
type CreateEventRequest struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	FieldID         int64  `json:"fieldId,omitempty"`
	Date            string `json:"date"`
	StartTime       string `json:"startTime,omitempty"`
	MaxParticipants int    `json:"maxParticipants,omitempty"`
}

// EventResponse is the accept/decline payload for an invitation.
type EventResponse struct {
	Accepted bool   `json:"accepted"`
	Message  string `json:"message,omitempty"`
}
