//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// NotificationType categorizes a notification for display purposes.
type NotificationType string

const (
	NotificationInfo           NotificationType = "INFO"
	NotificationSuccess        NotificationType = "SUCCESS"
	NotificationWarning        NotificationType = "WARNING"
	NotificationError          NotificationType = "ERROR"
	NotificationEvent          NotificationType = "EVENT"
	NotificationBooking        NotificationType = "BOOKING"
	NotificationPlayerAccepted NotificationType = "PLAYER_ACCEPTED"
	NotificationFieldReserved  NotificationType = "FIELD_RESERVED"
)

// Notification is a single entry in the notification feed. The shape is the
// notification service's contract; unknown fields are ignored on decode.
type Notification struct {
	ID                int64            `json:"id"`
	RecipientID       string           `json:"recipientKeycloakId"`
	RecipientEmail    string           `json:"recipientEmail,omitempty"`
	Title             string           `json:"title"`
	Message           string           `json:"message"`
	Type              NotificationType `json:"type"`
	IsRead            bool             `json:"isRead"`
	Source            string           `json:"source,omitempty"`
	Metadata          string           `json:"metadata,omitempty"`
	RelatedEntityID   int64            `json:"relatedEntityId,omitempty"`
	RelatedEntityType string           `json:"relatedEntityType,omitempty"`
	CreatedAt         string           `json:"createdAt,omitempty"`
	ReadAt            string           `json:"readAt,omitempty"`
}

// UnreadCount is the envelope of the unread-count endpoint.
type UnreadCount struct {
	Count int `json:"count"`
}
