//revive:disable-next-line:var-naming // legacy package name widely used across the project
package model

// ServiceStatus is the up/down state reported by a health probe.
type ServiceStatus string

const (
	ServiceUp   ServiceStatus = "UP"
	ServiceDown ServiceStatus = "DOWN"
)

// ServiceHealth is the result of probing one backend service.
type ServiceHealth struct {
	Service   string        `json:"service"`
	Status    ServiceStatus `json:"status"`
	Message   string        `json:"message,omitempty"`
	Timestamp string        `json:"timestamp,omitempty"`
}

// SystemStats is the aggregate the admin dashboard shows, assembled
// client-side from the individual service listings.
type SystemStats struct {
	TotalUsers     int `json:"totalUsers"`
	TotalFields    int `json:"totalFields"`
	TotalEvents    int `json:"totalEvents"`
	TotalBookings  int `json:"totalBookings"`
	ActiveServices int `json:"activeServices"`
	TotalServices  int `json:"totalServices"`
}
