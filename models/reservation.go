package models

import "time"

// Reservation statuses. Any status may be set via update; the provider
// counter side effect fires only on creation with StatusConfirmed.
const (
	StatusConfirmed = "confirmed"
	StatusCancelled = "cancelled"
	StatusCompleted = "completed"
)

// ValidStatus reports whether s is one of the reservation statuses.
func ValidStatus(s string) bool {
	switch s {
	case StatusConfirmed, StatusCancelled, StatusCompleted:
		return true
	}
	return false
}

// Reservation occupies an exact instant with a provider. Timestamp is stored
// UTC-normalized at millisecond precision (the resolution of a BSON
// datetime); conflict detection compares the stored instant for exact
// equality regardless of the existing reservation's status.
type Reservation struct {
	ID         string    `bson:"id" json:"id"`
	ClientID   string    `bson:"clientId" json:"clientId"`
	ProviderID string    `bson:"providerId" json:"providerId"`
	ServiceID  string    `bson:"serviceId" json:"serviceId"`
	Timestamp  time.Time `bson:"timestamp" json:"timestamp"`
	Status     string    `bson:"status" json:"status"`
	Notes      string    `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt  time.Time `bson:"createdAt" json:"createdAt"`
	UpdatedAt  time.Time `bson:"updatedAt" json:"updatedAt"`
}
