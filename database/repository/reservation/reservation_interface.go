package reservationRepo

import (
	"context"
	"time"

	"agendly/models"
)

// ReservationRepository defines methods for reservation data access.
type ReservationRepository interface {
	// GetByID retrieves a reservation by its unique ID.
	GetByID(id string) (*models.Reservation, error)
	// ListByClient retrieves all reservations owned by a client, most
	// recent first.
	ListByClient(clientID string) ([]models.Reservation, error)
	// ExistsAt reports whether any reservation, regardless of status,
	// occupies the exact instant for the provider.
	ExistsAt(providerID string, ts time.Time) (bool, error)
	// CreateWithCounter inserts the reservation and, when incrementProvider
	// is set, increments the provider's completed-services counter in the
	// same store transaction. Either both writes commit or neither does.
	// Occupancy of the target instant is re-checked inside the transaction;
	// ErrSlotTaken is returned when it is already held.
	CreateWithCounter(ctx context.Context, reservation *models.Reservation, incrementProvider bool) error
	// Update replaces an existing reservation record. Returns ErrSlotTaken
	// when the new instant collides with another reservation.
	Update(reservation *models.Reservation) error
}
