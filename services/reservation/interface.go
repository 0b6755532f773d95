package reservation

import (
	"context"
	"time"

	clientRepo "agendly/database/repository/client"
	providerRepo "agendly/database/repository/provider"
	reservationRepo "agendly/database/repository/reservation"
	serviceRepo "agendly/database/repository/service"
	"agendly/models"
)

// BookingRequest is the plain record handed over by the request layer.
// Timestamp carries the instant exactly as supplied; a zero Timestamp means
// the field was absent.
type BookingRequest struct {
	ProviderID string
	ClientID   string
	ServiceID  string
	Timestamp  time.Time
	Status     string
	Notes      string
}

// BookingUpdate patches an existing reservation. Nil/zero fields are left
// unchanged. Changing ProviderID or Timestamp re-runs admission; status and
// notes may be changed freely without it.
type BookingUpdate struct {
	ProviderID string
	Timestamp  time.Time
	Status     string
	Notes      *string
}

// BookingResult is returned on acceptance. CounterIncremented reports
// whether the provider's completed-services counter moved as part of the
// same transaction.
type BookingResult struct {
	Reservation        *models.Reservation `json:"reservation"`
	CounterIncremented bool                `json:"counterIncremented"`
}

// ReservationService is the booking validation and scheduling core.
type ReservationService interface {
	Create(ctx context.Context, req BookingRequest) (*BookingResult, error)
	Update(ctx context.Context, id string, patch BookingUpdate) (*models.Reservation, error)
	Cancel(ctx context.Context, id string) (*models.Reservation, error)
	GetByID(id string) (*models.Reservation, error)
	ListByClient(clientID string) ([]models.Reservation, error)
}

// DefaultReservationService implements ReservationService.
type DefaultReservationService struct {
	Repo         reservationRepo.ReservationRepository
	ProviderRepo providerRepo.ProviderRepository
	ClientRepo   clientRepo.ClientRepository
	ServiceRepo  serviceRepo.ServiceRepository
}
