package reservation

import (
	"context"
	"errors"
	"fmt"
	"time"

	clientRepo "agendly/database/repository/client"
	reservationRepo "agendly/database/repository/reservation"
	serviceRepo "agendly/database/repository/service"
	"agendly/models"
	"agendly/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Create runs the admission decision and, on acceptance, persists the
// reservation. When the initial status is confirmed, the provider's
// completed-services counter is incremented inside the same transaction as
// the insert; on rejection nothing is written.
func (s *DefaultReservationService) Create(ctx context.Context, req BookingRequest) (*BookingResult, error) {
	status := req.Status
	if status == "" {
		status = models.StatusConfirmed
	}
	if !models.ValidStatus(status) {
		return nil, &ValidationError{Message: fmt.Sprintf("invalid status %q", req.Status)}
	}
	if req.ClientID == "" {
		return nil, &ValidationError{Message: "client is required"}
	}
	if req.ServiceID == "" {
		return nil, &ValidationError{Message: "service is required"}
	}

	// BSON datetimes carry millisecond precision; normalize here so the
	// stored instant and every comparison agree.
	ts := normalizeInstant(req.Timestamp)

	if err := s.admit(req.ProviderID, ts); err != nil {
		return nil, err
	}

	if _, err := s.ClientRepo.GetByID(req.ClientID); err != nil {
		if clientRepo.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "client", ID: req.ClientID}
		}
		return nil, fmt.Errorf("client lookup failed: %w", err)
	}
	if _, err := s.ServiceRepo.GetByID(req.ServiceID); err != nil {
		if serviceRepo.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "service", ID: req.ServiceID}
		}
		return nil, fmt.Errorf("service lookup failed: %w", err)
	}

	now := time.Now().UTC()
	res := &models.Reservation{
		ID:         uuid.New().String(),
		ClientID:   req.ClientID,
		ProviderID: req.ProviderID,
		ServiceID:  req.ServiceID,
		Timestamp:  ts,
		Status:     status,
		Notes:      req.Notes,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	// The counter moves only here, never on a later status change.
	increment := status == models.StatusConfirmed
	if err := s.Repo.CreateWithCounter(ctx, res, increment); err != nil {
		// The transaction re-checks occupancy; a racing request that slipped
		// past the admission read loses here.
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, newDuplicateSlotError()
		}
		return nil, err
	}

	utils.GetLogger().Info("reservation created",
		zap.String("reservationId", res.ID),
		zap.String("providerId", res.ProviderID),
		zap.Bool("counterIncremented", increment),
	)
	return &BookingResult{Reservation: res, CounterIncremented: increment}, nil
}

// Update patches a reservation. Admission is re-run only when the provider
// or the timestamp actually changes; status and notes updates go through
// untouched. The provider counter is never moved by an update.
func (s *DefaultReservationService) Update(ctx context.Context, id string, patch BookingUpdate) (*models.Reservation, error) {
	existing, err := s.Repo.GetByID(id)
	if err != nil {
		if reservationRepo.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "reservation", ID: id}
		}
		return nil, fmt.Errorf("reservation lookup failed: %w", err)
	}

	updated := *existing
	revalidate := false
	if patch.ProviderID != "" && patch.ProviderID != existing.ProviderID {
		updated.ProviderID = patch.ProviderID
		revalidate = true
	}
	if newTS := normalizeInstant(patch.Timestamp); !newTS.IsZero() && !newTS.Equal(existing.Timestamp) {
		updated.Timestamp = newTS
		revalidate = true
	}
	if patch.Status != "" {
		if !models.ValidStatus(patch.Status) {
			return nil, &ValidationError{Message: fmt.Sprintf("invalid status %q", patch.Status)}
		}
		updated.Status = patch.Status
	}
	if patch.Notes != nil {
		updated.Notes = *patch.Notes
	}

	if revalidate {
		if err := s.admit(updated.ProviderID, updated.Timestamp); err != nil {
			return nil, err
		}
	}

	updated.UpdatedAt = time.Now().UTC()
	if err := s.Repo.Update(&updated); err != nil {
		if errors.Is(err, reservationRepo.ErrSlotTaken) {
			return nil, newDuplicateSlotError()
		}
		return nil, err
	}
	return &updated, nil
}

// normalizeInstant maps a request instant onto the precision the store keeps
// for BSON datetimes. The zero time stays zero.
func normalizeInstant(ts time.Time) time.Time {
	if ts.IsZero() {
		return ts
	}
	return ts.UTC().Truncate(time.Millisecond)
}

// Cancel marks a reservation cancelled. The completed-services counter is
// not rolled back; that asymmetry is part of the lifecycle contract.
func (s *DefaultReservationService) Cancel(ctx context.Context, id string) (*models.Reservation, error) {
	return s.Update(ctx, id, BookingUpdate{Status: models.StatusCancelled})
}

func (s *DefaultReservationService) GetByID(id string) (*models.Reservation, error) {
	res, err := s.Repo.GetByID(id)
	if err != nil {
		if reservationRepo.IsNotFound(err) {
			return nil, &NotFoundError{Resource: "reservation", ID: id}
		}
		return nil, err
	}
	return res, nil
}

func (s *DefaultReservationService) ListByClient(clientID string) ([]models.Reservation, error) {
	return s.Repo.ListByClient(clientID)
}
