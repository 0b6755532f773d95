package handlers

import (
	"net/http"
	"time"

	reservationSvc "agendly/services/reservation"
	"agendly/utils"

	"github.com/gin-gonic/gin"
)

// ReservationHandler exposes the booking endpoints.
type ReservationHandler struct {
	Service reservationSvc.ReservationService
}

type createReservationPayload struct {
	ProviderID string `json:"providerId"`
	ServiceID  string `json:"serviceId"`
	Timestamp  string `json:"timestamp"`
	Status     string `json:"status"`
	Notes      string `json:"notes"`
}

type updateReservationPayload struct {
	ProviderID string  `json:"providerId"`
	Timestamp  string  `json:"timestamp"`
	Status     string  `json:"status"`
	Notes      *string `json:"notes"`
}

// parseTimestamp turns a request timestamp into a time.Time. An absent field
// maps to the zero time so the core reports it as a missing required field;
// only a present-but-malformed value is a request error.
func parseTimestamp(raw string) (time.Time, bool) {
	if raw == "" {
		return time.Time{}, true
	}
	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}, false
	}
	return ts, true
}

// Create handles POST /api/reservations.
func (h *ReservationHandler) Create(c *gin.Context) {
	var payload createReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ts, ok := parseTimestamp(payload.Timestamp)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid timestamp", "timestamp must be RFC 3339")
		return
	}

	clientID := c.GetString("userID")
	result, err := h.Service.Create(c.Request.Context(), reservationSvc.BookingRequest{
		ProviderID: payload.ProviderID,
		ClientID:   clientID,
		ServiceID:  payload.ServiceID,
		Timestamp:  ts,
		Status:     payload.Status,
		Notes:      payload.Notes,
	})
	if err != nil {
		writeReservationError(c, err)
		return
	}
	c.JSON(http.StatusCreated, result)
}

// Get handles GET /api/reservations/:id. Clients may only read their own
// reservations.
func (h *ReservationHandler) Get(c *gin.Context) {
	res, err := h.Service.GetByID(c.Param("id"))
	if err != nil {
		writeReservationError(c, err)
		return
	}
	if res.ClientID != c.GetString("userID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "reservation belongs to another client")
		return
	}
	c.JSON(http.StatusOK, res)
}

// List handles GET /api/reservations, scoped to the authenticated client.
func (h *ReservationHandler) List(c *gin.Context) {
	reservations, err := h.Service.ListByClient(c.GetString("userID"))
	if err != nil {
		writeReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, reservations)
}

// Update handles PATCH /api/reservations/:id.
func (h *ReservationHandler) Update(c *gin.Context) {
	var payload updateReservationPayload
	if err := c.ShouldBindJSON(&payload); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Invalid request payload", err.Error())
		return
	}

	ts, ok := parseTimestamp(payload.Timestamp)
	if !ok {
		utils.JSONError(c, http.StatusBadRequest, "Invalid timestamp", "timestamp must be RFC 3339")
		return
	}

	id := c.Param("id")
	existing, err := h.Service.GetByID(id)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	if existing.ClientID != c.GetString("userID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "reservation belongs to another client")
		return
	}

	updated, err := h.Service.Update(c.Request.Context(), id, reservationSvc.BookingUpdate{
		ProviderID: payload.ProviderID,
		Timestamp:  ts,
		Status:     payload.Status,
		Notes:      payload.Notes,
	})
	if err != nil {
		writeReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, updated)
}

// Cancel handles DELETE /api/reservations/:id. The record is kept with a
// cancelled status rather than removed.
func (h *ReservationHandler) Cancel(c *gin.Context) {
	id := c.Param("id")
	existing, err := h.Service.GetByID(id)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	if existing.ClientID != c.GetString("userID") {
		utils.JSONError(c, http.StatusForbidden, "Forbidden", "reservation belongs to another client")
		return
	}

	cancelled, err := h.Service.Cancel(c.Request.Context(), id)
	if err != nil {
		writeReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, cancelled)
}
