package handlers

import (
	"errors"
	"net/http"

	reservationRepo "agendly/database/repository/reservation"
	reservationSvc "agendly/services/reservation"
	"agendly/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// writeReservationError maps booking-core errors onto HTTP responses.
// Admission rejections carry their machine-readable code; a duplicate slot
// is a conflict, the other rejections are unprocessable requests.
func writeReservationError(c *gin.Context, err error) {
	var admission *reservationSvc.AdmissionError
	if errors.As(err, &admission) {
		status := http.StatusUnprocessableEntity
		if admission.Code == reservationSvc.CodeDuplicateSlot {
			status = http.StatusConflict
		}
		c.JSON(status, utils.ErrorResponse{Message: admission.Message, Code: admission.Code})
		return
	}

	var validation *reservationSvc.ValidationError
	if errors.As(err, &validation) {
		c.JSON(http.StatusBadRequest, utils.ErrorResponse{Message: validation.Message})
		return
	}

	var notFound *reservationSvc.NotFoundError
	if errors.As(err, &notFound) {
		c.JSON(http.StatusNotFound, utils.ErrorResponse{Message: notFound.Error()})
		return
	}

	if errors.Is(err, reservationRepo.ErrStoreConflict) {
		c.JSON(http.StatusServiceUnavailable, utils.ErrorResponse{
			Message: "Booking could not be completed, please retry",
			Details: err.Error(),
		})
		return
	}

	utils.GetLogger().Error("reservation request failed", zap.Error(err))
	c.JSON(http.StatusInternalServerError, utils.ErrorResponse{Message: "Internal Server Error"})
}
