package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	reservationRepo "agendly/database/repository/reservation"
	reservationSvc "agendly/services/reservation"

	"github.com/gin-gonic/gin"
)

func TestParseTimestamp(t *testing.T) {
	// Absent field maps to the zero time; the core reports it as missing.
	ts, ok := parseTimestamp("")
	if !ok || !ts.IsZero() {
		t.Fatalf("empty timestamp: got (%v, %v)", ts, ok)
	}

	ts, ok = parseTimestamp("2024-03-15T10:00:00Z")
	if !ok {
		t.Fatalf("valid RFC 3339 timestamp rejected")
	}
	want := time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)
	if !ts.Equal(want) {
		t.Fatalf("got %v, want %v", ts, want)
	}

	if _, ok := parseTimestamp("15/03/2024 10:00"); ok {
		t.Fatalf("malformed timestamp accepted")
	}
}

func TestWriteReservationErrorMapping(t *testing.T) {
	gin.SetMode(gin.TestMode)

	cases := []struct {
		name string
		err  error
		want int
	}{
		{"missing fields", &reservationSvc.AdmissionError{Code: reservationSvc.CodeMissingRequiredFields}, http.StatusUnprocessableEntity},
		{"provider unavailable", &reservationSvc.AdmissionError{Code: reservationSvc.CodeProviderUnavailable}, http.StatusUnprocessableEntity},
		{"duplicate slot", &reservationSvc.AdmissionError{Code: reservationSvc.CodeDuplicateSlot}, http.StatusConflict},
		{"validation", &reservationSvc.ValidationError{Message: "bad"}, http.StatusBadRequest},
		{"not found", &reservationSvc.NotFoundError{Resource: "provider", ID: "x"}, http.StatusNotFound},
		{"store conflict", reservationRepo.ErrStoreConflict, http.StatusServiceUnavailable},
	}
	for _, tc := range cases {
		rec := httptest.NewRecorder()
		c, _ := gin.CreateTestContext(rec)
		writeReservationError(c, tc.err)
		if rec.Code != tc.want {
			t.Fatalf("%s: got status %d, want %d", tc.name, rec.Code, tc.want)
		}
	}
}
