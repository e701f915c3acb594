package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"manuparts/internal/models"
	"manuparts/internal/service"
	"manuparts/internal/store"

	"github.com/go-chi/chi/v5"
)

func (s *Server) handleCreateBooking(w http.ResponseWriter, r *http.Request) {
	var booking models.Booking
	if err := json.NewDecoder(r.Body).Decode(&booking); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.svc.Bookings.AdmitBooking(r.Context(), &booking)
	switch {
	case errors.Is(err, service.ErrMissingBookingFields):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error().Err(err).Msg("create booking")
		writeError(w, http.StatusInternalServerError, "failed to create booking")
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleListBookings(w http.ResponseWriter, r *http.Request) {
	bookings, err := s.svc.Bookings.ListBookings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list bookings")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

// handleListBookingsByEmail returns the caller's own bookings: the path email
// must equal the token's email claim.
func (s *Server) handleListBookingsByEmail(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")
	claims := ClaimsFromContext(r.Context())
	if claims == nil || claims.Email != email {
		writeError(w, http.StatusForbidden, "forbidden access")
		return
	}

	bookings, err := s.svc.Bookings.ListBookingsByEmail(r.Context(), email)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("list bookings by email")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}
	writeJSON(w, http.StatusOK, bookings)
}

func (s *Server) handleGetBookingForPayment(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	booking, err := s.svc.Bookings.GetBooking(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid booking id")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "booking not found")
	case err != nil:
		s.log.Error().Err(err).Str("booking_id", id).Msg("get booking")
		writeError(w, http.StatusInternalServerError, "failed to load booking")
	default:
		writeJSON(w, http.StatusOK, booking)
	}
}
