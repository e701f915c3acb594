package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"manuparts/internal/export"
	"manuparts/internal/service"
)

func (s *Server) handleCreatePaymentIntent(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Price float64 `json:"price"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	secret, err := s.svc.Payments.CreateIntent(r.Context(), body.Price)
	switch {
	case errors.Is(err, service.ErrInvalidPrice):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error().Err(err).Msg("create payment intent")
		writeError(w, http.StatusInternalServerError, "failed to create payment intent")
	default:
		writeJSON(w, http.StatusOK, map[string]string{"clientSecret": secret})
	}
}

// handleExportBookings streams every booking as an xlsx workbook. Admins only.
func (s *Server) handleExportBookings(w http.ResponseWriter, r *http.Request) {
	claims := ClaimsFromContext(r.Context())

	isAdmin, err := s.svc.Users.IsAdmin(r.Context(), claims.Email)
	if err != nil {
		s.log.Error().Err(err).Msg("export bookings role check")
		writeError(w, http.StatusInternalServerError, "failed to check role")
		return
	}
	if !isAdmin {
		writeError(w, http.StatusForbidden, "forbidden access")
		return
	}

	bookings, err := s.svc.Bookings.ListBookings(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("export bookings")
		writeError(w, http.StatusInternalServerError, "failed to load bookings")
		return
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="bookings.xlsx"`)
	if err := export.WriteBookingsXLSX(w, bookings); err != nil {
		s.log.Error().Err(err).Msg("write bookings workbook")
	}
}
