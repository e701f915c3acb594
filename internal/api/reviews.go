package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"manuparts/internal/models"
	"manuparts/internal/service"
)

func (s *Server) handleListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := s.svc.Reviews.ListReviews(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list reviews")
		writeError(w, http.StatusInternalServerError, "failed to load reviews")
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (s *Server) handleCreateReview(w http.ResponseWriter, r *http.Request) {
	var review models.Review
	if err := json.NewDecoder(r.Body).Decode(&review); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	err := s.svc.Reviews.CreateReview(r.Context(), &review)
	switch {
	case errors.Is(err, service.ErrMissingReviewFields):
		writeError(w, http.StatusBadRequest, err.Error())
	case err != nil:
		s.log.Error().Err(err).Msg("create review")
		writeError(w, http.StatusInternalServerError, "failed to create review")
	default:
		writeJSON(w, http.StatusCreated, map[string]any{"success": true, "insertedId": review.ID})
	}
}
