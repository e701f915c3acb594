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

// handleSignIn upserts the user document and hands back a fresh token. This
// route doubles as login and register.
func (s *Server) handleSignIn(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var profile models.Profile
	if r.ContentLength != 0 {
		if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
			writeError(w, http.StatusBadRequest, "invalid JSON body")
			return
		}
	}

	result, token, err := s.svc.Users.SignIn(r.Context(), email, profile)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("sign in")
		writeError(w, http.StatusInternalServerError, "failed to sign in")
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{"result": result, "token": token})
}

func (s *Server) handlePromoteAdmin(w http.ResponseWriter, r *http.Request) {
	target := chi.URLParam(r, "email")
	claims := ClaimsFromContext(r.Context())

	result, err := s.svc.Users.PromoteToAdmin(r.Context(), claims.Email, target)
	switch {
	case errors.Is(err, service.ErrNotAdmin):
		writeError(w, http.StatusForbidden, "forbidden access")
	case err != nil:
		s.log.Error().Err(err).Str("target", target).Msg("promote admin")
		writeError(w, http.StatusInternalServerError, "failed to update role")
	default:
		writeJSON(w, http.StatusOK, result)
	}
}

func (s *Server) handleAdminCheck(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	isAdmin, err := s.svc.Users.IsAdmin(r.Context(), email)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("admin check")
		writeError(w, http.StatusInternalServerError, "failed to check role")
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"admin": isAdmin})
}

func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	user, err := s.svc.Users.GetProfile(r.Context(), email)
	switch {
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case err != nil:
		s.log.Error().Err(err).Str("email", email).Msg("get profile")
		writeError(w, http.StatusInternalServerError, "failed to load profile")
	default:
		writeJSON(w, http.StatusOK, user)
	}
}

func (s *Server) handleUpdateProfile(w http.ResponseWriter, r *http.Request) {
	email := chi.URLParam(r, "email")

	var profile models.Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	result, err := s.svc.Users.UpdateProfile(r.Context(), email, profile)
	if err != nil {
		s.log.Error().Err(err).Str("email", email).Msg("update profile")
		writeError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := s.svc.Users.ListUsers(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list users")
		writeError(w, http.StatusInternalServerError, "failed to load users")
		return
	}
	writeJSON(w, http.StatusOK, users)
}
