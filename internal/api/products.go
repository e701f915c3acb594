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

func (s *Server) handleListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := s.svc.Products.ListProducts(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list products")
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (s *Server) handleListProductNames(w http.ResponseWriter, r *http.Request) {
	names, err := s.svc.Products.ListProductNames(r.Context())
	if err != nil {
		s.log.Error().Err(err).Msg("list product names")
		writeError(w, http.StatusInternalServerError, "failed to load products")
		return
	}
	writeJSON(w, http.StatusOK, names)
}

func (s *Server) handleGetProduct(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	product, err := s.svc.Products.GetProduct(r.Context(), id)
	switch {
	case errors.Is(err, service.ErrInvalidID):
		writeError(w, http.StatusBadRequest, "invalid product id")
	case errors.Is(err, store.ErrNotFound):
		writeError(w, http.StatusNotFound, "product not found")
	case err != nil:
		s.log.Error().Err(err).Str("product_id", id).Msg("get product")
		writeError(w, http.StatusInternalServerError, "failed to load product")
	default:
		writeJSON(w, http.StatusOK, product)
	}
}

func (s *Server) handleCreateProduct(w http.ResponseWriter, r *http.Request) {
	var product models.Product
	if err := json.NewDecoder(r.Body).Decode(&product); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if product.Name == "" {
		writeError(w, http.StatusBadRequest, "name is required")
		return
	}

	if err := s.svc.Products.CreateProduct(r.Context(), &product); err != nil {
		s.log.Error().Err(err).Msg("create product")
		writeError(w, http.StatusInternalServerError, "failed to create product")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{"success": true, "insertedId": product.ID})
}
