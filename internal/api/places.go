package api

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// PlacesHandler handles eco directory endpoints.
type PlacesHandler struct {
	DB *sql.DB
}

// List handles GET /api/places with optional city and type query params.
func (h *PlacesHandler) List(w http.ResponseWriter, r *http.Request) {
	city := strings.TrimSpace(r.URL.Query().Get("city"))
	placeType := strings.TrimSpace(r.URL.Query().Get("type"))

	places, err := store.FindEcoPlaces(r.Context(), h.DB, city, placeType)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list places")
		return
	}
	jsonResponse(w, http.StatusOK, places)
}

// Create handles POST /api/places.
func (h *PlacesHandler) Create(w http.ResponseWriter, r *http.Request) {
	var place model.EcoPlace
	if err := decodeJSON(r, &place); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	created, err := store.CreateEcoPlace(r.Context(), h.DB, &place)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}
	jsonResponse(w, http.StatusCreated, created)
}
