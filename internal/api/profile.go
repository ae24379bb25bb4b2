package api

import (
	"database/sql"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/store"
)

// ProfileHandler handles profile endpoints.
type ProfileHandler struct {
	DB *sql.DB
}

type updateProfileRequest struct {
	DisplayName string `json:"display_name"`
	Bio         string `json:"bio"`
	Location    string `json:"location"`
}

// Get handles GET /api/profile, creating the profile on first access.
func (h *ProfileHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	profile, err := store.GetOrCreateProfile(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	jsonResponse(w, http.StatusOK, profile)
}

// Update handles PUT /api/profile.
func (h *ProfileHandler) Update(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req updateProfileRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if _, err := store.GetOrCreateProfile(r.Context(), h.DB, claims.UserID); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}

	if err := store.UpdateProfile(r.Context(), h.DB, claims.UserID,
		strings.TrimSpace(req.DisplayName), strings.TrimSpace(req.Bio), strings.TrimSpace(req.Location)); err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to update profile")
		return
	}

	profile, err := store.GetOrCreateProfile(r.Context(), h.DB, claims.UserID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get profile")
		return
	}
	jsonResponse(w, http.StatusOK, profile)
}
