package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecoswap/ecoswap/internal/store"
)

// SwapsHandler handles swap negotiation endpoints.
type SwapsHandler struct {
	DB *sql.DB
}

type swapRequestRequest struct {
	Message string `json:"message"`
}

type swapStatusRequest struct {
	Status string `json:"status"`
}

// Create handles POST /api/items/{id}/swap-request.
func (h *SwapsHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	itemID, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req swapRequestRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	item, err := store.GetActiveItem(r.Context(), h.DB, itemID)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get item")
		return
	}
	if item == nil {
		jsonError(w, http.StatusNotFound, "item not found")
		return
	}
	if item.OwnerID == claims.UserID {
		jsonError(w, http.StatusForbidden, "cannot request your own item")
		return
	}

	swap, err := store.CreateSwapRequest(r.Context(), h.DB, itemID, claims.UserID, strings.TrimSpace(req.Message))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("swap request created", "user", claims.Username, "item", item.Title)
	jsonResponse(w, http.StatusCreated, swap)
}

// UpdateStatus handles POST /api/swaps/{id}/status (item owner only).
func (h *SwapsHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		jsonError(w, http.StatusBadRequest, "invalid id")
		return
	}

	var req swapStatusRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	swap, err := store.GetSwapRequest(r.Context(), h.DB, id)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to get swap request")
		return
	}
	if swap == nil {
		jsonError(w, http.StatusNotFound, "swap request not found")
		return
	}
	if swap.ItemOwnerID != claims.UserID {
		jsonError(w, http.StatusForbidden, "not your item")
		return
	}

	updated, err := store.UpdateSwapRequestStatus(r.Context(), h.DB, id, req.Status)
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("swap request updated", "user", claims.Username, "item", swap.ItemTitle, "status", req.Status)
	jsonResponse(w, http.StatusOK, updated)
}
