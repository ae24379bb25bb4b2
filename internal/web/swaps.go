package web

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// SwapStatusSubmit handles POST /swaps/{id}/{action} where action is
// accept, decline or complete. Only the owner of the requested item may
// move a request through its lifecycle.
func (s *Server) SwapStatusSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	var newStatus string
	switch r.PathValue("action") {
	case "accept":
		newStatus = model.SwapStatusAccepted
	case "decline":
		newStatus = model.SwapStatusDeclined
	case "complete":
		newStatus = model.SwapStatusCompleted
	default:
		http.NotFound(w, r)
		return
	}

	req, err := store.GetSwapRequest(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get swap request", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if req == nil {
		http.Error(w, "swap request not found", http.StatusNotFound)
		return
	}
	if req.ItemOwnerID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if _, err := store.UpdateSwapRequestStatus(r.Context(), s.DB, id, newStatus); err != nil {
		slog.Warn("swap status change rejected", "error", err, "request", id)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	slog.Info("swap request updated", "user", claims.Username, "item", req.ItemTitle, "status", newStatus)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}
