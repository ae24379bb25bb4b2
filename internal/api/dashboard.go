package api

import (
	"database/sql"
	"log/slog"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// DashboardHandler handles the aggregate dashboard endpoint.
type DashboardHandler struct {
	DB *sql.DB
}

type dashboardResponse struct {
	Items    []model.Item         `json:"items"`
	Impact   *model.ImpactSummary `json:"impact"`
	Incoming []model.SwapRequest  `json:"incoming_requests"`
	Outgoing []model.SwapRequest  `json:"outgoing_requests"`
}

// Get handles GET /api/dashboard.
func (h *DashboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	items, err := store.ListItemsByOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list own items", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	impact, err := store.SumImpact(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to sum impact", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	incoming, err := store.ListSwapRequestsForOwner(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list incoming swap requests", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}
	outgoing, err := store.ListSwapRequestsByUser(r.Context(), h.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list outgoing swap requests", "error", err)
		jsonError(w, http.StatusInternalServerError, "failed to load dashboard")
		return
	}

	jsonResponse(w, http.StatusOK, dashboardResponse{
		Items:    items,
		Impact:   impact,
		Incoming: incoming,
		Outgoing: outgoing,
	})
}
