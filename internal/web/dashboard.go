package web

import (
	"log/slog"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// Dashboard handles GET /dashboard: the user's listings, their impact
// totals, and swap requests in both directions.
func (s *Server) Dashboard(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	items, err := store.ListItemsByOwner(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list own items", "error", err)
	}
	impact, err := store.SumImpact(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to sum impact", "error", err)
		impact = &model.ImpactSummary{}
	}
	incoming, err := store.ListSwapRequestsForOwner(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list incoming swap requests", "error", err)
	}
	outgoing, err := store.ListSwapRequestsByUser(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to list outgoing swap requests", "error", err)
	}

	s.Templates.Render(w, "dashboard.html", &struct {
		PageData
		Items    []model.Item
		Impact   *model.ImpactSummary
		Incoming []model.SwapRequest
		Outgoing []model.SwapRequest
	}{
		PageData: PageData{Title: "Dashboard", User: claims},
		Items:    items,
		Impact:   impact,
		Incoming: incoming,
		Outgoing: outgoing,
	})
}
