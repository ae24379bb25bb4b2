package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// EcoFinderPage handles GET /eco-finder. The city and type query params
// are both optional.
func (s *Server) EcoFinderPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	city := strings.TrimSpace(r.URL.Query().Get("city"))
	placeType := strings.TrimSpace(r.URL.Query().Get("type"))

	places, err := store.FindEcoPlaces(r.Context(), s.DB, city, placeType)
	if err != nil {
		slog.Error("failed to find eco places", "error", err)
	}

	s.Templates.Render(w, "eco_finder.html", &struct {
		PageData
		Places       []model.EcoPlace
		SelectedCity string
		SelectedType string
	}{
		PageData:     PageData{Title: "Eco finder", User: claims},
		Places:       places,
		SelectedCity: city,
		SelectedType: placeType,
	})
}
