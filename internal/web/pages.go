package web

import (
	"log/slog"
	"net/http"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// featuredItemCount is how many items the landing page shows.
const featuredItemCount = 5

// Home handles GET / and GET /home.
func (s *Server) Home(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	items, err := store.ListActiveItems(r.Context(), s.DB, featuredItemCount)
	if err != nil {
		slog.Error("failed to list featured items", "error", err)
	}

	s.Templates.Render(w, "home.html", &struct {
		PageData
		Items []model.Item
	}{
		PageData: PageData{Title: "ecoSwap", User: claims},
		Items:    items,
	})
}

// About handles GET /about.
func (s *Server) About(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "about.html", &PageData{Title: "About", User: GetWebClaims(r.Context())})
}

// Contact handles GET /contact.
func (s *Server) Contact(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "contact.html", &PageData{Title: "Contact", User: GetWebClaims(r.Context())})
}

// FAQ handles GET /faq.
func (s *Server) FAQ(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "faq.html", &PageData{Title: "FAQ", User: GetWebClaims(r.Context())})
}

// Terms handles GET /terms.
func (s *Server) Terms(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "terms.html", &PageData{Title: "Terms", User: GetWebClaims(r.Context())})
}

// PasswordReset handles GET /password-reset. It is a placeholder page that
// explains how to get help, not an actual reset flow.
func (s *Server) PasswordReset(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "password_reset.html", &PageData{Title: "Password reset", User: GetWebClaims(r.Context())})
}
