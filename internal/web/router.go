package web

import (
	"database/sql"
	"net/http"

	webembed "github.com/ecoswap/ecoswap/web"
)

// NewRouter creates the web page router with all page routes registered.
func NewRouter(db *sql.DB, jwtSecret string) (http.Handler, error) {
	templates, err := LoadTemplates()
	if err != nil {
		return nil, err
	}

	s := &Server{
		DB:        db,
		Templates: templates,
		JWTSecret: jwtSecret,
	}

	mux := http.NewServeMux()
	optional := OptionalAuth(jwtSecret, db)
	required := RequireAuth(jwtSecret, db)

	// Static assets.
	mux.Handle("GET /static/", http.StripPrefix("/static/", http.FileServer(http.FS(webembed.StaticFS()))))

	// Public pages; logged-in visitors still get their navigation state.
	mux.Handle("GET /{$}", optional(http.HandlerFunc(s.Home)))
	mux.Handle("GET /home", optional(http.HandlerFunc(s.Home)))
	mux.Handle("GET /about", optional(http.HandlerFunc(s.About)))
	mux.Handle("GET /contact", optional(http.HandlerFunc(s.Contact)))
	mux.Handle("GET /faq", optional(http.HandlerFunc(s.FAQ)))
	mux.Handle("GET /terms", optional(http.HandlerFunc(s.Terms)))
	mux.Handle("GET /password-reset", optional(http.HandlerFunc(s.PasswordReset)))

	// Account.
	mux.HandleFunc("GET /signup", s.SignupPage)
	mux.HandleFunc("POST /signup", s.SignupSubmit)
	mux.HandleFunc("GET /login", s.LoginPage)
	mux.HandleFunc("POST /login", s.LoginSubmit)
	mux.HandleFunc("POST /logout", s.Logout)

	// Catalog.
	mux.Handle("GET /browse", optional(http.HandlerFunc(s.BrowsePage)))
	mux.Handle("GET /items/new", required(http.HandlerFunc(s.ItemNewPage)))
	mux.Handle("POST /items/new", required(http.HandlerFunc(s.ItemCreateSubmit)))
	mux.Handle("GET /items/{id}", optional(http.HandlerFunc(s.ItemDetailPage)))
	mux.Handle("POST /items/{id}", optional(http.HandlerFunc(s.SwapRequestSubmit)))
	mux.HandleFunc("GET /items/{id}/image", s.ItemImageGet)
	mux.Handle("POST /items/{id}/deactivate", required(http.HandlerFunc(s.ItemDeactivateSubmit)))

	// Swap negotiation.
	mux.Handle("POST /swaps/{id}/{action}", required(http.HandlerFunc(s.SwapStatusSubmit)))

	// Dashboard.
	mux.Handle("GET /dashboard", required(http.HandlerFunc(s.Dashboard)))

	// Eco directory.
	mux.Handle("GET /eco-finder", optional(http.HandlerFunc(s.EcoFinderPage)))

	// Community feed.
	mux.Handle("GET /community", optional(http.HandlerFunc(s.CommunityPage)))
	mux.Handle("POST /community", optional(http.HandlerFunc(s.CommunityPostSubmit)))

	// Profile.
	mux.Handle("GET /profile", required(http.HandlerFunc(s.ProfilePage)))
	mux.Handle("GET /profile/edit", required(http.HandlerFunc(s.ProfileEditPage)))
	mux.Handle("POST /profile/edit", required(http.HandlerFunc(s.ProfileEditSubmit)))
	mux.Handle("GET /profile/avatar", required(http.HandlerFunc(s.ProfileAvatarGet)))

	return mux, nil
}
