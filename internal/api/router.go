package api

import (
	"database/sql"
	"net/http"
)

// NewRouter creates the API router with all endpoints registered.
func NewRouter(db *sql.DB, jwtSecret string) http.Handler {
	mux := http.NewServeMux()

	authHandler := &AuthHandler{DB: db, JWTSecret: jwtSecret}
	itemsHandler := &ItemsHandler{DB: db}
	swapsHandler := &SwapsHandler{DB: db}
	placesHandler := &PlacesHandler{DB: db}
	communityHandler := &CommunityHandler{DB: db}
	profileHandler := &ProfileHandler{DB: db}
	dashboardHandler := &DashboardHandler{DB: db}

	authMW := AuthMiddleware(jwtSecret, db)

	// Public: account creation and login.
	mux.HandleFunc("POST /api/auth/signup", authHandler.Signup)
	mux.HandleFunc("POST /api/auth/login", authHandler.Login)
	mux.Handle("POST /api/auth/logout", authMW(http.HandlerFunc(authHandler.Logout)))

	// Catalog: reads are public, writes need a token.
	mux.HandleFunc("GET /api/items", itemsHandler.List)
	mux.HandleFunc("GET /api/items/{id}", itemsHandler.Get)
	mux.HandleFunc("GET /api/items/{id}/image", itemsHandler.GetImage)
	mux.HandleFunc("GET /api/categories", itemsHandler.ListCategories)
	mux.Handle("POST /api/items", authMW(http.HandlerFunc(itemsHandler.Create)))
	mux.Handle("DELETE /api/items/{id}", authMW(http.HandlerFunc(itemsHandler.Deactivate)))

	// Swap negotiation.
	mux.Handle("POST /api/items/{id}/swap-request", authMW(http.HandlerFunc(swapsHandler.Create)))
	mux.Handle("POST /api/swaps/{id}/status", authMW(http.HandlerFunc(swapsHandler.UpdateStatus)))

	// Eco directory.
	mux.HandleFunc("GET /api/places", placesHandler.List)
	mux.Handle("POST /api/places", authMW(http.HandlerFunc(placesHandler.Create)))

	// Community feed.
	mux.HandleFunc("GET /api/community", communityHandler.List)
	mux.Handle("POST /api/community", authMW(http.HandlerFunc(communityHandler.Create)))

	// Profile and dashboard.
	mux.Handle("GET /api/profile", authMW(http.HandlerFunc(profileHandler.Get)))
	mux.Handle("PUT /api/profile", authMW(http.HandlerFunc(profileHandler.Update)))
	mux.Handle("GET /api/dashboard", authMW(http.HandlerFunc(dashboardHandler.Get)))

	return mux
}
