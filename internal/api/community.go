package api

import (
	"database/sql"
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/store"
)

// CommunityHandler handles community feed endpoints.
type CommunityHandler struct {
	DB *sql.DB
}

// apiFeedLimit caps the feed response.
const apiFeedLimit = 50

type createPostRequest struct {
	Title string `json:"title"`
	Body  string `json:"body"`
}

// List handles GET /api/community.
func (h *CommunityHandler) List(w http.ResponseWriter, r *http.Request) {
	posts, err := store.ListRecentPosts(r.Context(), h.DB, apiFeedLimit)
	if err != nil {
		jsonError(w, http.StatusInternalServerError, "failed to list posts")
		return
	}
	jsonResponse(w, http.StatusOK, posts)
}

// Create handles POST /api/community. Unlike the web form, the API is
// explicit: a blank title or body is a 400, not a silent drop.
func (h *CommunityHandler) Create(w http.ResponseWriter, r *http.Request) {
	claims := GetClaims(r.Context())

	var req createPostRequest
	if err := decodeJSON(r, &req); err != nil {
		jsonError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := store.CreateCommunityPost(r.Context(), h.DB, claims.UserID,
		strings.TrimSpace(req.Title), strings.TrimSpace(req.Body))
	if err != nil {
		jsonError(w, http.StatusBadRequest, err.Error())
		return
	}

	slog.Info("community post created", "user", claims.Username, "title", post.Title)
	jsonResponse(w, http.StatusCreated, post)
}
