package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// communityFeedLimit caps the feed page.
const communityFeedLimit = 50

// CommunityPage handles GET /community.
func (s *Server) CommunityPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	posts, err := store.ListRecentPosts(r.Context(), s.DB, communityFeedLimit)
	if err != nil {
		slog.Error("failed to list community posts", "error", err)
	}

	s.Templates.Render(w, "community.html", &struct {
		PageData
		Posts []model.CommunityPost
	}{
		PageData: PageData{Title: "Community", User: claims},
		Posts:    posts,
	})
}

// CommunityPostSubmit handles POST /community. Anonymous posts and posts
// with a blank title or body are dropped without an error page; either
// way the visitor lands back on the feed (redirect-after-post, so a
// refresh can't double-submit).
func (s *Server) CommunityPostSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	title := strings.TrimSpace(r.FormValue("title"))
	body := strings.TrimSpace(r.FormValue("body"))

	if claims != nil && title != "" && body != "" {
		if _, err := store.CreateCommunityPost(r.Context(), s.DB, claims.UserID, title, body); err != nil {
			slog.Error("failed to create community post", "error", err)
		} else {
			slog.Info("community post created", "user", claims.Username, "title", title)
		}
	}

	http.Redirect(w, r, "/community", http.StatusSeeOther)
}
