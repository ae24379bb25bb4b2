package web

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/ecoswap/ecoswap/internal/imaging"
	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// ProfilePage handles GET /profile. The profile row is created on first
// visit.
func (s *Server) ProfilePage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	profile, err := store.GetOrCreateProfile(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get profile", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	impact, err := store.SumImpact(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to sum impact", "error", err)
		impact = &model.ImpactSummary{}
	}

	s.Templates.Render(w, "profile.html", &struct {
		PageData
		Profile *model.Profile
		Impact  *model.ImpactSummary
	}{
		PageData: PageData{Title: "Your profile", User: claims},
		Profile:  profile,
		Impact:   impact,
	})
}

// ProfileEditPage handles GET /profile/edit.
func (s *Server) ProfileEditPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	profile, err := store.GetOrCreateProfile(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get profile", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	s.Templates.Render(w, "profile_edit.html", &struct {
		PageData
		Profile *model.Profile
	}{
		PageData: PageData{Title: "Edit profile", User: claims},
		Profile:  profile,
	})
}

// ProfileEditSubmit handles POST /profile/edit, including an optional
// avatar upload.
func (s *Server) ProfileEditSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "form too large", http.StatusBadRequest)
		return
	}

	if _, err := store.GetOrCreateProfile(r.Context(), s.DB, claims.UserID); err != nil {
		slog.Error("failed to get profile", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	displayName := strings.TrimSpace(r.FormValue("display_name"))
	bio := strings.TrimSpace(r.FormValue("bio"))
	location := strings.TrimSpace(r.FormValue("location"))

	if err := store.UpdateProfile(r.Context(), s.DB, claims.UserID, displayName, bio, location); err != nil {
		slog.Error("failed to update profile", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	if file, _, err := r.FormFile("avatar"); err == nil {
		defer file.Close()
		result, err := imaging.Process(file, imaging.MaxAvatarDimension)
		if err != nil {
			profile, _ := store.GetOrCreateProfile(r.Context(), s.DB, claims.UserID)
			s.Templates.Render(w, "profile_edit.html", &struct {
				PageData
				Profile *model.Profile
			}{
				PageData: PageData{Title: "Edit profile", User: claims, Error: err.Error()},
				Profile:  profile,
			})
			return
		}
		if err := store.SetProfileAvatar(r.Context(), s.DB, claims.UserID, result.Data, result.MIME); err != nil {
			slog.Error("failed to save avatar", "error", err)
		}
	}

	slog.Info("profile updated", "user", claims.Username)
	http.Redirect(w, r, "/profile", http.StatusSeeOther)
}

// ProfileAvatarGet handles GET /profile/avatar.
func (s *Server) ProfileAvatarGet(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	data, mime, err := store.GetProfileAvatar(r.Context(), s.DB, claims.UserID)
	if err != nil {
		slog.Error("failed to get avatar", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if data == nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", mime)
	w.Header().Set("Content-Disposition", "inline")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Cache-Control", "private, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write avatar response", "error", err)
	}
}
