package web

import (
	"log/slog"
	"net/http"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/ecoswap/ecoswap/internal/auth"
	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// SignupPage handles GET /signup.
func (s *Server) SignupPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "signup.html", &struct {
		PageData
		Username string
	}{
		PageData: PageData{Title: "Sign up"},
	})
}

// SignupSubmit handles POST /signup. On success the new user is logged in
// and sent to their dashboard.
func (s *Server) SignupSubmit(w http.ResponseWriter, r *http.Request) {
	username := strings.TrimSpace(r.FormValue("username"))
	password := r.FormValue("password")
	confirm := r.FormValue("password_confirm")

	renderError := func(msg string) {
		s.Templates.Render(w, "signup.html", &struct {
			PageData
			Username string
		}{
			PageData: PageData{Title: "Sign up", Error: msg},
			Username: username,
		})
	}

	if err := model.ValidateUsername(username); err != nil {
		renderError(err.Error())
		return
	}
	if err := model.ValidatePassword(password); err != nil {
		renderError(err.Error())
		return
	}
	if password != confirm {
		renderError("Passwords do not match.")
		return
	}

	existing, err := store.GetUserByUsername(r.Context(), s.DB, username)
	if err != nil {
		slog.Error("failed to check username", "error", err)
		renderError("Something went wrong, please try again.")
		return
	}
	if existing != nil && existing.DeletedAt == nil {
		renderError("That username is already taken.")
		return
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		slog.Error("failed to hash password", "error", err)
		renderError("Something went wrong, please try again.")
		return
	}

	user, err := store.CreateUser(r.Context(), s.DB, username, string(hash))
	if err != nil {
		slog.Error("failed to create user", "error", err)
		renderError("Something went wrong, please try again.")
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		http.Redirect(w, r, "/login", http.StatusSeeOther)
		return
	}

	setAuthCookie(w, token)
	slog.Info("user signed up", "user", user.Username)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// LoginPage handles GET /login.
func (s *Server) LoginPage(w http.ResponseWriter, r *http.Request) {
	s.Templates.Render(w, "login.html", &PageData{Title: "Log in"})
}

// LoginSubmit handles POST /login. The failure message never distinguishes
// an unknown username from a wrong password.
func (s *Server) LoginSubmit(w http.ResponseWriter, r *http.Request) {
	username := r.FormValue("username")
	password := r.FormValue("password")

	user, err := store.GetUserByUsername(r.Context(), s.DB, username)
	if err != nil || user == nil || user.DeletedAt != nil {
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Invalid credentials!",
		})
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		slog.Warn("login failed", "username", username, "remote", r.RemoteAddr)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Invalid credentials!",
		})
		return
	}

	token, err := auth.GenerateToken(s.JWTSecret, user.ID, user.Username)
	if err != nil {
		slog.Error("failed to generate token", "error", err)
		s.Templates.Render(w, "login.html", &PageData{
			Title: "Log in",
			Error: "Something went wrong, please try again.",
		})
		return
	}

	setAuthCookie(w, token)
	slog.Info("user logged in", "user", user.Username)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// Logout handles POST /logout. The token's JTI is revoked so the cookie
// cannot be replayed.
func (s *Server) Logout(w http.ResponseWriter, r *http.Request) {
	if cookie, err := r.Cookie("token"); err == nil && cookie.Value != "" {
		if claims, err := auth.ValidateToken(s.JWTSecret, cookie.Value); err == nil && claims.ID != "" {
			if err := store.RevokeToken(r.Context(), s.DB, claims.ID, claims.ExpiresAt.Time); err != nil {
				slog.Error("failed to revoke token", "error", err)
			}
		}
	}

	clearAuthCookie(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
