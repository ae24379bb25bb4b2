package web

import (
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/ecoswap/ecoswap/internal/imaging"
	"github.com/ecoswap/ecoswap/internal/model"
	"github.com/ecoswap/ecoswap/internal/store"
)

// browseLimit caps the browse page.
const browseLimit = 50

// BrowsePage handles GET /browse.
func (s *Server) BrowsePage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	items, err := store.ListActiveItems(r.Context(), s.DB, browseLimit)
	if err != nil {
		slog.Error("failed to list items", "error", err)
	}

	s.Templates.Render(w, "browse.html", &struct {
		PageData
		Items []model.Item
	}{
		PageData: PageData{Title: "Browse items", User: claims},
		Items:    items,
	})
}

// itemForm holds submitted listing fields for re-rendering after a
// validation failure.
type itemForm struct {
	Title        string
	Description  string
	CategoryID   string
	Condition    string
	ExchangeType string
	Location     string
}

func (s *Server) renderItemNew(w http.ResponseWriter, r *http.Request, form itemForm, errMsg string) {
	categories, err := store.ListCategories(r.Context(), s.DB)
	if err != nil {
		slog.Error("failed to list categories", "error", err)
	}

	s.Templates.Render(w, "item_new.html", &struct {
		PageData
		Form       itemForm
		Categories []model.Category
	}{
		PageData:   PageData{Title: "List an item", User: GetWebClaims(r.Context()), Error: errMsg},
		Form:       form,
		Categories: categories,
	})
}

// ItemNewPage handles GET /items/new.
func (s *Server) ItemNewPage(w http.ResponseWriter, r *http.Request) {
	s.renderItemNew(w, r, itemForm{Condition: model.ConditionGood, ExchangeType: model.ExchangeSwap}, "")
}

// ItemCreateSubmit handles POST /items/new. The owner always comes from
// the session, never from the form.
func (s *Server) ItemCreateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())

	r.Body = http.MaxBytesReader(w, r.Body, 5<<20)
	if err := r.ParseMultipartForm(5 << 20); err != nil {
		http.Error(w, "form too large", http.StatusBadRequest)
		return
	}

	form := itemForm{
		Title:        strings.TrimSpace(r.FormValue("title")),
		Description:  strings.TrimSpace(r.FormValue("description")),
		CategoryID:   r.FormValue("category_id"),
		Condition:    r.FormValue("condition"),
		ExchangeType: r.FormValue("exchange_type"),
		Location:     strings.TrimSpace(r.FormValue("location")),
	}

	var categoryID *int64
	if form.CategoryID != "" {
		id, err := strconv.ParseInt(form.CategoryID, 10, 64)
		if err != nil {
			s.renderItemNew(w, r, form, "Unknown category.")
			return
		}
		categoryID = &id
	}

	// An uploaded photo is optional; process it before touching the
	// database so a bad file doesn't leave a half-created listing.
	var photo *imaging.Result
	if file, _, err := r.FormFile("image"); err == nil {
		defer file.Close()
		photo, err = imaging.Process(file, imaging.MaxItemDimension)
		if err != nil {
			s.renderItemNew(w, r, form, err.Error())
			return
		}
	}

	item, err := store.CreateItem(r.Context(), s.DB, claims.UserID,
		form.Title, form.Description, categoryID, form.Condition, form.ExchangeType, form.Location)
	if err != nil {
		s.renderItemNew(w, r, form, err.Error())
		return
	}

	if photo != nil {
		if err := store.SetItemImage(r.Context(), s.DB, item.ID, photo.Data, photo.MIME); err != nil {
			slog.Error("failed to save item image", "error", err)
		}
	}

	slog.Info("item listed", "user", claims.Username, "item", item.Title)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ItemDetailPage handles GET /items/{id}. Inactive and missing items are
// both a 404. The swap request form is only offered to authenticated
// visitors who don't own the item.
func (s *Server) ItemDetailPage(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetActiveItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	showSwapForm := claims != nil && claims.UserID != item.OwnerID

	s.Templates.Render(w, "item_detail.html", &struct {
		PageData
		Item         *model.Item
		ShowSwapForm bool
		IsOwner      bool
	}{
		PageData:     PageData{Title: item.Title, User: claims},
		Item:         item,
		ShowSwapForm: showSwapForm,
		IsOwner:      claims != nil && claims.UserID == item.OwnerID,
	})
}

// SwapRequestSubmit handles POST /items/{id}. Owners and anonymous
// visitors are silently bounced back to the item page: the form was never
// offered to them, so their POST is a no-op rather than an error.
func (s *Server) SwapRequestSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetActiveItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}

	if claims == nil || claims.UserID == item.OwnerID {
		http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
		return
	}

	message := strings.TrimSpace(r.FormValue("message"))
	if _, err := store.CreateSwapRequest(r.Context(), s.DB, id, claims.UserID, message); err != nil {
		slog.Error("failed to create swap request", "error", err)
	} else {
		slog.Info("swap request created", "user", claims.Username, "item", item.Title)
	}
	http.Redirect(w, r, fmt.Sprintf("/items/%d", id), http.StatusSeeOther)
}

// ItemDeactivateSubmit handles POST /items/{id}/deactivate (owner only).
func (s *Server) ItemDeactivateSubmit(w http.ResponseWriter, r *http.Request) {
	claims := GetWebClaims(r.Context())
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	item, err := store.GetItem(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	if item == nil {
		http.Error(w, "item not found", http.StatusNotFound)
		return
	}
	if item.OwnerID != claims.UserID {
		http.Error(w, "forbidden", http.StatusForbidden)
		return
	}

	if err := store.SetItemActive(r.Context(), s.DB, id, false); err != nil {
		slog.Error("failed to deactivate item", "error", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	slog.Info("item unlisted", "user", claims.Username, "item", item.Title)
	http.Redirect(w, r, "/dashboard", http.StatusSeeOther)
}

// ItemImageGet handles GET /items/{id}/image.
func (s *Server) ItemImageGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		http.Error(w, "invalid id", http.StatusBadRequest)
		return
	}

	data, mime, err := store.GetItemImage(r.Context(), s.DB, id)
	if err != nil {
		slog.Error("failed to get image", "error", err)
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
	w.Header().Set("Cache-Control", "public, max-age=3600")
	if _, err := w.Write(data); err != nil {
		slog.Error("failed to write image response", "error", err)
	}
}
