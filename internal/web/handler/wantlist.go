package handler

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/wantlist"
	"github.com/jtarrant/wanttogo/internal/web/middleware"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
	"github.com/jtarrant/wanttogo/internal/web/templates/pages"
)

// WantListHandler handles the want-to-go list pages and actions
type WantListHandler struct {
	wantlistService *wantlist.Service
	logger          *slog.Logger
}

// NewWantListHandler creates a new WantListHandler
func NewWantListHandler(wantlistService *wantlist.Service, logger *slog.Logger) *WantListHandler {
	return &WantListHandler{
		wantlistService: wantlistService,
		logger:          logger,
	}
}

// Add handles POST /wanttogo: add a place to the authenticated user's list
func (h *WantListHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := middleware.GetUsername(r.Context())

	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	place := model.DestinationCode(r.FormValue("place"))
	if place == "" {
		http.Error(w, "place is required", http.StatusBadRequest)
		return
	}

	err := h.wantlistService.Add(r.Context(), username, place)
	switch {
	case err == nil:
		http.Redirect(w, r, "/wanttogo", http.StatusSeeOther)
	case errors.Is(err, model.ErrUserNotFound):
		http.Error(w, "User not found.", http.StatusNotFound)
	case errors.Is(err, model.ErrAlreadyWanted):
		// Surface the duplicate alongside the current list; nothing was written
		h.renderList(w, r, username,
			"The destination is already in your Want-to-Go list.", http.StatusBadRequest)
	default:
		h.logger.Error("failed to add to want-to-go list",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
	}
}

// ListPage handles GET /wanttogo: render the authenticated user's list
func (h *WantListHandler) ListPage(w http.ResponseWriter, r *http.Request) {
	h.renderList(w, r, middleware.GetUsername(r.Context()), "", http.StatusOK)
}

// renderList renders the list page with the user's current list. A store
// failure is logged and shown as a generic error over an empty list rather
// than propagated.
func (h *WantListHandler) renderList(w http.ResponseWriter, r *http.Request, username, errMsg string, status int) {
	items, err := h.wantlistService.List(r.Context(), username)
	if err != nil {
		h.logger.Error("failed to fetch want-to-go list",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		items = nil
		errMsg = "An error occurred while fetching your Want-to-Go list."
		status = http.StatusInternalServerError
	}

	data := pages.WantListData{
		PageData: layout.PageData{
			Title:    "My Want-to-Go list",
			Username: username,
			Flash:    middleware.GetFlash(r.Context()),
		},
		Items: items,
		Error: errMsg,
	}

	renderPage(w, r, pages.WantList(data), status)
}
