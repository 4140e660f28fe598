package handler

import (
	"log/slog"
	"net/http"

	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/wantlist"
	"github.com/jtarrant/wanttogo/internal/web/middleware"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
	"github.com/jtarrant/wanttogo/internal/web/templates/pages"
)

// DestinationHandler serves the destination and category pages.
// Both route sets are driven from the model catalog rather than hand-written
// per destination.
type DestinationHandler struct {
	wantlistService *wantlist.Service
	logger          *slog.Logger
}

// NewDestinationHandler creates a new DestinationHandler
func NewDestinationHandler(wantlistService *wantlist.Service, logger *slog.Logger) *DestinationHandler {
	return &DestinationHandler{
		wantlistService: wantlistService,
		logger:          logger,
	}
}

// Destination returns the page handler for a single catalog entry
func (h *DestinationHandler) Destination(dest model.Destination) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := middleware.GetUsername(r.Context())

		data := pages.DestinationData{
			PageData: layout.PageData{
				Title:    dest.Name,
				Username: username,
				Flash:    middleware.GetFlash(r.Context()),
			},
			Destination: dest,
			OnList:      h.onList(r, username, dest.Code),
		}

		renderPage(w, r, pages.Destination(data), http.StatusOK)
	}
}

// Category returns the page handler for a browsing category
func (h *DestinationHandler) Category(cat model.Category) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data := pages.CategoryData{
			PageData: layout.PageData{
				Title:    string(cat),
				Username: middleware.GetUsername(r.Context()),
				Flash:    middleware.GetFlash(r.Context()),
			},
			Category:     cat,
			Destinations: model.DestinationsInCategory(cat),
		}

		renderPage(w, r, pages.Category(data), http.StatusOK)
	}
}

// onList reports whether code is already on the user's list. Lookup failures
// only suppress the hint, never the page.
func (h *DestinationHandler) onList(r *http.Request, username string, code model.DestinationCode) bool {
	items, err := h.wantlistService.List(r.Context(), username)
	if err != nil {
		h.logger.Warn("could not check want-to-go list",
			slog.String("username", username),
			slog.String("error", err.Error()),
		)
		return false
	}
	for _, item := range items {
		if item.Code == code {
			return true
		}
	}
	return false
}
