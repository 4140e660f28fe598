package handler

import (
	"net/http"

	"github.com/jtarrant/wanttogo/internal/web/middleware"
	"github.com/jtarrant/wanttogo/internal/web/templates/layout"
	"github.com/jtarrant/wanttogo/internal/web/templates/pages"
)

// HomeHandler handles the home page
type HomeHandler struct{}

// NewHomeHandler creates a new HomeHandler
func NewHomeHandler() *HomeHandler {
	return &HomeHandler{}
}

// Home renders the home page
func (h *HomeHandler) Home(w http.ResponseWriter, r *http.Request) {
	data := pages.HomeData{
		PageData: layout.PageData{
			Title:    "Home",
			Username: middleware.GetUsername(r.Context()),
			Flash:    middleware.GetFlash(r.Context()),
			Message:  r.URL.Query().Get("message"),
		},
	}

	renderPage(w, r, pages.Home(data), http.StatusOK)
}
