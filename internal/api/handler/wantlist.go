package handler

import (
	"encoding/json"
	"net/http"

	"github.com/jtarrant/wanttogo/internal/api/middleware"
	"github.com/jtarrant/wanttogo/internal/api/request"
	"github.com/jtarrant/wanttogo/internal/api/response"
	"github.com/jtarrant/wanttogo/internal/model"
	"github.com/jtarrant/wanttogo/internal/services/wantlist"
)

// WantListHandler handles want-to-go list endpoints
type WantListHandler struct {
	wantlistService *wantlist.Service
}

// NewWantListHandler creates a new want-list handler
func NewWantListHandler(wantlistService *wantlist.Service) *WantListHandler {
	return &WantListHandler{
		wantlistService: wantlistService,
	}
}

// Get handles GET /api/v1/wantlist
func (h *WantListHandler) Get(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	items, err := h.wantlistService.List(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.WantListFromModel(items))
}

// Add handles POST /api/v1/wantlist
func (h *WantListHandler) Add(w http.ResponseWriter, r *http.Request) {
	username := middleware.MustGetUsername(r.Context())

	var req request.AddWantToGoRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	if req.Place == "" {
		WriteError(w, NewInvalidRequestError("place is required"))
		return
	}

	if err := h.wantlistService.Add(r.Context(), username, model.DestinationCode(req.Place)); err != nil {
		WriteError(w, err)
		return
	}

	items, err := h.wantlistService.List(r.Context(), username)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.WantListFromModel(items))
}
