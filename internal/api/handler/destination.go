package handler

import (
	"net/http"

	"github.com/jtarrant/wanttogo/internal/api/response"
	"github.com/jtarrant/wanttogo/internal/model"
)

// DestinationHandler serves the destination catalog
type DestinationHandler struct{}

// NewDestinationHandler creates a new destination handler
func NewDestinationHandler() *DestinationHandler {
	return &DestinationHandler{}
}

// List handles GET /api/v1/destinations
func (h *DestinationHandler) List(w http.ResponseWriter, r *http.Request) {
	out := make([]response.Destination, 0, len(model.Catalog))
	for _, d := range model.Catalog {
		out = append(out, response.DestinationFromModel(d))
	}
	response.JSON(w, http.StatusOK, out)
}
