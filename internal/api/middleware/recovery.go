package middleware

import (
	"log/slog"
	"net/http"

	"github.com/jtarrant/wanttogo/internal/api/apierr"
	"github.com/jtarrant/wanttogo/internal/middleware"
)

// Recovery creates panic recovery middleware for the API
// Returns a JSON error response on panic
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, apiPanicHandler)
}

func apiPanicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	apierr.WriteError(w, apierr.NewInternalError())
}
