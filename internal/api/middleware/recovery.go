package middleware

import (
	"log/slog"
	"net/http"

	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/api/apierr"
	"github.com/chrisgong1984-rgb/Tower-of-Sums-Medieval-Puzzle/internal/middleware"
)

// Recovery creates panic recovery middleware that writes JSON API errors
func Recovery(logger *slog.Logger) func(http.Handler) http.Handler {
	return middleware.Recovery(logger, func(w http.ResponseWriter, r *http.Request, err any) {
		apierr.WriteError(w, apierr.NewInternalError())
	})
}
