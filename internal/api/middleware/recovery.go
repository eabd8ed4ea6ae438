package middleware

import (
	"log/slog"
	"net/http"

	"github.com/inventoryapp/inventory-api/internal/errors"
	"github.com/inventoryapp/inventory-api/internal/utils/response"
)

// Recovery turns a handler panic into a generic 500; the panic value is
// logged server-side only.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				LoggerFromContext(r.Context()).Error("Panic while handling request",
					slog.Any("panic", rec),
					slog.String("http_path", r.URL.Path))
				response.Error(w, errors.InternalError("An unexpected error occurred"))
			}
		}()

		next.ServeHTTP(w, r)
	})
}
