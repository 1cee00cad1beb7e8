package middleware

import (
	"net/http"
	"runtime/debug"

	"shelter-records/internal/platform/logger"
	"shelter-records/internal/platform/respond"
)

// Recover reemplaza a chimw.Recoverer: un panic responde con el mismo
// envelope que cualquier otro 500 y queda logueado con el request_id.
func Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			logger.FromContext(r.Context(), nil).Error("panic recovered", map[string]any{
				"panic": rec,
				"stack": string(debug.Stack()),
			})
			respond.Fail(w, http.StatusInternalServerError, "internal error")
		}()

		next.ServeHTTP(w, r)
	})
}
