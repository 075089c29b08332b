package middleware

import (
	"net/http"
	"runtime/debug"

	"github.com/glowup/research-backend/internal/pkg/response"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// InternalErrorMessage is the only detail callers get about unexpected failures.
const InternalErrorMessage = "Internal server error occurred"

// Recovery turns a panic in a handler into a JSON 500 response.
func Recovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}

			ctxzap.Error(r.Context(), "panic recovered in HTTP handler",
				zap.Any("panic", rec),
				zap.String("stack", string(debug.Stack())),
			)
			response.Error(w, http.StatusInternalServerError, InternalErrorMessage)
		}()

		next.ServeHTTP(w, r)
	})
}
