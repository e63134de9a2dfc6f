package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"runtime/debug"
)

// RecoveryMiddleware превращает panic в обработчике в ответ 500.
// Стек пишется в лог, клиенту детали не отдаются.
// http.ErrAbortHandler пробрасывается дальше: сервер сам оборвет соединение.
func RecoveryMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rv := recover()
				if rv == nil {
					return
				}
				if err, ok := rv.(error); ok && errors.Is(err, http.ErrAbortHandler) {
					panic(rv)
				}

				logger.ErrorContext(r.Context(), "Panic recovered",
					slog.Any("error", rv),
					slog.String("request_id", RequestID(r.Context())),
					slog.String("method", r.Method),
					slog.String("path", r.URL.Path),
					slog.String("stack", string(debug.Stack())),
				)

				writeError(w, http.StatusInternalServerError, "internal_error", "Internal Server Error")
			}()

			next.ServeHTTP(w, r)
		})
	}
}
