package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/malamapl09/plexo-marketing/pkg/logger"
)

// WriteJSON writes err as the standard {"error": {...}} body.
// 5xx errors are logged at error level when log is non-nil.
func WriteJSON(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= 500 && log != nil {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			logger.Error(err),
		)
	}

	if r.Method == http.MethodHead {
		w.WriteHeader(code)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(body)
}

// JSON writes v with the given status code.
func JSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
