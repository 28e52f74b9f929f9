package apperror

import (
	"encoding/json"
	"log/slog"
	"net/http"
)

// Write renders err as the JSON error envelope. 5xx errors are logged with
// their internal cause; HEAD requests get the status only.
func Write(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	code, body := ToHTTPError(err)

	if code >= http.StatusInternalServerError && log != nil {
		log.Error("request error",
			slog.Int("status", code),
			slog.String("path", r.URL.Path),
			slog.String("error", err.Error()),
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

// WriteJSON writes v as a JSON response with the given status.
func WriteJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
