package delivery

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/Vovarama1992/go-utils/logger"
	"github.com/Vovarama1992/local_translator/internal/apperr"
	"github.com/goccy/go-json"
	"github.com/google/uuid"
)

type errorBody struct {
	Detail string `json:"detail"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		http.Error(w, `{"detail":"failed to encode response"}`, http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(b)
}

// writeError: validation → 400 с текстом, всё остальное → 500.
// Причина 500 уходит в лог и админу под ref-id; клиенту — только если включён EXPOSE_ERROR_DETAILS.
func (h *Handler) writeError(w http.ResponseWriter, r *http.Request, err error) {
	if apperr.IsValidation(err) {
		writeJSON(w, http.StatusBadRequest, errorBody{Detail: err.Error()})
		return
	}

	ref := uuid.NewString()
	details := fmt.Sprintf("%s %s ref=%s", r.Method, r.URL.Path, ref)

	h.log.Log(logger.LogEntry{
		Level:   "error",
		Message: "request failed: " + details,
		Service: h.service,
		Error:   err,
	})
	if h.notifier != nil && (apperr.IsUpstream(err) || errors.Is(err, errPanic)) {
		h.notifier.NotifyAsync(err, details)
	}

	detail := apperr.PublicMessage(err)
	if h.exposeDetails {
		detail = err.Error()
	}
	writeJSON(w, http.StatusInternalServerError, errorBody{Detail: fmt.Sprintf("%s (ref %s)", detail, ref)})
}
