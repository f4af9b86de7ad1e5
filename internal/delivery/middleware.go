package delivery

import (
	"errors"
	"fmt"
	"net/http"
)

var errPanic = errors.New("panic")

// recoverer ловит панику хендлера и отдаёт обычный 500 {detail} через writeError:
// с ref-id, записью в лог и уведомлением админа.
func (h *Handler) recoverer(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			rec := recover()
			if rec == nil {
				return
			}
			if rec == http.ErrAbortHandler {
				panic(rec)
			}
			h.writeError(w, r, fmt.Errorf("%w: %v", errPanic, rec))
		}()
		next.ServeHTTP(w, r)
	})
}
