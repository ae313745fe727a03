// Package recovery turns handler panics into a 500 envelope.
package recovery

import (
	"fmt"
	"net/http"
	"runtime/debug"

	"github.com/rs/zerolog"

	"github.com/giovan110109-blip/homePageuUni/devserver/internal/respond"
)

// Message is the envelope message sent after a recovered panic.
const Message = "internal server error"

// New returns middleware that answers a panicking request with a 500
// envelope and logs the panic value with its stack on log.
func New(log zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			defer func() {
				rec := recover()
				if rec == nil {
					return
				}
				if rec == http.ErrAbortHandler {
					panic(rec)
				}
				log.Error().
					Str("panic", fmt.Sprint(rec)).
					Str("method", r.Method).
					Str("path", r.URL.Path).
					Bytes("stack", debug.Stack()).
					Msg("handler panicked")
				respond.WriteError(w, http.StatusInternalServerError, Message)
			}()
			next.ServeHTTP(w, r)
		})
	}
}
