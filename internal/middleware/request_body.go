package middleware

import (
	"io"
	"net/http"
)

// DefaultMaxRequestBodyBytes is far above any workout or calculation payload.
const DefaultMaxRequestBodyBytes = 1 << 20

// LimitRequestBody caps the readable request body and drains whatever
// the handler left unread, so the connection can be reused.
func LimitRequestBody(maxBytes int64) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Body == nil || r.Body == http.NoBody {
				next.ServeHTTP(w, r)
				return
			}

			r.Body = http.MaxBytesReader(w, r.Body, maxBytes)
			next.ServeHTTP(w, r)

			_, _ = io.Copy(io.Discard, r.Body)
			_ = r.Body.Close()
		})
	}
}
