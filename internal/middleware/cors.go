package middleware

import (
	"net/http"

	"github.com/rs/cors"
)

// Cors answers preflight requests for the front end origins and adds
// the CORS headers to the actual responses.
func Cors(allowedOrigins []string) func(next http.Handler) http.Handler {
	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{
			http.MethodGet,
			http.MethodPost,
			http.MethodPut,
			http.MethodDelete,
			http.MethodOptions,
		},
		AllowedHeaders: []string{
			"Accept",
			"Content-Type",
			"Content-Length",
			"Accept-Encoding",
			"Authorization",
			AuthTokenHeader,
		},
		MaxAge: 300,
	})
	return c.Handler
}
