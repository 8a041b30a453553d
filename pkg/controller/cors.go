package controller

import (
	"net/http"

	"github.com/rs/cors"
)

// WithCORS returns a middleware answering CORS preflight requests with 204 No
// Content and adding CORS headers to cross-origin responses. An empty
// allowedOrigins allows any origin without credentials; an explicit list also
// allows credentials.
func WithCORS(allowedOrigins []string) func(http.Handler) http.Handler {
	opts := cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{
			"Content-Type", "Content-Length", "Accept-Encoding", "Authorization", "Accept", "Origin", "Cache-Control",
		},
		ExposedHeaders:   []string{RequestIDHeader},
		AllowCredentials: len(allowedOrigins) > 0,
	}
	if len(allowedOrigins) == 0 {
		opts.AllowedOrigins = []string{"*"}
	}
	c := cors.New(opts)

	return c.Handler
}
