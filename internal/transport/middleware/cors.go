package middleware

import (
	"github.com/rs/cors"

	"github.com/heartmarshall/notekeeper-backend/internal/config"
)

// CORS returns middleware that answers preflight requests and sets the
// Access-Control-* headers for the configured origins.
func CORS(cfg config.CORSConfig) Middleware {
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Origins(),
		AllowedMethods:   cfg.Methods(),
		AllowedHeaders:   cfg.Headers(),
		ExposedHeaders:   []string{"Content-Disposition", "X-Request-Id"},
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	})
	return c.Handler
}
