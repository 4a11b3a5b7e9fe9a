package middleware

import (
	"log/slog"

	"cinema-booking/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// responseHeaders are read by the booking page: the receipt link, the id to quote in a
// support request, and the rate limit state after a rejected attempt.
var responseHeaders = []string{
	"Location",
	"X-Request-ID",
	"Retry-After",
	"X-RateLimit-Limit",
	"X-RateLimit-Remaining",
}

// NewCORSMiddleware allows any origin when CORS_ALLOW_ORIGINS is empty.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	corsCfg := cors.Config{
		AllowOrigins:     cfg.AllowOrigins,
		AllowAllOrigins:  len(cfg.AllowOrigins) == 0,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    append([]string(nil), cfg.ExposeHeaders...),
		AllowCredentials: cfg.AllowCredentials,
		MaxAge:           cfg.MaxAge,
	}
	corsCfg.AddExposeHeaders(responseHeaders...)

	slog.Info("CORS middleware initialized",
		"allow_origins", cfg.AllowOrigins,
		"allow_all_origins", corsCfg.AllowAllOrigins,
		"expose_headers", corsCfg.ExposeHeaders)
	return cors.New(corsCfg)
}
