package api

import (
	"net/http"

	"github.com/glowup/research-backend/internal/api/docs"
	"github.com/glowup/research-backend/internal/api/middleware"
	researchapi "github.com/glowup/research-backend/internal/api/research"
	"github.com/glowup/research-backend/internal/config"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"
)

// SetupRouter creates and configures the HTTP router
func SetupRouter(researchHandler *researchapi.Handler, logger *zap.Logger, cfg *config.Config) http.Handler {
	r := chi.NewRouter()

	// Middleware stack
	r.Use(chimiddleware.RequestID)                         // Add request ID
	r.Use(middleware.Logger(logger))                       // Log requests
	r.Use(middleware.Recovery)                             // Recover from panics with a JSON 500
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))         // Handle CORS
	r.Use(chimiddleware.Timeout(cfg.ServerHandlerTimeout)) // Handler deadline

	// Swagger documentation endpoints
	docs.RegisterRoutes(r, cfg.SwaggerSpecPath)

	// Register routes
	researchapi.RegisterRoutes(r, researchHandler)

	return r
}
