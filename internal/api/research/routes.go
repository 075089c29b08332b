package research

import (
	"github.com/go-chi/chi/v5"
)

// RegisterRoutes registers research routes at the root and, for existing
// frontends, under /api.
func RegisterRoutes(r chi.Router, h *Handler) {
	register := func(r chi.Router) {
		r.Post("/generate-questions", h.GenerateQuestions)
		r.Post("/generate-report", h.GenerateReport)
		r.Post("/validate-inputs", h.ValidateInputs)
		r.Post("/export-report", h.ExportReport)
		r.Get("/provider-status", h.ProviderStatus)
		r.Get("/health", h.Health)
	}

	register(r)
	r.Route("/api", register)
	r.Get("/", h.Root)
}
