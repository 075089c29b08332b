package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	researchapi "github.com/glowup/research-backend/internal/api/research"
	"github.com/glowup/research-backend/internal/config"
	"github.com/glowup/research-backend/internal/integration/claude"
	"github.com/glowup/research-backend/internal/integration/ollama"
	"github.com/glowup/research-backend/internal/pkg/formatter"
	"github.com/glowup/research-backend/internal/pkg/validator"
	"github.com/glowup/research-backend/internal/usecase/research"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestRouter() http.Handler {
	uc := research.NewUsecase(ollama.NewMockConnector(), claude.NewMockConnector(), config.GenerationConfig{
		QuestionTemperature: 0.3,
		QuestionTopP:        0.8,
		QuestionMaxTokens:   800,
		Temperature:         0.7,
		TopP:                0.9,
		MaxTokens:           4000,
	})
	h := researchapi.NewHandler(uc, validator.NewValidator(), formatter.NewFactory())

	return SetupRouter(h, zap.NewNop(), &config.Config{
		CORSAllowedOrigins:   []string{"*"},
		ServerHandlerTimeout: 5 * time.Second,
	})
}

func TestSetupRouter_Health(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set("Origin", "http://localhost:3000")

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("Access-Control-Allow-Origin"))

	var body map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "healthy", body["status"])
}

func TestSetupRouter_Preflight(t *testing.T) {
	req := httptest.NewRequest(http.MethodOptions, "/api/generate-report", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)

	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestSetupRouter_DocsRedirect(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestRouter().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/docs", nil))

	assert.Equal(t, http.StatusFound, rec.Code)
	assert.Equal(t, "/docs/index.html", rec.Header().Get("Location"))
}
