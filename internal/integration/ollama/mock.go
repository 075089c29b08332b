package ollama

import (
	"context"
	"strings"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
)

const mockModel = "mock-local"

const mockQuestions = `[
  {"id": "q1", "question": "What industry is this problem in?", "type": "text", "required": true, "order": 1},
  {"id": "q2", "question": "Who experiences this problem most?", "type": "text", "required": true, "order": 2},
  {"id": "q3", "question": "How large is the market?", "type": "select", "options": ["Small", "Medium", "Large"], "required": true, "order": 3},
  {"id": "q4", "question": "What is the biggest challenge today?", "type": "text", "required": true, "order": 4},
  {"id": "q5", "question": "How urgent is this problem?", "type": "select", "options": ["Low", "Medium", "High"], "required": true, "order": 5}
]`

const mockReport = `## Executive Summary
- Mock report generated without a model

## Market Analysis
- Market size is unknown in mock mode

## Recommendations
- Configure a real local model or hosted API key`

// MockConnector answers locally without network access.
type MockConnector struct{}

func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (m *MockConnector) Model() string {
	return mockModel
}

func (m *MockConnector) Generate(ctx context.Context, prompt string, _ entity.GenerateOptions) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text via local model")

	if strings.HasSuffix(prompt, "Generate questions:") {
		return mockQuestions, nil
	}
	return mockReport, nil
}

func (m *MockConnector) ListModels(ctx context.Context) ([]string, error) {
	return []string{mockModel}, nil
}
