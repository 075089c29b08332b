package claude

import (
	"context"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
)

const mockReport = `## Executive Summary
- Mock hosted report

## Strategic Recommendations
- Replace ENABLE_MOCKS with a real API key`

type MockConnector struct{}

func NewMockConnector() *MockConnector {
	return &MockConnector{}
}

func (m *MockConnector) Configured() bool {
	return true
}

func (m *MockConnector) Model() string {
	return "mock-hosted"
}

func (m *MockConnector) Generate(ctx context.Context, _ string, _ entity.GenerateOptions) (string, error) {
	ctxzap.Info(ctx, "[MOCK] generating text via hosted model")
	return mockReport, nil
}
