package logger

import (
	"context"
	"testing"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestContextFields(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ctx := ctxzap.ToContext(context.Background(), zap.New(core))

	ctx = WithAction(ctx, "GenerateReport")
	ctx = WithProvider(ctx, "hosted", "claude-3-5-sonnet-20241022")
	ctxzap.Info(ctx, "calling provider")

	entries := logs.All()
	assert.Len(t, entries, 1)
	fields := entries[0].ContextMap()
	assert.Equal(t, "GenerateReport", fields["action"])
	assert.Equal(t, "hosted", fields["provider"])
	assert.Equal(t, "claude-3-5-sonnet-20241022", fields["model"])
}
