package research

import (
	"context"

	"github.com/glowup/research-backend/internal/entity"
)

type LocalProvider interface {
	Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error)
	ListModels(ctx context.Context) ([]string, error)
	Model() string
}

type HostedProvider interface {
	Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error)
	Configured() bool
	Model() string
}
