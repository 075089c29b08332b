package research

import (
	"context"
	"errors"
	"net/http"

	"github.com/glowup/research-backend/internal/entity"
)

type fakeLocal struct {
	text     string
	err      error
	models   []string
	modelErr error
	prompts  []string
	opts     []entity.GenerateOptions
	ctxErrs  []error
}

func (f *fakeLocal) Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error) {
	f.prompts = append(f.prompts, prompt)
	f.opts = append(f.opts, opts)
	f.ctxErrs = append(f.ctxErrs, ctx.Err())
	return f.text, f.err
}

func (f *fakeLocal) ListModels(ctx context.Context) ([]string, error) {
	return f.models, f.modelErr
}

func (f *fakeLocal) Model() string { return "mistral:latest" }

type fakeHosted struct {
	configured bool
	text       string
	err        error
	calls      int
}

func (f *fakeHosted) Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error) {
	f.calls++
	if !f.configured {
		return "", &entity.ProviderError{Provider: "hosted", Kind: entity.FailureNotConfigured}
	}
	return f.text, f.err
}

func (f *fakeHosted) Configured() bool { return f.configured }

func (f *fakeHosted) Model() string { return "claude-3-5-sonnet-20241022" }

var (
	errUnreachable = &entity.ProviderError{Provider: "local", Kind: entity.FailureTransport, Err: errors.New("connection refused")}
	errHostedDown  = &entity.ProviderError{Provider: "hosted", Kind: entity.FailureProvider, StatusCode: http.StatusInternalServerError}
)
