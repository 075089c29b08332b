package ollama

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/glowup/research-backend/internal/config"
	"github.com/glowup/research-backend/internal/entity"
	"github.com/glowup/research-backend/internal/integration/common"
	pkghttp "github.com/glowup/research-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const providerName = "local"

// Connector talks to a local Ollama server.
type Connector struct {
	config    config.LocalLLMConfig
	connector *pkghttp.Connector
	status    *pkghttp.Connector
}

func NewConnector(cfg config.LocalLLMConfig) *Connector {
	return &Connector{
		config:    cfg,
		connector: common.NewBaseConnector(cfg.HTTPClientConfig),
		status:    common.NewBaseConnector(cfg.HTTPClientConfig, pkghttp.WithRequestTimeout(cfg.StatusTimeout)),
	}
}

func (c *Connector) Model() string {
	return c.config.Model
}

// Generate sends prompt to the generate endpoint and returns the raw generated text.
// Every failure is a *entity.ProviderError.
func (c *Connector) Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error) {
	ctxzap.Info(ctx, "generating text via local model",
		zap.String("url", c.connector.BaseURL()),
		zap.String("model", c.config.Model),
		zap.Int("prompt_length", len(prompt)),
	)

	req := generateRequest{
		Model:  c.config.Model,
		Prompt: prompt,
		Stream: false,
		Options: generateOptions{
			Temperature: opts.Temperature,
			TopP:        opts.TopP,
			NumPredict:  opts.MaxTokens,
		},
	}

	var resp generateResponse
	if err := c.connector.DoRequest(ctx, http.MethodPost, c.config.GenerateEndpoint, req, &resp); err != nil {
		return "", toProviderError(err)
	}

	if resp.Response == "" {
		return "", &entity.ProviderError{
			Provider: providerName,
			Kind:     entity.FailureMalformed,
			Err:      errors.New("empty response field"),
		}
	}

	ctxzap.Info(ctx, "local model generation finished", zap.Int("response_length", len(resp.Response)))

	return resp.Response, nil
}

// ListModels returns the names of models installed on the server.
func (c *Connector) ListModels(ctx context.Context) ([]string, error) {
	var resp tagsResponse
	if err := c.status.DoRequest(ctx, http.MethodGet, c.config.TagsEndpoint, nil, &resp); err != nil {
		return nil, toProviderError(err)
	}

	names := make([]string, 0, len(resp.Models))
	for _, m := range resp.Models {
		names = append(names, m.Name)
	}
	return names, nil
}

func toProviderError(err error) error {
	var (
		httpErr   *pkghttp.HTTPError
		netErr    *pkghttp.NetworkError
		decodeErr *pkghttp.DecodeError
	)

	switch {
	case errors.As(err, &httpErr):
		return &entity.ProviderError{Provider: providerName, Kind: entity.FailureProvider, StatusCode: httpErr.StatusCode, Err: err}
	case errors.As(err, &netErr):
		return &entity.ProviderError{Provider: providerName, Kind: entity.FailureTransport, Err: err}
	case errors.As(err, &decodeErr):
		return &entity.ProviderError{Provider: providerName, Kind: entity.FailureMalformed, Err: err}
	default:
		return &entity.ProviderError{Provider: providerName, Kind: entity.FailureTransport, Err: fmt.Errorf("local model request: %w", err)}
	}
}
