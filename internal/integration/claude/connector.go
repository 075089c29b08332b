package claude

import (
	"context"
	"errors"
	"fmt"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"
	"github.com/glowup/research-backend/internal/config"
	"github.com/glowup/research-backend/internal/entity"
	pkghttp "github.com/glowup/research-backend/pkg/http"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const providerName = "hosted"

// Connector calls the Anthropic Messages API. Without an API key it never touches the network.
type Connector struct {
	config config.HostedLLMConfig
	client *anthropic.Client
}

func NewConnector(cfg config.HostedLLMConfig) *Connector {
	c := &Connector{config: cfg}
	if !cfg.Configured() {
		return c
	}

	httpClient := pkghttp.NewClient(
		pkghttp.WithRequestTimeout(cfg.RequestTimeout),
		pkghttp.WithConnClientTimeout(cfg.ConnTimeout),
		pkghttp.WithRequestLogging(0),
	)

	opts := []option.RequestOption{
		option.WithAPIKey(cfg.APIKey),
		option.WithHTTPClient(httpClient),
		option.WithMaxRetries(0),
	}
	if cfg.BaseURL != "" {
		opts = append(opts, option.WithBaseURL(cfg.BaseURL))
	}

	client := anthropic.NewClient(opts...)
	c.client = &client

	return c
}

func (c *Connector) Configured() bool {
	return c.client != nil
}

func (c *Connector) Model() string {
	return c.config.Model
}

// Generate sends prompt as a single user message and returns the text of the first
// content block. Every failure is a *entity.ProviderError.
func (c *Connector) Generate(ctx context.Context, prompt string, opts entity.GenerateOptions) (string, error) {
	if !c.Configured() {
		ctxzap.Warn(ctx, "hosted model called without API key")
		return "", &entity.ProviderError{Provider: providerName, Kind: entity.FailureNotConfigured}
	}

	ctxzap.Info(ctx, "generating text via hosted model",
		zap.String("model", c.config.Model),
		zap.Int("max_tokens", opts.MaxTokens),
	)

	params := anthropic.MessageNewParams{
		Model:     anthropic.Model(c.config.Model),
		MaxTokens: int64(opts.MaxTokens),
		Messages: []anthropic.MessageParam{
			anthropic.NewUserMessage(anthropic.NewTextBlock(prompt)),
		},
		Temperature: anthropic.Float(opts.Temperature),
	}

	msg, err := c.client.Messages.New(ctx, params)
	if err != nil {
		return "", mapError(err)
	}

	text, err := firstText(msg)
	if err != nil {
		return "", err
	}

	ctxzap.Info(ctx, "hosted model generation finished",
		zap.Int("response_length", len(text)),
		zap.Int64("input_tokens", msg.Usage.InputTokens),
		zap.Int64("output_tokens", msg.Usage.OutputTokens),
	)

	return text, nil
}

func firstText(msg *anthropic.Message) (string, error) {
	if msg == nil || len(msg.Content) == 0 {
		return "", &entity.ProviderError{Provider: providerName, Kind: entity.FailureMalformed, Err: errors.New("no content blocks")}
	}

	block := msg.Content[0]
	if block.Type != "text" || block.Text == "" {
		return "", &entity.ProviderError{
			Provider: providerName,
			Kind:     entity.FailureMalformed,
			Err:      fmt.Errorf("first content block is %q without text", block.Type),
		}
	}

	return block.Text, nil
}

func mapError(err error) error {
	var apiErr *anthropic.Error
	if errors.As(err, &apiErr) {
		return &entity.ProviderError{Provider: providerName, Kind: entity.FailureProvider, StatusCode: apiErr.StatusCode, Err: err}
	}
	return &entity.ProviderError{Provider: providerName, Kind: entity.FailureTransport, Err: err}
}
