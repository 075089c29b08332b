package builder

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/glowup/research-backend/internal/api"
	researchapi "github.com/glowup/research-backend/internal/api/research"
	"github.com/glowup/research-backend/internal/config"
	"github.com/glowup/research-backend/internal/integration/claude"
	"github.com/glowup/research-backend/internal/integration/ollama"
	pkgRetry "github.com/glowup/research-backend/internal/pkg/retry"
	"github.com/glowup/research-backend/internal/pkg/validator"
	"github.com/glowup/research-backend/internal/usecase/research"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const serverIdleTimeout = 60 * time.Second

func Build() (*App, error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger, err := setupLogger(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("setup logger: %w", err)
	}

	logger.Info("Building application",
		zap.String("environment", cfg.Environment),
		zap.String("server_addr", cfg.ServerAddr),
	)

	// Initialize model connectors (with mock support)
	var localConnector research.LocalProvider
	var hostedConnector research.HostedProvider

	if cfg.EnableMocks {
		logger.Info("Using mock connectors for model providers")
		localConnector = ollama.NewMockConnector()
		hostedConnector = claude.NewMockConnector()
	} else {
		logger.Info("Using real connectors for model providers",
			zap.String("local_url", cfg.LocalLLMCfg.Url),
			zap.String("local_model", cfg.LocalLLMCfg.Model),
			zap.Bool("hosted_configured", cfg.HostedLLMCfg.Configured()),
			zap.String("hosted_model", cfg.HostedLLMCfg.Model),
		)
		localConnector = ollama.NewConnector(cfg.LocalLLMCfg)
		hostedConnector = claude.NewConnector(cfg.HostedLLMCfg)
	}

	// Initialize use cases
	researchUC := research.NewUsecase(localConnector, hostedConnector, cfg.GenerationCfg)
	logger.Info("Use cases initialized")

	// Setup API handlers
	formatters := setupFormatters(cfg.UniofficeLicenseKey, logger)
	researchHandler := researchapi.NewHandler(researchUC, validator.NewValidator(), formatters)
	logger.Info("API handlers initialized")

	// Setup router
	router := api.SetupRouter(researchHandler, logger, cfg)
	logger.Info("HTTP router configured")

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.ServerAddr,
		Handler:      router,
		ReadTimeout:  cfg.ServerReadTimeout,
		WriteTimeout: cfg.ServerWriteTimeout,
		IdleTimeout:  serverIdleTimeout,
	}

	logger.Info("Application built successfully",
		zap.String("environment", cfg.Environment),
	)

	probeLogger := logger.With(zap.String("action", "ProbeLocalModel"))
	return &App{
		server: server,
		logger: logger,
		probe: func(ctx context.Context) {
			probeLocalModel(ctxzap.ToContext(ctx, probeLogger), localConnector, &cfg.LocalLLMCfg.ProbeRetry)
		},
	}, nil
}

// probeLocalModel checks once at startup, with retries, whether the local model server
// answers. The result is only logged; requests keep working through the fallbacks.
func probeLocalModel(ctx context.Context, local research.LocalProvider, rc *pkgRetry.RetryConfig) bool {
	if rc == nil || rc.Attempts == 0 {
		rc = pkgRetry.DefaultRetryConfig()
	}

	var models []string
	err := pkgRetry.Do(ctx, rc, func() error {
		var err error
		models, err = local.ListModels(ctx)
		return err
	}, func(n uint, err error) {
		ctxzap.Debug(ctx, "local model probe failed, retrying", zap.Uint("attempt", n+1), zap.Error(err))
	})
	if err != nil {
		ctxzap.Warn(ctx, "local model server is not reachable, questions will use the fallback set",
			zap.String("model", local.Model()),
			zap.Error(err),
		)
		return false
	}

	ctxzap.Info(ctx, "local model server is running",
		zap.String("model", local.Model()),
		zap.Strings("available_models", models),
	)
	return true
}
