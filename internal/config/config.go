package config

import (
	"flag"
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	pkgRetry "github.com/glowup/research-backend/internal/pkg/retry"
	"github.com/joho/godotenv"
)

// Config holds the application configuration
type Config struct {
	// Server configuration
	ServerAddr           string        `env:"SERVER_ADDR" envDefault:":5001"`
	ServerReadTimeout    time.Duration `env:"SERVER_READ_TIMEOUT" envDefault:"15s"`
	ServerWriteTimeout   time.Duration `env:"SERVER_WRITE_TIMEOUT" envDefault:"150s"`
	ServerHandlerTimeout time.Duration `env:"SERVER_HANDLER_TIMEOUT" envDefault:"120s"`
	CORSAllowedOrigins   []string      `env:"CORS_ALLOWED_ORIGINS" envDefault:"*" envSeparator:","`
	SwaggerSpecPath      string        `env:"SWAGGER_SPEC_PATH" envDefault:"docs/swagger.yaml"`

	// Export configuration. docx export stays disabled without a key.
	UniofficeLicenseKey string `env:"UNIOFFICE_LICENSE_KEY"`

	// External service configurations
	LocalLLMCfg   LocalLLMConfig   `envPrefix:"LOCAL_LLM_"`
	HostedLLMCfg  HostedLLMConfig  `envPrefix:"ANTHROPIC_"`
	GenerationCfg GenerationConfig `envPrefix:"GENERATION_"`

	// Logging configuration
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Mock configuration
	EnableMocks bool `env:"ENABLE_MOCKS" envDefault:"false"`

	// Environment (set from flag, not from env var)
	Environment string
}

// LocalLLMConfig describes the locally reachable generation endpoint (Ollama API).
type LocalLLMConfig struct {
	HTTPClientConfig
	Model            string               `env:"MODEL" envDefault:"mistral:latest"`
	GenerateEndpoint string               `env:"GENERATE_ENDPOINT" envDefault:"/api/generate"`
	TagsEndpoint     string               `env:"TAGS_ENDPOINT" envDefault:"/api/tags"`
	StatusTimeout    time.Duration        `env:"STATUS_TIMEOUT" envDefault:"5s"`
	ProbeRetry       pkgRetry.RetryConfig `envPrefix:"PROBE_RETRY_"`
}

// HostedLLMConfig describes the hosted model. An empty APIKey disables it.
type HostedLLMConfig struct {
	APIKey         string        `env:"API_KEY"`
	Model          string        `env:"MODEL" envDefault:"claude-3-5-sonnet-20241022"`
	BaseURL        string        `env:"BASE_URL"`
	RequestTimeout time.Duration `env:"TIMEOUT" envDefault:"60s"`
	ConnTimeout    time.Duration `env:"CONN_TIMEOUT" envDefault:"10s"`
}

// Configured reports whether a credential is present.
func (c HostedLLMConfig) Configured() bool {
	return strings.TrimSpace(c.APIKey) != ""
}

// GenerationConfig holds sampling parameters. Question generation uses short,
// conservative outputs; reports use the general settings.
type GenerationConfig struct {
	QuestionTemperature float64 `env:"QUESTION_TEMPERATURE" envDefault:"0.3"`
	QuestionTopP        float64 `env:"QUESTION_TOP_P" envDefault:"0.8"`
	QuestionMaxTokens   int     `env:"QUESTION_MAX_TOKENS" envDefault:"800"`
	Temperature         float64 `env:"TEMPERATURE" envDefault:"0.7"`
	TopP                float64 `env:"TOP_P" envDefault:"0.9"`
	MaxTokens           int     `env:"MAX_TOKENS" envDefault:"4000"`
}

type HTTPClientConfig struct {
	RequestTimeout        time.Duration `env:"TIMEOUT" envDefault:"15s"`
	ConnTimeout           time.Duration `env:"CONN_TIMEOUT" envDefault:"3s"`
	KeepAlive             time.Duration `env:"KEEP_ALIVE" envDefault:"90s"`
	IdleConnTimeout       time.Duration `env:"IDLE_CONN_TIMEOUT" envDefault:"90s"`
	ResponseHeaderTimeout time.Duration `env:"RESPONSE_HEADER_TIMEOUT"`
	LogBodyBytes          int           `env:"LOG_BODY_BYTES" envDefault:"0"`
	Token                 string        `env:"TOKEN"`
	Url                   string        `env:"SERVICE_URL" envDefault:"http://localhost:11434"`
}

func LoadConfig() (*Config, error) {
	envFlag := flag.String("env", "local", "Environment to run (local, prod, or custom)")
	flag.Parse()

	envFile := getEnvFile(*envFlag)
	// Try to load env file, but don't fail if it's missing.
	// In containerized/prod environments variables are usually set externally.
	if err := godotenv.Load(envFile); err != nil {
		fmt.Printf("Warning: could not load %s file (this is ok if env vars are set externally): %v\n", envFile, err)
	}

	cfg, err := Parse()
	if err != nil {
		return nil, err
	}
	cfg.Environment = *envFlag

	return cfg, nil
}

// Parse reads the configuration from the process environment and validates it.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}

	if err := validateConfig(cfg); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

func validateConfig(cfg *Config) error {
	var errors []string

	if cfg.LocalLLMCfg.Url == "" {
		errors = append(errors, "LOCAL_LLM_SERVICE_URL must not be empty")
	}

	if cfg.LocalLLMCfg.Model == "" {
		errors = append(errors, "LOCAL_LLM_MODEL must not be empty")
	}

	if cfg.LocalLLMCfg.RequestTimeout <= 0 || cfg.LocalLLMCfg.RequestTimeout > 5*time.Minute {
		errors = append(errors, fmt.Sprintf("LOCAL_LLM_TIMEOUT must be between 0 and 5m, got %s", cfg.LocalLLMCfg.RequestTimeout))
	}

	if cfg.HostedLLMCfg.RequestTimeout <= 0 || cfg.HostedLLMCfg.RequestTimeout > 10*time.Minute {
		errors = append(errors, fmt.Sprintf("ANTHROPIC_TIMEOUT must be between 0 and 10m, got %s", cfg.HostedLLMCfg.RequestTimeout))
	}

	gen := cfg.GenerationCfg
	if gen.Temperature < 0 || gen.Temperature > 1 {
		errors = append(errors, fmt.Sprintf("GENERATION_TEMPERATURE must be between 0 and 1, got %v", gen.Temperature))
	}

	if gen.QuestionTemperature < 0 || gen.QuestionTemperature > 1 {
		errors = append(errors, fmt.Sprintf("GENERATION_QUESTION_TEMPERATURE must be between 0 and 1, got %v", gen.QuestionTemperature))
	}

	if gen.TopP <= 0 || gen.TopP > 1 || gen.QuestionTopP <= 0 || gen.QuestionTopP > 1 {
		errors = append(errors, "GENERATION_TOP_P and GENERATION_QUESTION_TOP_P must be in (0, 1]")
	}

	if gen.MaxTokens < 1 || gen.MaxTokens > 64000 {
		errors = append(errors, fmt.Sprintf("GENERATION_MAX_TOKENS must be between 1 and 64000, got %d", gen.MaxTokens))
	}

	if gen.QuestionMaxTokens < 1 || gen.QuestionMaxTokens > 64000 {
		errors = append(errors, fmt.Sprintf("GENERATION_QUESTION_MAX_TOKENS must be between 1 and 64000, got %d", gen.QuestionMaxTokens))
	}

	if len(errors) > 0 {
		return fmt.Errorf("configuration validation errors:\n  - %s", strings.Join(errors, "\n  - "))
	}

	return nil
}

func getEnvFile(environment string) string {
	switch environment {
	case "prod", "production":
		return ".env.prod"
	case "local", "dev", "development":
		return ".env.local"
	default:
		return fmt.Sprintf(".env.%s", environment)
	}
}
