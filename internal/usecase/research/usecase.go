package research

import (
	"context"
	"fmt"

	"github.com/glowup/research-backend/internal/config"
	"github.com/glowup/research-backend/internal/entity"
	"github.com/glowup/research-backend/internal/pkg/logger"
	"github.com/glowup/research-backend/internal/pkg/normalizer"
	"github.com/glowup/research-backend/internal/pkg/prompt"
	"github.com/google/uuid"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// Usecase runs the generation pipeline: prompt, provider call, normalization.
type Usecase struct {
	local  LocalProvider
	hosted HostedProvider
	cfg    config.GenerationConfig
}

func NewUsecase(local LocalProvider, hosted HostedProvider, cfg config.GenerationConfig) *Usecase {
	return &Usecase{
		local:  local,
		hosted: hosted,
		cfg:    cfg,
	}
}

type QuestionsResult struct {
	Questions []entity.GeneratedQuestion
	Method    entity.GenerationMethod
}

type ReportResult struct {
	Report    entity.Report
	Method    entity.GenerationMethod
	ModelUsed string
}

// GenerateQuestions asks the local model for clarifying questions. It always succeeds:
// provider or parse failures produce the default question set.
func (uc *Usecase) GenerateQuestions(ctx context.Context, problem string) (*QuestionsResult, error) {
	opts := entity.GenerateOptions{
		Temperature: uc.cfg.QuestionTemperature,
		TopP:        uc.cfg.QuestionTopP,
		MaxTokens:   uc.cfg.QuestionMaxTokens,
	}

	raw, err := uc.local.Generate(detach(ctx), prompt.BuildQuestionPrompt(problem), opts)
	if err != nil {
		ctxzap.Warn(ctx, "local model unavailable, using fallback questions", zap.Error(err))
		return fallbackQuestions(), nil
	}

	questions, err := normalizer.ExtractQuestions(raw)
	if err != nil {
		ctxzap.Warn(ctx, "could not parse questions from model output, using fallback questions",
			zap.Error(err),
			zap.Int("response_length", len(raw)),
		)
		return fallbackQuestions(), nil
	}

	ctxzap.Info(ctx, "questions generated", zap.Int("count", len(questions)))

	return &QuestionsResult{
		Questions: questions,
		Method:    entity.MethodLocalLLM,
	}, nil
}

func fallbackQuestions() *QuestionsResult {
	return &QuestionsResult{
		Questions: normalizer.DefaultQuestions(),
		Method:    entity.MethodFallbackDefault,
	}
}

// GenerateReport builds a basic report when answers is empty and an answer-augmented one
// otherwise. The hosted model is preferred when configured; the local model is used when
// it is not configured or fails. ErrGenerationFailed is returned when neither produces text.
func (uc *Usecase) GenerateReport(ctx context.Context, problem string, answers []entity.AnsweredQuestion) (*ReportResult, error) {
	ctx = logger.AddFields(ctx,
		zap.Bool("answer_augmented", len(answers) > 0),
		zap.Int("answers", len(answers)),
	)

	promptText := prompt.BuildReportPrompt(problem, answers)
	opts := entity.GenerateOptions{
		Temperature: uc.cfg.Temperature,
		TopP:        uc.cfg.TopP,
		MaxTokens:   uc.cfg.MaxTokens,
	}

	var hostedErr error
	if uc.hosted.Configured() {
		text, err := uc.hosted.Generate(detach(logger.WithProvider(ctx, "hosted", uc.hosted.Model())), promptText, opts)
		if err == nil {
			return uc.newReportResult(ctx, text, entity.MethodHostedDirect, uc.hosted.Model()), nil
		}
		hostedErr = err
		ctxzap.Warn(ctx, "hosted model failed, falling back to local model", zap.Error(err))
	} else {
		ctxzap.Info(ctx, "hosted model not configured, using local model")
	}

	text, err := uc.local.Generate(detach(logger.WithProvider(ctx, "local", uc.local.Model())), promptText, opts)
	if err != nil {
		ctxzap.Error(ctx, "no provider produced a report", zap.Error(err), zap.NamedError("hosted_error", hostedErr))
		return nil, fmt.Errorf("%w: %w", entity.ErrGenerationFailed, err)
	}

	return uc.newReportResult(ctx, text, entity.MethodLocalFallback, uc.local.Model()), nil
}

func (uc *Usecase) newReportResult(ctx context.Context, text string, method entity.GenerationMethod, model string) *ReportResult {
	report := entity.Report{
		ID:       uuid.New().String(),
		RawText:  text,
		Sections: normalizer.ExtractSections(text),
	}

	ctxzap.Info(ctx, "report generated",
		zap.String("report_id", report.ID),
		zap.String("generation_method", string(method)),
		zap.String("model", model),
		zap.Strings("sections", report.Sections.Titles()),
	)

	return &ReportResult{
		Report:    report,
		Method:    method,
		ModelUsed: model,
	}
}

// detach keeps request-scoped values such as the logger but drops caller cancellation,
// leaving the provider client timeout as the only bound on a call.
func detach(ctx context.Context) context.Context {
	return context.WithoutCancel(ctx)
}
