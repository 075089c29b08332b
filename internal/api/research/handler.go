package research

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/glowup/research-backend/internal/pkg/formatter"
	"github.com/glowup/research-backend/internal/pkg/logger"
	"github.com/glowup/research-backend/internal/pkg/normalizer"
	"github.com/glowup/research-backend/internal/pkg/response"
	"github.com/glowup/research-backend/internal/pkg/validator"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

const (
	ServiceName    = "market-research-backend"
	ServiceVersion = "1.0.0"

	maxBodyBytes   = 1 << 20
	exportBaseName = "market-research-report"
)

const (
	msgProblemRequired  = "Problem statement is required"
	msgValidationFailed = "Input validation failed"
	msgGenerationFailed = "Failed to generate report: no language model provider is available"
	msgReportRequired   = "Report is required"
	msgInternal         = "Internal server error occurred"
)

type Handler struct {
	usecase    ResearchUsecase
	validator  *validator.Validator
	formatters *formatter.Factory
}

func NewHandler(
	usecase ResearchUsecase,
	validator *validator.Validator,
	formatters *formatter.Factory,
) *Handler {
	return &Handler{
		usecase:    usecase,
		validator:  validator,
		formatters: formatters,
	}
}

// GenerateQuestions handles POST /generate-questions
func (h *Handler) GenerateQuestions(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateQuestions")

	var req entity.GenerateQuestionsRequest
	if err := decodeBody(w, r, &req); err != nil || req.ProblemStatement == nil {
		h.respondError(ctx, w, http.StatusBadRequest, msgProblemRequired, err)
		return
	}

	problem, err := h.validator.ValidateProblemStatement(*req.ProblemStatement)
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), nil)
		return
	}

	ctxzap.Info(ctx, "generating questions", zap.Int("problem_length", len(problem)))

	res, err := h.usecase.GenerateQuestions(ctx, problem)
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, msgInternal, err)
		return
	}

	response.Success(w, toQuestionsResponse(problem, res))
}

// GenerateReport handles POST /generate-report
func (h *Handler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "GenerateReport")

	var req entity.GenerateReportRequest
	if err := decodeBody(w, r, &req); err != nil || req.ProblemStatement == nil {
		h.respondError(ctx, w, http.StatusBadRequest, msgProblemRequired, err)
		return
	}

	var violations []string
	problem, err := h.validator.ValidateProblemStatement(*req.ProblemStatement)
	if err != nil {
		violations = append(violations, err.Error())
	}

	answers, answerViolations := h.parseAnswers(req.UserAnswers)
	violations = append(violations, answerViolations...)

	if len(violations) > 0 {
		ctxzap.Warn(ctx, "invalid report request", zap.Strings("violations", violations))
		response.ValidationError(w, msgValidationFailed, violations)
		return
	}

	res, err := h.usecase.GenerateReport(ctx, problem, answers)
	if err != nil {
		h.handleUsecaseError(ctx, w, err)
		return
	}

	response.Success(w, toReportResponse(problem, res))
}

// ValidateInputs handles POST /validate-inputs. It never fails on invalid input; the
// verdict is in the body.
func (h *Handler) ValidateInputs(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ValidateInputs")

	var req entity.GenerateReportRequest
	if err := decodeBody(w, r, &req); err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, "Request body must be a JSON object", err)
		return
	}

	errs := []string{}
	if req.ProblemStatement == nil {
		errs = append(errs, msgProblemRequired)
	} else if _, err := h.validator.ValidateProblemStatement(*req.ProblemStatement); err != nil {
		errs = append(errs, err.Error())
	}

	if isAbsent(req.UserAnswers) {
		errs = append(errs, "at least one answer is required")
	} else if _, violations := h.parseAnswers(req.UserAnswers); len(violations) > 0 {
		errs = append(errs, violations...)
	} else if isEmptyList(req.UserAnswers) {
		errs = append(errs, "at least one answer is required")
	}

	ctxzap.Debug(ctx, "inputs validated", zap.Int("errors", len(errs)))

	response.Success(w, entity.ValidateInputsResponse{
		Success: true,
		Valid:   len(errs) == 0,
		Errors:  errs,
	})
}

// ExportReport handles POST /export-report?format=markdown|pdf|docx. docx answers 501
// unless a document license is configured.
func (h *Handler) ExportReport(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ExportReport")

	format := entity.FormatMarkdown
	if f := r.URL.Query().Get("format"); f != "" {
		format = entity.ExportFormat(strings.ToLower(f))
	}
	if !format.IsValid() {
		h.respondError(ctx, w, http.StatusBadRequest, "Unsupported export format: "+string(format), nil)
		return
	}

	var req entity.ExportReportRequest
	if err := decodeBody(w, r, &req); err != nil || strings.TrimSpace(req.Report) == "" {
		h.respondError(ctx, w, http.StatusBadRequest, msgReportRequired, err)
		return
	}

	f, err := h.formatters.Create(format)
	if errors.Is(err, formatter.ErrFormatUnavailable) {
		h.respondError(ctx, w, http.StatusNotImplemented, "Export format is not available on this server: "+string(format), err)
		return
	}
	if err != nil {
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
		return
	}

	data, err := f.Format(formatter.Document{
		ProblemStatement: strings.TrimSpace(req.ProblemStatement),
		Sections:         normalizer.ExtractSections(req.Report),
	})
	if err != nil {
		h.respondError(ctx, w, http.StatusInternalServerError, "Failed to export report", err)
		return
	}

	ctxzap.Info(ctx, "report exported", zap.String("format", string(format)), zap.Int("size", len(data)))

	response.Binary(w, f.ContentType(), exportBaseName+f.FileExtension(), data)
}

// ProviderStatus handles GET /provider-status
func (h *Handler) ProviderStatus(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "ProviderStatus")
	response.Success(w, h.providers(ctx))
}

// Health handles GET /health
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Health")
	response.Success(w, entity.HealthResponse{
		Status:    "healthy",
		Service:   ServiceName,
		Version:   ServiceVersion,
		Providers: h.providers(ctx),
	})
}

// Root handles GET /
func (h *Handler) Root(w http.ResponseWriter, r *http.Request) {
	ctx := logger.WithAction(r.Context(), "Root")
	providers := h.providers(ctx)

	response.Success(w, map[string]any{
		"service": ServiceName,
		"version": ServiceVersion,
		"endpoints": map[string]string{
			"generate_questions": "POST /generate-questions",
			"generate_report":    "POST /generate-report",
			"validate_inputs":    "POST /validate-inputs",
			"export_report":      "POST /export-report?format=" + h.exportFormats(),
			"provider_status":    "GET /provider-status",
			"health":             "GET /health",
			"docs":               "GET /docs/",
		},
		"local_model":  providers.Local.CurrentModel,
		"hosted_model": providers.Hosted.CurrentModel,
	})
}

func (h *Handler) exportFormats() string {
	formats := h.formatters.Formats()
	names := make([]string, len(formats))
	for i, f := range formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

func (h *Handler) providers(ctx context.Context) entity.ProviderStatusResponse {
	return entity.ProviderStatusResponse{
		Local:  h.usecase.LocalStatus(ctx),
		Hosted: h.usecase.HostedStatus(),
	}
}

// parseAnswers returns nil answers for an absent or empty list, which selects the basic report.
func (h *Handler) parseAnswers(raw json.RawMessage) ([]entity.AnsweredQuestion, []string) {
	if isAbsent(raw) {
		return nil, nil
	}

	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, []string{"user answers must be a list"}
	}
	if list, ok := decoded.([]any); ok && len(list) == 0 {
		return nil, nil
	}

	answers, err := h.validator.ValidateAnswers(decoded)
	if err != nil {
		var verr *entity.ValidationError
		if errors.As(err, &verr) {
			return nil, verr.Errors
		}
		return nil, []string{err.Error()}
	}
	return answers, nil
}

func (h *Handler) handleUsecaseError(ctx context.Context, w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, entity.ErrGenerationFailed):
		h.respondError(ctx, w, http.StatusServiceUnavailable, msgGenerationFailed, err)
	case errors.Is(err, entity.ErrValidation):
		h.respondError(ctx, w, http.StatusBadRequest, err.Error(), err)
	default:
		h.respondError(ctx, w, http.StatusInternalServerError, msgInternal, err)
	}
}

func (h *Handler) respondError(ctx context.Context, w http.ResponseWriter, status int, message string, err error) {
	fields := []zap.Field{zap.Int("status", status)}
	if err != nil {
		fields = append(fields, zap.Error(err))
	}
	if status >= http.StatusInternalServerError {
		ctxzap.Error(ctx, message, fields...)
	} else {
		ctxzap.Warn(ctx, message, fields...)
	}
	response.Error(w, status, message)
}

func decodeBody(w http.ResponseWriter, r *http.Request, dst any) error {
	return json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(dst)
}

func isAbsent(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

func isEmptyList(raw json.RawMessage) bool {
	var list []json.RawMessage
	return json.Unmarshal(raw, &list) == nil && len(list) == 0
}
