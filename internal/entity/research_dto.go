package entity

import "encoding/json"

type GenerateQuestionsRequest struct {
	ProblemStatement *string `json:"problem_statement"`
}

type GenerateQuestionsResponse struct {
	Success          bool                `json:"success"`
	ProblemStatement string              `json:"problem_statement"`
	TotalQuestions   int                 `json:"total_questions"`
	Questions        []GeneratedQuestion `json:"questions"`
	GenerationMethod GenerationMethod    `json:"generation_method"`
}

// GenerateReportRequest keeps user_answers raw so the validator can report
// malformed entries instead of failing the whole decode.
type GenerateReportRequest struct {
	ProblemStatement *string         `json:"problem_statement"`
	UserAnswers      json.RawMessage `json:"user_answers,omitempty"`
}

type GenerateReportResponse struct {
	Success          bool             `json:"success"`
	ReportID         string           `json:"report_id"`
	ProblemStatement string           `json:"problem_statement"`
	Report           string           `json:"report"`
	StructuredReport Sections         `json:"structured_report,omitempty"`
	GenerationMethod GenerationMethod `json:"generation_method"`
	ModelUsed        string           `json:"model_used"`
}

type ValidateInputsResponse struct {
	Success bool     `json:"success"`
	Valid   bool     `json:"valid"`
	Errors  []string `json:"errors"`
}

type ExportReportRequest struct {
	ProblemStatement string `json:"problem_statement,omitempty"`
	Report           string `json:"report"`
}

type ProviderStatusResponse struct {
	Local  ProviderStatus `json:"local"`
	Hosted ProviderStatus `json:"hosted"`
}

type HealthResponse struct {
	Status    string                 `json:"status"`
	Service   string                 `json:"service"`
	Version   string                 `json:"version"`
	Providers ProviderStatusResponse `json:"providers"`
}

type ErrorResponse struct {
	Success          bool     `json:"success"`
	Error            string   `json:"error"`
	ValidationErrors []string `json:"validation_errors,omitempty"`
}
