package research

import (
	"github.com/glowup/research-backend/internal/entity"
	"github.com/glowup/research-backend/internal/usecase/research"
)

func toQuestionsResponse(problem string, res *research.QuestionsResult) entity.GenerateQuestionsResponse {
	return entity.GenerateQuestionsResponse{
		Success:          true,
		ProblemStatement: problem,
		TotalQuestions:   len(res.Questions),
		Questions:        res.Questions,
		GenerationMethod: res.Method,
	}
}

func toReportResponse(problem string, res *research.ReportResult) entity.GenerateReportResponse {
	return entity.GenerateReportResponse{
		Success:          true,
		ReportID:         res.Report.ID,
		ProblemStatement: problem,
		Report:           res.Report.RawText,
		StructuredReport: res.Report.Sections,
		GenerationMethod: res.Method,
		ModelUsed:        res.ModelUsed,
	}
}
