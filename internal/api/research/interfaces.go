package research

import (
	"context"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/glowup/research-backend/internal/usecase/research"
)

type ResearchUsecase interface {
	GenerateQuestions(ctx context.Context, problem string) (*research.QuestionsResult, error)
	GenerateReport(ctx context.Context, problem string, answers []entity.AnsweredQuestion) (*research.ReportResult, error)
	LocalStatus(ctx context.Context) entity.ProviderStatus
	HostedStatus() entity.ProviderStatus
}
