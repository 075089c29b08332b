package research

import (
	"context"

	"github.com/glowup/research-backend/internal/entity"
	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// LocalStatus reports whether the local model server answers and which models it has.
func (uc *Usecase) LocalStatus(ctx context.Context) entity.ProviderStatus {
	models, err := uc.local.ListModels(detach(ctx))
	if err != nil {
		ctxzap.Debug(ctx, "local model status check failed", zap.Error(err))
		return entity.ProviderStatus{
			Available:    false,
			Status:       entity.ProviderStatusError,
			CurrentModel: uc.local.Model(),
			Message:      err.Error(),
		}
	}

	return entity.ProviderStatus{
		Available:       true,
		Status:          entity.ProviderStatusRunning,
		AvailableModels: models,
		CurrentModel:    uc.local.Model(),
	}
}

func (uc *Usecase) HostedConfigured() bool {
	return uc.hosted.Configured()
}

// HostedStatus reports the hosted provider configuration. No request is made.
func (uc *Usecase) HostedStatus() entity.ProviderStatus {
	configured := uc.hosted.Configured()
	status := entity.ProviderStatus{
		Available:    configured,
		Status:       entity.ProviderStatusMissing,
		CurrentModel: uc.hosted.Model(),
		Configured:   &configured,
		MaxTokens:    uc.cfg.MaxTokens,
		Temperature:  uc.cfg.Temperature,
	}
	if configured {
		status.Status = entity.ProviderStatusConfigured
	}
	return status
}
