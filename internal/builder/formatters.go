package builder

import (
	"github.com/glowup/research-backend/internal/pkg/formatter"
	"github.com/unidoc/unioffice/common/license"
	"go.uber.org/zap"
)

// setupFormatters loads the unioffice key when one is configured. docx export is
// only offered after the key was accepted.
func setupFormatters(licenseKey string, logger *zap.Logger) *formatter.Factory {
	if licenseKey == "" {
		logger.Info("docx export disabled, UNIOFFICE_LICENSE_KEY is not set")
		return formatter.NewFactory()
	}

	if err := license.SetMeteredKey(licenseKey); err != nil {
		logger.Warn("docx export disabled, unioffice rejected the license key", zap.Error(err))
		return formatter.NewFactory()
	}

	logger.Info("docx export enabled")
	return formatter.NewFactory(formatter.WithDOCX())
}
