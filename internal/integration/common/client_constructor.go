package common

import (
	"github.com/glowup/research-backend/internal/config"
	pkgHTTP "github.com/glowup/research-backend/pkg/http"
)

func baseOptions(cfg config.HTTPClientConfig) []pkgHTTP.HttpOpts {
	return []pkgHTTP.HttpOpts{
		pkgHTTP.WithRequestTimeout(cfg.RequestTimeout),
		pkgHTTP.WithConnClientTimeout(cfg.ConnTimeout),
		pkgHTTP.WithClientKeepAlive(cfg.KeepAlive),
		pkgHTTP.WithIdleConnTimeout(cfg.IdleConnTimeout),
		pkgHTTP.WithResponseHeaderTimeout(cfg.ResponseHeaderTimeout),
		pkgHTTP.WithRequestLogging(cfg.LogBodyBytes),
		pkgHTTP.WithAuthToken(cfg.Token),
	}
}

// NewBaseConnector builds a JSON connector for cfg.Url. Extra options are applied last,
// so they override the configured timeouts.
func NewBaseConnector(cfg config.HTTPClientConfig, extra ...pkgHTTP.HttpOpts) *pkgHTTP.Connector {
	connCfg := &pkgHTTP.ConnectorConfig{
		BaseURL: cfg.Url,
	}

	return pkgHTTP.NewConnector(connCfg, append(baseOptions(cfg), extra...)...)
}
