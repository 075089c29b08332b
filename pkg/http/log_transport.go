package http

import (
	"net/http"
	"strings"
	"time"

	"github.com/grpc-ecosystem/go-grpc-middleware/logging/zap/ctxzap"
	"go.uber.org/zap"
)

// context keys for attaching request metadata
type payloadContextKey struct{}

const redacted = "[REDACTED]"

// sensitiveHeaders are never written to logs.
var sensitiveHeaders = map[string]bool{
	"authorization": true,
	"x-api-key":     true,
}

type logTransport struct {
	transport http.RoundTripper
	maxBody   int
}

func (t *logTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	ctx := req.Context()
	start := time.Now()

	fields := []zap.Field{
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Any("headers", redactHeaders(req.Header)),
	}

	if payload, ok := ctx.Value(payloadContextKey{}).([]byte); ok && len(payload) > 0 {
		fields = append(fields, zap.Int("payload_bytes", len(payload)))
		if t.maxBody > 0 {
			fields = append(fields, zap.ByteString("payload", truncate(payload, t.maxBody)))
		}
	}

	ctxzap.Debug(ctx, "HTTP outbound request", fields...)

	resp, err := t.transport.RoundTrip(req)
	if err != nil {
		ctxzap.Debug(ctx, "HTTP outbound request failed",
			zap.String("url", req.URL.String()),
			zap.Duration("elapsed", time.Since(start)),
			zap.Error(err),
		)
		return nil, err
	}

	ctxzap.Debug(ctx, "HTTP outbound response",
		zap.String("url", req.URL.String()),
		zap.Int("status", resp.StatusCode),
		zap.Duration("elapsed", time.Since(start)),
	)

	return resp, nil
}

func redactHeaders(h http.Header) http.Header {
	out := make(http.Header, len(h))
	for key, values := range h {
		if sensitiveHeaders[strings.ToLower(key)] {
			out[key] = []string{redacted}
			continue
		}
		out[key] = values
	}
	return out
}

func truncate(b []byte, limit int) []byte {
	if len(b) <= limit {
		return b
	}
	return b[:limit]
}

// WithRequestLogging wraps the transport with debug logging of outbound requests and
// their outcome. Credentials are redacted; at most maxBody bytes of payload are logged.
func WithRequestLogging(maxBody int) HttpOpts {
	return WithTransport(func(rt http.RoundTripper) http.RoundTripper {
		return &logTransport{
			transport: rt,
			maxBody:   maxBody,
		}
	})
}
