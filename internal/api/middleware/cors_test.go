package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCORS(t *testing.T) {
	ok := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	})

	tests := []struct {
		name       string
		allowed    []string
		origin     string
		method     string
		wantStatus int
		wantOrigin string
	}{
		{"wildcard", []string{"*"}, "http://localhost:3000", http.MethodPost, http.StatusTeapot, "*"},
		{"listed origin", []string{"http://app.example.com"}, "http://app.example.com", http.MethodGet, http.StatusTeapot, "http://app.example.com"},
		{"unlisted origin", []string{"http://app.example.com"}, "http://evil.example.com", http.MethodGet, http.StatusTeapot, ""},
		{"no origin", []string{"*"}, "", http.MethodGet, http.StatusTeapot, ""},
		{"preflight", []string{"*"}, "http://localhost:3000", http.MethodOptions, http.StatusNoContent, "*"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(tt.method, "/generate-questions", nil)
			if tt.origin != "" {
				req.Header.Set("Origin", tt.origin)
			}
			if tt.method == http.MethodOptions {
				req.Header.Set("Access-Control-Request-Method", http.MethodPost)
			}
			rec := httptest.NewRecorder()

			CORS(tt.allowed)(ok).ServeHTTP(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantOrigin, rec.Header().Get("Access-Control-Allow-Origin"))
		})
	}
}
