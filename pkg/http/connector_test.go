package http

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type echoPayload struct {
	Value string `json:"value"`
}

func TestConnector_DoRequest_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/echo", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "Bearer secret", r.Header.Get("Authorization"))
		assert.Equal(t, "yes", r.Header.Get("X-Extra"))

		var in echoPayload
		require.NoError(t, json.NewDecoder(r.Body).Decode(&in))
		json.NewEncoder(w).Encode(echoPayload{Value: in.Value + "!"})
	}))
	defer server.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: server.URL + "/"}, WithRequestLogging(64), WithAuthToken("secret"))

	var out echoPayload
	err := c.DoRequest(context.Background(), http.MethodPost, "/echo", echoPayload{Value: "hi"}, &out, WithHeader("X-Extra", "yes"))
	require.NoError(t, err)
	assert.Equal(t, "hi!", out.Value)
}

func TestConnector_DoRequest_HTTPError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		w.Write([]byte("model loading"))
	}))
	defer server.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: server.URL})
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var httpErr *HTTPError
	require.True(t, errors.As(err, &httpErr))
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.StatusCode)
	assert.Equal(t, "model loading", httpErr.Message)
}

func TestConnector_DoRequest_DecodeError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("not json"))
	}))
	defer server.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: server.URL})
	var out echoPayload
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, &out)

	var decodeErr *DecodeError
	assert.True(t, errors.As(err, &decodeErr))
}

func TestConnector_DoRequest_Timeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer server.Close()

	c := NewConnector(&ConnectorConfig{BaseURL: server.URL}, WithRequestTimeout(20*time.Millisecond))
	err := c.DoRequest(context.Background(), http.MethodGet, "/", nil, nil)

	var netErr *NetworkError
	assert.True(t, errors.As(err, &netErr))
}

func TestRedactHeaders(t *testing.T) {
	h := http.Header{}
	h.Set("Authorization", "Bearer secret")
	h.Set("X-Api-Key", "sk-123")
	h.Set("Accept", "application/json")

	got := redactHeaders(h)
	assert.Equal(t, redacted, got.Get("Authorization"))
	assert.Equal(t, redacted, got.Get("X-Api-Key"))
	assert.Equal(t, "application/json", got.Get("Accept"))
	assert.Equal(t, "Bearer secret", h.Get("Authorization"))
}
