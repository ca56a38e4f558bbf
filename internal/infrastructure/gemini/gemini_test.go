package gemini

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/shopmate-vn/go-backend/internal/cfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type nopLogger struct{}

func (nopLogger) Debugf(format string, args ...any)            {}
func (nopLogger) Infof(format string, args ...any)             {}
func (nopLogger) Warnf(format string, args ...any)             {}
func (nopLogger) Errorf(err error, format string, args ...any) {}

func textResponse(text string) GeminiResponse {
	return GeminiResponse{
		Candidates: []Candidate{
			{Content: Content{Parts: []Part{{Text: text}}}},
		},
	}
}

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	return NewClient(&cfg.GeminiCfg{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Model:      "gemini-2.5-flash",
		Timeout:    5 * time.Second,
		MaxRetries: 3,
	}, nopLogger{})
}

func TestComplete(t *testing.T) {
	var gotReq GeminiRequest
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/models/gemini-2.5-flash:generateContent", r.URL.Path)
		assert.Equal(t, "test-key", r.URL.Query().Get("key"))

		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("Bánh kem bắp | 350000\n")))
	})

	text, err := client.Complete(context.Background(), "sinh nhật")

	require.NoError(t, err)
	assert.Equal(t, "Bánh kem bắp | 350000", text)

	require.Len(t, gotReq.Contents, 1)
	assert.Equal(t, "user", gotReq.Contents[0].Role)
	assert.Equal(t, "sinh nhật", gotReq.Contents[0].Parts[0].Text)
	require.NotNil(t, gotReq.GenerationConfig)
	assert.InDelta(t, 0.4, gotReq.GenerationConfig.Temperature, 0.001)
}

func TestComplete_RetriesServerErrors(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusServiceUnavailable)
			return
		}
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("35000")))
	})

	text, err := client.Complete(context.Background(), "giá")

	require.NoError(t, err)
	assert.Equal(t, "35000", text)
	assert.Equal(t, 2, calls)
}

func TestComplete_NoRetryOnClientError(t *testing.T) {
	var calls int
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		calls++
		w.WriteHeader(http.StatusBadRequest)
		_ = json.NewEncoder(w).Encode(ErrorResponse{})
	})

	_, err := client.Complete(context.Background(), "giá")

	require.Error(t, err)
	assert.Equal(t, 1, calls)
	assert.Contains(t, err.Error(), "status 400")
}

func TestComplete_ErrorMessageSurfaced(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
		resp := ErrorResponse{}
		resp.Error.Code = 403
		resp.Error.Message = "API key not valid"
		_ = json.NewEncoder(w).Encode(resp)
	})

	_, err := client.Complete(context.Background(), "giá")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "API key not valid")
}

func TestComplete_ZeroRetriesStillAttemptsOnce(t *testing.T) {
	var calls int
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		require.NoError(t, json.NewEncoder(w).Encode(textResponse("35000")))
	}))
	t.Cleanup(srv.Close)

	client := NewClient(&cfg.GeminiCfg{
		APIKey:     "test-key",
		BaseURL:    srv.URL,
		Model:      "gemini-2.5-flash",
		Timeout:    5 * time.Second,
		MaxRetries: 0,
	}, nopLogger{})

	text, err := client.Complete(context.Background(), "giá")

	require.NoError(t, err)
	assert.Equal(t, "35000", text)
	assert.Equal(t, 1, calls)
}

func TestComplete_EmptyCandidates(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewEncoder(w).Encode(GeminiResponse{}))
	})

	_, err := client.Complete(context.Background(), "giá")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no text")
}
