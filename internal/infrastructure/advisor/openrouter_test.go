package advisor_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/cfg"
	"github.com/DRSN-tech/pos-backend/internal/infrastructure/advisor"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type noopLogger struct{}

func (noopLogger) Debugf(format string, args ...any)            {}
func (noopLogger) Infof(format string, args ...any)             {}
func (noopLogger) Warnf(format string, args ...any)             {}
func (noopLogger) Errorf(err error, format string, args ...any) {}

func newClient(baseURL string, maxRetries int) *advisor.OpenRouterClient {
	return advisor.NewOpenRouterClient(&cfg.AdvisorCfg{
		BaseURL:    baseURL,
		APIKey:     "test-key",
		Model:      "test-model",
		Timeout:    5 * time.Second,
		MaxRetries: maxRetries,
	}, noopLogger{})
}

func TestChatCompletion(t *testing.T) {
	t.Parallel()

	t.Run("sends bearer auth and both prompts", func(t *testing.T) {
		t.Parallel()

		var gotBody map[string]any
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/chat/completions", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
			assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
			require.NoError(t, json.NewDecoder(r.Body).Decode(&gotBody))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"Buy more milk."}}]}`))
		}))
		defer srv.Close()

		client := newClient(srv.URL, 0)

		answer, err := client.ChatCompletion(context.Background(),
			usecase.NewChatCompletionReq("system prompt", "user question"))
		require.NoError(t, err)
		assert.Equal(t, "Buy more milk.", answer)

		assert.Equal(t, "test-model", gotBody["model"])
		messages := gotBody["messages"].([]any)
		require.Len(t, messages, 2)
		first := messages[0].(map[string]any)
		assert.Equal(t, "system", first["role"])
		assert.Equal(t, "system prompt", first["content"])
	})

	t.Run("retries server errors then succeeds", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			if attempts == 1 {
				w.WriteHeader(http.StatusServiceUnavailable)
				return
			}
			w.Write([]byte(`{"choices":[{"message":{"content":"ok"}}]}`))
		}))
		defer srv.Close()

		client := newClient(srv.URL, 2)

		answer, err := client.ChatCompletion(context.Background(),
			usecase.NewChatCompletionReq("s", "u"))
		require.NoError(t, err)
		assert.Equal(t, "ok", answer)
		assert.Equal(t, 2, attempts)
	})

	t.Run("client errors are not retried", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			attempts++
			w.WriteHeader(http.StatusUnauthorized)
		}))
		defer srv.Close()

		client := newClient(srv.URL, 3)

		_, err := client.ChatCompletion(context.Background(),
			usecase.NewChatCompletionReq("s", "u"))
		assert.ErrorIs(t, err, e.ErrRemoteService)
		assert.Equal(t, 1, attempts)
	})

	t.Run("empty choices is an error", func(t *testing.T) {
		t.Parallel()

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"choices":[]}`))
		}))
		defer srv.Close()

		client := newClient(srv.URL, 0)

		_, err := client.ChatCompletion(context.Background(),
			usecase.NewChatCompletionReq("s", "u"))
		assert.ErrorIs(t, err, e.ErrRemoteService)
	})
}
