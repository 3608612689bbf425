package advisor

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/DRSN-tech/pos-backend/internal/cfg"
	"github.com/DRSN-tech/pos-backend/internal/usecase"
	"github.com/DRSN-tech/pos-backend/pkg/e"
	"github.com/DRSN-tech/pos-backend/pkg/jitter"
	"github.com/DRSN-tech/pos-backend/pkg/logger"
)

// OpenRouterClient — клиент OpenRouter-совместимого chat-completions API
// с retry-логикой и экспоненциальной задержкой.
type OpenRouterClient struct {
	httpClient *http.Client
	cfg        *cfg.AdvisorCfg
	logger     logger.Logger
}

func NewOpenRouterClient(cfg *cfg.AdvisorCfg, logger logger.Logger) *OpenRouterClient {
	return &OpenRouterClient{
		httpClient: &http.Client{Timeout: cfg.Timeout},
		cfg:        cfg,
		logger:     logger,
	}
}

type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type chatRequest struct {
	Model    string        `json:"model"`
	Messages []chatMessage `json:"messages"`
}

type chatResponse struct {
	Choices []struct {
		Message chatMessage `json:"message"`
	} `json:"choices"`
}

// ChatCompletion отправляет системный и пользовательский промпты
// и возвращает текст первого варианта ответа.
func (c *OpenRouterClient) ChatCompletion(ctx context.Context, req *usecase.ChatCompletionReq) (string, error) {
	const (
		op         = "OpenRouterClient.ChatCompletion"
		baseJitter = 1 * time.Second
		maxJitter  = 10 * time.Second
	)

	attempts := c.cfg.MaxRetries + 1
	for attempt := 0; attempt < attempts; attempt++ {
		answer, retryable, err := c.complete(ctx, req)
		if err == nil {
			return answer, nil
		}

		if !retryable || attempt == attempts-1 {
			return "", e.Wrap(op, err)
		}

		sleepTime := jitter.ExponentialBackoff(
			baseJitter,
			maxJitter,
			attempt,
			jitter.DefaultJitter,
		)

		c.logger.Warnf("chat completion failed, retrying in %v (attempt %d): %v", sleepTime, attempt+1, err)
		select {
		case <-time.After(sleepTime):
		case <-ctx.Done():
			return "", e.Wrap(op, ctx.Err())
		}
	}

	return "", e.Wrap(op, fmt.Errorf("unreachable"))
}

// complete выполняет один HTTP-вызов; второй результат — можно ли повторять.
func (c *OpenRouterClient) complete(ctx context.Context, req *usecase.ChatCompletionReq) (string, bool, error) {
	body, err := json.Marshal(chatRequest{
		Model: c.cfg.Model,
		Messages: []chatMessage{
			{Role: "system", Content: req.SystemPrompt},
			{Role: "user", Content: req.UserMessage},
		},
	})
	if err != nil {
		return "", false, err
	}

	url := strings.TrimRight(c.cfg.BaseURL, "/") + "/chat/completions"
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", false, err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+c.cfg.APIKey)

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", e.ErrRemoteService, err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", true, fmt.Errorf("%w: %v", e.ErrRemoteService, err)
	}

	if resp.StatusCode != http.StatusOK {
		retryable := resp.StatusCode >= http.StatusInternalServerError ||
			resp.StatusCode == http.StatusTooManyRequests
		return "", retryable, fmt.Errorf("%w: status %d: %s", e.ErrRemoteService, resp.StatusCode, truncate(data, 256))
	}

	var parsed chatResponse
	if err := json.Unmarshal(data, &parsed); err != nil {
		return "", false, fmt.Errorf("%w: malformed response: %v", e.ErrRemoteService, err)
	}

	if len(parsed.Choices) == 0 {
		return "", false, fmt.Errorf("%w: empty choices", e.ErrRemoteService)
	}

	return parsed.Choices[0].Message.Content, false, nil
}

func truncate(data []byte, limit int) string {
	if len(data) <= limit {
		return string(data)
	}
	return string(data[:limit]) + "..."
}
